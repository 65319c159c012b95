// Package htmlpatch applies ordered find-and-replace rule sets to the static
// progress dashboard. Every rule reports how often it matched, so a rule
// that silently stopped matching is visible instead of leaving the page
// half patched.
package htmlpatch

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed rulesets/*.yaml
var rulesetFS embed.FS

// Kind selects how a rule's Find is interpreted.
type Kind string

const (
	KindLiteral Kind = "literal"
	KindRegex   Kind = "regex"
)

// ErrUnknownRuleSet is returned when no built-in rule set has the name.
var ErrUnknownRuleSet = errors.New("unknown rule set")

// Rule is a single substitution.
//
// Literal rules replace exact text. Regex rules use RE2 syntax; DotAll lets
// '.' match newlines and Expand turns on $1 / ${name} expansion in Replace.
// Limit caps the number of replacements, zero meaning all. Fallback is
// applied in place of the rule when the rule itself matches nothing.
type Rule struct {
	Name     string `yaml:"name"`
	Kind     Kind   `yaml:"kind"`
	Find     string `yaml:"find"`
	Replace  string `yaml:"replace"`
	DotAll   bool   `yaml:"dotall"`
	Expand   bool   `yaml:"expand"`
	Limit    int    `yaml:"limit"`
	Fallback *Rule  `yaml:"fallback"`

	re *regexp.Regexp
}

// RuleSet is an ordered list of rules applied one after another.
type RuleSet struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Rules       []Rule `yaml:"rules"`
}

// ParseRuleSet decodes and validates a YAML rule set.
func ParseRuleSet(data []byte) (*RuleSet, error) {
	var rs RuleSet
	if err := yaml.Unmarshal(data, &rs); err != nil {
		return nil, fmt.Errorf("decode rule set: %w", err)
	}
	if rs.Name == "" {
		return nil, errors.New("rule set has no name")
	}
	for i := range rs.Rules {
		if err := rs.Rules[i].compile(); err != nil {
			return nil, fmt.Errorf("rule set %s: %w", rs.Name, err)
		}
	}
	return &rs, nil
}

// LoadFile reads a rule set from a YAML file on disk.
func LoadFile(filename string) (*RuleSet, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read rule set: %w", err)
	}
	return ParseRuleSet(data)
}

// Builtin returns the embedded rule set with the given name.
func Builtin(name string) (*RuleSet, error) {
	data, err := rulesetFS.ReadFile(path.Join("rulesets", name+".yaml"))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownRuleSet, name, strings.Join(BuiltinNames(), ", "))
	}
	if err != nil {
		return nil, fmt.Errorf("read rule set %s: %w", name, err)
	}
	return ParseRuleSet(data)
}

// BuiltinNames lists the embedded rule sets in name order.
func BuiltinNames() []string {
	entries, err := rulesetFS.ReadDir("rulesets")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names
}

// Resolve returns the built-in rule set called nameOrPath, or loads the
// file when nameOrPath ends in .yaml or .yml.
func Resolve(nameOrPath string) (*RuleSet, error) {
	switch path.Ext(nameOrPath) {
	case ".yaml", ".yml":
		return LoadFile(nameOrPath)
	}
	return Builtin(nameOrPath)
}

func (r *Rule) compile() error {
	if r.Name == "" {
		return errors.New("rule has no name")
	}
	if r.Find == "" {
		return fmt.Errorf("rule %s: empty find", r.Name)
	}

	switch r.Kind {
	case KindLiteral, "":
		r.Kind = KindLiteral
		if r.DotAll || r.Expand {
			return fmt.Errorf("rule %s: dotall and expand need a regex rule", r.Name)
		}
	case KindRegex:
		expr := r.Find
		if r.DotAll {
			expr = "(?s)" + expr
		}
		re, err := regexp.Compile(expr)
		if err != nil {
			return fmt.Errorf("rule %s: %w", r.Name, err)
		}
		r.re = re
	default:
		return fmt.Errorf("rule %s: unknown kind %q", r.Name, r.Kind)
	}

	if r.Limit < 0 {
		return fmt.Errorf("rule %s: negative limit", r.Name)
	}
	if r.Fallback != nil {
		if r.Fallback.Fallback != nil {
			return fmt.Errorf("rule %s: fallback rules cannot nest", r.Name)
		}
		if err := r.Fallback.compile(); err != nil {
			return fmt.Errorf("fallback of %w", err)
		}
	}
	return nil
}
