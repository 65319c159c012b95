package htmlpatch

import (
	"fmt"
	"strings"
)

// RuleResult reports what one rule did.
type RuleResult struct {
	Rule    string
	Matches int
	// Fallback is the name of the fallback rule that ran, if any.
	Fallback string
}

// Applied reports whether the rule or its fallback replaced anything.
func (r RuleResult) Applied() bool {
	return r.Matches > 0
}

// Result is the outcome of applying a rule set.
type Result struct {
	Set     string
	Content string
	Rules   []RuleResult
}

// Unmatched returns the names of rules that replaced nothing.
func (r Result) Unmatched() []string {
	var names []string
	for _, rr := range r.Rules {
		if !rr.Applied() {
			names = append(names, rr.Rule)
		}
	}
	return names
}

// Replacements is the total number of replacements made.
func (r Result) Replacements() int {
	total := 0
	for _, rr := range r.Rules {
		total += rr.Matches
	}
	return total
}

// UnmatchedError lists the rules of a set that matched nothing.
type UnmatchedError struct {
	Set   string
	Rules []string
}

func (e *UnmatchedError) Error() string {
	return fmt.Sprintf("rule set %s: %d rule(s) matched nothing: %s", e.Set, len(e.Rules), strings.Join(e.Rules, ", "))
}

// Apply runs every rule in order against content. Each rule sees the output
// of the one before it.
func (rs *RuleSet) Apply(content string) Result {
	res := Result{Set: rs.Name, Rules: make([]RuleResult, 0, len(rs.Rules))}

	for i := range rs.Rules {
		rule := &rs.Rules[i]
		out, n := rule.apply(content)
		rr := RuleResult{Rule: rule.Name, Matches: n}
		if n == 0 && rule.Fallback != nil {
			out, n = rule.Fallback.apply(content)
			if n > 0 {
				rr.Matches = n
				rr.Fallback = rule.Fallback.Name
			}
		}
		content = out
		res.Rules = append(res.Rules, rr)
	}

	res.Content = content
	return res
}

// ApplyStrict is Apply but returns an *UnmatchedError when any rule
// matched nothing.
func (rs *RuleSet) ApplyStrict(content string) (Result, error) {
	res := rs.Apply(content)
	if unmatched := res.Unmatched(); len(unmatched) > 0 {
		return res, &UnmatchedError{Set: rs.Name, Rules: unmatched}
	}
	return res, nil
}

func (r *Rule) apply(content string) (string, int) {
	if r.Kind == KindLiteral {
		n := strings.Count(content, r.Find)
		if r.Limit > 0 && n > r.Limit {
			n = r.Limit
		}
		if n == 0 {
			return content, 0
		}
		return strings.Replace(content, r.Find, r.Replace, n), n
	}

	matches := r.re.FindAllStringSubmatchIndex(content, limitOrAll(r.Limit))
	if len(matches) == 0 {
		return content, 0
	}

	var b strings.Builder
	b.Grow(len(content))
	last := 0
	for _, m := range matches {
		b.WriteString(content[last:m[0]])
		if r.Expand {
			b.Write(r.re.ExpandString(nil, r.Replace, content, m))
		} else {
			b.WriteString(r.Replace)
		}
		last = m[1]
	}
	b.WriteString(content[last:])
	return b.String(), len(matches)
}

func limitOrAll(limit int) int {
	if limit <= 0 {
		return -1
	}
	return limit
}
