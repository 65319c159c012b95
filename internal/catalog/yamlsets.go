package catalog

import (
	"embed"
	"fmt"
	"math"

	"gopkg.in/yaml.v3"

	"github.com/ericfisherdev/realmseed/internal/domain/model"
)

//go:embed data/*.yaml
var dataFS embed.FS

type safeFile struct {
	Issues []struct {
		Number int      `yaml:"number"`
		Title  string   `yaml:"title"`
		XP     int      `yaml:"xp"`
		Coins  int      `yaml:"coins"`
		Labels []string `yaml:"labels"`
	} `yaml:"issues"`
}

type ideationFile struct {
	Issues []struct {
		Number      int    `yaml:"number"`
		Title       string `yaml:"title"`
		Deliverable string `yaml:"deliverable"`
		XP          int    `yaml:"xp"`
		Coins       int    `yaml:"coins"`
		Value       string `yaml:"value"`
	} `yaml:"issues"`
}

func loadData(name string, out any) error {
	raw, err := dataFS.ReadFile("data/" + name)
	if err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}
	if err := yaml.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("parsing %s: %w", name, err)
	}
	return nil
}

// SafeSprint1 returns the hand-listed Sprint 1 micro tasks.
func SafeSprint1() ([]model.IssueSpec, error) {
	var f safeFile
	if err := loadData("safe.yaml", &f); err != nil {
		return nil, err
	}
	specs := make([]model.IssueSpec, 0, len(f.Issues))
	for _, it := range f.Issues {
		reward := model.Reward{XP: it.XP, Coins: it.Coins}
		labels := []string{
			"issue",
			"micro-task",
			fmt.Sprintf("xp-%d", it.XP),
			fmt.Sprintf("coins-%d", it.Coins),
			"sprint-1",
		}
		specs = append(specs, model.IssueSpec{
			Number: it.Number,
			Title:  model.IssueTitle(it.Number, it.Title),
			Body: render("micro.md.tmpl", microView{
				Number: it.Number,
				Title:  it.Title,
				Reward: reward,
			}),
			Labels: append(labels, it.Labels...),
			Reward: reward,
		})
	}
	return specs, nil
}

func ideationPhase(n int) string {
	switch {
	case n <= -81:
		return "Phase 0: Project Ideation"
	case n <= -61:
		return "Phase 0.5: Comprehensive Documentation"
	case n <= -41:
		return "Phase 0.7: Concept Art & Prototypes"
	case n <= -21:
		return "Phase 0.8: Tools & Pipeline Setup"
	default:
		return "Phase 0.9: Business & Legal"
	}
}

// Ideation returns the pre-production backlog, issues -100 through -1.
func Ideation() ([]model.IssueSpec, error) {
	var f ideationFile
	if err := loadData("ideation.yaml", &f); err != nil {
		return nil, err
	}
	total := len(f.Issues)
	specs := make([]model.IssueSpec, 0, total)
	for _, it := range f.Issues {
		reward := model.Reward{XP: it.XP, Coins: it.Coins}
		distance := int(math.Abs(float64(it.Number)))
		specs = append(specs, model.IssueSpec{
			Number: it.Number,
			Title:  model.IssueTitle(it.Number, it.Title),
			Body: render("ideation.md.tmpl", ideationView{
				Phase:         ideationPhase(it.Number),
				Epic:          "EPIC-000: Ideation & Planning",
				Deliverable:   it.Deliverable,
				Value:         it.Value,
				Subsequent:    total - distance,
				RiskReduction: 10 + distance%20,
				Reward:        reward,
			}),
			Labels: []string{
				"issue",
				"pre-sprint-1",
				"ideation-documentation",
				fmt.Sprintf("xp-%d", it.XP),
				fmt.Sprintf("coins-%d", it.Coins),
				"foundational",
			},
			Reward: reward,
		})
	}
	return specs, nil
}
