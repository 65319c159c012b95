package catalog

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"

	"github.com/ericfisherdev/realmseed/internal/domain/model"
)

//go:embed templates/*.md.tmpl
var templateFS embed.FS

var bodies = template.Must(template.New("bodies").Funcs(template.FuncMap{
	"add": func(a, b int) int { return a + b },
	"mul": func(a, b int) int { return a * b },
	"div": func(a, b int) int { return a / b },
}).ParseFS(templateFS, "templates/*.md.tmpl"))

// HierarchyMarker opens every hierarchy annotation. Bodies that already
// contain it are not annotated again.
const HierarchyMarker = "## 🏛️ Agile Hierarchy"

type microView struct {
	Number   int
	Title    string
	Type     string
	Fragment string
	Reward   model.Reward
}

type deliverableView struct {
	Number          int
	Epic            string
	Deliverable     string
	Value           string
	Type            string
	Difficulty      string
	Fragment        string
	Minutes         int
	SprintProgress  float64
	ProgressScope   string
	OverallProgress float64
	Reward          model.Reward
}

type ideationView struct {
	Phase         string
	Epic          string
	Deliverable   string
	Value         string
	Subsequent    int
	RiskReduction int
	Reward        model.Reward
}

type hierarchyView struct {
	Number   int
	Epic     string
	Story    string
	Fragment string
}

func render(name string, data any) string {
	var buf bytes.Buffer
	// The templates are embedded and the views are fixed, so an error here
	// is a programming mistake.
	if err := bodies.ExecuteTemplate(&buf, name, data); err != nil {
		panic(fmt.Sprintf("render %s: %v", name, err))
	}
	return buf.String()
}

// HierarchySection returns the annotation prepended to catalog issue n. It
// reports false when n is outside every user story.
func HierarchySection(n int) (string, bool) {
	epic, story, ok := StoryFor(n)
	if !ok {
		return "", false
	}
	return render("hierarchy.md.tmpl", hierarchyView{
		Number:   n,
		Epic:     epic.ID,
		Story:    story.ID,
		Fragment: story.MemoryFragment(n),
	}), true
}

// Annotate prepends the hierarchy section for catalog issue n to body.
func Annotate(n int, body string) (string, bool) {
	section, ok := HierarchySection(n)
	if !ok {
		return body, false
	}
	return "\n" + section + "\n\n---\n\n" + body, true
}

func difficulty(xp int) string {
	switch {
	case xp >= 250:
		return "Advanced"
	case xp >= 150:
		return "Intermediate"
	default:
		return "Basic"
	}
}

func estimateMinutes(xp int) int {
	switch {
	case xp < 150:
		return 30
	case xp < 250:
		return 60
	default:
		return 90
	}
}
