package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ericfisherdev/realmseed/internal/domain/model"
)

// deliverableBand is a run of issues that each produce a numbered file.
// "{k}" in Title, Deliverable and Value is replaced by the issue's position
// within the band, starting at 1.
type deliverableBand struct {
	Floor       int // last issue of the previous band
	Ceiling     int
	Title       string
	Deliverable string
	Type        string
	Reward      model.Reward
	Value       string
}

var deliverableBands = []deliverableBand{
	{600, 610, "Create weather system component {k}", "weather_component_{k}.cs script file", "weather-system", model.Reward{XP: 200, Coins: 100}, "Weather effects increase immersion, worth $2,000 in environmental assets"},
	{610, 620, "Design dynamic lighting setup {k}", "lighting_setup_{k}.unity scene with configured lights", "lighting", model.Reward{XP: 250, Coins: 125}, "Professional lighting adds $3,000 value to environment pack"},
	{620, 630, "Create fog and atmosphere effect {k}", "atmosphere_{k}.mat material with shader", "atmosphere", model.Reward{XP: 175, Coins: 85}, "Atmospheric effects crucial for Dark Souls aesthetic"},
	{630, 640, "Optimize environment LODs {k}", "LOD_settings_{k}.asset configuration file", "optimization", model.Reward{XP: 150, Coins: 75}, "LOD optimization ensures 60FPS, critical for positive reviews"},
	{640, 680, "Design UI element {k}", "ui_element_{k}.png with transparency", "ui-design", model.Reward{XP: 100, Coins: 50}, "UI assets sell for $45-95 per pack, element {k} contributes"},
	{680, 720, "Create menu screen {k}", "menu_screen_{k}.prefab Unity prefab", "ui-screens", model.Reward{XP: 150, Coins: 75}, "Complete menu systems worth $125 on asset store"},
	{720, 760, "Implement UI animation {k}", "ui_animation_{k}.anim animation file", "ui-animation", model.Reward{XP: 125, Coins: 60}, "Animated UI increases perceived quality, supports premium pricing"},
	{760, 780, "Create HUD component {k}", "hud_component_{k}.cs with visual prefab", "hud", model.Reward{XP: 175, Coins: 85}, "HUD systems essential for gameplay, drives game sales ($197/copy)"},
	{780, 820, "Implement save data structure {k}", "save_data_{k}.cs serializable class", "save-data", model.Reward{XP: 200, Coins: 100}, "Save system worth $150 as standalone asset"},
	{820, 860, "Create save file encryption {k}", "encryption_{k}.cs security implementation", "save-security", model.Reward{XP: 250, Coins: 125}, "Secure saves prevent cheating, maintains game integrity"},
	{860, 900, "Build cloud save integration {k}", "cloud_save_{k}.cs with API integration", "cloud-save", model.Reward{XP: 300, Coins: 150}, "Cloud saves enable cross-platform play, increases market reach"},
	{900, 940, "Create sound effect {k}", "sfx_{k}.wav audio file (44.1kHz)", "audio-sfx", model.Reward{XP: 150, Coins: 75}, "SFX pack sells for $35-75, each sound adds value"},
	{940, 970, "Compose music track segment {k}", "music_segment_{k}.ogg loopable track", "audio-music", model.Reward{XP: 250, Coins: 125}, "Original soundtrack worth $15-25 separately"},
	{970, 990, "Implement audio mixer settings {k}", "audio_mixer_{k}.mixer Unity audio mixer", "audio-system", model.Reward{XP: 175, Coins: 85}, "Professional audio mixing essential for quality"},
	{990, 1000, "Final polish task {k}", "polish_report_{k}.md with before/after screenshots", "polish", model.Reward{XP: 200, Coins: 100}, "Polish determines review scores, directly impacts sales"},
}

// phaseFor returns the epic and fragment text the remaining-issue bodies
// declare. The labels predate the current hierarchy and are kept as written.
func phaseFor(n int) (epic, fragment string) {
	switch {
	case n <= 640:
		return "EPIC-004: Environment System", "Fragments 22-28: Environment System Done"
	case n <= 780:
		return "EPIC-008: UI/UX Framework", "Fragments 29-35: UI/UX Complete"
	case n <= 900:
		return "EPIC-007: Save System & Persistence", "Fragments 36-42: Save System Implemented"
	default:
		return "EPIC-009: Audio & Polish", "Fragments 43-49: Audio System & Polish"
	}
}

type deliverableTask struct {
	Number      int
	Title       string
	Deliverable string
	Type        string
	Value       string
	Reward      model.Reward
	Epic        string
	Fragment    string
}

func (t deliverableTask) spec(progress float64, scope string, extraLabels ...string) model.IssueSpec {
	body := render("deliverable.md.tmpl", deliverableView{
		Number:          t.Number,
		Epic:            t.Epic,
		Deliverable:     t.Deliverable,
		Value:           t.Value,
		Type:            t.Type,
		Difficulty:      difficulty(t.Reward.XP),
		Fragment:        t.Fragment,
		Minutes:         estimateMinutes(t.Reward.XP),
		SprintProgress:  progress,
		ProgressScope:   scope,
		OverallProgress: float64(t.Number) / 1000 * 100,
		Reward:          t.Reward,
	})
	labels := []string{
		"issue",
		"sprint-1",
		fmt.Sprintf("xp-%d", t.Reward.XP),
		fmt.Sprintf("coins-%d", t.Reward.Coins),
		t.Type,
		"deliverable-required",
	}
	return model.IssueSpec{
		Number: t.Number,
		Title:  model.IssueTitle(t.Number, t.Title),
		Body:   body,
		Labels: append(labels, extraLabels...),
		Reward: t.Reward,
	}
}

// RemainingSprint1 generates issues 601 through 1000, each with a concrete
// deliverable.
func RemainingSprint1() []model.IssueSpec {
	specs := make([]model.IssueSpec, 0, 400)
	for _, b := range deliverableBands {
		for n := b.Floor + 1; n <= b.Ceiling; n++ {
			k := strconv.Itoa(n - b.Floor)
			epic, fragment := phaseFor(n)
			task := deliverableTask{
				Number:      n,
				Title:       strings.ReplaceAll(b.Title, "{k}", k),
				Deliverable: strings.ReplaceAll(b.Deliverable, "{k}", k),
				Type:        b.Type,
				Value:       strings.ReplaceAll(b.Value, "{k}", k),
				Reward:      b.Reward,
				Epic:        epic,
				Fragment:    fragment,
			}
			progress := float64(n-600) / 400 * 100
			specs = append(specs, task.spec(progress, "of remaining Sprint 1"))
		}
	}
	return specs
}

// MissingIssues generates the atmospheric effect issues 571 through 600.
func MissingIssues() []model.IssueSpec {
	specs := make([]model.IssueSpec, 0, 30)
	for n := 571; n <= 600; n++ {
		k := n - 570
		task := deliverableTask{
			Number:      n,
			Title:       fmt.Sprintf("Create atmospheric effect %d", k),
			Deliverable: fmt.Sprintf("atmosphere_%d.mat material with shader", k),
			Type:        "atmosphere",
			Value:       "Atmospheric effects crucial for Dark Souls aesthetic",
			Reward:      model.Reward{XP: 175, Coins: 85},
			Epic:        "EPIC-004: Environment System",
			Fragment:    "Fragments 22-28: Environment System Done",
		}
		progress := float64(k) / 30 * 100
		specs = append(specs, task.spec(progress, "of atmospheric effects", "environment-system"))
	}
	return specs
}
