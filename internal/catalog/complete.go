package catalog

import (
	"fmt"

	"github.com/ericfisherdev/realmseed/internal/domain/model"
)

type microTask struct {
	Number     int
	Title      string
	Type       string
	Difficulty string
}

var setupTasks = []microTask{
	{1, "Download Unity Hub from unity.com", "setup", "easy"},
	{2, "Install Unity 2024.3 LTS", "setup", "easy"},
	{3, "Download Visual Studio 2022", "setup", "easy"},
	{4, "Install Visual Studio Unity Tools", "setup", "easy"},
	{5, "Download Git for Windows/Mac", "setup", "easy"},
	{6, "Install Git LFS for large files", "setup", "medium"},
	{7, "Download GitHub Desktop", "setup", "easy"},
	{8, "Install Node.js v20 LTS", "setup", "easy"},
	{9, "Install Python 3.11", "setup", "easy"},
	{10, "Run npm install -g yarn", "setup", "easy"},
}

// taskBand describes a run of generated micro tasks ending at Ceiling.
type taskBand struct {
	Ceiling    int
	Title      string
	Type       string
	Difficulty string
}

var taskBands = []taskBand{
	{20, "Git repository task", "git", "easy"},
	{40, "Unity configuration task", "unity", "medium"},
	{60, "Create project folder", "organization", "easy"},
	{80, "Install Unity package", "packages", "medium"},
	{100, "Configure build setting", "build", "medium"},
	{120, "Setup version control", "git", "medium"},
	{140, "Create documentation", "documentation", "medium"},
	{160, "Configure CI/CD pipeline", "devops", "hard"},
	{180, "Setup Maya project", "3d-modeling", "medium"},
	{210, "Model character mesh", "3d-modeling", "hard"},
	{230, "Create UV mapping", "3d-modeling", "hard"},
	{250, "Export to Unity", "pipeline", "medium"},
	{270, "Setup character rig", "animation", "hard"},
	{290, "Create idle animation", "animation", "hard"},
	{300, "Setup animation controller", "animation", "medium"},
	{340, "Combat system task", "combat-programming", "hard"},
	{380, "Combat system task", "combat-animation", "hard"},
	{480, "Combat system task", "combat-vfx", "hard"},
	{520, "Environment task", "terrain", "medium"},
	{560, "Environment task", "vegetation", "medium"},
	{640, "Environment task", "lighting", "hard"},
	{700, "UI system task", "ui-design", "medium"},
	{780, "UI system task", "ui-programming", "medium"},
	{900, "Save system task", "save-system", "hard"},
	{1000, "Audio system task", "audio", "medium"},
}

func microTaskFor(n int) (microTask, bool) {
	if n >= 1 && n <= len(setupTasks) {
		return setupTasks[n-1], true
	}
	for _, b := range taskBands {
		if n > len(setupTasks) && n <= b.Ceiling {
			return microTask{
				Number:     n,
				Title:      fmt.Sprintf("%s %d", b.Title, n),
				Type:       b.Type,
				Difficulty: b.Difficulty,
			}, true
		}
	}
	return microTask{}, false
}

// CompleteSprint1 generates the full Sprint 1 backlog, issues 1 through 1000.
func CompleteSprint1() []model.IssueSpec {
	specs := make([]model.IssueSpec, 0, LastIssue)
	for n := FirstIssue; n <= LastIssue; n++ {
		task, _ := microTaskFor(n)
		reward := XPCoins(n, task.Type)
		specs = append(specs, model.IssueSpec{
			Number: n,
			Title:  model.IssueTitle(n, task.Title),
			Body: render("micro.md.tmpl", microView{
				Number:   n,
				Title:    task.Title,
				Type:     task.Type,
				Fragment: "Unlocks progress toward " + FragmentRange(n),
				Reward:   reward,
			}),
			Labels: []string{
				"issue",
				"micro-task",
				fmt.Sprintf("xp-%d", reward.XP),
				fmt.Sprintf("coins-%d", reward.Coins),
				"sprint-1",
				task.Difficulty,
				task.Type,
			},
			Reward: reward,
		})
	}
	return specs
}
