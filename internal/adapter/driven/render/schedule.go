// Package render writes the sprint allocation outputs: the JSON report, the
// schedule HTML page built from templ components, and sanitized markdown.
package render

//go:generate go tool templ generate

import (
	_ "embed"

	"github.com/a-h/templ"
)

//go:embed static/schedule.css
var scheduleCSS string

// pageTitle is the schedule document title.
const pageTitle = "Shadowed Realms - Time-Based Sprint System"

// stylesheet inlines the schedule CSS. templ emits <style> bodies verbatim,
// so the embedded file is passed through as raw HTML.
func stylesheet() templ.Component {
	return templ.Raw("<style>\n" + scheduleCSS + "</style>")
}

// SchedulePage is the full schedule document.
func SchedulePage(v ScheduleView) templ.Component {
	return Layout(pageTitle, SprintSchedule(v))
}
