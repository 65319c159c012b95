package render

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ericfisherdev/realmseed/internal/domain/model"
)

// WriteReport writes the allocation report as indented JSON. Epic names keep
// their literal '&'.
func WriteReport(path string, report model.SprintReport) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("marshal sprint report: %w", err)
	}
	return writeFile(path, buf.Bytes())
}

// WriteSchedule renders the schedule page for the first limit sprints and
// writes it to path.
func WriteSchedule(ctx context.Context, path string, report model.SprintReport, limit int) error {
	var buf bytes.Buffer
	if err := SchedulePage(NewScheduleView(report, limit)).Render(ctx, &buf); err != nil {
		return fmt.Errorf("render sprint schedule: %w", err)
	}
	return writeFile(path, buf.Bytes())
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
