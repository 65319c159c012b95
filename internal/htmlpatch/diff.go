package htmlpatch

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Op marks a diff line.
type Op byte

const (
	OpEqual  Op = ' '
	OpInsert Op = '+'
	OpDelete Op = '-'
	// OpSkip stands for a run of unchanged lines left out of the diff.
	OpSkip Op = '~'
)

// DiffLine is one line of a line-level diff.
type DiffLine struct {
	Op   Op
	Text string
}

// Diff compares before and after line by line and keeps context unchanged
// lines around every change. Longer unchanged runs collapse into a single
// OpSkip line. Identical inputs give no lines.
func Diff(before, after string, context int) []DiffLine {
	if before == after {
		return nil
	}

	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var all []DiffLine
	for _, d := range diffs {
		op := OpEqual
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			op = OpInsert
		case diffmatchpatch.DiffDelete:
			op = OpDelete
		}
		for _, line := range splitLines(d.Text) {
			all = append(all, DiffLine{Op: op, Text: line})
		}
	}
	return collapse(all, context)
}

func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}

// collapse drops unchanged lines further than context from any change.
func collapse(all []DiffLine, context int) []DiffLine {
	keep := make([]bool, len(all))
	for i, l := range all {
		if l.Op == OpEqual {
			continue
		}
		for j := max(0, i-context); j <= min(len(all)-1, i+context); j++ {
			keep[j] = true
		}
	}

	var out []DiffLine
	skipped := false
	for i, l := range all {
		if keep[i] {
			out = append(out, l)
			skipped = false
			continue
		}
		if !skipped {
			out = append(out, DiffLine{Op: OpSkip})
			skipped = true
		}
	}
	return out
}
