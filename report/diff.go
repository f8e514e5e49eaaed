package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// Diff writes a line diff from want to got and reports whether they differ.
// Unchanged runs are collapsed to a single marker line.
func Diff(w io.Writer, want, got string) (bool, error) {
	if want == got {
		return false, nil
	}

	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(want, got)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	removed := color.New(color.FgRed)
	added := color.New(color.FgGreen)
	unchanged := color.New(color.FgCyan)

	for _, d := range diffs {
		chunk := splitLines(d.Text)

		var err error
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			err = writeLines(w, removed, "-", chunk)
		case diffmatchpatch.DiffInsert:
			err = writeLines(w, added, "+", chunk)
		case diffmatchpatch.DiffEqual:
			_, err = unchanged.Fprintf(w, "@@ %d unchanged lines @@\n", len(chunk))
		}
		if err != nil {
			return true, err
		}
	}

	return true, nil
}

func writeLines(w io.Writer, c *color.Color, prefix string, lines []string) error {
	for _, line := range lines {
		if _, err := c.Fprintf(w, "%s%s\n", prefix, line); err != nil {
			return fmt.Errorf("writing diff: %w", err)
		}
	}

	return nil
}

func splitLines(text string) []string {
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}
