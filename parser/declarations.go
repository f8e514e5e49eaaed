package parser

import (
	"fmt"
	"strings"
)

// OptionalMarker is appended to a declaration that followed an @optional
// directive.
const OptionalMarker = "?"

const (
	directiveIgnore   = "@ignore"
	directiveOptional = "@optional"
)

// NormalizeDeclarations turns the raw function section into one cleaned
// declaration per entry. "// @ignore" drops the next line unseen and
// "// @optional" marks the next line's return as optional. Both apply to
// exactly one line.
func NormalizeDeclarations(section, exportMacro string) ([]string, error) {
	var decls []string

	ignoreNext, optionalNext := false, false

	for i, raw := range strings.Split(section, "\n") {
		if ignoreNext {
			ignoreNext = false
			continue
		}

		line := strings.TrimSpace(raw)
		isComment := strings.HasPrefix(line, "//")

		if optionalNext {
			optionalNext = false
			if line == "" || isComment {
				return nil, fmt.Errorf("line %d: %w", i+1, ErrDanglingOptional)
			}
			line += OptionalMarker
		}

		if line != "" && !isComment {
			if exportMacro != "" {
				line = strings.TrimSpace(strings.ReplaceAll(line, exportMacro, ""))
			}
			decls = append(decls, line)
			continue
		}

		if !isComment {
			continue
		}

		switch {
		case strings.Contains(line, directiveIgnore):
			ignoreNext = true
		case strings.Contains(line, directiveOptional):
			optionalNext = true
		}
	}

	return decls, nil
}
