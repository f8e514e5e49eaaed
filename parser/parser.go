package parser

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var enumRe = regexp.MustCompile(`typedef\s+enum\s+(\w+)\s*\{`)

// macroCallRe matches any single-argument macro invocation; callers filter
// on the macro name.
var macroCallRe = regexp.MustCompile(`(\w+)\s*\(([^)]+)\)`)

// The return type is matched lazily so that the pointer marker in front of
// the function name stays attached to the type.
var signatureRe = regexp.MustCompile(`^(\S.+?\s*\*?\s*)(\w+)\s*\((.*)\)$`)

// ReadHeader reads header text, dropping a leading UTF-8 BOM and
// normalizing line endings.
func ReadHeader(r io.Reader) (string, error) {
	tr := unicode.BOMOverride(unicode.UTF8.NewDecoder())

	data, err := io.ReadAll(transform.NewReader(r, tr))
	if err != nil {
		return "", err
	}

	return normalizeLineEndings(string(data)), nil
}

func Parse(content string, syntax Syntax) (*Header, error) {
	content = normalizeLineEndings(content)

	header := &Header{}

	typesSection, err := ExtractSection(content, syntax.OpaqueTypesSection, syntax.OpaqueTypesEndAliases...)
	if err != nil {
		return nil, err
	}
	header.OpaqueTypes = parseOpaqueTypes(typesSection, syntax.OpaqueMacro)

	enumsSection, err := ExtractSection(content, syntax.EnumsSection)
	if err != nil {
		return nil, err
	}
	header.Enums = parseEnums(enumsSection)

	funcsSection, err := ExtractSection(content, syntax.FunctionsSection)
	if err != nil {
		return nil, err
	}

	decls, err := NormalizeDeclarations(funcsSection, syntax.ExportMacro)
	if err != nil {
		return nil, fmt.Errorf("%s section: %w", syntax.FunctionsSection, err)
	}

	for _, decl := range decls {
		fn, err := ParseSignature(decl)
		if err != nil {
			return nil, err
		}
		header.Functions = append(header.Functions, fn)
	}

	return header, nil
}

func normalizeLineEndings(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	return s
}

func startMarker(id string) string { return "// @start: " + id }
func endMarker(id string) string   { return "// @end: " + id }

// ExtractSection returns the text strictly between the start and end markers
// of section id. Markers are matched literally. endAliases are tried, in
// order, when the canonical end marker is absent.
func ExtractSection(content, id string, endAliases ...string) (string, error) {
	start := startMarker(id)

	i := strings.Index(content, start)
	if i < 0 {
		return "", fmt.Errorf("%w: %q", ErrMissingMarker, start)
	}
	body := content[i+len(start):]

	for _, endID := range append([]string{id}, endAliases...) {
		if j := strings.Index(body, endMarker(endID)); j >= 0 {
			return body[:j], nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrMissingMarker, endMarker(id))
}

func parseOpaqueTypes(section, macro string) []string {
	var types []string
	for _, m := range macroCallRe.FindAllStringSubmatch(section, -1) {
		if m[1] != macro {
			continue
		}
		if name := strings.TrimSpace(m[2]); name != "" {
			types = append(types, name)
		}
	}

	return types
}

func parseEnums(section string) []string {
	var enums []string
	for _, m := range enumRe.FindAllStringSubmatch(section, -1) {
		enums = append(enums, m[1])
	}

	return enums
}

// ParseSignature parses one normalized declaration, optionally carrying the
// trailing OptionalMarker, into a Function.
func ParseSignature(decl string) (Function, error) {
	optional := strings.HasSuffix(decl, OptionalMarker)

	text := strings.TrimSpace(strings.TrimSuffix(decl, OptionalMarker))
	text = strings.TrimSpace(strings.TrimRight(text, ";"))

	m := signatureRe.FindStringSubmatch(text)
	if m == nil {
		return Function{}, &ParseError{Declaration: decl, Msg: "expected <type> <name>(<params>)"}
	}

	params, err := parseParams(m[3])
	if err != nil {
		return Function{}, &ParseError{Declaration: decl, Msg: err.Error()}
	}

	return Function{
		ReturnType:      strings.TrimSpace(m[1]),
		Name:            m[2],
		Params:          params,
		ReturnsOptional: optional,
	}, nil
}

func parseParams(paramsStr string) ([]Param, error) {
	paramsStr = strings.TrimSpace(paramsStr)
	if paramsStr == "" || paramsStr == "void" {
		return nil, nil
	}

	var params []Param

	for _, part := range strings.Split(paramsStr, ",") {
		part = strings.TrimSpace(part)

		var typ, name string
		if i := strings.LastIndex(part, "*"); i >= 0 {
			typ, name = part[:i+1], part[i+1:]
		} else if i := strings.LastIndex(part, " "); i >= 0 {
			typ, name = part[:i], part[i+1:]
		} else {
			return nil, fmt.Errorf("parameter %q has no name", part)
		}

		typ, name = strings.TrimSpace(typ), strings.TrimSpace(name)
		if typ == "" || name == "" {
			return nil, fmt.Errorf("parameter %q has no name", part)
		}

		params = append(params, Param{Type: typ, Name: name})
	}

	return params, nil
}
