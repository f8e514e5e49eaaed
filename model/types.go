// Package model groups parsed lite-API functions into objects and decides
// the role each function plays on its object.
package model

import (
	"strings"

	"github.com/EsotericSoftware/spine-cpp-lite-codegen/parser"
)

// Kind classifies a C type token.
type Kind int

const (
	KindUnknown Kind = iota
	KindVoid
	KindBool
	KindEnum
	KindObject
	KindText
	KindNumberPointer
	KindPrimitive
)

func (k Kind) String() string {
	switch k {
	case KindVoid:
		return "void"
	case KindBool:
		return "bool"
	case KindEnum:
		return "enum"
	case KindObject:
		return "object"
	case KindText:
		return "text"
	case KindNumberPointer:
		return "number-pointer"
	case KindPrimitive:
		return "primitive"
	default:
		return "unknown"
	}
}

var textTypes = map[string]bool{
	"const utf8 *": true,
	"utf8 *":       true,
}

var numberPointerTypes = map[string]bool{
	"int32_t *": true,
	"float *":   true,
}

var primitiveTypes = map[string]bool{
	"void *":     true,
	"uint64_t":   true,
	"float":      true,
	"int32_t":    true,
	"uint16_t *": true,
}

// Types knows the opaque and enum names of one header and classifies type
// tokens against them.
type Types struct {
	prefix   string
	boolType string
	opaque   map[string]bool
	enums    map[string]bool
}

// NewTypes builds the classifier for header. Tokens starting with prefix
// (e.g. "spine_") are treated as opaque object handles unless they name
// an enum or the prefix's bool type.
func NewTypes(header *parser.Header, prefix string) *Types {
	t := &Types{
		prefix:   prefix,
		boolType: prefix + "bool",
		opaque:   make(map[string]bool, len(header.OpaqueTypes)),
		enums:    make(map[string]bool, len(header.Enums)),
	}
	for _, name := range header.OpaqueTypes {
		t.opaque[name] = true
	}
	for _, name := range header.Enums {
		t.enums[name] = true
	}

	return t
}

func (t *Types) Kind(token string) Kind {
	switch {
	case token == "void":
		return KindVoid
	case token == t.boolType:
		return KindBool
	case t.enums[token]:
		return KindEnum
	case textTypes[token]:
		return KindText
	case numberPointerTypes[token]:
		return KindNumberPointer
	case t.prefix != "" && strings.HasPrefix(token, t.prefix):
		return KindObject
	case primitiveTypes[token]:
		return KindPrimitive
	default:
		return KindUnknown
	}
}

// Known reports whether token resolves to something declared in the header
// or to a mapped primitive. Object tokens only count when their base name
// is a declared opaque type.
func (t *Types) Known(token string) bool {
	switch t.Kind(token) {
	case KindUnknown:
		return false
	case KindObject:
		return t.opaque[Base(token)]
	default:
		return true
	}
}

// Base strips a trailing pointer marker: "spine_bone_data *" -> "spine_bone_data".
func Base(token string) string {
	return strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(token), "*"))
}
