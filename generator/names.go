package generator

import (
	"strings"

	"github.com/iancoleman/strcase"

	"github.com/EsotericSoftware/spine-cpp-lite-codegen/model"
)

var swiftTypes = map[string]string{
	"void *":       "UnsafeMutableRawPointer",
	"const utf8 *": "String?",
	"utf8 *":       "String?",
	"uint64_t":     "UInt64",
	"float *":      "Float?",
	"float":        "Float",
	"int32_t":      "Int32",
	"int32_t *":    "Int32?",
	"uint16_t *":   "UInt16",
}

// swiftType maps a C type token onto the Swift type used in signatures.
// Tokens outside the fixed table fall back to the title-cased name without
// the type prefix; a fallback for a token the header never declares is
// logged once.
func (g *Generator) swiftType(token string) string {
	switch g.types.Kind(token) {
	case model.KindVoid:
		return "Void"
	case model.KindBool:
		return "Bool"
	}

	if t, ok := swiftTypes[token]; ok {
		return t
	}

	if !g.types.Known(token) && !g.warned[token] {
		g.warned[token] = true
		g.logger.Warn("unmapped type, using name fallback", "token", token)
	}

	return g.typeName(model.Base(token))
}

// typeName strips the type prefix and title-cases: spine_bone_data -> BoneData.
func (g *Generator) typeName(name string) string {
	if g.opts.TypePrefix != "" {
		name = strings.ReplaceAll(name, g.opts.TypePrefix, "")
	}

	return strcase.ToCamel(name)
}

// objcName is the Objective-C runtime name: spine_bone -> SpineBone.
func (g *Generator) objcName(name string) string {
	return strcase.ToCamel(strings.TrimSuffix(g.opts.TypePrefix, "_")) + g.typeName(name)
}

func propertyName(unprefixed string) string {
	return strcase.ToLowerCamel(strings.TrimPrefix(unprefixed, "get_"))
}

func methodName(unprefixed string) string {
	return strcase.ToLowerCamel(unprefixed)
}

func paramName(name string) string {
	return strcase.ToLowerCamel(name)
}

func optionalType(typ string) string {
	if strings.HasSuffix(typ, "?") {
		return typ
	}

	return typ + "?"
}
