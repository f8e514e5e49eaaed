package generator

import (
	"fmt"
	"strings"

	"github.com/EsotericSoftware/spine-cpp-lite-codegen/model"
	"github.com/EsotericSoftware/spine-cpp-lite-codegen/parser"
)

const newValue = "newValue"

// optional reports whether fn's result may be absent: either the header
// marked it @optional or it is a lookup.
func optional(o *model.Object, fn parser.Function) bool {
	return fn.ReturnsOptional || strings.Contains(o.Unprefixed(fn.Name), "find_")
}

func isReceiver(o *model.Object, i int, p parser.Param) bool {
	return i == 0 && p.Type == o.Name
}

// resultType is the Swift type a getter or method exposes for fn.
func (g *Generator) resultType(o *model.Object, fn parser.Function) string {
	typ := g.swiftType(fn.ReturnType)

	if _, ok := model.CountFunction(o, fn); ok {
		typ = "[" + strings.TrimSuffix(typ, "?") + "]"
	}

	if optional(o, fn) {
		typ = optionalType(typ)
	}

	return typ
}

// params is the Swift parameter list of fn without the receiver.
func (g *Generator) params(o *model.Object, fn parser.Function) []Param {
	var params []Param

	for i, p := range fn.Params {
		if isReceiver(o, i, p) {
			continue
		}
		params = append(params, Param{Name: paramName(p.Name), Type: g.swiftType(p.Type)})
	}

	return params
}

// call renders the native call of fn. The receiver is passed as the handle
// field, and in setter position the second argument is newValue.
func (g *Generator) call(o *model.Object, fn parser.Function, setter, optionalValue bool) string {
	args := make([]string, 0, len(fn.Params))

	for i, p := range fn.Params {
		if isReceiver(o, i, p) {
			args = append(args, g.opts.Handle)
			continue
		}

		name := paramName(p.Name)
		if setter && i == 1 {
			name = newValue
		}

		switch g.types.Kind(p.Type) {
		case model.KindObject:
			if setter && i == 1 && optionalValue {
				name += "?"
			}
			name += "." + g.opts.Handle
		case model.KindBool:
			name += " ? -1 : 0"
		}

		args = append(args, name)
	}

	expr := fmt.Sprintf("%s(%s)", fn.Name, strings.Join(args, ", "))
	if g.types.Kind(fn.ReturnType) == model.KindBool {
		expr += " != 0"
	}

	return expr
}

// result converts the value of call into the Swift result of fn.
func (g *Generator) result(o *model.Object, fn parser.Function, call string) string {
	switch g.types.Kind(fn.ReturnType) {
	case model.KindObject:
		if optional(o, fn) {
			return call + ".flatMap { .init($0) }"
		}
		return ".init(" + call + ")"
	case model.KindText:
		return call + ".flatMap { String(cString: $0) }"
	case model.KindNumberPointer:
		return call + ".flatMap { $0.pointee }"
	default:
		return call
	}
}

// body is the statement list wrapping call for fn.
func (g *Generator) body(o *model.Object, fn parser.Function, call string) []Line {
	var lines []Line

	if strings.Contains(fn.Name, "dispose") {
		lines = append(lines,
			Line{Text: "if disposed { return }"},
			Line{Text: "disposed = true"},
		)
	}

	if count, ok := model.CountFunction(o, fn); ok {
		element := "ptr?[$0]"
		if g.types.Kind(fn.ReturnType) == model.KindObject {
			element += ".flatMap { .init($0) }"
		}

		return append(lines,
			Line{Text: fmt.Sprintf("let num = Int(%s(%s))", count, g.opts.Handle)},
			Line{Text: "let ptr = " + call},
			Line{Text: "return (0..<num).compactMap {"},
			Line{Depth: 1, Text: element},
			Line{Text: "}"},
		)
	}

	if g.types.Kind(fn.ReturnType) == model.KindVoid {
		return append(lines, Line{Text: call})
	}

	return append(lines, Line{Text: "return " + g.result(o, fn, call)})
}

func (g *Generator) getter(o *model.Object, fn parser.Function) *Property {
	return &Property{
		Name:   propertyName(o.Unprefixed(fn.Name)),
		Type:   g.resultType(o, fn),
		Getter: g.body(o, fn, g.call(o, fn, false, false)),
	}
}

func (g *Generator) property(o *model.Object, p model.Property) *Property {
	prop := g.getter(o, p.Getter)
	prop.Setter = []Line{{Text: g.call(o, p.Setter, true, optional(o, p.Getter))}}

	return prop
}

func (g *Generator) method(o *model.Object, fn parser.Function) *Method {
	m := &Method{
		Name:   methodName(o.Unprefixed(fn.Name)),
		Params: g.params(o, fn),
		Body:   g.body(o, fn, g.call(o, fn, false, false)),
	}

	if g.types.Kind(fn.ReturnType) != model.KindVoid {
		m.ReturnType = g.resultType(o, fn)
		m.Discardable = true
	}

	return m
}
