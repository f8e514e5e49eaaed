package generator

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
)

const classTmpl = `@objc({{.ObjcName}})
@objcMembers
public final class {{.Name}}: NSObject {

{{.I}}internal let {{.Handle}}: {{.HandleType}}
{{if .Disposable}}{{.I}}internal var disposed = false
{{end}}
{{.I}}internal init(_ {{.Handle}}: {{.HandleType}}) {
{{.I}}{{.I}}self.{{.Handle}} = {{.Handle}}
{{.I}}{{.I}}super.init()
{{.I}}}

`

var classTemplate = template.Must(template.New("class").Parse(classTmpl))

type renderer struct {
	buf    bytes.Buffer
	indent string
}

// Render formats doc as Swift source using indent spaces per level.
func Render(doc *Document, indent int) (string, error) {
	r := &renderer{indent: strings.Repeat(" ", indent)}

	for _, imp := range doc.Imports {
		fmt.Fprintf(&r.buf, "import %s\n", imp)
	}
	r.buf.WriteString("\n")

	for _, a := range doc.Aliases {
		fmt.Fprintf(&r.buf, "public typealias %s = %s\n", a.Name, a.Target)
	}
	r.buf.WriteString("\n")

	for _, c := range doc.Classes {
		if err := r.class(c); err != nil {
			return "", fmt.Errorf("rendering class %s: %w", c.Name, err)
		}
	}

	return r.buf.String(), nil
}

func (r *renderer) class(c Class) error {
	err := classTemplate.Execute(&r.buf, struct {
		Class
		I string
	}{c, r.indent})
	if err != nil {
		return err
	}

	for _, m := range c.Members {
		switch m := m.(type) {
		case *Property:
			r.property(m)
		case *Method:
			r.method(m)
		default:
			return fmt.Errorf("unknown member %T", m)
		}
		r.buf.WriteString("\n")
	}

	r.buf.WriteString("}\n\n")

	return nil
}

func (r *renderer) line(depth int, text string) {
	fmt.Fprintf(&r.buf, "%s%s\n", strings.Repeat(r.indent, depth), text)
}

func (r *renderer) block(depth int, lines []Line) {
	for _, l := range lines {
		r.line(depth+l.Depth, l.Text)
	}
}

func (r *renderer) property(p *Property) {
	r.line(1, fmt.Sprintf("public var %s: %s {", p.Name, p.Type))

	if p.ReadOnly() {
		r.block(2, p.Getter)
	} else {
		r.line(2, "get {")
		r.block(3, p.Getter)
		r.line(2, "}")
		r.line(2, "set {")
		r.block(3, p.Setter)
		r.line(2, "}")
	}

	r.line(1, "}")
}

func (r *renderer) method(m *Method) {
	if m.Discardable {
		r.line(1, "@discardableResult")
	}

	params := make([]string, 0, len(m.Params))
	for _, p := range m.Params {
		params = append(params, p.Name+": "+p.Type)
	}

	sig := fmt.Sprintf("public func %s(%s)", m.Name, strings.Join(params, ", "))
	if m.ReturnType != "" {
		sig += " -> " + m.ReturnType
	}

	r.line(1, sig+" {")
	r.block(2, m.Body)
	r.line(1, "}")
}
