package generator

// Document is the Swift file before formatting.
type Document struct {
	Imports []string
	Aliases []Alias
	Classes []Class
}

// Alias maps a C enum onto a Swift name.
type Alias struct {
	Name   string
	Target string
}

// Class wraps one opaque handle.
type Class struct {
	Name       string
	ObjcName   string
	Handle     string
	HandleType string
	Disposable bool
	Members    []Member
}

// Member is either a *Property or a *Method.
type Member interface {
	member()
}

// Property is a computed property. Setter is nil for read-only properties.
type Property struct {
	Name   string
	Type   string
	Getter []Line
	Setter []Line
}

// Method is a public func. ReturnType is empty for Void.
type Method struct {
	Name        string
	Params      []Param
	ReturnType  string
	Discardable bool
	Body        []Line
}

type Param struct {
	Name string
	Type string
}

// Line is one statement, Depth levels below the enclosing block.
type Line struct {
	Depth int
	Text  string
}

func (*Property) member() {}
func (*Method) member()   {}

// ReadOnly reports whether the property has no setter.
func (p *Property) ReadOnly() bool { return p.Setter == nil }
