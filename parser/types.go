package parser

// Param is one function parameter as written in the header.
type Param struct {
	Type string
	Name string
}

// Function is a parsed lite-API prototype. Type tokens are kept verbatim
// ("const utf8 *", "spine_bone", "spine_bone_data *").
type Function struct {
	ReturnType      string
	Name            string
	Params          []Param
	ReturnsOptional bool
}

type Header struct {
	OpaqueTypes []string
	Enums       []string
	Functions   []Function
}

// Syntax names the markers, macros and section ids of the header format.
type Syntax struct {
	OpaqueTypesSection    string
	OpaqueTypesEndAliases []string
	EnumsSection          string
	FunctionsSection      string
	OpaqueMacro           string
	ExportMacro           string
}

func DefaultSyntax() Syntax {
	return Syntax{
		OpaqueTypesSection:    "opaque_types",
		OpaqueTypesEndAliases: []string{"paque_types"},
		EnumsSection:          "enums",
		FunctionsSection:      "function_declarations",
		OpaqueMacro:           "SPINE_OPAQUE_TYPE",
		ExportMacro:           "SPINE_CPP_LITE_EXPORT",
	}
}
