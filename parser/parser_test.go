package parser_test

import (
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EsotericSoftware/spine-cpp-lite-codegen/parser"
)

func TestExtractSection(t *testing.T) {
	t.Parallel()

	content := "head\n// @start: enums\nbody\n// @end: enums\ntail"

	section, err := parser.ExtractSection(content, "enums")
	require.NoError(t, err)
	assert.Equal(t, "\nbody\n", section)
}

func TestExtractSectionMissingMarkers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		marker  string
	}{
		{name: "missing start", content: "// @end: enums", marker: "// @start: enums"},
		{name: "missing end", content: "// @start: enums\nbody", marker: "// @end: enums"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := parser.ExtractSection(tt.content, "enums")
			require.ErrorIs(t, err, parser.ErrMissingMarker)
			assert.Contains(t, err.Error(), tt.marker)
		})
	}
}

func TestExtractSectionEndAlias(t *testing.T) {
	t.Parallel()

	content := "// @start: opaque_types\nSPINE_OPAQUE_TYPE(spine_bone)\n// @end: paque_types\n"

	section, err := parser.ExtractSection(content, "opaque_types", "paque_types")
	require.NoError(t, err)
	assert.Equal(t, "\nSPINE_OPAQUE_TYPE(spine_bone)\n", section)
}

func TestExtractSectionPrefersCanonicalEnd(t *testing.T) {
	t.Parallel()

	content := "// @start: opaque_types\na\n// @end: opaque_types\nb\n// @end: paque_types\n"

	section, err := parser.ExtractSection(content, "opaque_types", "paque_types")
	require.NoError(t, err)
	assert.Equal(t, "\na\n", section)
}

func TestParseSignature(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		decl string
		want parser.Function
	}{
		{
			name: "no params",
			decl: "int32_t spine_major_version();",
			want: parser.Function{ReturnType: "int32_t", Name: "spine_major_version"},
		},
		{
			name: "void params",
			decl: "void spine_report_leaks(void);",
			want: parser.Function{ReturnType: "void", Name: "spine_report_leaks"},
		},
		{
			name: "pointer return",
			decl: "const utf8 *spine_skeleton_data_get_name(spine_skeleton_data data);",
			want: parser.Function{
				ReturnType: "const utf8 *",
				Name:       "spine_skeleton_data_get_name",
				Params:     []parser.Param{{Type: "spine_skeleton_data", Name: "data"}},
			},
		},
		{
			name: "opaque pointer return",
			decl: "spine_bone_data *spine_skin_get_bones(spine_skin skin);",
			want: parser.Function{
				ReturnType: "spine_bone_data *",
				Name:       "spine_skin_get_bones",
				Params:     []parser.Param{{Type: "spine_skin", Name: "skin"}},
			},
		},
		{
			name: "optional marker",
			decl: "spine_bone foo();?",
			want: parser.Function{ReturnType: "spine_bone", Name: "foo", ReturnsOptional: true},
		},
		{
			name: "rightmost split",
			decl: "void spine_skin_set(spine_skin skin, const utf8 * name, float x);",
			want: parser.Function{
				ReturnType: "void",
				Name:       "spine_skin_set",
				Params: []parser.Param{
					{Type: "spine_skin", Name: "skin"},
					{Type: "const utf8 *", Name: "name"},
					{Type: "float", Name: "x"},
				},
			},
		},
		{
			name: "double pointer",
			decl: "void spine_f(float **values, unsigned int count);",
			want: parser.Function{
				ReturnType: "void",
				Name:       "spine_f",
				Params: []parser.Param{
					{Type: "float **", Name: "values"},
					{Type: "unsigned int", Name: "count"},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := parser.ParseSignature(tt.decl)
			require.NoError(t, err)

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseSignature(%q) mismatch (-want +got):\n%s", tt.decl, diff)
			}
		})
	}
}

func TestParseSignatureMalformed(t *testing.T) {
	t.Parallel()

	for _, decl := range []string{
		"#define FOO 1",
		"spine_bone_get_x;",
		"float spine_bone_get_x(spine_bone);",
	} {
		_, err := parser.ParseSignature(decl)
		require.ErrorIs(t, err, parser.ErrMalformedDeclaration, decl)

		var parseErr *parser.ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.Equal(t, decl, parseErr.Declaration)
		assert.Contains(t, err.Error(), decl)
	}
}

func TestParseOptionalDirective(t *testing.T) {
	t.Parallel()

	content := "// @start: opaque_types\n// @end: opaque_types\n" +
		"// @start: enums\n// @end: enums\n" +
		"// @start: function_declarations\n// @optional\nspine_bone foo();\n// @end: function_declarations\n"

	header, err := parser.Parse(content, parser.DefaultSyntax())
	require.NoError(t, err)
	require.Len(t, header.Functions, 1)

	fn := header.Functions[0]
	assert.True(t, fn.ReturnsOptional)
	assert.Equal(t, "spine_bone", fn.ReturnType)
	assert.Equal(t, "foo", fn.Name)
}

func TestParseSampleHeader(t *testing.T) {
	t.Parallel()

	data, err := os.ReadFile("../testdata/spine-cpp-lite-sample.h")
	require.NoError(t, err)

	header, err := parser.Parse(string(data), parser.DefaultSyntax())
	require.NoError(t, err)

	assert.Equal(t, []string{
		"spine_atlas", "spine_bone", "spine_bone_data", "spine_skin", "spine_color", "spine_event",
	}, header.OpaqueTypes)
	assert.Equal(t, []string{"spine_blend_mode", "spine_inherit"}, header.Enums)
	require.Len(t, header.Functions, 24)

	for _, fn := range header.Functions {
		assert.NotEqual(t, "spine_bone_get_world_vertices", fn.Name, "ignored declaration was parsed")
	}

	first := header.Functions[0]
	assert.Equal(t, "spine_major_version", first.Name)
	assert.Equal(t, "int32_t", first.ReturnType)
}

func TestParseReportsOffendingDeclaration(t *testing.T) {
	t.Parallel()

	content := "// @start: opaque_types\n// @end: opaque_types\n" +
		"// @start: enums\n// @end: enums\n" +
		"// @start: function_declarations\nfloat spine_ok(spine_bone bone);\nthis is not C\n// @end: function_declarations\n"

	_, err := parser.Parse(content, parser.DefaultSyntax())
	require.ErrorIs(t, err, parser.ErrMalformedDeclaration)
	assert.Contains(t, err.Error(), "this is not C")
}

func TestParseMissingSection(t *testing.T) {
	t.Parallel()

	_, err := parser.Parse("// @start: opaque_types\n// @end: opaque_types\n", parser.DefaultSyntax())
	require.ErrorIs(t, err, parser.ErrMissingMarker)
	assert.Contains(t, err.Error(), "enums")
}

func TestReadHeaderStripsBOM(t *testing.T) {
	t.Parallel()

	content, err := parser.ReadHeader(strings.NewReader("\ufeff// @start: enums\r\n// @end: enums\r\n"))
	require.NoError(t, err)
	assert.Equal(t, "// @start: enums\n// @end: enums\n", content)
}

func TestParseOpaqueTypesMatchesMacroName(t *testing.T) {
	t.Parallel()

	content := "// @start: opaque_types\n" +
		"SPINE_OPAQUE_TYPE(spine_bone)\n" +
		"MY_SPINE_OPAQUE_TYPE(spine_fake)\n" +
		"OTHER_MACRO(spine_other)\n" +
		"SPINE_OPAQUE_TYPE (spine_skin)\n" +
		"// @end: opaque_types\n" +
		"// @start: enums\n// @end: enums\n" +
		"// @start: function_declarations\n// @end: function_declarations\n"

	header, err := parser.Parse(content, parser.DefaultSyntax())
	require.NoError(t, err)
	assert.Equal(t, []string{"spine_bone", "spine_skin"}, header.OpaqueTypes)

	syntax := parser.DefaultSyntax()
	syntax.OpaqueMacro = "OTHER_MACRO"

	header, err = parser.Parse(content, syntax)
	require.NoError(t, err)
	assert.Equal(t, []string{"spine_other"}, header.OpaqueTypes)
}
