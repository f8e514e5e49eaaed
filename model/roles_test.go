package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EsotericSoftware/spine-cpp-lite-codegen/model"
	"github.com/EsotericSoftware/spine-cpp-lite-codegen/parser"
)

func TestClassifyPairsGetterAndSetter(t *testing.T) {
	t.Parallel()

	o := model.NewObject("spine_bone", []parser.Function{
		fn("spine_bone_get_x", "spine_bone"),
		fn("spine_bone_set_x", "spine_bone", "float"),
	})

	m := model.Classify(o)
	require.Len(t, m.Properties, 1)
	assert.Equal(t, "spine_bone_get_x", m.Properties[0].Getter.Name)
	assert.Equal(t, "spine_bone_set_x", m.Properties[0].Setter.Name)
	assert.Empty(t, m.Getters)
	assert.Empty(t, m.Methods)
}

func TestClassifyPairsIsGetter(t *testing.T) {
	t.Parallel()

	o := model.NewObject("spine_bone", []parser.Function{
		fn("spine_bone_is_active", "spine_bone"),
		fn("spine_bone_set_active", "spine_bone", "spine_bool"),
	})

	m := model.Classify(o)
	require.Len(t, m.Properties, 1)
	assert.Equal(t, "spine_bone_is_active", m.Properties[0].Getter.Name)
}

func TestClassifyDemotesUnpairedSetter(t *testing.T) {
	t.Parallel()

	o := model.NewObject("spine_bone", []parser.Function{
		fn("spine_bone_set_y", "spine_bone", "float"),
		fn("spine_bone_update", "spine_bone"),
		fn("spine_bone_get_x", "spine_bone"),
	})

	m := model.Classify(o)
	assert.Empty(t, m.Properties)
	assert.Equal(t, []string{"spine_bone_get_x"}, names(m.Getters))
	assert.Equal(t, []string{"spine_bone_update", "spine_bone_set_y"}, names(m.Methods))
	assert.Equal(t, []string{"spine_bone_set_y"}, m.Demoted)
}

func TestClassifyOrder(t *testing.T) {
	t.Parallel()

	o := model.NewObject("spine_bone", []parser.Function{
		fn("spine_bone_get_b", "spine_bone"),
		fn("spine_bone_get_a", "spine_bone"),
		fn("spine_bone_set_scale", "spine_bone", "float", "float"),
		fn("spine_bone_set_a", "spine_bone", "float"),
		fn("spine_bone_get_c", "spine_bone"),
		fn("spine_bone_set_b", "spine_bone", "float"),
	})

	m := model.Classify(o)
	assert.Equal(t, []string{"spine_bone_get_c"}, names(m.Getters))
	require.Len(t, m.Properties, 2)
	assert.Equal(t, "spine_bone_get_a", m.Properties[0].Getter.Name)
	assert.Equal(t, "spine_bone_get_b", m.Properties[1].Getter.Name)
	assert.Equal(t, []string{"spine_bone_set_scale"}, names(m.Methods))
}

func TestClassifyFoldsCountGetter(t *testing.T) {
	t.Parallel()

	o := model.NewObject("spine_skin", []parser.Function{
		fn("spine_skin_get_num_attachments", "spine_skin"),
		fn("spine_skin_get_attachments", "spine_skin"),
	})

	m := model.Classify(o)
	assert.Equal(t, []string{"spine_skin_get_attachments"}, names(m.Getters))
	assert.Equal(t, []string{"spine_skin_get_num_attachments"}, m.Counts)
	assert.Empty(t, m.Methods)

	count, ok := model.CountFunction(o, m.Getters[0])
	require.True(t, ok)
	assert.Equal(t, "spine_skin_get_num_attachments", count)
}

func TestClassifyCountWithoutArrayIsGetter(t *testing.T) {
	t.Parallel()

	o := model.NewObject("spine_skin_entries", []parser.Function{
		fn("spine_skin_entries_get_num_entries", "spine_skin_entries"),
		fn("spine_skin_entries_get_entry", "spine_skin_entries", "int32_t"),
	})

	m := model.Classify(o)
	assert.Equal(t, []string{"spine_skin_entries_get_num_entries"}, names(m.Getters))
	assert.Equal(t, []string{"spine_skin_entries_get_entry"}, names(m.Methods))
	assert.Empty(t, m.Counts)
}

func TestClassifyRole(t *testing.T) {
	t.Parallel()

	o := model.NewObject("spine_bone", []parser.Function{
		fn("spine_bone_get_num_children", "spine_bone"),
		fn("spine_bone_get_children", "spine_bone"),
	})

	tests := []struct {
		fn   parser.Function
		want model.Role
	}{
		{fn("spine_bone_get_num_children", "spine_bone"), model.RoleCountGetter},
		{fn("spine_bone_get_children", "spine_bone"), model.RoleGetter},
		{fn("spine_bone_is_active", "spine_bone"), model.RoleGetter},
		{fn("spine_bone_set_x", "spine_bone", "float"), model.RoleSetter},
		{fn("spine_bone_set_scale", "spine_bone", "float", "float"), model.RoleMethod},
		{fn("spine_bone_get_is_y_down"), model.RoleMethod},
		{fn("spine_bone_get_world", "spine_bone", "int32_t"), model.RoleMethod},
		{fn("spine_bone_update", "spine_bone"), model.RoleMethod},
		{fn("spine_bone_set_is_y_down", "spine_bool"), model.RoleMethod},
		{fn("spine_bone_get_world", "int32_t"), model.RoleMethod},
		{fn("spine_bone_set_parent", "spine_skin", "spine_bone"), model.RoleMethod},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, model.ClassifyRole(o, tt.fn), tt.fn.Name)
	}
}

func TestClassifyStaticFunctionsAreMethods(t *testing.T) {
	t.Parallel()

	o := model.NewObject("spine_bone", []parser.Function{
		fn("spine_bone_set_is_y_down", "spine_bool"),
		fn("spine_bone_get_is_y_down"),
	})

	m := model.Classify(o)
	assert.Empty(t, m.Getters)
	assert.Empty(t, m.Properties)
	assert.Empty(t, m.Demoted)
	assert.Equal(t, []string{"spine_bone_set_is_y_down", "spine_bone_get_is_y_down"}, names(m.Methods))
}
