package model

import (
	"cmp"
	"slices"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/EsotericSoftware/spine-cpp-lite-codegen/parser"
)

// Object is the synthesized class for one opaque type: every function whose
// name starts with the type name and was not claimed by a longer type.
type Object struct {
	Name      string
	Functions []parser.Function

	index *orderedmap.OrderedMap[string, parser.Function]
}

func NewObject(name string, functions []parser.Function) *Object {
	o := &Object{
		Name:      name,
		Functions: functions,
		index:     orderedmap.New[string, parser.Function](),
	}
	for _, fn := range functions {
		o.index.Set(fn.Name, fn)
	}

	return o
}

func (o *Object) Has(name string) bool {
	_, ok := o.index.Get(name)
	return ok
}

// Names returns the function names in header order.
func (o *Object) Names() []string {
	names := make([]string, 0, o.index.Len())
	for pair := o.index.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}

	return names
}

// Disposable reports whether any function of the object disposes it.
func (o *Object) Disposable() bool {
	for pair := o.index.Oldest(); pair != nil; pair = pair.Next() {
		if strings.Contains(pair.Key, "dispose") {
			return true
		}
	}

	return false
}

// Unprefixed strips "<object>_" from the front of name.
func (o *Object) Unprefixed(name string) string {
	return strings.TrimPrefix(name, o.Name+"_")
}

// Synthesize partitions functions across types. Types are visited longest
// name first so that "spine_bone_data" claims spine_bone_data_* before
// "spine_bone" gets a chance. Every function ends up in exactly one object
// or in leftover.
func Synthesize(types []string, functions []parser.Function) (objects []*Object, leftover []parser.Function) {
	sorted := slices.Clone(types)
	slices.SortStableFunc(sorted, func(a, b string) int {
		return cmp.Compare(len(b), len(a))
	})

	pool := slices.Clone(functions)

	for _, name := range sorted {
		var claimed []parser.Function
		claimed, pool = Claim(pool, name)
		objects = append(objects, NewObject(name, claimed))
	}

	return objects, pool
}

// Claim splits pool into the functions whose names start with prefix and
// the rest, both in pool order. len(pool) == len(claimed) + len(rest).
func Claim(pool []parser.Function, prefix string) (claimed, rest []parser.Function) {
	for _, fn := range pool {
		if strings.HasPrefix(fn.Name, prefix) {
			claimed = append(claimed, fn)
		} else {
			rest = append(rest, fn)
		}
	}

	return claimed, rest
}
