// Package report renders diagnostic views of a synthesized header: a YAML
// dump of the object model, a per-class statistics table, and a line diff
// between a stale and a fresh output.
package report

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"

	"github.com/EsotericSoftware/spine-cpp-lite-codegen/model"
	"github.com/EsotericSoftware/spine-cpp-lite-codegen/parser"
)

const yamlIndent = 2

// Model is the dumpable view of one header.
type Model struct {
	Enums    []string `yaml:"enums"`
	Objects  []Object `yaml:"objects"`
	Leftover []string `yaml:"leftover,omitempty"`
}

type Object struct {
	Name       string     `yaml:"name"`
	Disposable bool       `yaml:"disposable,omitempty"`
	Functions  []string   `yaml:"functions,omitempty"`
	Getters    []string   `yaml:"getters,omitempty"`
	Properties []Property `yaml:"properties,omitempty"`
	Methods    []string   `yaml:"methods,omitempty"`
	Demoted    []string   `yaml:"demoted,omitempty"`
	Counts     []string   `yaml:"counts,omitempty"`
}

type Property struct {
	Getter string `yaml:"getter"`
	Setter string `yaml:"setter"`
}

// NewModel classifies every object and collects the result.
func NewModel(enums []string, objects []*model.Object, leftover []parser.Function) Model {
	m := Model{Enums: enums}

	for _, o := range objects {
		members := model.Classify(o)

		obj := Object{
			Name:       o.Name,
			Disposable: o.Disposable(),
			Functions:  o.Names(),
			Getters:    functionNames(members.Getters),
			Methods:    functionNames(members.Methods),
			Demoted:    members.Demoted,
			Counts:     members.Counts,
		}
		for _, p := range members.Properties {
			obj.Properties = append(obj.Properties, Property{Getter: p.Getter.Name, Setter: p.Setter.Name})
		}

		m.Objects = append(m.Objects, obj)
	}

	m.Leftover = functionNames(leftover)

	return m
}

// DumpModel writes m as YAML.
func DumpModel(w io.Writer, m Model) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(yamlIndent)

	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("encoding model: %w", err)
	}

	return enc.Close()
}

// Stats writes one table row per object with its member counts.
func Stats(w io.Writer, m Model) error {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"Class", "Getters", "Properties", "Methods", "Demoted", "Arrays", "Dispose"})

	var getters, properties, methods int

	for _, o := range m.Objects {
		dispose := ""
		if o.Disposable {
			dispose = "yes"
		}

		tbl.AppendRow(table.Row{
			o.Name, len(o.Getters), len(o.Properties), len(o.Methods), len(o.Demoted), len(o.Counts), dispose,
		})

		getters += len(o.Getters)
		properties += len(o.Properties)
		methods += len(o.Methods)
	}

	tbl.AppendFooter(table.Row{
		fmt.Sprintf("%d classes", len(m.Objects)), getters, properties, methods, "", "",
		fmt.Sprintf("%d leftover", len(m.Leftover)),
	})

	_, err := fmt.Fprintln(w, tbl.Render())

	return err
}

func functionNames(fns []parser.Function) []string {
	if len(fns) == 0 {
		return nil
	}

	names := make([]string, 0, len(fns))
	for _, fn := range fns {
		names = append(names, fn.Name)
	}

	return names
}
