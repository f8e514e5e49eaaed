// Package generator turns a parsed lite header into Swift bindings.
package generator

import (
	"log/slog"

	"github.com/EsotericSoftware/spine-cpp-lite-codegen/model"
	"github.com/EsotericSoftware/spine-cpp-lite-codegen/parser"
)

// Options controls the shape of the emitted Swift.
type Options struct {
	Imports          []string
	Handle           string
	TypePrefix       string
	Indent           int
	SkipEmptyClasses bool
}

func DefaultOptions() Options {
	return Options{
		Imports:    []string{"Foundation", "SpineCppLite"},
		Handle:     "wrappee",
		TypePrefix: "spine_",
		Indent:     4,
	}
}

type Generator struct {
	header *parser.Header
	types  *model.Types
	opts   Options
	logger *slog.Logger
	warned map[string]bool
}

func New(header *parser.Header, opts Options, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Generator{
		header: header,
		types:  model.NewTypes(header, opts.TypePrefix),
		opts:   opts,
		logger: logger,
		warned: make(map[string]bool),
	}
}

// Synthesize groups the header's functions into objects. Functions no
// opaque type claims are not emitted.
func (g *Generator) Synthesize() []*model.Object {
	objects, leftover := model.Synthesize(g.header.OpaqueTypes, g.header.Functions)

	for _, fn := range leftover {
		g.logger.Warn("function not claimed by any opaque type", "function", fn.Name)
	}

	return objects
}

// Build assembles the document for objects, in the order given.
func (g *Generator) Build(objects []*model.Object) *Document {
	doc := &Document{Imports: g.opts.Imports}

	for _, enum := range g.header.Enums {
		doc.Aliases = append(doc.Aliases, Alias{Name: g.typeName(enum), Target: enum})
	}

	for _, o := range objects {
		if len(o.Functions) == 0 && g.opts.SkipEmptyClasses {
			g.logger.Debug("skipping empty class", "type", o.Name)
			continue
		}
		doc.Classes = append(doc.Classes, g.class(o))
	}

	return doc
}

func (g *Generator) class(o *model.Object) Class {
	members := model.Classify(o)

	for _, name := range members.Demoted {
		g.logger.Debug("setter has no getter, emitting method", "function", name)
	}

	c := Class{
		Name:       g.typeName(o.Name),
		ObjcName:   g.objcName(o.Name),
		Handle:     g.opts.Handle,
		HandleType: o.Name,
		Disposable: o.Disposable(),
	}

	for _, fn := range members.Getters {
		c.Members = append(c.Members, g.getter(o, fn))
	}
	for _, p := range members.Properties {
		c.Members = append(c.Members, g.property(o, p))
	}
	for _, fn := range members.Methods {
		c.Members = append(c.Members, g.method(o, fn))
	}

	return c
}

// Generate runs synthesis, build and render in one go.
func (g *Generator) Generate() (string, error) {
	return Render(g.Build(g.Synthesize()), g.opts.Indent)
}
