// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package libkis generates C++ class skeletons for a Qt object library.
//
// For every class two files are produced:
//   - a header declaring the class with a Q_PROPERTY line and a getter/setter
//     pair per property, one declaration per slot and one per signal,
//   - a source file with the constructor and an empty body for every getter,
//     setter and slot.
//
// Type expressions are opaque: they are copied into the templates without
// any validation.
package libkis

import (
	"strings"

	"github.com/albertocavalcante/stubgen/generator"
	"github.com/albertocavalcante/stubgen/internal/naming"
	"github.com/albertocavalcante/stubgen/internal/substitute"
	"github.com/albertocavalcante/stubgen/model"
)

// Codegen renders one class.
type Codegen struct {
	class  *model.Class
	config generator.Config
}

// Output contains the generated header and source.
type Output struct {
	Header []byte
	Source []byte
}

// New creates a new libkis Codegen.
func New(c *model.Class, cfg generator.Config) *Codegen {
	return &Codegen{class: c, config: cfg}
}

// Generate renders the header and source files.
func (g *Codegen) Generate() *Output {
	values := g.classValues()

	var (
		properties     strings.Builder
		accessorDecls  strings.Builder
		accessorBodies strings.Builder
		slotDecls      strings.Builder
		slotBodies     strings.Builder
		signalDecls    strings.Builder
	)

	for _, p := range g.class.Properties {
		pv := g.propertyValues(p)
		propertyDeclaration.RenderTo(&properties, pv)

		getterDeclaration.RenderTo(&accessorDecls, pv)
		setterDeclaration.RenderTo(&accessorDecls, pv)
		accessorDecls.WriteString("\n")

		getterDefinition.RenderTo(&accessorBodies, pv)
		setterDefinition.RenderTo(&accessorBodies, pv)
		accessorBodies.WriteString("\n")
	}

	for _, s := range g.class.Slots {
		sv := substitute.Values{
			fieldType:      s.Type,
			fieldSlot:      s.Signature,
			fieldClassName: g.class.Name,
		}
		slotDeclaration.RenderTo(&slotDecls, sv)
		slotDecls.WriteString("\n")
		slotDefinition.RenderTo(&slotBodies, sv)
	}

	for _, sig := range g.class.Signals {
		signalDeclaration.RenderTo(&signalDecls, substitute.Values{fieldSignal: sig})
	}

	values[fieldProperties] = properties.String()
	values[fieldAccessorDecls] = accessorDecls.String()
	values[fieldAccessorBodies] = accessorBodies.String()
	values[fieldSlotDecls] = slotDecls.String()
	values[fieldSlotBodies] = slotBodies.String()
	values[fieldSignalDecls] = signalDecls.String()

	return &Output{
		Header: []byte(header.Render(values)),
		Source: []byte(source.Render(values)),
	}
}

// classValues returns the fields shared by the header and source templates.
func (g *Codegen) classValues() substitute.Values {
	cfg := g.config
	return substitute.Values{
		fieldClassName:   g.class.Name,
		fieldHeaderGuard: naming.HeaderGuard(g.class.Name),
		fieldHeaderFile:  cfg.FileName(g.class.Name, generator.OptionHeaderExt),
		fieldLicense:     license.Render(substitute.Values{fieldCopyright: cfg.Value(generator.OptionCopyright)}),
		fieldGuardPrefix: cfg.Value(generator.OptionGuardPrefix),
		fieldExportMacro: cfg.Value(generator.OptionExportMacro),
		fieldExportHdr:   cfg.Value(generator.OptionExportHeader),
		fieldLibraryHdr:  cfg.Value(generator.OptionLibraryHeader),
		fieldBaseClass:   cfg.Value(generator.OptionBaseClass),
	}
}

func (g *Codegen) propertyValues(p model.Property) substitute.Values {
	return substitute.Values{
		fieldType:      p.Type,
		fieldProperty:  p.Name,
		fieldGetter:    p.Getter(),
		fieldSetter:    p.Setter(),
		fieldClassName: g.class.Name,
	}
}
