// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package sip generates SIP binding stubs.
//
// A stub exposes only the constructor of the class; the binding generator
// fills in the rest from the C++ header.
package sip

import (
	"context"
	"strings"

	"github.com/albertocavalcante/stubgen/generator"
	"github.com/albertocavalcante/stubgen/internal/naming"
	"github.com/albertocavalcante/stubgen/internal/substitute"
	"github.com/albertocavalcante/stubgen/model"
	"github.com/lithammer/dedent"
)

var importLine = substitute.New("import", "%Import ${MODULE}\n", "MODULE")

var stub = substitute.New("stub", strings.TrimPrefix(dedent.Dedent(`
	${IMPORTS}
	class ${CLASSNAME} : public ${BASE_CLASS}
	{
	%TypeHeaderCode
	#include "${HEADER_FILE}"
	%End

	public:
	    explicit ${CLASSNAME}(${BASE_CLASS} *parent  /TransferThis/ = 0);
	};
	`), "\n"), "IMPORTS", "CLASSNAME", "BASE_CLASS", "HEADER_FILE")

// Generator implements [generator.Generator] for SIP stubs.
type Generator struct{}

// NewGenerator creates a new SIP generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Metadata returns information about this generator.
func (g *Generator) Metadata() generator.Metadata {
	return generator.Metadata{
		Name:           "sip",
		Version:        "1.0.0",
		Description:    "Generate SIP binding stubs exposing the constructor",
		FileExtensions: []string{".sip"},
	}
}

// Generate produces the binding stub for one class.
func (g *Generator) Generate(ctx context.Context, c *model.Class, cfg generator.Config) (*generator.Output, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	content := Render(c, cfg)
	return generator.Single(generator.Binding, cfg.FileName(c.Name, generator.OptionBindingExt), content), nil
}

// Render returns the stub text for c.
func Render(c *model.Class, cfg generator.Config) []byte {
	var imports strings.Builder
	for _, module := range naming.SplitList(cfg.Value(generator.OptionBindingImports)) {
		importLine.RenderTo(&imports, substitute.Values{"MODULE": module})
	}

	return []byte(stub.Render(substitute.Values{
		"IMPORTS":     imports.String(),
		"CLASSNAME":   c.Name,
		"BASE_CLASS":  cfg.Value(generator.OptionBaseClass),
		"HEADER_FILE": cfg.FileName(c.Name, generator.OptionHeaderExt),
	}))
}
