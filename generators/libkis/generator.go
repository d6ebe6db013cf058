// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package libkis

import (
	"context"

	"github.com/albertocavalcante/stubgen/generator"
	"github.com/albertocavalcante/stubgen/model"
)

// Generator implements [generator.Generator] for the header and source files.
type Generator struct{}

// NewGenerator creates a new libkis generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Metadata returns information about this generator.
func (g *Generator) Metadata() generator.Metadata {
	return generator.Metadata{
		Name:           "libkis",
		Version:        "1.0.0",
		Description:    "Generate Qt C++ header and source skeletons",
		FileExtensions: []string{".h", ".cpp"},
	}
}

// Generate produces the header and source files for one class.
func (g *Generator) Generate(ctx context.Context, c *model.Class, cfg generator.Config) (*generator.Output, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := New(c, cfg).Generate()

	result := generator.NewOutput()
	result.Add(generator.Library, cfg.FileName(c.Name, generator.OptionHeaderExt), out.Header)
	result.Add(generator.Library, cfg.FileName(c.Name, generator.OptionSourceExt), out.Source)
	return result, nil
}
