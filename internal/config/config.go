// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package config loads the optional stubgen.yml configuration file.
//
// Every field is optional; unset fields take the libkis defaults from
// [generator.DefaultOptions]. String values may reference environment
// variables with {{ env.NAME }}, and alternatives are tried left to right:
//
//	copyright: "{{ env.STUBGEN_COPYRIGHT || 2026 Example Authors }}"
package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/albertocavalcante/stubgen/generator"
	"github.com/albertocavalcante/stubgen/internal/naming"
	"github.com/bsthun/gut"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the configuration file looked up in the working directory.
const DefaultFile = "stubgen.yml"

// Config is the stubgen.yml document.
type Config struct {
	// Generators selects and orders the generators to run.
	Generators []string `yaml:"generators,omitempty"`

	Copyright     *string `yaml:"copyright,omitempty"`
	GuardPrefix   *string `yaml:"guard_prefix,omitempty"`
	ExportMacro   *string `yaml:"export_macro,omitempty"`
	ExportHeader  *string `yaml:"export_header,omitempty"`
	LibraryHeader *string `yaml:"library_header,omitempty"`
	BaseClass     *string `yaml:"base_class,omitempty"`

	// BindingImports lists the modules imported by every binding stub.
	BindingImports []string `yaml:"binding_imports,omitempty"`

	Extensions *Extensions `yaml:"extensions,omitempty"`
}

// Extensions holds output file extensions without the leading dot.
type Extensions struct {
	Header  *string `yaml:"header,omitempty"`
	Source  *string `yaml:"source,omitempty"`
	Binding *string `yaml:"binding,omitempty"`
}

// Default returns a configuration with every field set to its default.
func Default() *Config {
	c := new(Config)
	c.Revise()
	return c
}

// Load reads and revises the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read configuration file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a configuration document.
func Parse(data []byte) (*Config, error) {
	c := new(Config)
	if err := yaml.Unmarshal(Template(data), c); err != nil {
		return nil, fmt.Errorf("unable to parse configuration file: %w", err)
	}
	c.Revise()
	return c, nil
}

// Revise fills unset fields with defaults.
func (c *Config) Revise() {
	if len(c.Generators) == 0 {
		c.Generators = append([]string(nil), generator.DefaultGenerators...)
	}
	reviseString(&c.Copyright, generator.OptionCopyright)
	reviseString(&c.GuardPrefix, generator.OptionGuardPrefix)
	reviseString(&c.ExportMacro, generator.OptionExportMacro)
	reviseString(&c.ExportHeader, generator.OptionExportHeader)
	reviseString(&c.LibraryHeader, generator.OptionLibraryHeader)
	reviseString(&c.BaseClass, generator.OptionBaseClass)
	if c.BindingImports == nil {
		c.BindingImports = naming.SplitList(generator.DefaultOptions[generator.OptionBindingImports])
	}

	if c.Extensions == nil {
		c.Extensions = new(Extensions)
	}
	reviseString(&c.Extensions.Header, generator.OptionHeaderExt)
	reviseString(&c.Extensions.Source, generator.OptionSourceExt)
	reviseString(&c.Extensions.Binding, generator.OptionBindingExt)
}

func reviseString(field **string, key string) {
	if *field == nil {
		*field = gut.Ptr(generator.DefaultOptions[key])
		return
	}
	**field = strings.TrimSpace(**field)
}

// Options converts the configuration into generator options. Extensions
// are accepted with or without the leading dot.
func (c *Config) Options() map[string]string {
	c.Revise()
	return map[string]string{
		generator.OptionCopyright:      *c.Copyright,
		generator.OptionGuardPrefix:    *c.GuardPrefix,
		generator.OptionExportMacro:    *c.ExportMacro,
		generator.OptionExportHeader:   *c.ExportHeader,
		generator.OptionLibraryHeader:  *c.LibraryHeader,
		generator.OptionBaseClass:      *c.BaseClass,
		generator.OptionBindingImports: strings.Join(c.BindingImports, ","),
		generator.OptionHeaderExt:      strings.TrimPrefix(*c.Extensions.Header, "."),
		generator.OptionSourceExt:      strings.TrimPrefix(*c.Extensions.Source, "."),
		generator.OptionBindingExt:     strings.TrimPrefix(*c.Extensions.Binding, "."),
	}
}

// Marshal encodes the configuration, e.g. to write a starter file.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("unable to encode configuration: %w", err)
	}
	return data, nil
}

var templateRegex = regexp.MustCompile(`\{\{\s*([^}]+)\s*}}`)

// Template expands {{ ... }} expressions. Alternatives separated by "||" are
// tried in order: env.NAME yields the variable when it is set and non-empty,
// any other alternative is used literally. No match expands to nothing.
func Template(data []byte) []byte {
	return templateRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		content := strings.TrimSpace(string(match[2 : len(match)-2]))

		for part := range strings.SplitSeq(content, "||") {
			part = strings.TrimSpace(part)
			if name, ok := strings.CutPrefix(part, "env."); ok {
				if value := os.Getenv(name); value != "" {
					return []byte(value)
				}
				continue
			}
			if part != "" {
				return []byte(part)
			}
		}
		return nil
	})
}
