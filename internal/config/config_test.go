// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/albertocavalcante/stubgen/generator"
	"github.com/google/go-cmp/cmp"
)

func TestDefault(t *testing.T) {
	got := Default().Options()
	if diff := cmp.Diff(generator.DefaultOptions, got); diff != "" {
		t.Errorf("default options mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"libkis", "sip"}, Default().Generators); diff != "" {
		t.Errorf("default generators mismatch (-want +got):\n%s", diff)
	}
}

func TestParse(t *testing.T) {
	data := []byte(`
generators: [sip]
export_macro: MYLIB_EXPORT
guard_prefix: ""
binding_imports:
  - QtCore/QtCoremod.sip
extensions:
  header: .hpp
`)
	c, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if diff := cmp.Diff([]string{"sip"}, c.Generators); diff != "" {
		t.Errorf("generators mismatch (-want +got):\n%s", diff)
	}

	opts := c.Options()
	want := map[string]string{
		generator.OptionExportMacro:    "MYLIB_EXPORT",
		generator.OptionGuardPrefix:    "",
		generator.OptionBindingImports: "QtCore/QtCoremod.sip",
		generator.OptionHeaderExt:      "hpp",
		generator.OptionSourceExt:      "cpp",
		generator.OptionBaseClass:      "QObject",
	}
	for key, value := range want {
		if opts[key] != value {
			t.Errorf("option %q = %q, want %q", key, opts[key], value)
		}
	}
}

func TestParse_Invalid(t *testing.T) {
	if _, err := Parse([]byte("generators: {not: [a list")); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestLoad(t *testing.T) {
	t.Run("reads file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), DefaultFile)
		if err := os.WriteFile(path, []byte("base_class: QQuickItem\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		c, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if *c.BaseClass != "QQuickItem" {
			t.Errorf("BaseClass = %q, want %q", *c.BaseClass, "QQuickItem")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), DefaultFile))
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Load() error = %v, want fs.ErrNotExist", err)
		}
	})
}

func TestMarshal_RoundTrip(t *testing.T) {
	data, err := Default().Marshal()
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	c, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if diff := cmp.Diff(Default().Options(), c.Options()); diff != "" {
		t.Errorf("options mismatch after round trip (-want +got):\n%s", diff)
	}
}

func TestTemplate(t *testing.T) {
	t.Setenv("STUBGEN_TEST_AUTHOR", "Jane Doe")
	t.Setenv("STUBGEN_TEST_EMPTY", "")

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "env", input: "copyright: {{ env.STUBGEN_TEST_AUTHOR }}", want: "copyright: Jane Doe"},
		{name: "fallback", input: "copyright: {{ env.STUBGEN_TEST_EMPTY || Someone }}", want: "copyright: Someone"},
		{name: "first set wins", input: "x: {{ env.STUBGEN_TEST_AUTHOR || Someone }}", want: "x: Jane Doe"},
		{name: "nothing set", input: "x: {{ env.STUBGEN_TEST_EMPTY }}", want: "x: "},
		{name: "no template", input: "x: plain", want: "x: plain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := string(Template([]byte(tt.input))); got != tt.want {
				t.Errorf("Template(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
