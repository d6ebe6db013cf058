// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package substitute renders text templates with ${NAME} placeholders.
//
// Each [Template] declares the closed set of fields it accepts. Rendering
// never fails:
//   - a declared field missing from the values renders as the empty string,
//   - a placeholder that is not declared is left as literal ${NAME} text,
//   - values that are not declared fields are ignored.
package substitute

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
)

var placeholder = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// Values maps field names to their substituted text.
type Values map[string]string

// Template is a parsed template with a declared field set.
type Template struct {
	name   string
	text   string
	fields map[string]bool
}

// New creates a template. Fields lists every placeholder the template is
// allowed to fill.
func New(name, text string, fields ...string) *Template {
	t := &Template{
		name:   name,
		text:   text,
		fields: make(map[string]bool, len(fields)),
	}
	for _, f := range fields {
		t.fields[f] = true
	}
	return t
}

// Name returns the template name.
func (t *Template) Name() string {
	return t.name
}

// Fields returns the declared field names, sorted.
func (t *Template) Fields() []string {
	out := make([]string, 0, len(t.fields))
	for f := range t.fields {
		out = append(out, f)
	}
	slices.Sort(out)
	return out
}

// Render substitutes values into the template.
func (t *Template) Render(values Values) string {
	return placeholder.ReplaceAllStringFunc(t.text, func(match string) string {
		field := match[2 : len(match)-1]
		if !t.fields[field] {
			return match
		}
		return values[field]
	})
}

// RenderTo appends the rendered template to b.
func (t *Template) RenderTo(b *strings.Builder, values Values) {
	b.WriteString(t.Render(values))
}

// Undeclared returns placeholders that appear in the text but are not
// declared fields. Generators use it in tests to catch template typos.
func (t *Template) Undeclared() []string {
	var out []string
	for _, m := range placeholder.FindAllStringSubmatch(t.text, -1) {
		if !t.fields[m[1]] && !slices.Contains(out, m[1]) {
			out = append(out, m[1])
		}
	}
	return out
}

// String implements fmt.Stringer.
func (t *Template) String() string {
	return fmt.Sprintf("template %q (%d fields)", t.name, len(t.fields))
}
