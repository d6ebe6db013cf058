// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package substitute

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTemplate_Render(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		fields []string
		values Values
		want   string
	}{
		{
			name:   "all fields present",
			text:   "${TYPE} ${GETTER}() const;",
			fields: []string{"TYPE", "GETTER"},
			values: Values{"TYPE": "int", "GETTER": "foo"},
			want:   "int foo() const;",
		},
		{
			name:   "declared field missing renders empty",
			text:   "[${TYPE}]",
			fields: []string{"TYPE"},
			values: Values{},
			want:   "[]",
		},
		{
			name:   "undeclared placeholder kept literal",
			text:   "${TYPE} ${OTHER}",
			fields: []string{"TYPE"},
			values: Values{"TYPE": "int", "OTHER": "ignored"},
			want:   "int ${OTHER}",
		},
		{
			name:   "repeated placeholder",
			text:   "${CLASSNAME}::${CLASSNAME}()",
			fields: []string{"CLASSNAME"},
			values: Values{"CLASSNAME": "Node"},
			want:   "Node::Node()",
		},
		{
			name:   "bare dollar untouched",
			text:   "$$$$$ END $$$$$ $TYPE",
			fields: []string{"TYPE"},
			values: Values{"TYPE": "int"},
			want:   "$$$$$ END $$$$$ $TYPE",
		},
		{
			name:   "value containing placeholder is not expanded",
			text:   "${A}",
			fields: []string{"A", "B"},
			values: Values{"A": "${B}", "B": "x"},
			want:   "${B}",
		},
		{
			name:   "nil values",
			text:   "a${X}b",
			fields: []string{"X"},
			want:   "ab",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl := New(tt.name, tt.text, tt.fields...)
			if got := tmpl.Render(tt.values); got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTemplate_RenderTo(t *testing.T) {
	tmpl := New("line", "${X}\n", "X")
	var b strings.Builder
	tmpl.RenderTo(&b, Values{"X": "one"})
	tmpl.RenderTo(&b, Values{"X": "two"})

	if got, want := b.String(), "one\ntwo\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestTemplate_Fields(t *testing.T) {
	tmpl := New("fields", "", "SETTER", "GETTER", "TYPE")
	want := []string{"GETTER", "SETTER", "TYPE"}
	if diff := cmp.Diff(want, tmpl.Fields()); diff != "" {
		t.Errorf("Fields() mismatch (-want +got):\n%s", diff)
	}
	if tmpl.Name() != "fields" {
		t.Errorf("Name() = %q, want %q", tmpl.Name(), "fields")
	}
}

func TestTemplate_Undeclared(t *testing.T) {
	tmpl := New("typo", "${TYPE} ${GETTR} ${GETTR} ${SETTER}", "TYPE", "SETTER")
	if diff := cmp.Diff([]string{"GETTR"}, tmpl.Undeclared()); diff != "" {
		t.Errorf("Undeclared() mismatch (-want +got):\n%s", diff)
	}
}
