// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.

package model

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestProperty_Getter(t *testing.T) {
	tests := []struct {
		name     string
		property Property
		expected string
	}{
		{name: "capitalized", property: Property{Name: "Foo"}, expected: "foo"},
		{name: "camel case", property: Property{Name: "FileName"}, expected: "fileName"},
		{name: "already lowercase", property: Property{Name: "visible"}, expected: "visible"},
		{name: "all caps", property: Property{Name: "URL"}, expected: "uRL"},
		{name: "single char", property: Property{Name: "X"}, expected: "x"},
		{name: "non ascii", property: Property{Name: "Ärger"}, expected: "ärger"},
		{name: "empty", property: Property{Name: ""}, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.property.Getter(); got != tt.expected {
				t.Errorf("Getter() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestProperty_Setter(t *testing.T) {
	tests := []struct {
		name     string
		property Property
		expected string
	}{
		{name: "capitalized", property: Property{Name: "Foo"}, expected: "setFoo"},
		{name: "lowercase keeps case", property: Property{Name: "visible"}, expected: "setvisible"},
		{name: "all caps", property: Property{Name: "URL"}, expected: "setURL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.property.Setter(); got != tt.expected {
				t.Errorf("Setter() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestTable(t *testing.T) {
	t.Run("preserves first appearance order", func(t *testing.T) {
		table := NewTable()
		table.Add(&Class{Name: "Zebra"})
		table.Add(&Class{Name: "Alpha"})
		table.Add(&Class{Name: "Middle"})

		want := []string{"Zebra", "Alpha", "Middle"}
		if diff := cmp.Diff(want, table.Names()); diff != "" {
			t.Errorf("Names() mismatch (-want +got):\n%s", diff)
		}
		if table.Len() != 3 {
			t.Errorf("Len() = %d, want 3", table.Len())
		}
	})

	t.Run("redeclaration replaces in place", func(t *testing.T) {
		table := NewTable()
		table.Add(&Class{Name: "A", Signals: []string{"first()"}})
		table.Add(&Class{Name: "B"})
		table.Add(&Class{Name: "A", Signals: []string{"second()"}})

		if diff := cmp.Diff([]string{"A", "B"}, table.Names()); diff != "" {
			t.Errorf("Names() mismatch (-want +got):\n%s", diff)
		}
		got, ok := table.Get("A")
		if !ok {
			t.Fatal("expected to find class A")
		}
		if diff := cmp.Diff([]string{"second()"}, got.Signals); diff != "" {
			t.Errorf("Signals mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("classes follow names", func(t *testing.T) {
		table := NewTable()
		table.Add(&Class{Name: "One"})
		table.Add(&Class{Name: "Two"})

		classes := table.Classes()
		if len(classes) != 2 {
			t.Fatalf("got %d classes, want 2", len(classes))
		}
		if classes[0].Name != "One" || classes[1].Name != "Two" {
			t.Errorf("got [%s %s], want [One Two]", classes[0].Name, classes[1].Name)
		}
	})

	t.Run("names is a copy", func(t *testing.T) {
		table := NewTable()
		table.Add(&Class{Name: "One"})
		names := table.Names()
		names[0] = "Mutated"

		if _, ok := table.Get("One"); !ok {
			t.Error("table changed through Names() result")
		}
		if table.Names()[0] != "One" {
			t.Error("order changed through Names() result")
		}
	})

	t.Run("get missing", func(t *testing.T) {
		if _, ok := NewTable().Get("Missing"); ok {
			t.Error("expected not to find missing class")
		}
	})
}
