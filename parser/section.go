// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package parser

import "strings"

// Section is the part of a class body that subsequent lines belong to.
type Section int

const (
	SectionNone Section = iota
	SectionProperties
	SectionSlots
	SectionSignals
)

var sectionKeywords = []struct {
	keyword string
	section Section
}{
	{"Properties", SectionProperties},
	{"Slots", SectionSlots},
	{"Signals", SectionSignals},
}

func (s Section) String() string {
	switch s {
	case SectionProperties:
		return "properties"
	case SectionSlots:
		return "slots"
	case SectionSignals:
		return "signals"
	default:
		return "none"
	}
}

// sectionFor reports which section keyword, if any, the left-stripped line
// starts with.
func sectionFor(line string) (Section, bool) {
	trimmed := strings.TrimLeft(line, " \t")
	for _, k := range sectionKeywords {
		if strings.HasPrefix(trimmed, k.keyword) {
			return k.section, true
		}
	}
	return SectionNone, false
}
