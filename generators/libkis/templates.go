// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package libkis

import (
	"strings"

	"github.com/albertocavalcante/stubgen/internal/substitute"
	"github.com/lithammer/dedent"
)

// Template fields.
const (
	fieldType        = "TYPE"
	fieldProperty    = "PROPERTY"
	fieldGetter      = "GETTER"
	fieldSetter      = "SETTER"
	fieldSlot        = "SLOT"
	fieldSignal      = "SIGNAL"
	fieldClassName   = "CLASSNAME"
	fieldHeaderGuard = "HEADER_GUARD"
	fieldHeaderFile  = "HEADER_FILE"
	fieldLicense     = "LICENSE"
	fieldCopyright   = "COPYRIGHT"
	fieldGuardPrefix = "GUARD_PREFIX"
	fieldExportMacro = "EXPORT_MACRO"
	fieldExportHdr   = "EXPORT_HEADER"
	fieldLibraryHdr  = "LIBRARY_HEADER"
	fieldBaseClass   = "BASE_CLASS"

	fieldProperties     = "PROPERTIES"
	fieldAccessorDecls  = "GETTER_SETTER_DECLARATIONS"
	fieldSlotDecls      = "SLOT_DECLARATIONS"
	fieldSignalDecls    = "SIGNAL_DECLARATIONS"
	fieldSlotBodies     = "SLOTS"
	fieldAccessorBodies = "GETTER_SETTERS"
)

// text strips the source indentation and the leading newline of a template
// literal.
func text(s string) string {
	return strings.TrimPrefix(dedent.Dedent(s), "\n")
}

var (
	propertyDeclaration = substitute.New("property declaration",
		"    Q_PROPERTY(${TYPE} ${PROPERTY} READ ${GETTER} WRITE ${SETTER})\n",
		fieldType, fieldProperty, fieldGetter, fieldSetter)

	getterDeclaration = substitute.New("getter declaration",
		"    ${TYPE} ${GETTER}() const;\n",
		fieldType, fieldGetter)

	setterDeclaration = substitute.New("setter declaration",
		"    void ${SETTER}(${TYPE} value);\n",
		fieldType, fieldSetter)

	slotDeclaration = substitute.New("slot declaration",
		"    ${TYPE} ${SLOT};\n",
		fieldType, fieldSlot)

	signalDeclaration = substitute.New("signal declaration",
		"    void ${SIGNAL};\n",
		fieldSignal)

	getterDefinition = substitute.New("getter definition", text(`
	${TYPE} ${CLASSNAME}::${GETTER}() const
	{
	}

	`), fieldType, fieldClassName, fieldGetter)

	setterDefinition = substitute.New("setter definition", text(`
	void ${CLASSNAME}::${SETTER}(${TYPE} value)
	{
	}

	`), fieldType, fieldClassName, fieldSetter)

	slotDefinition = substitute.New("slot definition", text(`
	${TYPE} ${CLASSNAME}::${SLOT}
	{
	}

	`), fieldType, fieldClassName, fieldSlot)

	license = substitute.New("license", text(`
	/*
	 *  Copyright (c) ${COPYRIGHT}
	 *
	 *  This program is free software; you can redistribute it and/or modify
	 *  it under the terms of the GNU Lesser General Public License as published by
	 *  the Free Software Foundation; either version 2 of the License, or
	 *  (at your option) any later version.
	 *
	 *  This program is distributed in the hope that it will be useful,
	 *  but WITHOUT ANY WARRANTY; without even the implied warranty of
	 *  MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
	 *  GNU General Public License for more details.
	 *
	 *  You should have received a copy of the GNU Lesser General Public License
	 *  along with this program; if not, write to the Free Software
	 *  Foundation, Inc., 51 Franklin Street, Fifth Floor, Boston, MA 02110-1301, USA.
	 */
	`), fieldCopyright)

	header = substitute.New("header", text(`
	${LICENSE}#ifndef ${GUARD_PREFIX}${HEADER_GUARD}_H
	#define ${GUARD_PREFIX}${HEADER_GUARD}_H

	#include <${BASE_CLASS}>
	#include "${EXPORT_HEADER}"
	#include "${LIBRARY_HEADER}"

	/**
	 * ${CLASSNAME}
	 */
	class ${EXPORT_MACRO} ${CLASSNAME} : public ${BASE_CLASS}
	{
	    Q_OBJECT

	${PROPERTIES}
	public:
	    explicit ${CLASSNAME}(${BASE_CLASS} *parent = 0);

	${GETTER_SETTER_DECLARATIONS}

	public Q_SLOTS:

	${SLOT_DECLARATIONS}

	public Q_SIGNALS:

	${SIGNAL_DECLARATIONS}


	};

	#endif // ${GUARD_PREFIX}${HEADER_GUARD}_H
	`),
		fieldLicense, fieldGuardPrefix, fieldHeaderGuard, fieldBaseClass, fieldExportHdr,
		fieldLibraryHdr, fieldExportMacro, fieldClassName, fieldProperties,
		fieldAccessorDecls, fieldSlotDecls, fieldSignalDecls)

	source = substitute.New("source", text(`
	${LICENSE}#include "${HEADER_FILE}"

	${CLASSNAME}::${CLASSNAME}(${BASE_CLASS} *parent)
	    : ${BASE_CLASS}(parent)
	{
	}

	${SLOTS}

	${GETTER_SETTERS}
	`),
		fieldLicense, fieldHeaderFile, fieldClassName, fieldBaseClass,
		fieldSlotBodies, fieldAccessorBodies)
)

// templates lists every template for consistency checks.
var templates = []*substitute.Template{
	propertyDeclaration, getterDeclaration, setterDeclaration, slotDeclaration,
	signalDeclaration, getterDefinition, setterDefinition, slotDefinition,
	license, header, source,
}
