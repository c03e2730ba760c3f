// Copyright (C) 2008-2010 Yaacov Zamir <kzamir_a_walla.co.il>,
// Copyright (C) 2010-2015 Meir kriheli <mkriheli@gmail.com>,
// Copyright (C) 2019 Google LLC
//
// This library is free software; you can redistribute it and/or
// modify it under the terms of the GNU Lesser General Public
// License as published by the Free Software Foundation; either
// version 2.1 of the License, or (at your option) any later version.
//
// This library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the GNU
// Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public
// License along with this library; if not, write to the Free Software
// Foundation, Inc., 51 Franklin Street, Fifth Floor, Boston, MA 02110-1301, USA

package bidi

import (
	"golang.org/x/text/unicode/bidi"
)

func isSeparator(c bidi.Class) bool {
	return c == bidi.ES || c == bidi.CS
}

// resolveWeakTypes applies a subset of the weak type rules to a copy of
// types and returns it. Input classes are the ones produced by Classify;
// the result contains only L, R, EN, WS and ON.
//
// See: http://unicode.org/reports/tr9/#Resolving_Weak_Types
func resolveWeakTypes(types []bidi.Class, base bidi.Class) []bidi.Class {
	chars := make([]bidi.Class, len(types))
	copy(chars, types)

	// W4. A single separator between two European numbers changes to a
	// European number. Only interior positions have two neighbours.
	for i := 1; i < len(chars)-1; i++ {
		if isSeparator(chars[i]) && chars[i-1] == bidi.EN && chars[i+1] == bidi.EN {
			chars[i] = bidi.EN
		}
	}

	// W6. Otherwise, separators change to Other Neutral.
	for i, t := range chars {
		if isSeparator(t) {
			chars[i] = bidi.ON
		}
	}

	// W7. Search backward from each instance of a European number until the
	// first strong type (R, L, or base direction) is found. If an L is
	// found, then change the type of the European number to L.
	prevStrong := base
	for i, t := range chars {
		if isStrong(t) {
			prevStrong = t
		}
		if t == bidi.EN && prevStrong == bidi.L {
			chars[i] = bidi.L
		}
	}

	return chars
}
