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

func isStrong(c bidi.Class) bool {
	return c == bidi.L || c == bidi.R
}

// baseDirection gets the paragraph direction from the first strong class.
// Returns L if there is none (P2, P3).
func baseDirection(types []bidi.Class) bidi.Class {
	for _, t := range types {
		if isStrong(t) {
			return t
		}
	}
	return bidi.L
}

// endOfRunDirection is the direction assumed after the last character of
// the line, i.e. the last strong class. Returns L if there is none.
func endOfRunDirection(types []bidi.Class) bidi.Class {
	for i := len(types) - 1; i >= 0; i-- {
		if isStrong(types[i]) {
			return types[i]
		}
	}
	return bidi.L
}

func directionToClass(dir bidi.Direction) bidi.Class {
	if dir == bidi.RightToLeft {
		return bidi.R
	}
	return bidi.L
}
