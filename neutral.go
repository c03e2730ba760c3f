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

func isNeutral(c bidi.Class) bool {
	return c == bidi.WS || c == bidi.ON
}

// European numbers act as if they were R in terms of their influence on
// neutrals.
func neutralContext(c bidi.Class) bidi.Class {
	if c == bidi.EN {
		return bidi.R
	}
	return c
}

// resolveNeutralTypes implements N1 and N2 on a copy of types, which must
// be the output of resolveWeakTypes. The result contains only L, R and EN.
//
// N1 works left to right in place: the left neighbour of a neutral is the
// already resolved one, so a run of neutrals resolves as a block.
//
// See: http://unicode.org/reports/tr9/#Resolving_Neutral_Types
func resolveNeutralTypes(types []bidi.Class, base, eor bidi.Class) []bidi.Class {
	chars := make([]bidi.Class, len(types))
	copy(chars, types)

	// N1. A sequence of neutrals takes the direction of the surrounding
	// strong text if the text on both sides has the same direction.
	// The end of the line counts as eor.
	for i := 1; i < len(chars)-1; i++ {
		if !isNeutral(chars[i]) {
			continue
		}
		prev := neutralContext(chars[i-1])
		next := eor
		for j := i + 1; j < len(chars); j++ {
			if !isNeutral(chars[j]) {
				next = chars[j]
				break
			}
		}
		next = neutralContext(next)

		if prev == bidi.R && next == bidi.R {
			chars[i] = bidi.R
		} else if prev == bidi.L && next == bidi.L {
			chars[i] = bidi.L
		}
	}

	// N2. Any remaining neutrals take the embedding direction.
	for i, t := range chars {
		if isNeutral(t) {
			chars[i] = base
		}
	}

	return chars
}
