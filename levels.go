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
	"strconv"
	"strings"

	"golang.org/x/text/unicode/bidi"
)

// Level is a resolved embedding level. Only levels 0, 1 and 2 are produced.
type Level uint8

func (l Level) String() string {
	return strconv.Itoa(int(l))
}

// implicitLevels holds Table 5 of UAX#9, restricted to a paragraph level of
// 0 and to the classes left over after resolving neutrals. A base direction
// of R is not an odd paragraph level here: R stays at 1 and everything else
// goes to 2.
var implicitLevels = map[bidi.Class]map[bidi.Class]Level{
	bidi.L: {bidi.L: 0, bidi.R: 1, bidi.EN: 2},
	bidi.R: {bidi.L: 2, bidi.R: 1, bidi.EN: 2},
}

// resolveImplicitLevels maps resolved classes to levels (I1, I2). types
// must be the output of resolveNeutralTypes.
//
// See: http://unicode.org/reports/tr9/#Resolving_Implicit_Levels
func resolveImplicitLevels(types []bidi.Class, base bidi.Class) []Level {
	table := implicitLevels[base]
	levels := make([]Level, len(types))
	for i, t := range types {
		levels[i] = table[t]
	}
	return levels
}

func levelsString(levels []Level) string {
	var b strings.Builder
	for _, l := range levels {
		b.WriteString(l.String())
	}
	return b.String()
}
