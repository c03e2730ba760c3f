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
	"strings"

	"golang.org/x/text/unicode/bidi"
)

// Hebrew block
const (
	hebrewFirst = '\u0590'
	hebrewLast  = '\u05FF'
)

const (
	europeanSeparators = "-+/*^%"
	commonSeparators   = ",.:"
)

// classRule is a single entry of the classification table. The first rule
// whose match function returns true determines the bidi class of a rune.
type classRule struct {
	name  string
	match func(r rune, upperIsRTL bool) bool
	class bidi.Class
}

// classRules partially implements Bidirectional Character Types.
// Swapping in real Unicode properties means replacing this table; the
// resolving passes only ever see the classes.
var classRules = []classRule{
	{"latin-lower", func(r rune, _ bool) bool { return isLatinLower(r) }, bidi.L},
	{"latin-upper-rtl", func(r rune, upperIsRTL bool) bool { return upperIsRTL && isLatinUpper(r) }, bidi.R},
	{"latin-upper", func(r rune, _ bool) bool { return isLatinUpper(r) }, bidi.L},
	{"hebrew", func(r rune, _ bool) bool { return hebrewFirst <= r && r <= hebrewLast }, bidi.R},
	{"digit", func(r rune, _ bool) bool { return '0' <= r && r <= '9' }, bidi.EN},
	{"european-separator", func(r rune, _ bool) bool { return strings.ContainsRune(europeanSeparators, r) }, bidi.ES},
	{"common-separator", func(r rune, _ bool) bool { return strings.ContainsRune(commonSeparators, r) }, bidi.CS},
	{"space", func(r rune, _ bool) bool { return r == ' ' }, bidi.WS},
}

func isLatinLower(r rune) bool {
	return 'a' <= r && r <= 'z'
}

func isLatinUpper(r rune) bool {
	return 'A' <= r && r <= 'Z'
}

// Classify returns the bidi class of r. It will be one of L, R, EN, ES, CS,
// WS or ON, where ON is returned for every rune not covered by the built-in
// table.
//
// Set upperIsRTL to true to treat upper case Latin letters as strong
// right-to-left characters, which is handy for writing test strings.
func Classify(r rune, upperIsRTL bool) bidi.Class {
	for _, rule := range classRules {
		if rule.match(r, upperIsRTL) {
			return rule.class
		}
	}
	return bidi.ON
}

func classifyText(text []rune, upperIsRTL bool) []bidi.Class {
	types := make([]bidi.Class, len(text))
	for i, r := range text {
		types[i] = Classify(r, upperIsRTL)
	}
	return types
}

var bidiClassNames = map[bidi.Class]string{
	bidi.L:  "L",
	bidi.R:  "R",
	bidi.EN: "EN",
	bidi.ES: "ES",
	bidi.CS: "CS",
	bidi.WS: "WS",
	bidi.ON: "ON",
}

// ClassString returns the short UAX#9 name of a bidi class, e.g. "EN".
func ClassString(c bidi.Class) string {
	if name, ok := bidiClassNames[c]; ok {
		return name
	}
	return "?"
}
