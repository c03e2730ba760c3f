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
	"testing"

	"github.com/stretchr/testify/assert"
)

func levelsFrom(s string) []Level {
	levels := make([]Level, len(s))
	for i, c := range s {
		levels[i] = Level(c - '0')
	}
	return levels
}

func TestApplyMirroring(t *testing.T) {
	testCases := []struct {
		chars, levels, want string
	}{
		{"(a)<b>", "000000", "(a)<b>"},
		{"(a)<b>", "111111", ")a(>b<"},
		{"(a)<b>", "222222", ")a(>b<"},
		{"(a)", "010", "(a)"},
		{"[a]{b}", "111111", "[a]{b}"},
	}

	for _, tc := range testCases {
		chars := []rune(tc.chars)
		got := applyMirroring(chars, levelsFrom(tc.levels))
		assert.Equal(t, tc.want, string(got), "mirroring %q at %s", tc.chars, tc.levels)
		assert.Equal(t, tc.chars, string(chars), "input modified")
	}
}

func TestReorderResolvedLevels(t *testing.T) {
	testCases := []struct {
		chars, levels, want string
	}{
		{"", "", ""},
		{"abc", "000", "abc"},
		{"abc", "111", "cba"},
		{"abc", "222", "abc"},
		{"ab12", "1122", "12ba"},
		{"a12 b", "02201", "a12 b"},
		{"AB 12 CD", "11122111", "DC 12 BA"},
		// a sign at the start of the line or after a space moves with its
		// number
		{"-2 X", "1211", "X -2"},
		{"A -2", "1112", "-2 A"},
		// but not after anything else
		{"A-2", "112", "2-A"},
		// and only if it is at level 1
		{"-2", "02", "-2"},
		// and only in front of a number
		{"A -b", "1112", "b- A"},
		{"-ab X", "1221", "X ab-"},
		{"A +b2", "11122", "b2+ A"},
	}

	for _, tc := range testCases {
		got := reorderResolvedLevels([]rune(tc.chars), levelsFrom(tc.levels))
		assert.Equal(t, tc.want, string(got), "reordering %q at %s", tc.chars, tc.levels)
	}
}

func TestMirroringIsNotReversed(t *testing.T) {
	// brackets at a non-zero level are swapped exactly once
	for _, tc := range []testCase{
		{"A (B) C", "C (B) A"},
		{"(12)", "(12)"},
		{"x<y AND Z>w", "x<y Z DNA>w"},
	} {
		assert.Equal(t, tc.want, Resolve(tc.input, true), "Resolve(%q)", tc.input)
	}
}
