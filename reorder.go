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

var mirrored = map[rune]rune{
	'(': ')',
	')': '(',
	'<': '>',
	'>': '<',
}

// applyMirroring applies L4 to a copy of chars: every bracket at a level
// other than 0 is replaced by its counterpart. Mirroring is defined on
// logical positions and has to happen before reordering.
//
// See: http://unicode.org/reports/tr9/#L4
func applyMirroring(chars []rune, levels []Level) []rune {
	out := make([]rune, len(chars))
	copy(out, chars)
	for i, r := range out {
		if levels[i] == 0 {
			continue
		}
		if m, ok := mirrored[r]; ok {
			out[i] = m
		}
	}
	return out
}

func reverse(x []rune) {
	for i := 0; i < len(x)/2; i++ {
		opp := len(x) - i - 1
		x[i], x[opp] = x[opp], x[i]
	}
}

func isNumberSign(r rune) bool {
	return r == '-' || r == '+'
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// signedStart extends a number run starting at start to the left by one
// position if it is preceded by a sign at level 1, and the sign starts the
// line or follows a space. A sign classifies as a separator and does not
// survive weak type resolution, but "-2" should still move as one block.
// Runs not starting with a digit are left alone.
func signedStart(chars []rune, levels []Level, start int) int {
	s := start - 1
	if s < 0 || !isDigit(chars[start]) || levels[s] != 1 || !isNumberSign(chars[s]) {
		return start
	}
	if s == 0 || chars[s-1] == ' ' {
		return s
	}
	return start
}

// reverseRuns reverses each maximal run of positions whose level satisfies
// inRun. chars is the logical line, out receives the reversals.
func reverseRuns(chars, out []rune, levels []Level, inRun func(Level) bool, signed bool) {
	for i := 0; i < len(levels); {
		if !inRun(levels[i]) {
			i++
			continue
		}
		start := i
		for i < len(levels) && inRun(levels[i]) {
			i++
		}
		if signed {
			start = signedStart(chars, levels, start)
		}
		tracer().Debugf("bidi reverse [%d…%d)", start, i)
		reverse(out[start:i])
	}
}

// reorderResolvedLevels implements L2 for levels 0 to 2 and returns the
// visual order of chars. From the highest level to the lowest odd level,
// reverse any contiguous sequence of characters at that level or higher:
// first runs of level 2, then runs of level 1 or 2. Levels stay in logical
// order, only characters move.
//
// See: http://unicode.org/reports/tr9/#L2
func reorderResolvedLevels(chars []rune, levels []Level) []rune {
	out := make([]rune, len(chars))
	copy(out, chars)
	reverseRuns(chars, out, levels, func(l Level) bool { return l == 2 }, true)
	reverseRuns(chars, out, levels, func(l Level) bool { return l >= 1 }, false)
	return out
}
