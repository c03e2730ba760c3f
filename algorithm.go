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
	"fmt"
	"io"

	"golang.org/x/text/unicode/bidi"
)

// storage holds the state of a single call to getDisplay. Classes and
// levels live in separate arrays: types is nil after the implicit levels
// have been resolved, levels is nil before.
type storage struct {
	baseDir     bidi.Class
	eor         bidi.Class
	chars       []rune
	types       []bidi.Class
	levels      []Level
	debugWriter io.Writer
	trace       *Trace
}

type debugParams struct {
	baseInfo bool
}

func (s *storage) debug(step string, params debugParams) {
	w := s.debugWriter
	if w == nil {
		return
	}

	fmt.Fprintf(w, "in %s\n", step)

	if params.baseInfo {
		fmt.Fprintf(w, "  base dir    : %s\n", ClassString(s.baseDir))
		fmt.Fprintf(w, "  eor dir     : %s\n", ClassString(s.eor))
	}

	fmt.Fprintf(w, "  Chars       : %s\n", string(s.chars))

	if s.levels != nil {
		fmt.Fprintf(w, "  Res. levels : %s\n", levelsString(s.levels))
	}

	if s.types != nil {
		types := make([]string, len(s.types))
		for i, t := range s.types {
			types[i] = fmt.Sprintf("%-2s", ClassString(t))
		}
		for i := 0; i < 2; i++ {
			output := "               [%s]\n"
			if i == 0 {
				output = "  Res. types  :[%s]\n"
			}
			row := make([]byte, len(types))
			for j, t := range types {
				row[j] = t[i]
			}
			fmt.Fprintf(w, output, row)
		}
	}
	fmt.Fprintln(w)
}

// getEmbeddingLevels classifies text and finds the paragraph base
// direction and the direction at the end of the line. A baseDir of
// LeftToRight or RightToLeft overrides the detected base direction.
func (s *storage) getEmbeddingLevels(text []rune, upperIsRTL bool, baseDir bidi.Direction) {
	s.chars = text
	s.types = classifyText(text, upperIsRTL)
	switch baseDir {
	case bidi.LeftToRight, bidi.RightToLeft:
		s.baseDir = directionToClass(baseDir)
	default:
		s.baseDir = baseDirection(s.types)
	}
	s.eor = endOfRunDirection(s.types)
	tracer().Debugf("bidi base=%s, eor=%s for %d runes", ClassString(s.baseDir), ClassString(s.eor), len(text))

	s.trace.BaseDir = s.baseDir
	s.trace.EndOfRunDir = s.eor
	s.trace.Classified = s.types
	s.debug("getEmbeddingLevels", debugParams{baseInfo: true})
}

func (s *storage) resolveWeakTypes() {
	s.types = resolveWeakTypes(s.types, s.baseDir)
	s.trace.AfterWeak = s.types
	s.debug("resolveWeakTypes", debugParams{})
}

func (s *storage) resolveNeutralTypes() {
	s.types = resolveNeutralTypes(s.types, s.baseDir, s.eor)
	s.trace.AfterNeutral = s.types
	s.debug("resolveNeutralTypes", debugParams{})
}

// resolveImplicitLevels turns classes into levels. Classes are not needed
// afterwards.
func (s *storage) resolveImplicitLevels() {
	s.levels = resolveImplicitLevels(s.types, s.baseDir)
	s.types = nil
	s.trace.Levels = s.levels
	s.debug("resolveImplicitLevels", debugParams{})
}

func (s *storage) applyMirroring() {
	s.chars = applyMirroring(s.chars, s.levels)
	s.debug("applyMirroring", debugParams{})
}

func (s *storage) reorderResolvedLevels() {
	s.chars = reorderResolvedLevels(s.chars, s.levels)
	s.trace.Result = string(s.chars)
	s.debug("reorderResolvedLevels", debugParams{})
}

// getDisplay performs the logical-to-visual algorithm on str.
//
// If debug is not nil, the state after each step will be written to it.
func getDisplay(str string, upperIsRTL bool, baseDir bidi.Direction, debug io.Writer) *Trace {
	text := []rune(str)
	s := &storage{
		debugWriter: debug,
		trace:       &Trace{Text: text},
	}

	s.getEmbeddingLevels(text, upperIsRTL, baseDir)
	s.resolveWeakTypes()
	s.resolveNeutralTypes()
	s.resolveImplicitLevels()
	s.applyMirroring()
	s.reorderResolvedLevels()

	return s.trace
}
