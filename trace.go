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
	"strings"

	"golang.org/x/text/unicode/bidi"
)

// Trace records the arrays produced by each step of a single display call.
// All slices have the same length as Text.
type Trace struct {
	Text         []rune
	BaseDir      bidi.Class
	EndOfRunDir  bidi.Class
	Classified   []bidi.Class
	AfterWeak    []bidi.Class
	AfterNeutral []bidi.Class
	Levels       []Level
	Result       string
}

// Rows returns the trace as labelled rows with one cell per character, for
// rendering as a table.
func (t *Trace) Rows() [][]string {
	text := make([]string, len(t.Text))
	for i, r := range t.Text {
		text[i] = string(r)
	}
	levels := make([]string, len(t.Levels))
	for i, l := range t.Levels {
		levels[i] = l.String()
	}
	return [][]string{
		append([]string{"text"}, text...),
		append([]string{"classes"}, classNames(t.Classified)...),
		append([]string{"weak"}, classNames(t.AfterWeak)...),
		append([]string{"neutral"}, classNames(t.AfterNeutral)...),
		append([]string{"levels"}, levels...),
	}
}

func classNames(types []bidi.Class) []string {
	names := make([]string, len(types))
	for i, c := range types {
		names[i] = ClassString(c)
	}
	return names
}

func (t *Trace) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "base %s, eor %s\n", ClassString(t.BaseDir), ClassString(t.EndOfRunDir))
	for _, row := range t.Rows() {
		fmt.Fprintf(&b, "%-8s:", row[0])
		for _, cell := range row[1:] {
			fmt.Fprintf(&b, " %-2s", cell)
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "result  : %s\n", t.Result)
	return b.String()
}
