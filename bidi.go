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
	"io"

	"golang.org/x/text/unicode/bidi"
)

// Displayer holds the options for converting a logical line to visual
// order.
type Displayer struct {
	// UpperIsRTL treats upper case Latin letters as right-to-left
	// characters.
	UpperIsRTL bool

	// BaseDir forces the paragraph direction if set to bidi.LeftToRight or
	// bidi.RightToLeft. bidi.Neutral detects it from the text. Note that
	// the zero value is bidi.LeftToRight.
	BaseDir bidi.Direction

	// Debug receives a dump of the state after each step, if not nil.
	Debug io.Writer
}

// Display returns str in visual order.
func (d Displayer) Display(str string) string {
	return getDisplay(str, d.UpperIsRTL, d.BaseDir, d.Debug).Result
}

// Trace returns the intermediate results of displaying str.
func (d Displayer) Trace(str string) *Trace {
	return getDisplay(str, d.UpperIsRTL, d.BaseDir, d.Debug)
}

// Display returns str in visual order using the default options.
func Display(str string) string {
	return Displayer{
		BaseDir: bidi.Neutral,
	}.Display(str)
}

// Resolve returns text in visual order. See Displayer.UpperIsRTL for
// upperIsRTL.
func Resolve(text string, upperIsRTL bool) string {
	return Displayer{UpperIsRTL: upperIsRTL, BaseDir: bidi.Neutral}.Display(text)
}

// TraceDisplay resolves text like Resolve and returns every intermediate
// array along with the result.
func TraceDisplay(text string, upperIsRTL bool) *Trace {
	return Displayer{UpperIsRTL: upperIsRTL, BaseDir: bidi.Neutral}.Trace(text)
}
