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

/*
Package bidi implements a small subset of the Unicode Bidirectional
Algorithm (UAX#9) for single lines of text.

It is meant for short inputs like test strings and command line arguments,
not for document layout. Supported are

  - three levels of nesting (0, 1 and 2),
  - the bidi classes of Latin and Hebrew letters, ASCII digits and a few
    separators,
  - mirroring of the brackets ( ) and < >.

Explicit embeddings, overrides and isolates are not recognized, and
character classes are taken from a tiny built-in table instead of the
Unicode character database.

A line passes through five steps: classification, resolving of weak types,
resolving of neutral types, resolving of implicit levels and reordering of
the resolved levels. For testing, UPPERCASE Latin letters may be treated as
right-to-left characters:

	visual := bidi.Resolve("car is THE CAR in arabic", true)
	// visual == "car is RAC EHT in arabic"
*/
package bidi

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'bidi'.
func tracer() tracing.Trace {
	return tracing.Select("bidi")
}
