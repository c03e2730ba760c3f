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

package main

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/pterm/pterm"

	"github.com/lutzky/minibidi"
)

// printTrace writes the intermediate results of a display call as a table
// with one column per character.
func printTrace(w io.Writer, tr *bidi.Trace) error {
	fmt.Fprintf(w, "base direction %s, end of run %s\n",
		bidi.ClassString(tr.BaseDir), bidi.ClassString(tr.EndOfRunDir))
	if len(tr.Text) == 0 {
		return nil
	}
	table, err := pterm.DefaultTable.WithData(tr.Rows()).Srender()
	if err != nil {
		return errors.Wrap(err, "rendering trace")
	}
	fmt.Fprintln(w, table)
	return nil
}

func printBatteryResults(w io.Writer, results []batteryResult) error {
	data := [][]string{
		{"Input", "Visual", "Expected", "Status"},
	}
	for _, r := range results {
		status := "ok"
		if !r.ok() {
			status = "FAIL"
		}
		data = append(data, []string{r.input, r.got, r.want, status})
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return errors.Wrap(err, "rendering battery results")
	}
	fmt.Fprintln(w, table)
	return nil
}
