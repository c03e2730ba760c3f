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
	"io"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/pkg/errors"

	"github.com/lutzky/minibidi"
)

type batteryCase struct {
	input, want string
}

type batteryResult struct {
	batteryCase
	got   string
	trace *bidi.Trace
}

func (r batteryResult) ok() bool {
	return r.got == r.want
}

// newBattery returns the self-test cases in the order they are run. Upper
// case Latin letters are right-to-left.
func newBattery() *arraylist.List {
	battery := arraylist.New()
	for _, c := range []batteryCase{
		{`car is THE CAR in arabic`, `car is RAC EHT in arabic`},
		{`CAR IS the car IN ENGLISH`, `HSILGNE NI the car SI RAC`},
		{`he said "IT IS 123, 456, OK"`, `he said "KO ,456 ,123 SI TI"`},
		{`he said "IT IS (123, 456), OK"`, `he said "KO ,(456 ,123) SI TI"`},
		{`he said "IT IS 123,456, OK"`, `he said "KO ,123,456 SI TI"`},
		{`he said "IT IS (123,456), OK"`, `he said "KO ,(123,456) SI TI"`},
		{`HE SAID "it is 123, 456, ok"`, `"it is 123, 456, ok" DIAS EH`},
		{`<H123>shalom</H123>`, `<123H/>shalom<123H>`},
		{`<h123>SAALAM</h123>`, `<h123>MALAAS</h123>`},
		{`HE SAID "it is a car!" AND RAN`, `NAR DNA "!it is a car" DIAS EH`},
		{`HE SAID "it is a car!x" AND RAN`, `NAR DNA "it is a car!x" DIAS EH`},
		{`-2 CELSIUS IS COLD`, `DLOC SI SUISLEC -2`},
		{`SOLVE 1*5 1-5 1/5 1+5`, `1+5 1/5 1-5 1*5 EVLOS`},
		{`THE RANGE IS 2.5..5`, `5..2.5 SI EGNAR EHT`},
		{"1 2 3 ניסיון", "ןויסינ 3 2 1"},
		{"1 2 3 123 ניסיון", "ןויסינ 123 3 2 1"},
	} {
		battery.Add(c)
	}
	return battery
}

// resolveBattery displays every case of battery and counts the failures.
func resolveBattery(battery *arraylist.List) (results []batteryResult, failed int) {
	results = make([]batteryResult, 0, battery.Size())
	it := battery.Iterator()
	for it.Next() {
		c := it.Value().(batteryCase)
		tr := bidi.TraceDisplay(c.input, true)
		r := batteryResult{batteryCase: c, got: tr.Result, trace: tr}
		if !r.ok() {
			tracer().Errorf("battery case %d: got %q, want %q", it.Index(), r.got, r.want)
			failed++
		}
		results = append(results, r)
	}
	return results, failed
}

func runBattery(w io.Writer, battery *arraylist.List, debug bool) error {
	results, failed := resolveBattery(battery)
	if debug {
		for _, r := range results {
			if err := printTrace(w, r.trace); err != nil {
				return err
			}
		}
	}
	if err := printBatteryResults(w, results); err != nil {
		return err
	}
	if failed > 0 {
		return errors.Wrapf(errBatteryFailed, "%d of %d cases", failed, len(results))
	}
	tracer().Infof("all %d battery cases passed", len(results))
	return nil
}
