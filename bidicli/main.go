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

// Command bidicli converts lines of bidirectional text to visual order.
//
// Usage:
//
//	bidicli [flags] TEXT    print TEXT in visual order
//	bidicli [flags]         run the self-test battery
//	bidicli repl            convert lines interactively
//
// Upper case Latin letters may be treated as right-to-left characters
// with -u, which makes for readable test strings. Text starting with a
// dash has to follow "--".
package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pkg/errors"
	"github.com/pterm/pterm"
)

// tracer traces with key 'bidi.cli'
func tracer() tracing.Trace {
	return tracing.Select("bidi.cli")
}

func main() {
	initDisplay()
	if err := newRootCommand().Execute(); err != nil {
		pterm.Error.Println(err)
		os.Exit(exitCode(err))
	}
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// usageError is returned for invalid arguments and flags. It makes the
// command exit with status 2.
type usageError struct {
	msg string
}

func (e usageError) Error() string {
	return e.msg
}

func usageErrorf(format string, args ...interface{}) error {
	return usageError{msg: fmt.Sprintf(format, args...)}
}

// errBatteryFailed is the cause of the error returned if a self-test case
// does not produce its expected output.
var errBatteryFailed = errors.New("self-test battery failed")

func exitCode(err error) int {
	var uerr usageError
	if errors.As(err, &uerr) {
		return 2
	}
	return 1
}

func checkTraceLevel(level string) error {
	switch level {
	case "Debug", "Info", "Error":
		return nil
	}
	return usageErrorf("invalid trace level: %s", level)
}

func setTraceLevel(t tracing.Trace, level string) {
	switch level {
	case "Debug":
		t.SetTraceLevel(tracing.LevelDebug)
	case "Info":
		t.SetTraceLevel(tracing.LevelInfo)
	default:
		t.SetTraceLevel(tracing.LevelError)
	}
}

// configureTracing routes the traces of the library and of the command to
// the Go standard logger.
func configureTracing(level string) error {
	if err := checkTraceLevel(level); err != nil {
		return err
	}
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
		"trace.bidi":      level,
		"trace.bidi.cli":  level,
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return errors.Wrap(err, "configuring tracing")
	}
	tracing.SetTraceSelector(trace2go.Selector())
	setTraceLevel(tracing.Select("bidi"), level)
	setTraceLevel(tracer(), level)
	tracer().Debugf("trace level is %s", level)
	return nil
}
