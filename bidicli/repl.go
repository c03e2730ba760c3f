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
	"strings"

	"github.com/chzyer/readline"
	"github.com/pkg/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lutzky/minibidi"
)

func newReplCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Convert lines to visual order interactively.",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return usageErrorf("repl takes no arguments")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			repl, err := readline.New("bidi > ")
			if err != nil {
				return errors.Wrap(err, "starting line editor")
			}
			defer repl.Close()
			intp := &Intp{
				repl:       repl,
				upperIsRTL: v.GetBool(keyUpperIsRTL),
				debug:      v.GetBool(keyDebug),
			}
			pterm.Info.Println("Quit with <ctrl>D, :help lists commands")
			intp.REPL(cmd.OutOrStdout())
			return nil
		},
	}
}

// Intp is our interpreter object
type Intp struct {
	repl       *readline.Instance
	upperIsRTL bool
	debug      bool
}

func (intp *Intp) String() string {
	return fmt.Sprintf("( upper-is-rtl=%v debug=%v )", intp.upperIsRTL, intp.debug)
}

// REPL starts interactive mode.
func (intp *Intp) REPL(w io.Writer) {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if intp.execute(line, w) {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

// execute runs a single line of input and reports whether to stop.
func (intp *Intp) execute(line string, w io.Writer) (stop bool) {
	switch strings.TrimSpace(line) {
	case "":
		return false
	case ":quit":
		return true
	case ":rtl":
		intp.upperIsRTL = !intp.upperIsRTL
		fmt.Fprintln(w, intp.String())
		return false
	case ":debug":
		intp.debug = !intp.debug
		fmt.Fprintln(w, intp.String())
		return false
	case ":help":
		help(w)
		return false
	}
	tr := bidi.TraceDisplay(line, intp.upperIsRTL)
	tracer().Debugf("resolved %q to %q", line, tr.Result)
	if intp.debug {
		if err := printTrace(w, tr); err != nil {
			pterm.Error.Println(err)
		}
	}
	fmt.Fprintln(w, tr.Result)
	return false
}

func help(w io.Writer) {
	fmt.Fprint(w, `Any line is printed in visual order. Commands:
  :rtl     toggle upper case Latin letters as right-to-left
  :debug   toggle printing of intermediate results
  :help    show this text
  :quit    leave (or <ctrl>D)
`)
}
