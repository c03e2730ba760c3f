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
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lutzky/minibidi"
)

// Configuration keys. Each one is a flag, an environment variable with
// prefix BIDI_ and a key in the config file.
const (
	keyUpperIsRTL = "upper-is-rtl"
	keyDebug      = "debug"
	keyTrace      = "trace"
	keyConfig     = "config"
)

func newRootCommand() *cobra.Command {
	v := viper.New()
	root := &cobra.Command{
		Use:   "bidicli [TEXT]",
		Short: "Convert a line of bidirectional text to visual order.",
		Long: `Convert a line of bidirectional text to visual order.

Without TEXT, a battery of self-test cases is run. Upper case Latin letters
are right-to-left in the battery.`,
		Args:              rootArgs,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return loadConfig(v, cmd) },
		RunE:              func(cmd *cobra.Command, args []string) error { return runRoot(cmd, v, args) },
	}
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError{msg: err.Error()}
	})

	flags := root.PersistentFlags()
	flags.BoolP(keyUpperIsRTL, "u", false, "treat upper case Latin letters as right-to-left")
	flags.BoolP(keyDebug, "d", false, "print the intermediate results of each step")
	flags.String(keyTrace, "Error", "trace level [Debug|Info|Error]")
	flags.String(keyConfig, "", "config file (yaml, json or toml)")

	root.AddCommand(newReplCommand(v))
	return root
}

func rootArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 1 {
		return usageErrorf("expected at most one TEXT argument, got %d; quote the text", len(args))
	}
	if len(args) == 0 && cmd.Flags().Changed(keyUpperIsRTL) {
		return usageErrorf("--%s needs TEXT; the self-test battery sets it itself", keyUpperIsRTL)
	}
	return nil
}

// loadConfig merges flags, environment and config file into v and sets up
// tracing from the result.
func loadConfig(v *viper.Viper, cmd *cobra.Command) error {
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return errors.Wrap(err, "binding flags")
	}
	v.SetEnvPrefix("BIDI")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if file := v.GetString(keyConfig); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "reading config file %s", file)
		}
	}
	return configureTracing(v.GetString(keyTrace))
}

func runRoot(cmd *cobra.Command, v *viper.Viper, args []string) error {
	out := cmd.OutOrStdout()
	if len(args) == 0 {
		return runBattery(out, newBattery(), v.GetBool(keyDebug))
	}
	tr := bidi.TraceDisplay(args[0], v.GetBool(keyUpperIsRTL))
	tracer().Infof("resolved %q", args[0])
	if v.GetBool(keyDebug) {
		if err := printTrace(out, tr); err != nil {
			return err
		}
	}
	fmt.Fprintln(out, tr.Result)
	return nil
}
