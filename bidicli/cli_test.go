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
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.Execute()
	return out.String(), err
}

func TestResolveText(t *testing.T) {
	testCases := []struct {
		args []string
		want string
	}{
		{[]string{"-u", "car is THE CAR in arabic"}, "car is RAC EHT in arabic\n"},
		{[]string{"--upper-is-rtl", "--", "-2 CELSIUS IS COLD"}, "DLOC SI SUISLEC -2\n"},
		{[]string{"HELLO world"}, "HELLO world\n"},
		{[]string{"שלום (עולם) 42"}, "42 (םלוע) םולש\n"},
	}
	for _, tc := range testCases {
		got, err := run(t, tc.args...)
		require.NoError(t, err, "args %q", tc.args)
		assert.Equal(t, tc.want, got, "args %q", tc.args)
	}
}

func TestDebugPrintsTrace(t *testing.T) {
	got, err := run(t, "-u", "-d", "ab CD")
	require.NoError(t, err)
	assert.Contains(t, got, "base direction L, end of run R")
	assert.Contains(t, got, "neutral")
	assert.True(t, strings.HasSuffix(got, "ab DC\n"), "got %q", got)
}

func TestBattery(t *testing.T) {
	results, failed := resolveBattery(newBattery())
	for _, r := range results {
		assert.Equal(t, r.want, r.got, "input %q", r.input)
	}
	assert.Equal(t, 0, failed)

	got, err := run(t)
	require.NoError(t, err)
	assert.Contains(t, got, "SUISLEC")
	assert.NotContains(t, got, "FAIL")
}

func TestBatteryFailure(t *testing.T) {
	battery := newBattery()
	battery.Add(batteryCase{input: "ABC", want: "ABC"})
	var out bytes.Buffer
	err := runBattery(&out, battery, false)
	require.Error(t, err)
	assert.Equal(t, errBatteryFailed, errors.Cause(err))
	assert.Equal(t, 1, exitCode(err))
	assert.Contains(t, out.String(), "FAIL")
}

func TestUsageErrors(t *testing.T) {
	for _, args := range [][]string{
		{"one", "two"},
		{"-u"},
		{"repl", "text"},
		{"--trace", "Verbose", "abc"},
		{"--no-such-flag"},
	} {
		_, err := run(t, args...)
		require.Error(t, err, "args %q", args)
		assert.Equal(t, 2, exitCode(err), "args %q: %v", args, err)
	}
}

func TestEnvironment(t *testing.T) {
	t.Setenv("BIDI_UPPER_IS_RTL", "true")
	got, err := run(t, "ABC def")
	require.NoError(t, err)
	assert.Equal(t, "def CBA\n", got)
}

func TestConfigFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "bidi.yaml")
	require.NoError(t, os.WriteFile(file, []byte("upper-is-rtl: true\n"), 0o644))
	got, err := run(t, "--config", file, "ABC def")
	require.NoError(t, err)
	assert.Equal(t, "def CBA\n", got)

	_, err = run(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "abc")
	require.Error(t, err)
	assert.Equal(t, 1, exitCode(err))
}

func TestReplExecute(t *testing.T) {
	intp := &Intp{}
	var out bytes.Buffer

	assert.False(t, intp.execute("ABC", &out))
	assert.Equal(t, "ABC\n", out.String())

	out.Reset()
	assert.False(t, intp.execute(":rtl", &out))
	assert.True(t, intp.upperIsRTL)

	out.Reset()
	assert.False(t, intp.execute("ABC", &out))
	assert.Equal(t, "CBA\n", out.String())

	out.Reset()
	assert.False(t, intp.execute(":help", &out))
	assert.Contains(t, out.String(), ":debug")

	out.Reset()
	assert.False(t, intp.execute("   ", &out))
	assert.Empty(t, out.String())

	assert.True(t, intp.execute(":quit", &out))
}
