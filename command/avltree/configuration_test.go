// SPDX-License-Identifier: ISC
// Copyright (c) 2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/script"
)

func writeConfiguration(t *testing.T, directory string, text string) string {
	fileName := filepath.Join(directory, "avltree.conf")
	require.Nil(t, os.WriteFile(fileName, []byte(text), 0600), "write configuration")
	return fileName
}

func TestDefaultConfiguration(t *testing.T) {
	options, err := getConfiguration("", nil)
	require.Nil(t, err, "defaults")
	defer os.RemoveAll(options.Logging.Directory)

	assert.Equal(t, outputText, options.Output, "output")
	assert.True(t, options.Check, "check")
	assert.Equal(t, script.Default(), options.Script, "script")
	assert.Equal(t, defaultLogFile, options.Logging.File, "log file")
	assert.Equal(t, defaultLogLevel, options.Logging.Levels[logger.DefaultTag], "log level")

	assert.True(t, filepath.IsAbs(options.Logging.Directory), "absolute log directory")
	info, err := os.Stat(options.Logging.Directory)
	require.Nil(t, err, "log directory exists")
	assert.True(t, info.IsDir(), "log directory")
}

func TestSampleConfiguration(t *testing.T) {
	directory := t.TempDir()
	b, err := os.ReadFile("avltree.conf.sample")
	require.Nil(t, err, "read sample")
	fileName := writeConfiguration(t, directory, string(b))

	options, err := getConfiguration(fileName, nil)
	require.Nil(t, err, "parse sample")

	assert.Equal(t, directory+string(filepath.Separator), options.DataDirectory, "data directory")
	assert.Equal(t, filepath.Join(directory, "log"), options.Logging.Directory, "log directory")
	assert.Equal(t, script.Default(), options.Script, "same as built-in script")
	assert.Equal(t, "debug", options.Logging.Levels["avl"], "avl level")
	assert.Equal(t, "info", options.Logging.Levels[logger.DefaultTag], "default level")
}

func TestConfigurationOverrides(t *testing.T) {
	directory := t.TempDir()
	fileName := writeConfiguration(t, directory, `
local M = {}
M.data_directory = "."
M.output = " JSON "
M.check = false
M.script = {
    { op = "insert", keys = { 3, 1, 2 } },
    { op = "print", title = version },
}
M.logging = {
    directory = "logs",
    file = "x.log",
}
return M
`)

	options, err := getConfiguration(fileName, map[string]string{"version": "1.2"})
	require.Nil(t, err, "parse")

	assert.Equal(t, outputJSON, options.Output, "normalised output")
	assert.False(t, options.Check, "check")
	expected := []script.Step{
		{Op: script.OpInsert, Keys: []int{3, 1, 2}},
		{Op: script.OpPrint, Title: "1.2"},
	}
	assert.Equal(t, expected, options.Script, "configured script replaces default")
	assert.Equal(t, filepath.Join(directory, "logs"), options.Logging.Directory, "log directory")
	assert.Equal(t, "x.log", options.Logging.File, "log file")
	assert.Equal(t, defaultLogCount, options.Logging.Count, "default count kept")
}

func TestConfigurationErrors(t *testing.T) {
	directory := t.TempDir()
	notDirectory := filepath.Join(directory, "file")
	require.Nil(t, os.WriteFile(notDirectory, []byte("x"), 0600), "write file")

	tests := []struct {
		name string
		text string
		err  error
	}{
		{"output", `return { output = "xml" }`, fault.ErrInvalidOutputFormat},
		{"operation", `return { script = { { op = "fly", keys = { 1 } } } }`, fault.ErrInvalidOperation},
		{"data directory", `return { data_directory = "` + notDirectory + `" }`, fault.ErrNotADirectory},
		{"empty data directory", `return { data_directory = "" }`, fault.ErrNotADirectory},
		{"not a table", `return 42`, fault.ErrConfigurationNotTable},
	}

	for _, test := range tests {
		fileName := writeConfiguration(t, directory, test.text)
		_, err := getConfiguration(fileName, nil)
		assert.ErrorIs(t, err, test.err, test.name)
	}

	fileName := writeConfiguration(t, directory, `return { logging = { file = "a/b.log" } }`)
	_, err := getConfiguration(fileName, nil)
	assert.NotNil(t, err, "log file with a path")

	_, err = getConfiguration(filepath.Join(directory, "missing.conf"), nil)
	assert.NotNil(t, err, "missing file")
}

func TestOutputFormat(t *testing.T) {
	for _, s := range []string{"text", "Json", " dot"} {
		_, err := outputFormat(s)
		assert.Nil(t, err, s)
	}
	_, err := outputFormat("")
	assert.Equal(t, fault.ErrInvalidOutputFormat, err, "empty")
}
