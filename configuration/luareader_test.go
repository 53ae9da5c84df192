// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/ledgerkit/configuration"
	"github.com/bitmark-inc/ledgerkit/fault"
)

type loggingType struct {
	Directory string            `gluamapper:"directory"`
	Count     int               `gluamapper:"count"`
	Levels    map[string]string `gluamapper:"levels"`
}

type testConfiguration struct {
	DataDirectory string      `gluamapper:"data_directory"`
	Iterations    int         `gluamapper:"iterations"`
	Label         string      `gluamapper:"label"`
	Logging       loggingType `gluamapper:"logging"`
}

var testDirectory string

func TestMain(m *testing.M) {
	dir, err := ioutil.TempDir("", "configuration")
	if nil != err {
		panic(err)
	}
	testDirectory = dir

	rc := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(rc)
}

func writeFile(t *testing.T, content string) string {
	f, err := ioutil.TempFile(testDirectory, "*.conf")
	require.NoError(t, err, "temp file")
	fileName := f.Name()
	require.NoError(t, f.Close(), "close")

	require.NoError(t, ioutil.WriteFile(fileName, []byte(content), 0600), "write")
	return fileName
}

func TestParse(t *testing.T) {
	fileName := writeFile(t, `
local M = {}
M.data_directory = "."
M.iterations = 2000 + 48
M.label = arg.label
M.logging = {
    directory = "log",
    count = 10,
    levels = {
        DEFAULT = "info",
        keystore = "debug",
    },
}
return M
`)

	config := testConfiguration{
		Iterations: 1,
		Label:      "unchanged",
	}
	err := configuration.ParseConfigurationFile(fileName, &config, map[string]string{"label": "from-variables"})
	require.NoError(t, err, "parse")

	assert.Equal(t, ".", config.DataDirectory, "data directory")
	assert.Equal(t, 2048, config.Iterations, "iterations")
	assert.Equal(t, "from-variables", config.Label, "label")
	assert.Equal(t, "log", config.Logging.Directory, "log directory")
	assert.Equal(t, 10, config.Logging.Count, "log count")
	assert.Equal(t, "debug", config.Logging.Levels["keystore"], "keystore level")
	assert.Equal(t, "info", config.Logging.Levels["DEFAULT"], "default level")
}

func TestParseKeepsDefaults(t *testing.T) {
	fileName := writeFile(t, `return { label = "set" }`)

	config := testConfiguration{
		Iterations: 1234,
	}
	err := configuration.ParseConfigurationFile(fileName, &config, nil)
	require.NoError(t, err, "parse")

	assert.Equal(t, "set", config.Label, "label")
	assert.Equal(t, 1234, config.Iterations, "default overwritten")
}

func TestParseErrors(t *testing.T) {
	fileName := writeFile(t, `return { label = "x" }`)

	var config testConfiguration
	err := configuration.ParseConfigurationFile(fileName, config, nil)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "non-pointer accepted")

	var s string
	err = configuration.ParseConfigurationFile(fileName, &s, nil)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "pointer to string accepted")

	err = configuration.ParseConfigurationFile(writeFile(t, `return 42`), &config, nil)
	assert.Equal(t, fault.ErrConfigurationNotTable, err, "number accepted")

	err = configuration.ParseConfigurationFile(writeFile(t, `return {`), &config, nil)
	assert.Error(t, err, "syntax error accepted")

	err = configuration.ParseConfigurationFile(filepath.Join(testDirectory, "no-such-file.conf"), &config, nil)
	assert.Error(t, err, "missing file accepted")
}
