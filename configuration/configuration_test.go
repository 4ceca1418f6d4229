// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/treevisualize/configuration"
	"github.com/bitmark-inc/treevisualize/fault"
	"github.com/bitmark-inc/treevisualize/tree"
)

const fullConfiguration = `
local M = {}

M.variant = "AVL"
M.keys = { 50, -30, 70 }
M.prompt = "avl> "

M.logging = {
    directory = "logs",
    file = "test.log",
    size = 2048,
    count = 3,
    console = true,
    levels = {
        shell = "debug",
    },
}

return M
`

func writeFile(t *testing.T, directory string, name string, content string) string {
	fileName := filepath.Join(directory, name)
	if err := os.WriteFile(fileName, []byte(content), 0600); nil != err {
		t.Fatalf("write: %q  error: %s", fileName, err)
	}
	return fileName
}

func TestDefaults(t *testing.T) {
	c, err := configuration.GetConfiguration("")
	assert.Nil(t, err, "default configuration error")
	assert.Equal(t, tree.Plain, c.Variant, "wrong variant")
	assert.Equal(t, []int{}, c.Keys, "wrong keys")
	assert.Equal(t, "tree> ", c.Prompt, "wrong prompt")
	assert.Equal(t, "log", c.Logging.Directory, "wrong log directory")
	assert.Equal(t, "treevisualize.log", c.Logging.File, "wrong log file")
	assert.Equal(t, "critical", c.Logging.Levels[logger.DefaultTag], "wrong default level")
}

func TestDefaultIsACopy(t *testing.T) {
	c1 := configuration.Default()
	c1.Logging.Levels["shell"] = "trace"
	c2 := configuration.Default()
	assert.Equal(t, "info", c2.Logging.Levels["shell"], "defaults were shared")
}

func TestParseFull(t *testing.T) {
	directory := t.TempDir()
	fileName := writeFile(t, directory, "tree.conf", fullConfiguration)

	c, err := configuration.GetConfiguration(fileName)
	if !assert.Nil(t, err, "configuration error") {
		return
	}
	assert.Equal(t, tree.Balanced, c.Variant, "variant not normalised")
	assert.Equal(t, []int{50, -30, 70}, c.Keys, "wrong keys")
	assert.Equal(t, "avl> ", c.Prompt, "wrong prompt")
	assert.Equal(t, filepath.Join(directory, "logs"), c.Logging.Directory, "log directory not relative to file")
	assert.Equal(t, "test.log", c.Logging.File, "wrong log file")
	assert.Equal(t, 2048, c.Logging.Size, "wrong log size")
	assert.Equal(t, 3, c.Logging.Count, "wrong log count")
	assert.True(t, c.Logging.Console, "console not set")
	assert.Equal(t, "debug", c.Logging.Levels["shell"], "wrong shell level")
	assert.Equal(t, "critical", c.Logging.Levels[logger.DefaultTag], "default level not added")
}

func TestParseArg(t *testing.T) {
	directory := t.TempDir()
	fileName := writeFile(t, directory, "arg.conf", `
local M = {}
if arg[0] ~= nil then
    M.variant = "avl"
end
return M
`)
	c, err := configuration.GetConfiguration(fileName)
	assert.Nil(t, err, "configuration error")
	assert.Equal(t, tree.Balanced, c.Variant, "arg[0] not set")
}

func TestMissingFile(t *testing.T) {
	_, err := configuration.GetConfiguration(filepath.Join(t.TempDir(), "absent.conf"))
	assert.Equal(t, fault.ErrNotFoundConfigFile, err, "wrong error")
}

func TestBadValues(t *testing.T) {
	cases := []struct {
		name    string
		content string
		err     error
	}{
		{"variant", `return { variant = "redblack" }`, fault.ErrUnknownVariant},
		{"level", `return { logging = { levels = { shell = "loud" } } }`, fault.ErrInvalidLogLevel},
		{"prompt", `return { prompt = "this prompt is far far far too long> " }`, fault.ErrInvalidPrompt},
		{"table", `return 42`, fault.ErrConfigNotTable},
		{"fraction", `return { keys = { 1, 1.5 } }`, fault.ErrInvalidNumber},
		{"fractions", `return { keys = { 1.5, 2.9, 1e20 } }`, fault.ErrInvalidNumber},
		{"huge", `return { keys = { 1e20 } }`, fault.ErrInvalidNumber},
		{"limit", `return { keys = { 2^63 } }`, fault.ErrInvalidNumber},
		{"nan", `return { keys = { 0/0 } }`, fault.ErrInvalidNumber},
	}

	directory := t.TempDir()
	for _, c := range cases {
		fileName := writeFile(t, directory, c.name+".conf", c.content)
		_, err := configuration.GetConfiguration(fileName)
		assert.Equal(t, c.err, err, c.name+": wrong error")
	}
}

func TestWholeNumberKeys(t *testing.T) {
	fileName := writeFile(t, t.TempDir(), "whole.conf", `return { keys = { 3.0, -7, 1e3, -2^40 } }`)
	c, err := configuration.GetConfiguration(fileName)
	if !assert.Nil(t, err, "configuration error") {
		return
	}
	assert.Equal(t, []int{3, -7, 1000, -(1 << 40)}, c.Keys, "wrong keys")
}

func TestLuaSyntaxError(t *testing.T) {
	fileName := writeFile(t, t.TempDir(), "broken.conf", `return {`)
	_, err := configuration.GetConfiguration(fileName)
	assert.NotNil(t, err, "syntax error not reported")
}
