// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"github.com/yuin/gluamapper"
	lua "github.com/yuin/gopher-lua"

	"github.com/bitmark-inc/treevisualize/fault"
)

// Lua field names are used unchanged, struct tags can override
var luaMapper = &gluamapper.Mapper{
	Option: gluamapper.Option{
		NameFunc: func(s string) string { return s },
		TagName:  "gluamapper",
	},
}

// ParseConfigurationFile - run a Lua script and decode the table it
// returns into result
//
// the script sees its own path as arg[0] so it can locate files
// relative to itself
func ParseConfigurationFile(fileName string, result interface{}) error {
	state := lua.NewState()
	defer state.Close()

	state.OpenLibs()

	arguments := state.NewTable()
	arguments.RawSetInt(0, lua.LString(fileName))
	state.SetGlobal("arg", arguments)

	if err := state.DoFile(fileName); nil != err {
		return err
	}

	returned, ok := state.Get(-1).(*lua.LTable)
	if !ok {
		return fault.ErrConfigNotTable
	}
	return luaMapper.Map(returned, result)
}
