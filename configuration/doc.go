// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - parse a Lua configuration file
//
// most of base Lua is available such as reading files to set key data
// and getenv to extract environment supplied items.
//
// the file must return a table, e.g.
//
//	local M = {}
//	M.variant = "avl"
//	M.keys = { 50, 30, 70 }
//	M.logging = { directory = "log", file = "treevisualize.log" }
//	return M
package configuration
