// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package shell - a line oriented command interpreter over one tree
//
// each line is a command word and an optional integer, e.g.
//
//	add 10
//	delete 10
//	find 10
//	avl
//	inorder
//
// commands run one at a time, the shell owns its tree
package shell
