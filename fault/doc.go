// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error classes and the last-chance log channel
//
// every error is a package level value of one of the string classes,
// so callers compare with == or test the class with one of the IsErr
// functions.  A full tree is the only CapacityError.
package fault
