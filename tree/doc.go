// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package tree - an ordered set of unique integer keys held in a
// binary search tree
//
// Two variants share one Tree type: a plain (unbalanced) BST whose
// shape depends only on the order of the operations, and an AVL tree
// that keeps each node's stored height and rotates on the way back up
// from every insert and delete so that sibling heights never differ by
// more than one.
//
// A tree holds at most MaxSize keys.  Insert returns
// fault.ErrTooManyNodes when the tree is full and leaves it untouched.
//
// Note: an individual tree is not thread safe, so either access only
// in a single go routine or use mutex/rwmutex to restrict access.
// Read only calls (Find, Contains, FindWithPath) may run together but
// never alongside Insert, Delete or Clear.
//
// Nodes have no parent pointers; each node is owned by exactly one
// slot (the root or a parent's left/right) so unlinking a node from
// its slot releases the whole subtree.
//
// The Check functions report the first failure through the fault
// package's critical channel.  Until fault.Initialise has been called
// that report is printed on stdout prefixed by "*** ".
package tree
