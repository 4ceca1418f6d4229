// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

import (
	"github.com/bitmark-inc/treevisualize/fault"
)

// MaxSize - the most keys a tree will hold
const MaxSize = 40

// names of the two variants
const (
	Plain    = "bst"
	Balanced = "avl"
)

// the structural policy of a variant
//
// shared code has already rejected duplicates and misses before
// either of these is called
type modifier interface {
	kind() string
	insertNode(p *Node, key int) *Node
	deleteNode(pp **Node, key int)
}

// Tree - type to hold the root node of a tree
type Tree struct {
	root  *Node
	count int
	mod   modifier
}

// NewPlain - create an initially empty unbalanced tree
func NewPlain() *Tree {
	return &Tree{
		root:  nil,
		count: 0,
		mod:   unbalanced{},
	}
}

// NewBalanced - create an initially empty AVL tree
func NewBalanced() *Tree {
	return &Tree{
		root:  nil,
		count: 0,
		mod:   balanced{},
	}
}

// New - create an empty tree of the named variant
func New(kind string) (*Tree, error) {
	switch kind {
	case Plain:
		return NewPlain(), nil
	case Balanced:
		return NewBalanced(), nil
	default:
		return nil, fault.ErrUnknownVariant
	}
}

// Kind - the variant name: Plain or Balanced
func (tree *Tree) Kind() string {
	return tree.mod.kind()
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree) Count() int {
	return tree.count
}

// Root - return the root node of the tree
func (tree *Tree) Root() *Node {
	return tree.root
}

// Clear - drop every node
func (tree *Tree) Clear() {
	tree.root = nil
	tree.count = 0
}
