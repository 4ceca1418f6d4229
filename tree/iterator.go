// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

// First - return the node with the lowest key value
func (tree *Tree) First() *Node {
	return tree.root.first()
}

// internal: lowest node in a sub-tree
func (p *Node) first() *Node {
	if p == nil {
		return nil
	}
	for p.left != nil {
		p = p.left
	}
	return p
}

// Last - return the node with the highest key value
func (tree *Tree) Last() *Node {
	return tree.root.last()
}

// internal: highest node in a sub-tree
func (p *Node) last() *Node {
	if p == nil {
		return nil
	}
	for p.right != nil {
		p = p.right
	}
	return p
}

// Next - return the node with the smallest key greater than key, or
// nil if there is none.  The key itself need not be in the tree.
//
// nodes have no parent pointer so this searches down from the root
func (tree *Tree) Next(key int) *Node {
	var next *Node
	p := tree.root
	for p != nil {
		if p.key > key {
			next = p
			p = p.left
		} else {
			p = p.right
		}
	}
	return next
}

// Prev - return the node with the largest key less than key, or nil
// if there is none
func (tree *Tree) Prev(key int) *Node {
	var prev *Node
	p := tree.root
	for p != nil {
		if p.key < key {
			prev = p
			p = p.right
		} else {
			p = p.left
		}
	}
	return prev
}
