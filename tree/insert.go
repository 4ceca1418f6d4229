// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

import (
	"github.com/bitmark-inc/treevisualize/fault"
)

// Insert - insert a new key into the tree
//
// returns false if the key is already present and
// fault.ErrTooManyNodes if the tree already holds MaxSize keys; in
// both cases the tree is unchanged
func (tree *Tree) Insert(key int) (bool, error) {
	if tree.count >= MaxSize {
		return false, fault.ErrTooManyNodes
	}
	if nil == tree.root {
		tree.root = newNode(key)
		tree.count += 1
		return true, nil
	}

	// duplicates are rejected by a separate search before descending
	// again to place the node
	if tree.Contains(key) {
		return false, nil
	}
	tree.root = tree.mod.insertNode(tree.root, key)
	tree.count += 1
	return true, nil
}

// unbalanced placement: new leaf at the first empty slot
func (m unbalanced) insertNode(p *Node, key int) *Node {
	if key > p.key {
		if nil == p.right {
			p.right = newNode(key)
		} else {
			m.insertNode(p.right, key)
		}
	} else {
		if nil == p.left {
			p.left = newNode(key)
		} else {
			m.insertNode(p.left, key)
		}
	}
	return p
}

// balanced placement: every frame fixes its height and rebalances
// on the way back up
func (m balanced) insertNode(p *Node, key int) *Node {
	if nil == p {
		return newNode(key)
	}
	if key < p.key {
		p.left = m.insertNode(p.left, key)
	} else {
		p.right = m.insertNode(p.right, key)
	}
	updateHeight(p)
	return rebalance(p)
}
