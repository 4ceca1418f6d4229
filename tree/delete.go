// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

import (
	"github.com/bitmark-inc/treevisualize/fault"
)

// Delete - removes a specific key from the tree
//
// returns false if the key was not present
func (tree *Tree) Delete(key int) bool {
	if !tree.Contains(key) {
		return false
	}
	tree.mod.deleteNode(&tree.root, key)
	tree.count -= 1
	return true
}

// unbalanced delete: the key is known to be below *pp
func (m unbalanced) deleteNode(pp **Node, key int) {
	p := *pp
	if nil == p {
		return
	}
	switch {
	case key < p.key:
		m.deleteNode(&p.left, key)
	case key > p.key:
		m.deleteNode(&p.right, key)
	default:
		if nil == p.left {
			*pp = p.right // also covers the leaf case
		} else if nil == p.right {
			*pp = p.left
		} else {
			// copy the successor up then remove the successor,
			// which has no left child
			successor := inOrderSuccessor(p)
			p.key = successor.key
			m.deleteNode(&p.right, successor.key)
		}
	}
}

// balanced delete: same three cases, then every frame on the way back
// up fixes its height and rebalances
func (m balanced) deleteNode(pp **Node, key int) {
	p := *pp
	if nil == p {
		return
	}
	switch {
	case key < p.key:
		m.deleteNode(&p.left, key)
	case key > p.key:
		m.deleteNode(&p.right, key)
	default:
		if nil == p.left {
			*pp = p.right
			return
		}
		if nil == p.right {
			*pp = p.left
			return
		}
		successor := inOrderSuccessor(p)
		p.key = successor.key
		m.deleteNode(&p.right, successor.key)
	}
	updateHeight(p)
	*pp = rebalance(p)
}

// smallest key in the right sub-tree
//
// the caller must have checked that p has a right child
func inOrderSuccessor(p *Node) *Node {
	if nil == p.right {
		fault.Panicf("in-order successor of node: %d with no right sub-tree", p.key)
	}
	p = p.right
	for nil != p.left {
		p = p.left
	}
	return p
}
