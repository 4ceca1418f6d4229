// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

// Node - a node in the tree
type Node struct {
	left   *Node // left sub-tree
	right  *Node // right sub-tree
	key    int   // key for ordering
	height int   // balanced variant only: leaf = 0, absent child = -1
}

// allocate a new leaf node
func newNode(key int) *Node {
	return &Node{
		key:    key,
		height: 0,
	}
}

// Key - read the key from a node
func (p *Node) Key() int {
	return p.key
}

// Height - stored height of the node
//
// only maintained by the balanced variant, always zero in a plain tree
func (p *Node) Height() int {
	return p.height
}

// Left - the left child or nil
func (p *Node) Left() *Node {
	return p.left
}

// Right - the right child or nil
func (p *Node) Right() *Node {
	return p.right
}

// IsLeaf - true if the node has no children
func (p *Node) IsLeaf() bool {
	return nil == p.left && nil == p.right
}

// ChildrenByDepth - returns all nodes at a specific depth below this
// node, left to right
func (p *Node) ChildrenByDepth(depth uint) []*Node {
	nodes := []*Node{}

	if depth == 0 {
		nodes = []*Node{p}
	} else {
		left := p.left
		right := p.right
		if left != nil {
			nodes = append(nodes, left.ChildrenByDepth(depth-1)...)
		}

		if right != nil {
			nodes = append(nodes, right.ChildrenByDepth(depth-1)...)
		}
	}
	return nodes
}
