// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

// Height - edges on the longest root to leaf path, -1 if empty
//
// counted from the structure so it is also valid for a plain tree
func (tree *Tree) Height() int {
	return measure(tree.root)
}

func measure(p *Node) int {
	if nil == p {
		return -1
	}
	return 1 + max(measure(p.left), measure(p.right))
}

// Depth - distance of a key from the root (root = 0), -1 if absent
func (tree *Tree) Depth(key int) int {
	path := tree.FindWithPath(key)
	n := len(path)
	if 0 == n || path[n-1].key != key {
		return -1
	}
	return n - 1
}

// NodesAtDepth - all nodes at a specific depth, left to right
func (tree *Tree) NodesAtDepth(depth uint) []*Node {
	if nil == tree.root {
		return []*Node{}
	}
	return tree.root.ChildrenByDepth(depth)
}
