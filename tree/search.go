// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

// Find - find the node holding a specific key, nil if absent
func (tree *Tree) Find(key int) *Node {
	return search(key, tree.root)
}

// Contains - true if the key is in the tree
func (tree *Tree) Contains(key int) bool {
	return nil != search(key, tree.root)
}

func search(key int, p *Node) *Node {
	if nil == p {
		return nil
	}

	switch {
	case p.key > key:
		return search(key, p.left)
	case p.key < key:
		return search(key, p.right)
	default:
		return p
	}
}

// FindWithPath - every node visited while looking for a key, in
// visiting order
//
// the last node is the match on a hit; on a miss it is the last node
// before the search fell off the tree.  An empty tree gives an empty
// path.
func (tree *Tree) FindWithPath(key int) []*Node {
	path := []*Node{}
	p := tree.root
	for nil != p {
		path = append(path, p)
		switch {
		case p.key < key:
			p = p.right
		case p.key > key:
			p = p.left
		default:
			return path
		}
	}
	return path
}
