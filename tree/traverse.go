// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

import (
	"github.com/bitmark-inc/treevisualize/fault"
)

// Order - a depth first visiting order
type Order int

// the visiting orders
const (
	PreOrder  Order = iota
	InOrder   Order = iota
	PostOrder Order = iota
)

// String - order name
func (o Order) String() string {
	switch o {
	case PreOrder:
		return "preorder"
	case InOrder:
		return "inorder"
	case PostOrder:
		return "postorder"
	default:
		return "*unknown*"
	}
}

// ParseOrder - convert a name from String back to an Order
func ParseOrder(s string) (Order, error) {
	for _, o := range []Order{PreOrder, InOrder, PostOrder} {
		if o.String() == s {
			return o, nil
		}
	}
	return 0, fault.ErrUnknownTraversal
}

// Walk - call f on each node in the given order until f returns false
//
// returns false if the walk was stopped early
func (tree *Tree) Walk(order Order, f func(*Node) bool) bool {
	return walk(tree.root, order, f)
}

func walk(p *Node, order Order, f func(*Node) bool) bool {
	if nil == p {
		return true
	}
	if PreOrder == order && !f(p) {
		return false
	}
	if !walk(p.left, order, f) {
		return false
	}
	if InOrder == order && !f(p) {
		return false
	}
	if !walk(p.right, order, f) {
		return false
	}
	if PostOrder == order && !f(p) {
		return false
	}
	return true
}

// Traverse - all nodes in the given order
func (tree *Tree) Traverse(order Order) []*Node {
	nodes := make([]*Node, 0, tree.count)
	tree.Walk(order, func(p *Node) bool {
		nodes = append(nodes, p)
		return true
	})
	return nodes
}

// Keys - all keys in ascending order
func (tree *Tree) Keys() []int {
	keys := make([]int, 0, tree.count)
	tree.Walk(InOrder, func(p *Node) bool {
		keys = append(keys, p.key)
		return true
	})
	return keys
}
