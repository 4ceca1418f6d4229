// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

import (
	"github.com/bitmark-inc/treevisualize/fault"
)

// Check - run every consistency check that applies to the variant
func (tree *Tree) Check() bool {
	if !tree.CheckOrder() || !tree.CheckCount() {
		return false
	}
	if Balanced == tree.Kind() {
		return tree.CheckBalance()
	}
	return true
}

// CheckOrder - every key lies strictly between the bounds set by its
// ancestors
func (tree *Tree) CheckOrder() bool {
	return checkOrder(tree.root, nil, nil)
}

// internal: consistency checker
func checkOrder(p *Node, low *int, high *int) bool {
	if nil == p {
		return true
	}
	if nil != low && p.key <= *low {
		fault.Criticalf("order fail at node: %d  lower bound: %d", p.key, *low)
		return false
	}
	if nil != high && p.key >= *high {
		fault.Criticalf("order fail at node: %d  upper bound: %d", p.key, *high)
		return false
	}
	if !checkOrder(p.left, low, &p.key) {
		return false
	}
	return checkOrder(p.right, &p.key, high)
}

// CheckBalance - stored heights are correct and no node is out of
// balance.  Only meaningful for the balanced variant.
func (tree *Tree) CheckBalance() bool {
	_, ok := checkBalance(tree.root)
	return ok
}

// returns the actual height of the sub-tree
func checkBalance(p *Node) (int, bool) {
	if nil == p {
		return -1, true
	}
	lh, ok := checkBalance(p.left)
	if !ok {
		return 0, false
	}
	rh, ok := checkBalance(p.right)
	if !ok {
		return 0, false
	}
	h := 1 + max(lh, rh)
	if h != p.height {
		fault.Criticalf("height fail at node: %d  actual: %d  expected: %d", p.key, p.height, h)
		return 0, false
	}
	if bf := lh - rh; bf < -1 || bf > 1 {
		fault.Criticalf("balance fail at node: %d  factor: %d", p.key, bf)
		return 0, false
	}
	return h, true
}

// CheckCount - the stored count matches the reachable nodes and
// respects the limit
func (tree *Tree) CheckCount() bool {
	n := 0
	tree.Walk(PreOrder, func(*Node) bool {
		n += 1
		return true
	})
	if n != tree.count {
		fault.Criticalf("count fail  actual: %d  expected: %d", tree.count, n)
		return false
	}
	if n > MaxSize {
		fault.Criticalf("count fail  %d exceeds: %d", n, MaxSize)
		return false
	}
	if (nil == tree.root) != (0 == tree.count) {
		fault.Criticalf("count fail  root: %v  count: %d", tree.root, tree.count)
		return false
	}
	return true
}
