// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

// the two structural policies
type unbalanced struct{}
type balanced struct{}

func (unbalanced) kind() string { return Plain }
func (balanced) kind() string   { return Balanced }

// stored height, -1 for an absent node
func height(p *Node) int {
	if nil == p {
		return -1
	}
	return p.height
}

// recompute from the children, which must already be correct
func updateHeight(p *Node) {
	p.height = 1 + max(height(p.left), height(p.right))
}

// left height minus right height
func balanceFactor(p *Node) int {
	if nil == p {
		return 0
	}
	return height(p.left) - height(p.right)
}

// restore |balance factor| <= 1 at p, returns the new sub-tree root
func rebalance(p *Node) *Node {
	bf := balanceFactor(p)

	if bf > 1 { // left heavy
		if balanceFactor(p.left) < 0 {
			p.left = rotateLeft(p.left) // LR
		}
		return rotateRight(p) // LL
	}

	if bf < -1 { // right heavy
		if balanceFactor(p.right) > 0 {
			p.right = rotateRight(p.right) // RL
		}
		return rotateLeft(p) // RR
	}

	return p
}

// left child becomes the sub-tree root
func rotateRight(p *Node) *Node {
	p1 := p.left
	p.left = p1.right
	p1.right = p

	updateHeight(p)
	updateHeight(p1)
	return p1
}

// right child becomes the sub-tree root
func rotateLeft(p *Node) *Node {
	p1 := p.right
	p.right = p1.left
	p1.left = p

	updateHeight(p)
	updateHeight(p1)
	return p1
}
