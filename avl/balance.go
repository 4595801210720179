// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// cached height, an absent sub-tree has height zero
func height(p *Node) int {
	if nil == p {
		return 0
	}
	return p.height
}

// recalculate a node's height from its children's cached heights
// must be applied bottom-up after any change to p.left or p.right
func recomputeHeight(p *Node) {
	if nil == p {
		return
	}
	p.height = 1 + max(height(p.left), height(p.right))
}

// right height minus left height: -1, 0, +1 in a balanced tree and
// transiently ±2 immediately after a single insert or delete
func balanceFactor(p *Node) int {
	if nil == p {
		return 0
	}
	return height(p.right) - height(p.left)
}

// restore the balance of a sub-tree whose children are balanced but
// whose own balance may be off by one insert or delete
//
// returns the new root of the sub-tree
func (tree *Tree) rebalance(p *Node) *Node {
	if nil == p {
		return nil
	}
	recomputeHeight(p)

	switch balanceFactor(p) {
	case -2: // left-heavy
		if balanceFactor(p.left) <= 0 {
			tree.tracef("rotate right at: %d", p.key)
			return rotateRight(p)
		}
		tree.tracef("rotate left-right at: %d", p.key)
		return rotateLeftRight(p)

	case +2: // right-heavy
		if balanceFactor(p.right) >= 0 {
			tree.tracef("rotate left at: %d", p.key)
			return rotateLeft(p)
		}
		tree.tracef("rotate right-left at: %d", p.key)
		return rotateRightLeft(p)
	}
	return p
}
