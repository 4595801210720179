// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Check - verify all structural invariants
// returns the first violation found or nil
func (tree *Tree) Check() error {
	if !tree.CheckOrder() {
		return fault.ErrTreeOrder
	}
	if !tree.CheckHeights() {
		return fault.ErrTreeHeight
	}
	if !tree.CheckBalance() {
		return fault.ErrTreeBalance
	}
	if !tree.CheckCounts() {
		return fault.ErrTreeCount
	}
	return nil
}

// CheckOrder - keys strictly increase in-order, so are also unique
func (tree *Tree) CheckOrder() bool {
	first := true
	previous := 0
	for e := range tree.Render() {
		if !first && e.Key <= previous {
			tree.debugf("order fail at key: %d  previous: %d", e.Key, previous)
			return false
		}
		first = false
		previous = e.Key
	}
	return true
}

// CheckHeights - every cached height matches the recursive definition
func (tree *Tree) CheckHeights() bool {
	_, ok := tree.checkHeights(tree.root)
	return ok
}

// internal: returns the measured height
func (tree *Tree) checkHeights(p *Node) (int, bool) {
	if nil == p {
		return 0, true
	}
	lh, ok := tree.checkHeights(p.left)
	if !ok {
		return 0, false
	}
	rh, ok := tree.checkHeights(p.right)
	if !ok {
		return 0, false
	}
	h := 1 + max(lh, rh)
	if h != p.height {
		tree.debugf("height fail at key: %d  actual: %d  expected: %d", p.key, p.height, h)
		return 0, false
	}
	return h, true
}

// CheckBalance - no node has sub-tree heights differing by more than one
func (tree *Tree) CheckBalance() bool {
	_, ok := tree.checkBalance(tree.root)
	return ok
}

func (tree *Tree) checkBalance(p *Node) (int, bool) {
	if nil == p {
		return 0, true
	}
	lh, ok := tree.checkBalance(p.left)
	if !ok {
		return 0, false
	}
	rh, ok := tree.checkBalance(p.right)
	if !ok {
		return 0, false
	}
	if d := rh - lh; d < -1 || d > 1 {
		tree.debugf("balance fail at key: %d  balance: %+d", p.key, d)
		return 0, false
	}
	return 1 + max(lh, rh), true
}

// CheckCounts - node count agrees with the tree count and the
// allocation counters
func (tree *Tree) CheckCounts() bool {
	n := 0
	for range tree.Render() {
		n += 1
	}
	if n != tree.count || n != tree.created-tree.released {
		tree.debugf("count fail: nodes: %d  count: %d  live: %d", n, tree.count, tree.created-tree.released)
		return false
	}
	return true
}
