// SPDX-License-Identifier: ISC
// Copyright (c) 2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// build a node with its height computed from its children
func n(key int, left *Node, right *Node) *Node {
	p := &Node{
		left:  left,
		right: right,
		key:   key,
	}
	recomputeHeight(p)
	return p
}

// pre-order keys with heights for comparing shapes
func shape(p *Node) []int {
	if nil == p {
		return nil
	}
	s := []int{p.key, p.height}
	s = append(s, shape(p.left)...)
	return append(s, shape(p.right)...)
}

func TestHeightPrimitives(t *testing.T) {
	assert.Equal(t, 0, height(nil), "nil height")
	assert.Equal(t, 0, balanceFactor(nil), "nil balance")
	recomputeHeight(nil)

	p := n(2, n(1, nil, nil), nil)
	assert.Equal(t, 2, height(p), "height")
	assert.Equal(t, -1, balanceFactor(p), "left leaning")

	p.right = n(4, n(3, nil, nil), nil)
	assert.Equal(t, 2, p.height, "stale until recomputed")
	recomputeHeight(p)
	assert.Equal(t, 3, p.height, "recomputed")
	assert.Equal(t, 1, balanceFactor(p), "right leaning")
}

func TestRotateRight(t *testing.T) {
	// LL: 3 ← 2 ← 1
	root := n(3, n(2, n(1, nil, nil), nil), nil)
	root = rotateRight(root)
	assert.Equal(t, []int{2, 2, 1, 1, 3, 1}, shape(root), "rotate right")
}

func TestRotateLeft(t *testing.T) {
	// RR: 1 → 2 → 3
	root := n(1, nil, n(2, nil, n(3, nil, nil)))
	root = rotateLeft(root)
	assert.Equal(t, []int{2, 2, 1, 1, 3, 1}, shape(root), "rotate left")
}

func TestRotateLeftRight(t *testing.T) {
	// LR: 3 ← 1 → 2
	root := n(3, n(1, nil, n(2, nil, nil)), nil)
	root = rotateLeftRight(root)
	assert.Equal(t, []int{2, 2, 1, 1, 3, 1}, shape(root), "rotate left-right")
}

func TestRotateRightLeft(t *testing.T) {
	// RL: 1 → 3 ← 2
	root := n(1, nil, n(3, n(2, nil, nil), nil))
	root = rotateRightLeft(root)
	assert.Equal(t, []int{2, 2, 1, 1, 3, 1}, shape(root), "rotate right-left")
}

// inner sub-trees move across and keep their own heights
func TestRotateKeepsInnerSubtree(t *testing.T) {
	a := n(10, nil, nil)
	b := n(30, n(25, nil, nil), nil)
	c := n(50, nil, n(60, nil, nil))
	p := n(40, b, c)
	root := n(20, a, p)

	root = rotateLeft(root)
	assert.Same(t, p, root, "new root")
	assert.Same(t, b, root.left.right, "inner sub-tree moved")
	assert.Equal(t, 2, b.height, "inner height untouched")
	assert.Equal(t, 3, root.left.height, "old root height")
	assert.Equal(t, 4, root.height, "new root height")
}

func TestRebalanceDispatch(t *testing.T) {
	tree := New()

	tests := []struct {
		name string
		root *Node
	}{
		{"LL", n(3, n(2, n(1, nil, nil), nil), nil)},
		{"LR", n(3, n(1, nil, n(2, nil, nil)), nil)},
		{"RR", n(1, nil, n(2, nil, n(3, nil, nil)))},
		{"RL", n(1, nil, n(3, n(2, nil, nil), nil))},
	}
	for _, test := range tests {
		root := tree.rebalance(test.root)
		assert.Equal(t, []int{2, 2, 1, 1, 3, 1}, shape(root), test.name)
	}

	// child balance of zero resolves to the single rotation
	//
	//	      5          3
	//	     /          / \
	//	    3     →    2   5
	//	   / \            /
	//	  2   4          4
	deleteCase := n(5, n(3, n(2, nil, nil), n(4, nil, nil)), nil)
	assert.Equal(t, 0, balanceFactor(deleteCase.left), "child balanced")
	assert.Equal(t, -2, balanceFactor(deleteCase), "left heavy")
	deleteCase = tree.rebalance(deleteCase)
	assert.Equal(t, []int{3, 3, 2, 1, 5, 2, 4, 1}, shape(deleteCase), "single rotation on tie")

	balanced := n(2, n(1, nil, nil), n(3, nil, nil))
	assert.Same(t, balanced, tree.rebalance(balanced), "no change")
	assert.Nil(t, tree.rebalance(nil), "nil")
}
