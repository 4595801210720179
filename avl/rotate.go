// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// single LL rotation, returns the new sub-tree root
//
//	      t            p
//	     / \          / \
//	    p   c   →    a   t
//	   / \              / \
//	  a   b            b   c
func rotateRight(t *Node) *Node {
	p := t.left
	t.left = p.right
	p.right = t

	// old root is now below the new root so must be first
	recomputeHeight(t)
	recomputeHeight(p)
	return p
}

// single RR rotation, mirror of rotateRight
//
//	    t                p
//	   / \              / \
//	  a   p     →      t   c
//	     / \          / \
//	    b   c        a   b
func rotateLeft(t *Node) *Node {
	p := t.right
	t.right = p.left
	p.left = t

	recomputeHeight(t)
	recomputeHeight(p)
	return p
}

// double LR rotation: the left sub-tree is right-heavy
func rotateLeftRight(t *Node) *Node {
	t.left = rotateLeft(t.left)
	return rotateRight(t)
}

// double RL rotation: the right sub-tree is left-heavy
func rotateRightLeft(t *Node) *Node {
	t.right = rotateRight(t.right)
	return rotateLeft(t)
}
