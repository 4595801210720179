// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Stats - node lifecycle counters for a tree
type Stats struct {
	Created  int // leaves allocated by Insert
	Released int // nodes freed by Delete
	Live     int // Created - Released
}

// allocate a new leaf node, the only place a node is created
func (tree *Tree) newNode(key int) *Node {
	tree.created += 1
	return &Node{
		left:   nil,
		right:  nil,
		key:    key,
		height: 1,
	}
}

// release a node that has been unlinked from the tree
//
// links are cleared so a stale reference held by a caller cannot reach
// the live structure, height zero marks the node as freed
func (tree *Tree) freeNode(node *Node) {
	node.left = nil
	node.right = nil
	node.key = 0
	node.height = 0
	tree.released += 1
}

// Stats - return the allocation counters
func (tree *Tree) Stats() Stats {
	return Stats{
		Created:  tree.created,
		Released: tree.released,
		Live:     tree.created - tree.released,
	}
}
