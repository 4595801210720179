// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"iter"
)

// Entry - one node of a rendered tree
type Entry struct {
	Key    int `json:"key"`
	Height int `json:"height"`
	Depth  int `json:"depth"` // root is at depth zero
}

// Render - in-order sequence of every node with its depth
//
// the walk starts from the root current at the time iteration begins,
// so the same sequence can be ranged over again after further changes
func (tree *Tree) Render() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		render(tree.root, 0, yield)
	}
}

// false once the consumer has stopped
func render(p *Node, depth int, yield func(Entry) bool) bool {
	if nil == p {
		return true
	}
	return render(p.left, depth+1, yield) &&
		yield(Entry{Key: p.key, Height: p.height, Depth: depth}) &&
		render(p.right, depth+1, yield)
}

// Keys - all keys in ascending order
func (tree *Tree) Keys() []int {
	keys := make([]int, 0, tree.count)
	for e := range tree.Render() {
		keys = append(keys, e.Key)
	}
	return keys
}
