// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Find - locate the node holding key, or nil
func (tree *Tree) Find(key int) *Node {
	return find(key, tree.root)
}

// Search - locate the node holding key
// returns fault.ErrKeyNotFound if it is not in the tree
func (tree *Tree) Search(key int) (*Node, error) {
	p := find(key, tree.root)
	if nil == p {
		return nil, fault.ErrKeyNotFound
	}
	return p, nil
}

func find(key int, tree *Node) *Node {
	if nil == tree {
		return nil
	}

	switch {
	case key < tree.key:
		return find(key, tree.left)
	case key > tree.key:
		return find(key, tree.right)
	default:
		return tree
	}
}

// internal: lowest node in a sub-tree
func (tree *Node) first() *Node {
	if tree == nil {
		return nil
	}
	for tree.left != nil {
		tree = tree.left
	}
	return tree
}
