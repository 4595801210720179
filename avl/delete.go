// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Delete - removes a specific key from the tree
//
// returns fault.ErrKeyNotFound if the key is not present, in which case
// the tree is not modified
func (tree *Tree) Delete(key int) error {
	root, err := tree.delete(key, tree.root)
	if nil != err {
		tree.debugf("delete: %d: %s", key, err)
		return err
	}
	tree.root = root
	tree.count -= 1
	return nil
}

// internal delete routine
// returns the possibly new root of the sub-tree
func (tree *Tree) delete(key int, p *Node) (*Node, error) {
	if nil == p { // key not in tree
		return nil, fault.ErrKeyNotFound
	}

	var err error
	switch {
	case key < p.key:
		p.left, err = tree.delete(key, p.left)

	case key > p.key:
		p.right, err = tree.delete(key, p.right)

	case nil == p.left || nil == p.right:
		// found: at most one child, which takes this node's place
		child := p.left
		if nil == child {
			child = p.right
		}
		tree.freeNode(p)
		recomputeHeight(child)
		return child, nil

	default:
		// found: two children, promote the in-order successor's key
		// then remove the successor, which has no left child, from
		// the right sub-tree
		successor := p.right.first()
		p.key = successor.key
		p.right, err = tree.delete(successor.key, p.right)
	}

	if nil != err {
		return p, err
	}
	return tree.rebalance(p), nil
}
