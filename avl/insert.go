// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Insert - insert a new key into the tree
//
// returns fault.ErrDuplicateKey if the key is already present, in
// which case the tree is not modified
func (tree *Tree) Insert(key int) error {
	root, err := tree.insert(key, tree.root)
	if nil != err {
		tree.debugf("insert: %d: %s", key, err)
		return err
	}
	tree.root = root
	tree.count += 1
	return nil
}

// internal routine for insert
// returns the possibly new root of the sub-tree
func (tree *Tree) insert(key int, p *Node) (*Node, error) {
	if nil == p { // insert new node
		return tree.newNode(key), nil
	}

	var err error
	switch {
	case key < p.key:
		p.left, err = tree.insert(key, p.left)
	case key > p.key:
		p.right, err = tree.insert(key, p.right)
	default:
		return p, fault.ErrDuplicateKey
	}

	// nothing below changed, so no need to rebalance
	if nil != err {
		return p, err
	}
	return tree.rebalance(p), nil
}
