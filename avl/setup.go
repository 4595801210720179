// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/logger"
)

// Node - a node in the tree
type Node struct {
	left   *Node // left sub-tree
	right  *Node // right sub-tree
	key    int   // key part for ordering
	height int   // 1 + height of the taller sub-tree
}

// Tree - type to hold the root node of a tree
type Tree struct {
	root     *Node
	count    int
	log      *logger.L
	created  int // nodes allocated
	released int // nodes freed by delete
}

// New - create an initially empty tree
func New() *Tree {
	return &Tree{
		root:  nil,
		count: 0,
		log:   nil,
	}
}

// NewWithLog - create an initially empty tree that reports rejected
// operations and rotations to a logger channel
func NewWithLog(log *logger.L) *Tree {
	return &Tree{
		root:  nil,
		count: 0,
		log:   log,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree) Count() int {
	return tree.count
}

// Root - return the root node of the tree
func (tree *Tree) Root() *Node {
	return tree.root
}

// Height - number of levels in the tree, zero when empty
func (tree *Tree) Height() int {
	return height(tree.root)
}

// Key - read the key from a node
func (p *Node) Key() int {
	return p.key
}

// Height - cached height of the sub-tree rooted at this node
func (p *Node) Height() int {
	return height(p)
}

// Balance - height of right sub-tree minus height of left sub-tree
func (p *Node) Balance() int {
	return balanceFactor(p)
}

// Left - the left child or nil
func (p *Node) Left() *Node {
	if nil == p {
		return nil
	}
	return p.left
}

// Right - the right child or nil
func (p *Node) Right() *Node {
	if nil == p {
		return nil
	}
	return p.right
}

func (tree *Tree) debugf(format string, arguments ...interface{}) {
	if nil != tree.log {
		tree.log.Debugf(format, arguments...)
	}
}

func (tree *Tree) tracef(format string, arguments ...interface{}) {
	if nil != tree.log {
		tree.log.Tracef(format, arguments...)
	}
}
