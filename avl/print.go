// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
)

// to control the print routine
type branch int

const (
	rootBranch  branch = iota
	leftBranch  branch = iota
	rightBranch branch = iota
)

// Print - display an ASCII graphic representation of the tree
// with each node as key(height), higher keys towards the top
//
// returns the number of levels printed
func (tree *Tree) Print(w io.Writer) int {
	return printTree(w, tree.root, "", rootBranch)
}

// internal print - returns the maximum depth of the tree
func printTree(w io.Writer, tree *Node, prefix string, br branch) int {
	if nil == tree {
		return 0
	}
	rd := 0
	ld := 0
	if nil != tree.right {
		t := "       "
		if leftBranch == br {
			t = "|      "
		}
		rd = printTree(w, tree.right, prefix+t, rightBranch)
	}
	switch br {
	case rootBranch:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case leftBranch:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case rightBranch:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	fmt.Fprintf(w, "%d(%d)\n", tree.key, tree.height)
	if nil != tree.left {
		t := "       "
		if rightBranch == br {
			t = "|      "
		}
		ld = printTree(w, tree.left, prefix+t, leftBranch)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}
