// SPDX-License-Identifier: ISC
// Copyright (c) 2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"strconv"

	"github.com/emicklei/dot"
)

// Dot - Graphviz rendering of the tree, edges are labelled "l" and "r"
func (tree *Tree) Dot() string {
	graph := dot.NewGraph(dot.Directed)

	var traverse func(p *Node, parent *dot.Node, direction string)
	traverse = func(p *Node, parent *dot.Node, direction string) {
		n := graph.Node(strconv.Itoa(p.key)).Label(fmt.Sprintf("%d (h=%d)", p.key, p.height))
		if nil != parent {
			parent.Edge(n, direction)
		}
		if nil != p.left {
			traverse(p.left, &n, "l")
		}
		if nil != p.right {
			traverse(p.right, &n, "r")
		}
	}

	if nil != tree.root {
		traverse(tree.root, nil, "")
	}
	return graph.String()
}
