// SPDX-License-Identifier: ISC
// Copyright (c) 2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script

import (
	"fmt"
	"io"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
)

// Reporter - receives the result of each operation
type Reporter interface {
	Inserted(key int, err error)
	Deleted(key int, err error)
	Found(key int, node *avl.Node)
	Tree(title string, tree *avl.Tree)
}

// ConsoleReporter - writes human readable results
type ConsoleReporter struct {
	w   io.Writer
	log *logger.L
}

// NewConsoleReporter - create a reporter writing to w
// log may be nil
func NewConsoleReporter(w io.Writer, log *logger.L) *ConsoleReporter {
	return &ConsoleReporter{
		w:   w,
		log: log,
	}
}

// Inserted - result of an insert
func (r *ConsoleReporter) Inserted(key int, err error) {
	r.result("insert", key, err)
}

// Deleted - result of a delete
func (r *ConsoleReporter) Deleted(key int, err error) {
	r.result("delete", key, err)
}

func (r *ConsoleReporter) result(op string, key int, err error) {
	if nil != err {
		fmt.Fprintf(r.w, "%s: %d: %s\n", op, key, err)
		if nil != r.log {
			r.log.Warnf("%s: %d: %s", op, key, err)
		}
		return
	}
	fmt.Fprintf(r.w, "%s: %d\n", op, key)
	if nil != r.log {
		r.log.Infof("%s: %d", op, key)
	}
}

// Found - result of a find, node is nil if the key is absent
func (r *ConsoleReporter) Found(key int, node *avl.Node) {
	if nil == node {
		fmt.Fprintf(r.w, "find: %d: not found\n", key)
		if nil != r.log {
			r.log.Infof("find: %d: not found", key)
		}
		return
	}
	fmt.Fprintf(r.w, "find: %d: found (height: %d)\n", key, node.Height())
	if nil != r.log {
		r.log.Infof("find: %d: height: %d", key, node.Height())
	}
}

// Tree - display the whole tree
func (r *ConsoleReporter) Tree(title string, tree *avl.Tree) {
	fmt.Fprintf(r.w, "\n%s:\n", title)
	if tree.IsEmpty() {
		fmt.Fprintf(r.w, "(empty)\n\n")
		return
	}
	depth := tree.Print(r.w)
	fmt.Fprintf(r.w, "\n")
	if nil != r.log {
		r.log.Debugf("%s: nodes: %d  depth: %d", title, tree.Count(), depth)
	}
}
