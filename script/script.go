// SPDX-License-Identifier: ISC
// Copyright (c) 2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script

import (
	"github.com/bitmark-inc/avltree/fault"
)

// operation names
const (
	OpInsert = "insert"
	OpDelete = "delete"
	OpFind   = "find"
	OpPrint  = "print"
)

// Step - one operation applied to each key in turn
type Step struct {
	Op    string `gluamapper:"op" json:"op"`
	Keys  []int  `gluamapper:"keys" json:"keys,omitempty"`
	Title string `gluamapper:"title" json:"title,omitempty"`
}

// Default - the demonstration sequence: build a tree that needs every
// kind of rotation, try a duplicate, look up present and absent keys,
// delete a two-child node and a leaf, try a missing key, then grow the
// tree again
func Default() []Step {
	return []Step{
		{Op: OpInsert, Keys: []int{10, 20, 30, 40, 50, 25}},
		{Op: OpPrint, Title: "tree after adding elements"},
		{Op: OpInsert, Keys: []int{30}},
		{Op: OpFind, Keys: []int{20, 35, 25}},
		{Op: OpDelete, Keys: []int{30, 10}},
		{Op: OpPrint, Title: "tree after deleting elements"},
		{Op: OpDelete, Keys: []int{100}},
		{Op: OpInsert, Keys: []int{15, 5, 35}},
		{Op: OpPrint, Title: "final tree structure"},
	}
}

// Validate - check every step names a known operation
// returns the index of the first bad step with the error
func Validate(steps []Step) (int, error) {
	for i, step := range steps {
		switch step.Op {
		case OpInsert, OpDelete, OpFind, OpPrint:
		default:
			return i, fault.ErrInvalidOperation
		}
	}
	return -1, nil
}
