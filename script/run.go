// SPDX-License-Identifier: ISC
// Copyright (c) 2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script

import (
	"github.com/bitmark-inc/avltree/avl"
)

// Run - apply the steps to the tree in order
//
// the whole script is validated first so a bad operation means nothing
// is run.  Duplicate and missing keys are passed to the reporter and do
// not stop the script.  If check is set the tree invariants are
// verified after every insert and delete and the first failure is
// returned.
func Run(tree *avl.Tree, steps []Step, reporter Reporter, check bool) error {
	if _, err := Validate(steps); nil != err {
		return err
	}

	for _, step := range steps {
		switch step.Op {
		case OpInsert:
			for _, key := range step.Keys {
				reporter.Inserted(key, tree.Insert(key))
				if check {
					if err := tree.Check(); nil != err {
						return err
					}
				}
			}

		case OpDelete:
			for _, key := range step.Keys {
				reporter.Deleted(key, tree.Delete(key))
				if check {
					if err := tree.Check(); nil != err {
						return err
					}
				}
			}

		case OpFind:
			for _, key := range step.Keys {
				reporter.Found(key, tree.Find(key))
			}

		case OpPrint:
			reporter.Tree(step.Title, tree)
		}
	}
	return nil
}
