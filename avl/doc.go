// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree of unique integer keys where each
// node caches the height of its sub-tree
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use a mutex to serialise every
//       Insert/Delete/Find call.
//
// Every mutation is a recursive rewrite: the recursion descends into a
// sub-tree, receives back its possibly new root, stores that in the
// parent's link and then recomputes the height and rebalances on the
// way back up.  Only nodes on the path from the root to the changed
// node are touched.
//
// Duplicate inserts and deletes of missing keys are not failures of
// the tree; they return fault.ErrDuplicateKey or fault.ErrKeyNotFound
// and leave the structure exactly as it was.
package avl
