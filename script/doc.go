// SPDX-License-Identifier: ISC
// Copyright (c) 2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package script - a fixed or configured sequence of tree operations
//
// A script is a list of steps, each applying one operation to a list
// of keys in order.  Results are passed to a Reporter so the same
// script can drive console output, logging or a test double.
package script
