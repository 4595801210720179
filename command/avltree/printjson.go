// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/bitmark-inc/exitwithstatus"
)

// output an indented JSON block with an optional title
func printJson(w io.Writer, title string, message interface{}) {

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		exitwithstatus.Message("Error: printjson marshall error: %s", err)
	}

	if "" == title {
		fmt.Fprintf(w, "%s\n", b)
	} else {
		fmt.Fprintf(w, "%s:\n%s\n", title, b)
	}
}
