// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/script"
)

// setup command handler
//
// commands that need neither the configuration file nor a tree
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "start", "run", "render", "r", "dot":
		return false // continue processing

	case "config-test", "cfg":
		return false // defer processing until configuration is read

	case "version", "v":
		fmt.Printf("%s\n", version)
		return true

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] [--output=FORMAT] [--config-file=FILE] [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version sting\n\n")

		fmt.Printf("  start                      (run)    - run the script and print each step\n")
		fmt.Printf("                                        same as no arguments\n")
		fmt.Printf("\n")

		fmt.Printf("  render                     (r)      - run the script quietly and output the\n")
		fmt.Printf("                                        in-order node list as JSON\n")
		fmt.Printf("\n")

		fmt.Printf("  dot                                 - run the script quietly and output the\n")
		fmt.Printf("                                        final tree as a Graphviz digraph\n")
		fmt.Printf("\n")

		fmt.Printf("  config-test                (cfg)    - just check the configuration file\n")
		fmt.Printf("\n")

		fmt.Printf("output formats for start: %q, %q or %q\n\n", outputText, outputJSON, outputDot)

		exitwithstatus.Exit(1)
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// configuration file enquiry commands
// have configuration file read and decoded, but nothing else
func processConfigCommand(arguments []string, options *Configuration) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "config-test", "cfg":
		printJson(os.Stdout, "", options)

	default: // unknown commands fall through to data command
		return false
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// data command handler
// runs the configured script against the tree and writes the result
// in the requested format
func processDataCommand(log *logger.L, arguments []string, options *Configuration, tree *avl.Tree, quiet bool) error {

	command := "run"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	output := options.Output
	switch command {
	case "start", "run":
	case "render", "r":
		output = outputJSON
	case "dot":
		output = outputDot
	}
	log.Infof("command: %q  output: %q", command, output)

	var w io.Writer = os.Stdout
	if quiet || outputText != output {
		w = io.Discard
	}

	reporter := script.NewConsoleReporter(w, logger.New("script"))
	if err := script.Run(tree, options.Script, reporter, options.Check); nil != err {
		return err
	}

	switch output {
	case outputJSON:
		entries := make([]avl.Entry, 0, tree.Count())
		for e := range tree.Render() {
			entries = append(entries, e)
		}
		printJson(os.Stdout, "", entries)

	case outputDot:
		fmt.Print(tree.Dot())
	}
	return nil
}
