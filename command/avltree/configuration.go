// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/script"
	"github.com/bitmark-inc/avltree/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "." // same directory as the config file
	defaultOutput        = outputText
	defaultCheck         = true

	defaultLogDirectory = "log"
	defaultLogFile      = "avltree.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
	defaultLogLevel     = "critical"

	temporaryLogPattern = "avltree-log-"
)

// output formats
const (
	outputText = "text"
	outputJSON = "json"
	outputDot  = "dot"
)

// to hold log levels
type LoglevelMap map[string]string

type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	Output        string               `gluamapper:"output" json:"output"`
	Check         bool                 `gluamapper:"check" json:"check"`
	Script        []script.Step        `gluamapper:"script" json:"script"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
//
// an empty file name gives the built-in defaults with the log in a
// fresh temporary directory
func getConfiguration(configurationFileName string, variables map[string]string) (*Configuration, error) {

	options := &Configuration{
		DataDirectory: defaultDataDirectory,
		Output:        defaultOutput,
		Check:         defaultCheck,
		Script:        nil, // filled after parsing so a configured list replaces it entirely

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels: LoglevelMap{
				logger.DefaultTag: defaultLogLevel,
			},
		},
	}

	if "" == configurationFileName {
		d, err := os.MkdirTemp("", temporaryLogPattern)
		if nil != err {
			return nil, err
		}
		options.DataDirectory = d
		options.Logging.Directory = d
		options.Script = script.Default()
		return options, nil
	}

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	if err := configuration.ParseConfigurationFile(configurationFileName, options, variables); err != nil {
		return nil, err
	}

	options.Output, err = outputFormat(options.Output)
	if nil != err {
		return nil, err
	}

	if 0 == len(options.Script) {
		options.Script = script.Default()
	} else if n, err := script.Validate(options.Script); nil != err {
		return nil, fmt.Errorf("script step: %d  error: %w", n+1, err)
	}

	// ensure absolute data directory
	switch options.DataDirectory {
	case "", "~":
		return nil, fmt.Errorf("path: %q  error: %w", options.DataDirectory, fault.ErrNotADirectory)
	case ".":
		options.DataDirectory = dataDirectory // same directory as the configuration file
	default:
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if err := util.IsDirectory(options.DataDirectory); nil != err {
		return nil, err
	}

	if !util.IsPlainName(options.Logging.File) {
		return nil, fmt.Errorf("files: %q is not plain name", options.Logging.File)
	}

	// make absolute and create the log directory if it does not already exist
	options.Logging.Directory, err = util.EnsureDirectory(options.DataDirectory, options.Logging.Directory)
	if nil != err {
		return nil, err
	}

	return options, nil
}

// normalise an output format name
func outputFormat(s string) (string, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case outputText, outputJSON, outputDot:
		return s, nil
	default:
		return "", fault.ErrInvalidOutputFormat
	}
}
