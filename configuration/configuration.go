// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/treevisualize/fault"
	"github.com/bitmark-inc/treevisualize/tree"
)

// basic defaults (directories are relative to the configuration file)
const (
	defaultVariant = tree.Plain
	defaultPrompt  = "tree> "

	defaultLogDirectory = "log"
	defaultLogFile      = "treevisualize.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	maximumPromptLength = 32
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		"main":            "info",
		"shell":           "info",
		logger.DefaultTag: "critical",
	}
	validLogLevels = []string{"trace", "debug", "info", "warn", "error", "critical", "off"}
)

// Configuration - everything the command reads from its Lua file
//
// Lua numbers are floating point so the keys table is decoded into
// KeyValues and Validate converts it into Keys
type Configuration struct {
	Variant   string               `gluamapper:"variant"`
	KeyValues []float64            `gluamapper:"keys"`
	Keys      []int                `gluamapper:"-"`
	Prompt    string               `gluamapper:"prompt"`
	Logging   logger.Configuration `gluamapper:"logging"`
}

// Default - configuration used when no file is given
func Default() *Configuration {
	levels := make(map[string]string, len(defaultLogLevels))
	for k, v := range defaultLogLevels {
		levels[k] = v
	}
	return &Configuration{
		Variant:   defaultVariant,
		KeyValues: []float64{},
		Keys:      []int{},
		Prompt:    defaultPrompt,
		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Console:   false,
			Levels:    levels,
		},
	}
}

// GetConfiguration - will read decode and verify the configuration
//
// an empty file name gives the defaults with the log directory
// relative to the current directory
func GetConfiguration(configurationFileName string) (*Configuration, error) {

	options := Default()
	baseDirectory := "."

	if "" != configurationFileName {
		configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
		if nil != err {
			return nil, err
		}
		if _, err := os.Stat(configurationFileName); nil != err {
			if os.IsNotExist(err) {
				return nil, fault.ErrNotFoundConfigFile
			}
			return nil, err
		}

		// absolute path to the main directory
		baseDirectory, _ = filepath.Split(configurationFileName)

		if err := ParseConfigurationFile(configurationFileName, options); nil != err {
			return nil, err
		}
	}

	if err := options.Validate(); nil != err {
		return nil, err
	}

	if !filepath.IsAbs(options.Logging.Directory) {
		options.Logging.Directory = filepath.Join(baseDirectory, options.Logging.Directory)
	}
	options.Logging.Directory = filepath.Clean(options.Logging.Directory)

	return options, nil
}

// Validate - normalise and check the values
func (c *Configuration) Validate() error {
	c.Variant = strings.ToLower(strings.TrimSpace(c.Variant))
	if "" == c.Variant {
		c.Variant = defaultVariant
	}
	if _, err := tree.New(c.Variant); nil != err {
		return err
	}

	keys, err := integerKeys(c.KeyValues)
	if nil != err {
		return err
	}
	c.Keys = keys

	if len(c.Prompt) > maximumPromptLength {
		return fault.ErrInvalidPrompt
	}

	if "" == c.Logging.Directory {
		c.Logging.Directory = defaultLogDirectory
	}
	if "" == c.Logging.File {
		c.Logging.File = defaultLogFile
	}
	if c.Logging.Size <= 0 {
		c.Logging.Size = defaultLogSize
	}
	if c.Logging.Count <= 0 {
		c.Logging.Count = defaultLogCount
	}
	if nil == c.Logging.Levels {
		c.Logging.Levels = map[string]string{}
	}
	for _, level := range c.Logging.Levels {
		if !validLevel(level) {
			return fault.ErrInvalidLogLevel
		}
	}
	if _, ok := c.Logging.Levels[logger.DefaultTag]; !ok {
		c.Logging.Levels[logger.DefaultTag] = defaultLogLevels[logger.DefaultTag]
	}
	return nil
}

// every value must be a whole number that fits an int
func integerKeys(values []float64) ([]int, error) {
	limit := -float64(math.MinInt) // 2^(bits-1), exact as a float
	keys := make([]int, 0, len(values))
	for _, v := range values {
		if v != math.Trunc(v) || v < -limit || v >= limit {
			return nil, fault.ErrInvalidNumber
		}
		keys = append(keys, int(v))
	}
	return keys, nil
}

func validLevel(level string) bool {
	for _, l := range validLogLevels {
		if l == level {
			return true
		}
	}
	return false
}
