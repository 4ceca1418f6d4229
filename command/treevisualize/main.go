// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/treevisualize/configuration"
	"github.com/bitmark-inc/treevisualize/fault"
	"github.com/bitmark-inc/treevisualize/shell"
	"github.com/bitmark-inc/treevisualize/tree"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "variant", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 't'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--version] [--quiet] [--config-file=FILE] [--variant=bst|avl] ['command' ...]", program)
	}

	if len(options["config-file"]) > 1 {
		exitwithstatus.Message("%s: only one config-file option is allowed, %d were detected", program, len(options["config-file"]))
	}

	configurationFile := ""
	if 1 == len(options["config-file"]) {
		configurationFile = options["config-file"][0]
	}
	theConfiguration, err := configuration.GetConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// command line overrides the file
	if n := len(options["variant"]); n > 0 {
		variant := strings.ToLower(options["variant"][n-1])
		if _, err := tree.New(variant); nil != err {
			exitwithstatus.Message("%s: variant: %q  error: %s", program, variant, err)
		}
		theConfiguration.Variant = variant
	}
	quiet := len(options["quiet"]) > 0

	// start logging
	if err = os.MkdirAll(theConfiguration.Logging.Directory, 0o700); nil != err {
		exitwithstatus.Message("%s: log directory: %q  error: %s", program, theConfiguration.Logging.Directory, err)
	}
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	// the variant was validated with the configuration
	t, err := tree.New(theConfiguration.Variant)
	fault.PanicIfError("tree setup", err)

	sh := shell.New(logger.New("shell"), os.Stdout, t, shell.DefaultFactory)
	defer logStatistics(log, sh.Statistics())

	// duplicates are skipped, the remainder after a full tree is
	// reported and dropped
	if _, err := sh.Preload(theConfiguration.Keys); nil != err && !quiet {
		fmt.Fprintf(os.Stderr, "%s: initial keys: %s\n", program, err)
	}
	log.Infof("variant: %s  initial size: %d", t.Kind(), t.Count())

	// arguments are executed as commands instead of reading stdin
	if len(arguments) > 0 {
		for _, line := range arguments {
			more, err := sh.Execute(line)
			if nil != err {
				fmt.Fprintf(os.Stderr, "%s: %q: %s\n", program, line, err)
			}
			if !more {
				break
			}
		}
		return
	}

	if !quiet {
		fmt.Printf("%s: %s tree, %d keys, type 'help' for commands\n", program, t.Kind(), t.Count())
		sh.SetPrompt(theConfiguration.Prompt)
	}

	if err := sh.Run(os.Stdin); nil != err {
		log.Criticalf("shell error: %s", err)
		exitwithstatus.Message("%s: shell error: %s", program, err)
	}
}

// summary of the session, skipped if no command ran
func logStatistics(log *logger.L, s *shell.Statistics) {
	if s.Commands.IsZero() {
		return
	}
	log.Infof("commands: %d  inserted: %d  rejected: %d  deleted: %d  missed: %d  failed: %d",
		s.Commands.Uint64(), s.Inserted.Uint64(), s.Rejected.Uint64(),
		s.Deleted.Uint64(), s.Missed.Uint64(), s.Failed.Uint64())
}
