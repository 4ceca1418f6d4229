// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
)

// the channel used for consistency failures and panics
var (
	m   sync.Mutex
	log *logger.L
)

// Initialise - open the "PANIC" log channel
//
// until this is called, and again after Finalise, messages go to
// stdout prefixed by "*** "
func Initialise() error {
	m.Lock()
	defer m.Unlock()

	if nil != log {
		return ErrAlreadyInitialised
	}
	log = logger.New("PANIC")
	if nil == log {
		return ErrInvalidLoggerChannel
	}
	return nil
}

// Finalise - flush and detach the channel
func Finalise() {
	m.Lock()
	defer m.Unlock()

	if nil != log {
		log.Flush()
		log = nil
	}
}

// Criticalf - record a failure, prefixed by the caller's file and line
func Criticalf(format string, arguments ...interface{}) {
	f, a := callerPrefix(format, arguments)
	emit(f, a...)
}

// Panicf - record as Criticalf then panic with the formatted message
func Panicf(format string, arguments ...interface{}) {
	f, a := callerPrefix(format, arguments)
	emit(f, a...)
	panic(fmt.Sprintf(format, arguments...))
}

// Panic - record the message then panic with it
func Panic(message string) {
	emit("%s", message)
	if isLogging() {
		time.Sleep(100 * time.Millisecond) // let the log writer catch up
	}
	panic(message)
}

// PanicIfError - panic when a step that must succeed returns an error
func PanicIfError(message string, err error) {
	if nil == err {
		return
	}
	s := fmt.Sprintf("%s failed with error: %s", message, err)
	emit("%s", s)
	panic(s)
}

// two frames up is the caller of the exported function
func callerPrefix(format string, arguments []interface{}) (string, []interface{}) {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		return format, arguments
	}
	return "(%q:%d) " + format, append([]interface{}{file, line}, arguments...)
}

func isLogging() bool {
	m.Lock()
	defer m.Unlock()
	return nil != log
}

func emit(format string, arguments ...interface{}) {
	m.Lock()
	defer m.Unlock()

	if nil == log {
		fmt.Printf("*** "+format+"\n", arguments...)
		return
	}
	log.Criticalf(format, arguments...)
	log.Flush()
}
