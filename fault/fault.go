// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type CapacityError GenericError
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised   = ExistsError("already initialised")
	ErrConfigNotTable       = InvalidError("configuration did not return a table")
	ErrInconsistentTree     = ProcessError("tree is inconsistent")
	ErrInvalidLoggerChannel = InvalidError("invalid logger channel")
	ErrInvalidLogLevel      = InvalidError("invalid log level")
	ErrInvalidNumber        = InvalidError("not a valid number")
	ErrInvalidPrompt        = InvalidError("prompt is too long")
	ErrMissingArgument      = InvalidError("command requires an argument")
	ErrNotFoundConfigFile   = NotFoundError("config file is not found")
	ErrTooManyArguments     = InvalidError("too many arguments")
	ErrTooManyNodes         = CapacityError("too many nodes, maximum allowed is 40")
	ErrUnknownCommand       = NotFoundError("unknown command")
	ErrUnknownTraversal     = InvalidError("unknown traversal order")
	ErrUnknownVariant       = InvalidError("unknown tree variant")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e CapacityError) Error() string { return string(e) }
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrCapacity(e error) bool { _, ok := e.(CapacityError); return ok }
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
