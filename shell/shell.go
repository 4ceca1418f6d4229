// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package shell

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/treevisualize/counter"
	"github.com/bitmark-inc/treevisualize/fault"
	"github.com/bitmark-inc/treevisualize/tree"
)

// optional sign then digits
var integerPattern = regexp.MustCompile(`^-?[0-9]+$`)

// Statistics - outcome counts since the shell started
type Statistics struct {
	Commands counter.Counter
	Inserted counter.Counter
	Rejected counter.Counter // duplicate keys
	Deleted  counter.Counter
	Missed   counter.Counter // delete or find of an absent key
	Failed   counter.Counter // errors, including a full tree
}

// Shell - the interpreter state
type Shell struct {
	log     *logger.L
	out     io.Writer
	prompt  string
	tree    OrderedTree
	factory Factory
	stats   Statistics
}

// New - create a shell writing to out and operating on t
func New(log *logger.L, out io.Writer, t OrderedTree, factory Factory) *Shell {
	if nil == log {
		fault.Panic("shell: nil logger")
	}
	if nil == factory {
		factory = DefaultFactory
	}
	return &Shell{
		log:     log,
		out:     out,
		tree:    t,
		factory: factory,
	}
}

// SetPrompt - prompt printed before each line read by Run, empty for
// none
func (sh *Shell) SetPrompt(prompt string) {
	sh.prompt = prompt
}

// Tree - the tree currently in use
func (sh *Shell) Tree() OrderedTree {
	return sh.tree
}

// Statistics - the outcome counters
func (sh *Shell) Statistics() *Statistics {
	return &sh.stats
}

// Run - read and execute commands until end of input or quit
//
// command errors are reported on the output and do not stop the loop;
// only a read error is returned
func (sh *Shell) Run(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for {
		if "" != sh.prompt {
			fmt.Fprint(sh.out, sh.prompt)
		}
		if !scanner.Scan() {
			break
		}
		more, err := sh.Execute(scanner.Text())
		if nil != err {
			fmt.Fprintln(sh.out, err)
		}
		if !more {
			return nil
		}
	}
	if err := scanner.Err(); nil != err {
		sh.log.Errorf("read error: %s", err)
		return err
	}
	return nil
}

// Execute - run a single command line
//
// returns false once the user asks to quit
func (sh *Shell) Execute(line string) (bool, error) {
	words := strings.Fields(line)
	if 0 == len(words) || strings.HasPrefix(words[0], "#") {
		return true, nil
	}

	sh.stats.Commands.Increment()
	sh.log.Debugf("command: %q", line)

	err := sh.dispatch(strings.ToLower(words[0]), words[1:])
	if nil == err {
		return true, nil
	}
	if errQuit == err {
		sh.log.Info("quit")
		return false, nil
	}
	sh.stats.Failed.Increment()
	sh.log.Warnf("command: %q  error: %s", line, err)
	return true, err
}

// internal sentinel
var errQuit = fault.ProcessError("quit")

func (sh *Shell) dispatch(command string, arguments []string) error {
	switch command {
	case "add", "insert":
		return sh.withKey(arguments, sh.insert)

	case "delete", "remove":
		return sh.withKey(arguments, sh.delete)

	case "find", "search", "path":
		return sh.withKey(arguments, sh.find)

	case "clear":
		if err := noArguments(arguments); nil != err {
			return err
		}
		sh.tree.Clear()
		sh.log.Info("tree cleared")
		fmt.Fprintln(sh.out, "Tree has been cleared!")
		return nil

	case tree.Balanced, tree.Plain:
		if err := noArguments(arguments); nil != err {
			return err
		}
		return sh.switchTo(command)

	case "preorder", "inorder", "postorder":
		if err := noArguments(arguments); nil != err {
			return err
		}
		order, err := tree.ParseOrder(command)
		if nil != err {
			return err
		}
		fmt.Fprintf(sh.out, "%s: %s\n", order, joinKeys(sh.tree.Traverse(order)))
		return nil

	case "show":
		if err := noArguments(arguments); nil != err {
			return err
		}
		fmt.Fprintln(sh.out, sh.tree.String())
		return nil

	case "print":
		if err := noArguments(arguments); nil != err {
			return err
		}
		if nil == sh.tree.Root() {
			fmt.Fprintln(sh.out, "(empty)")
			return nil
		}
		sh.tree.Print(sh.out, tree.Balanced == sh.tree.Kind())
		return nil

	case "size":
		if err := noArguments(arguments); nil != err {
			return err
		}
		fmt.Fprintf(sh.out, "size: %d of %d\n", sh.tree.Count(), tree.MaxSize)
		return nil

	case "check":
		if err := noArguments(arguments); nil != err {
			return err
		}
		if sh.tree.Check() {
			fmt.Fprintln(sh.out, "tree is consistent")
			return nil
		}
		return fault.ErrInconsistentTree

	case "stats":
		switch len(arguments) {
		case 0:
			sh.printStatistics()
			return nil
		case 1:
			if "reset" != strings.ToLower(arguments[0]) {
				return fault.ErrUnknownCommand
			}
			sh.resetStatistics()
			return nil
		default:
			return fault.ErrTooManyArguments
		}

	case "help", "?":
		if err := noArguments(arguments); nil != err {
			return err
		}
		fmt.Fprint(sh.out, helpText)
		return nil

	case "quit", "exit":
		if err := noArguments(arguments); nil != err {
			return err
		}
		return errQuit

	default:
		return fault.ErrUnknownCommand
	}
}

func (sh *Shell) insert(key int) error {
	added, err := sh.tree.Insert(key)
	if nil != err {
		return err
	}
	if !added {
		sh.stats.Rejected.Increment()
		fmt.Fprintf(sh.out, "The value %d is already in the tree!\n", key)
		return nil
	}
	sh.stats.Inserted.Increment()
	sh.log.Debugf("inserted: %d  size: %d", key, sh.tree.Count())
	fmt.Fprintln(sh.out, sh.tree.String())
	return nil
}

func (sh *Shell) delete(key int) error {
	if !sh.tree.Delete(key) {
		sh.stats.Missed.Increment()
		fmt.Fprintf(sh.out, "The value %d is not in the tree!\n", key)
		return nil
	}
	sh.stats.Deleted.Increment()
	sh.log.Debugf("deleted: %d  size: %d", key, sh.tree.Count())
	fmt.Fprintln(sh.out, sh.tree.String())
	return nil
}

// show the search path then the outcome
func (sh *Shell) find(key int) error {
	path := sh.tree.FindWithPath(key)
	fmt.Fprintf(sh.out, "path: %s\n", joinKeys(path))

	if n := len(path); n > 0 && path[n-1].Key() == key {
		fmt.Fprintf(sh.out, "Found %d in the tree!\n", key)
		return nil
	}
	sh.stats.Missed.Increment()
	fmt.Fprintf(sh.out, "Value %d not found.\n", key)
	return nil
}

// replace the tree with an empty one of another variant
func (sh *Shell) switchTo(kind string) error {
	t, err := sh.factory(kind)
	if nil != err {
		return err
	}
	sh.tree = t
	sh.log.Infof("switched to: %s", kind)
	switch kind {
	case tree.Balanced:
		fmt.Fprintln(sh.out, "Switched to AVL Tree!")
	default:
		fmt.Fprintln(sh.out, "Switched to simple binary search tree!")
	}
	return nil
}

func (sh *Shell) printStatistics() {
	s := &sh.stats
	fmt.Fprintf(sh.out, "commands: %d\n", s.Commands.Uint64())
	fmt.Fprintf(sh.out, "inserted: %d\n", s.Inserted.Uint64())
	fmt.Fprintf(sh.out, "rejected: %d\n", s.Rejected.Uint64())
	fmt.Fprintf(sh.out, "deleted:  %d\n", s.Deleted.Uint64())
	fmt.Fprintf(sh.out, "missed:   %d\n", s.Missed.Uint64())
	fmt.Fprintf(sh.out, "failed:   %d\n", s.Failed.Uint64())
}

// zero every counter, including the count of this command
func (sh *Shell) resetStatistics() {
	s := &sh.stats
	total := s.Commands.Reset()
	s.Inserted.Reset()
	s.Rejected.Reset()
	s.Deleted.Reset()
	s.Missed.Reset()
	s.Failed.Reset()
	sh.log.Infof("statistics reset after: %d commands", total)
	fmt.Fprintln(sh.out, "statistics reset")
}

// parse the single integer argument and run f with it
func (sh *Shell) withKey(arguments []string, f func(int) error) error {
	switch len(arguments) {
	case 0:
		return fault.ErrMissingArgument
	case 1:
	default:
		return fault.ErrTooManyArguments
	}
	key, err := ParseKey(arguments[0])
	if nil != err {
		return err
	}
	return f(key)
}

// ParseKey - accept an optional minus sign followed by digits
func ParseKey(s string) (int, error) {
	if !integerPattern.MatchString(s) {
		return 0, fault.ErrInvalidNumber
	}
	key, err := strconv.Atoi(s)
	if nil != err {
		return 0, fault.ErrInvalidNumber
	}
	return key, nil
}

func noArguments(arguments []string) error {
	if 0 != len(arguments) {
		return fault.ErrTooManyArguments
	}
	return nil
}

func joinKeys(nodes []*tree.Node) string {
	if 0 == len(nodes) {
		return "(empty)"
	}
	s := make([]string, len(nodes))
	for i, p := range nodes {
		s[i] = strconv.Itoa(p.Key())
	}
	return strings.Join(s, " ")
}

const helpText = `commands:
  add N | insert N     insert a key
  delete N | remove N  delete a key
  find N | path N      show the search path for a key
  clear                remove every key
  avl | bst            switch to an empty tree of that variant
  preorder | inorder | postorder
                       list keys in that order
  show                 bracketed form of the tree
  print                draw the tree
  size                 number of keys
  check                verify the tree invariants
  stats [reset]        command outcome counts, or zero them
  help                 this text
  quit | exit          leave
`
