// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package shell

import (
	"io"

	"github.com/bitmark-inc/treevisualize/tree"
)

//go:generate mockgen -source=tree.go -destination=mocks/tree.go -package=mocks

// OrderedTree - the tree operations the shell needs
type OrderedTree interface {
	Insert(key int) (bool, error)
	Delete(key int) bool
	Find(key int) *tree.Node
	Contains(key int) bool
	FindWithPath(key int) []*tree.Node
	Clear()
	Root() *tree.Node
	Count() int
	Kind() string
	String() string
	Traverse(order tree.Order) []*tree.Node
	Print(w io.Writer, showHeight bool) int
	Check() bool
}

// Factory - create an empty tree of a named variant
type Factory func(kind string) (OrderedTree, error)

// DefaultFactory - trees from the tree package
func DefaultFactory(kind string) (OrderedTree, error) {
	t, err := tree.New(kind)
	if nil != err {
		return nil, err
	}
	return t, nil
}
