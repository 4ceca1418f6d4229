// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/treevisualize/fault"
	"github.com/bitmark-inc/treevisualize/tree"
)

// both variants must satisfy the shared behaviour
var variants = []string{tree.Plain, tree.Balanced}

func newTree(t *testing.T, kind string, keys ...int) *tree.Tree {
	tr, err := tree.New(kind)
	if nil != err {
		t.Fatalf("new %s tree error: %s", kind, err)
	}
	for _, key := range keys {
		ok, err := tr.Insert(key)
		if nil != err {
			t.Fatalf("insert: %d  error: %s", key, err)
		}
		if !ok {
			t.Fatalf("insert: %d  rejected", key)
		}
	}
	return tr
}

func keysOf(nodes []*tree.Node) []int {
	keys := make([]int, len(nodes))
	for i, p := range nodes {
		keys[i] = p.Key()
	}
	return keys
}

func TestNewUnknownVariant(t *testing.T) {
	tr, err := tree.New("rb")
	assert.Nil(t, tr, "tree returned")
	assert.Equal(t, fault.ErrUnknownVariant, err, "wrong error")
}

func TestKind(t *testing.T) {
	assert.Equal(t, tree.Plain, tree.NewPlain().Kind(), "wrong plain kind")
	assert.Equal(t, tree.Balanced, tree.NewBalanced().Kind(), "wrong balanced kind")
}

func TestEmpty(t *testing.T) {
	for _, kind := range variants {
		tr := newTree(t, kind)
		assert.True(t, tr.IsEmpty(), kind+": not empty")
		assert.Equal(t, 0, tr.Count(), kind+": wrong count")
		assert.Nil(t, tr.Root(), kind+": root set")
		assert.Nil(t, tr.Find(1), kind+": found in empty tree")
		assert.False(t, tr.Contains(1), kind+": contains in empty tree")
		assert.Equal(t, []*tree.Node{}, tr.FindWithPath(1), kind+": non-empty path")
		assert.Equal(t, "null", tr.String(), kind+": wrong string")
		assert.False(t, tr.Delete(1), kind+": deleted from empty tree")
		assert.True(t, tr.Check(), kind+": inconsistent")
	}
}

func TestInsertSingle(t *testing.T) {
	for _, kind := range variants {
		tr := newTree(t, kind)
		ok, err := tr.Insert(10)
		assert.Nil(t, err, kind+": insert error")
		assert.True(t, ok, kind+": not inserted")
		assert.True(t, tr.Contains(10), kind+": missing key")
		assert.Equal(t, 1, tr.Count(), kind+": wrong count")
		assert.Equal(t, 10, tr.Root().Key(), kind+": wrong root")
		assert.True(t, tr.Root().IsLeaf(), kind+": root has children")
		assert.Equal(t, "10[null, null]", tr.String(), kind+": wrong string")
	}
}

func TestInsertDuplicate(t *testing.T) {
	for _, kind := range variants {
		tr := newTree(t, kind, 5, 3, 7)
		before := tr.String()

		for _, key := range []int{5, 3, 7} {
			ok, err := tr.Insert(key)
			assert.Nil(t, err, kind+": duplicate insert error")
			assert.False(t, ok, fmt.Sprintf("%s: duplicate %d accepted", kind, key))
		}
		assert.Equal(t, 3, tr.Count(), kind+": count changed")
		assert.Equal(t, before, tr.String(), kind+": shape changed")
	}
}

func TestInsertCapacity(t *testing.T) {
	for _, kind := range variants {
		tr := newTree(t, kind)
		for i := 0; i < tree.MaxSize; i += 1 {
			ok, err := tr.Insert(i)
			assert.Nil(t, err, fmt.Sprintf("%s: insert %d error", kind, i))
			assert.True(t, ok, fmt.Sprintf("%s: insert %d rejected", kind, i))
		}
		before := tr.String()

		ok, err := tr.Insert(999)
		assert.False(t, ok, kind+": inserted past capacity")
		assert.Equal(t, fault.ErrTooManyNodes, err, kind+": wrong error")
		assert.True(t, fault.IsErrCapacity(err), kind+": not a capacity error")
		assert.Equal(t, tree.MaxSize, tr.Count(), kind+": count changed")
		assert.Equal(t, before, tr.String(), kind+": shape changed")
		assert.False(t, tr.Contains(999), kind+": key added")

		// a full tree rejects even a duplicate with the capacity error
		_, err = tr.Insert(0)
		assert.Equal(t, fault.ErrTooManyNodes, err, kind+": wrong duplicate error")

		// room again after a delete
		assert.True(t, tr.Delete(0), kind+": delete failed")
		ok, err = tr.Insert(999)
		assert.Nil(t, err, kind+": insert error after delete")
		assert.True(t, ok, kind+": insert rejected after delete")
		assert.True(t, tr.Check(), kind+": inconsistent")
	}
}

func TestFindAndContains(t *testing.T) {
	for _, kind := range variants {
		tr := newTree(t, kind, 5, 3, 7)

		p := tr.Find(7)
		if assert.NotNil(t, p, kind+": 7 not found") {
			assert.Equal(t, 7, p.Key(), kind+": wrong node")
		}
		assert.Nil(t, tr.Find(10), kind+": found absent key")

		assert.True(t, tr.Contains(5), kind+": missing 5")
		assert.True(t, tr.Contains(3), kind+": missing 3")
		assert.True(t, tr.Contains(7), kind+": missing 7")
		assert.False(t, tr.Contains(10), kind+": contains 10")
	}
}

func TestFindWithPath(t *testing.T) {
	tr := newTree(t, tree.Plain, 5, 3, 7, 6)
	assert.Equal(t, []int{5, 7, 6}, keysOf(tr.FindWithPath(6)), "wrong path to 6")

	tr = newTree(t, tree.Plain, 10, 5, 15, 12)
	path := tr.FindWithPath(15)
	assert.Equal(t, []*tree.Node{tr.Root(), tr.Root().Right()}, path, "wrong path to 15")

	// miss: stops at the last node before falling off
	path = tr.FindWithPath(99)
	assert.Equal(t, []*tree.Node{tr.Root(), tr.Root().Right()}, path, "wrong path for 99")

	path = tr.FindWithPath(12)
	assert.Equal(t, []int{10, 15, 12}, keysOf(path), "wrong path to 12")
	assert.True(t, tr.Find(12) == path[len(path)-1], "last node is not the match")
}

func TestFindWithPathMiss(t *testing.T) {
	tr := newTree(t, tree.Plain, 10, 5, 15, 20)
	path := tr.FindWithPath(99)
	assert.Equal(t, []int{10, 15, 20}, keysOf(path), "wrong miss path")
	assert.NotEqual(t, 99, path[len(path)-1].Key(), "miss looks like a hit")

	path = tr.FindWithPath(1)
	assert.Equal(t, []int{10, 5}, keysOf(path), "wrong left miss path")
}

func TestClear(t *testing.T) {
	for _, kind := range variants {
		tr := newTree(t, kind, 5, 3, 7, 6, 8)
		tr.Clear()
		assert.Equal(t, 0, tr.Count(), kind+": wrong count")
		assert.Nil(t, tr.Root(), kind+": root set")
		assert.True(t, tr.IsEmpty(), kind+": not empty")
		assert.False(t, tr.Contains(5), kind+": key survived clear")

		// usable again
		ok, err := tr.Insert(1)
		assert.Nil(t, err, kind+": insert error")
		assert.True(t, ok, kind+": insert rejected")
		assert.Equal(t, "1[null, null]", tr.String(), kind+": wrong string")
	}
}

func TestRoundTrip(t *testing.T) {
	for _, kind := range variants {
		tr := newTree(t, kind, 50, 25, 75, 12, 37, 62, 87)
		size := tr.Count()

		for _, key := range []int{1, 40, 99, 60} {
			ok, err := tr.Insert(key)
			assert.Nil(t, err, kind+": insert error")
			assert.True(t, ok, kind+": insert rejected")
			assert.True(t, tr.Delete(key), kind+": delete failed")
			assert.False(t, tr.Contains(key), kind+": key survived delete")
			assert.Equal(t, size, tr.Count(), kind+": wrong count")
		}

		// delete an original key then put it back
		assert.True(t, tr.Delete(25), kind+": delete 25 failed")
		assert.False(t, tr.Delete(25), kind+": deleted 25 twice")
		assert.Equal(t, size-1, tr.Count(), kind+": wrong count after delete")
		ok, err := tr.Insert(25)
		assert.Nil(t, err, kind+": reinsert error")
		assert.True(t, ok, kind+": reinsert rejected")
		assert.Equal(t, size, tr.Count(), kind+": wrong count after reinsert")
		assert.True(t, tr.Check(), kind+": inconsistent")
	}
}

func TestDeleteMissLeavesTree(t *testing.T) {
	for _, kind := range variants {
		tr := newTree(t, kind, 5, 3, 7)
		before := tr.String()
		assert.False(t, tr.Delete(10), kind+": deleted absent key")
		assert.Equal(t, 3, tr.Count(), kind+": count changed")
		assert.Equal(t, before, tr.String(), kind+": shape changed")
	}
}

func TestNegativeKeys(t *testing.T) {
	for _, kind := range variants {
		tr := newTree(t, kind, 0, -5, 5, -10, -1)
		assert.Equal(t, []int{-10, -5, -1, 0, 5}, tr.Keys(), kind+": wrong keys")
		assert.True(t, tr.Delete(-5), kind+": delete failed")
		assert.Equal(t, []int{-10, -1, 0, 5}, tr.Keys(), kind+": wrong keys after delete")
		assert.True(t, tr.Check(), kind+": inconsistent")
	}
}
