// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package shell

// PreloadResult - outcome of inserting the initial keys
type PreloadResult struct {
	Added      int // new keys
	Duplicates int // keys already present
	Dropped    int // keys not tried once the tree was full
}

// Preload - insert keys before any command runs
//
// duplicates are skipped; the first insert error stops the load and is
// returned with the number of keys left untried, including the one
// that failed.  Command statistics are not affected.
func (sh *Shell) Preload(keys []int) (PreloadResult, error) {
	result := PreloadResult{}
	for i, key := range keys {
		added, err := sh.tree.Insert(key)
		if nil != err {
			result.Dropped = len(keys) - i
			sh.log.Warnf("preload: %d of %d keys not inserted  error: %s", result.Dropped, len(keys), err)
			return result, err
		}
		if added {
			result.Added += 1
		} else {
			result.Duplicates += 1
			sh.log.Debugf("preload: duplicate: %d", key)
		}
	}
	sh.log.Infof("preload: added: %d  duplicates: %d  size: %d", result.Added, result.Duplicates, sh.tree.Count())
	return result, nil
}
