// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package intern

import (
	"sync"
	"sync/atomic"

	"github.com/akmami/lcptools/internal"
)

// Table is the shared, deduplicating map-mode interner. It owns two
// independent structures — a byte-string map for level-1 cores and a
// chained hash table for higher-level tuples — that draw ids from one
// common counter, so two cores never collide on the same id regardless
// of which structure produced it. A Table is safe for concurrent use by
// any number of LPS instances and lives for the process lifetime.
type Table struct {
	nextID uint32 // atomic

	strMu  sync.RWMutex
	strIDs map[string]uint32

	tupMu    sync.RWMutex
	capacity uint32
	buckets  [][]tupleEntry
}

type tupleEntry struct {
	key []uint32
	id  uint32
}

// NewTable constructs an empty map-mode interner. capacity sizes the
// tuple bucket array up front; it does not bound the number of entries,
// only the initial reservation.
func NewTable(capacity uint32) *Table {
	if capacity == 0 {
		capacity = 1024
	}
	return &Table{
		strIDs:   make(map[string]uint32),
		capacity: capacity,
		buckets:  make([][]tupleEntry, capacity),
	}
}

func (t *Table) allocID() uint32 {
	id := atomic.AddUint32(&t.nextID, 1) - 1
	internal.Assert(id != ^uint32(0), internal.AllocationError, "label id space exhausted")
	return id
}

// LabelBytes returns the dense id for the upper-cased content of b,
// assigning a new one on first sight.
func (t *Table) LabelBytes(b []byte) uint32 {
	key := string(upper(b))

	t.strMu.RLock()
	id, ok := t.strIDs[key]
	t.strMu.RUnlock()
	if ok {
		return id
	}

	t.strMu.Lock()
	defer t.strMu.Unlock()
	if id, ok = t.strIDs[key]; ok {
		return id
	}
	id = t.allocID()
	t.strIDs[key] = id
	return id
}

// LabelTuple returns the dense id for the ordered label array, assigning
// a new one on first sight. The bucket index is MurmurHash3-32(labels)
// mod capacity, per the spec's chained hash table layout.
func (t *Table) LabelTuple(labels []uint32) uint32 {
	idx := Murmur3_32(tupleBytes(labels), Seed) % t.capacity

	t.tupMu.RLock()
	id, found := scanBucket(t.buckets[idx], labels)
	t.tupMu.RUnlock()
	if found {
		return id
	}

	t.tupMu.Lock()
	defer t.tupMu.Unlock()
	if id, found = scanBucket(t.buckets[idx], labels); found {
		return id
	}
	id = t.allocID()
	entry := tupleEntry{key: append([]uint32(nil), labels...), id: id}
	t.buckets[idx] = append(t.buckets[idx], entry)
	return id
}

func scanBucket(bucket []tupleEntry, labels []uint32) (uint32, bool) {
	for _, e := range bucket {
		if equalTuple(e.key, labels) {
			return e.id, true
		}
	}
	return 0, false
}

func equalTuple(a, b []uint32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
