// SPDX-License-Identifier: MIT

package hashtable

import (
	"fmt"
	"slices"
)

// noSlot marks an empty bucket or the end of a chain.
const noSlot = -1

// entry is one arena slot. next links the chain (or the free list).
// hash caches Hasher(key) so growth never rehashes key bytes.
type entry struct {
	key   string
	hash  uint64
	value int
	next  int
}

// Table is a chained hash map from byte-string keys to ints.
// The zero value is not usable; create tables with New.
type Table struct {
	buckets []int   // bucket → head slot, noSlot if empty
	entries []entry // arena of every slot ever allocated
	free    int     // head of the free-slot list
	size    int     // live entries

	initialCap int
	opts       Options
	destroyed  bool
}

// New creates a Table with capacity buckets.
// Returns ErrBadCapacity if capacity < 1 or above WithMaxCapacity.
// Complexity: O(capacity).
func New(capacity int, opts ...Option) (*Table, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if capacity < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadCapacity, capacity)
	}
	if o.MaxCapacity > 0 && capacity > o.MaxCapacity {
		return nil, fmt.Errorf("%w: %d exceeds max capacity %d", ErrBadCapacity, capacity, o.MaxCapacity)
	}

	t := &Table{initialCap: capacity, opts: o}
	t.reset()

	return t, nil
}

// reset allocates fresh storage at the initial capacity.
func (t *Table) reset() {
	t.buckets = newBuckets(t.initialCap)
	t.entries = nil
	t.free = noSlot
	t.size = 0
}

// newBuckets returns n empty buckets.
func newBuckets(n int) []int {
	b := make([]int, n)
	for i := range b {
		b[i] = noSlot
	}

	return b
}

// bucketOf maps a hash to its bucket index under n buckets.
func bucketOf(h uint64, n int) int {
	return int(h % uint64(n))
}

// Insert stores value under key, replacing the value if key is present.
// A new key is appended at the tail of its chain; afterwards the table
// doubles when Len()/Cap() exceeds the load factor.
// The key bytes are copied.
//
// Returns ErrKeyTooLong for keys longer than MaxKeyLen and ErrDestroyed
// after Destroy.
func (t *Table) Insert(key []byte, value int) error {
	if t.destroyed {
		return ErrDestroyed
	}
	if len(key) > MaxKeyLen {
		return fmt.Errorf("%w: %d bytes, max %d", ErrKeyTooLong, len(key), MaxKeyLen)
	}

	h := t.opts.Hasher(key)
	b := bucketOf(h, len(t.buckets))
	tail := noSlot
	for s := t.buckets[b]; s != noSlot; s = t.entries[s].next {
		if t.entries[s].hash == h && t.entries[s].key == string(key) {
			t.entries[s].value = value

			return nil
		}
		tail = s
	}

	s := t.alloc(entry{key: string(key), hash: h, value: value, next: noSlot})
	if tail == noSlot {
		t.buckets[b] = s
	} else {
		t.entries[tail].next = s
	}
	t.size++

	if t.overloaded() {
		t.grow()
	}

	return nil
}

// InsertString is Insert for a string key.
func (t *Table) InsertString(key string, value int) error {
	return t.Insert([]byte(key), value)
}

// Get returns the value stored under key and true, or 0 and false when the
// key is absent. The boolean, not the value, signals presence.
func (t *Table) Get(key []byte) (int, bool) {
	s := t.find(key)
	if s == noSlot {
		return 0, false
	}

	return t.entries[s].value, true
}

// GetString is Get for a string key.
func (t *Table) GetString(key string) (int, bool) {
	return t.Get([]byte(key))
}

// Contains reports whether key is present.
func (t *Table) Contains(key []byte) bool {
	return t.find(key) != noSlot
}

// Remove deletes key and reports whether it was present.
// The freed slot is reused by a later Insert; the table never shrinks.
func (t *Table) Remove(key []byte) bool {
	if t.destroyed || len(key) > MaxKeyLen {
		return false
	}
	h := t.opts.Hasher(key)
	b := bucketOf(h, len(t.buckets))
	prev := noSlot
	for s := t.buckets[b]; s != noSlot; s = t.entries[s].next {
		if t.entries[s].hash != h || t.entries[s].key != string(key) {
			prev = s
			continue
		}
		if prev == noSlot { // unlink head
			t.buckets[b] = t.entries[s].next
		} else {
			t.entries[prev].next = t.entries[s].next
		}
		t.release(s)
		t.size--

		return true
	}

	return false
}

// RemoveString is Remove for a string key.
func (t *Table) RemoveString(key string) bool {
	return t.Remove([]byte(key))
}

// find returns the slot holding key, or noSlot.
func (t *Table) find(key []byte) int {
	if t.destroyed || len(key) > MaxKeyLen {
		return noSlot
	}
	h := t.opts.Hasher(key)
	for s := t.buckets[bucketOf(h, len(t.buckets))]; s != noSlot; s = t.entries[s].next {
		if t.entries[s].hash == h && t.entries[s].key == string(key) {
			return s
		}
	}

	return noSlot
}

// alloc stores e in a free slot (or a new one) and returns its index.
func (t *Table) alloc(e entry) int {
	if t.free != noSlot {
		s := t.free
		t.free = t.entries[s].next
		t.entries[s] = e

		return s
	}
	t.entries = append(t.entries, e)

	return len(t.entries) - 1
}

// release pushes slot s on the free list and drops its key.
func (t *Table) release(s int) {
	t.entries[s] = entry{next: t.free}
	t.free = s
}

// overloaded reports whether the load factor threshold is exceeded.
func (t *Table) overloaded() bool {
	return float64(t.size) > t.opts.LoadFactor*float64(len(t.buckets))
}

// grow doubles the bucket count (bounded by MaxCapacity) and rehashes
// every live entry.
//
// The only allocation happens before any chain is touched, so a failed
// allocation leaves the table exactly as it was. At the ceiling grow is
// a no-op and the table keeps its capacity.
func (t *Table) grow() {
	oldCap := len(t.buckets)
	newCap := oldCap * growthFactor
	if ceil := t.opts.MaxCapacity; ceil > 0 && newCap > ceil {
		newCap = ceil
	}
	if newCap <= oldCap {
		return
	}

	nb := newBuckets(newCap)
	for _, head := range t.buckets {
		for s := head; s != noSlot; {
			next := t.entries[s].next
			b := bucketOf(t.entries[s].hash, newCap)
			t.entries[s].next = nb[b] // push front; chain order is not preserved
			nb[b] = s
			s = next
		}
	}
	t.buckets = nb
}

// Len returns the number of stored entries.
func (t *Table) Len() int { return t.size }

// Cap returns the current number of buckets (0 after Destroy).
func (t *Table) Cap() int { return len(t.buckets) }

// LoadFactor returns Len()/Cap(), or 0 for a destroyed table.
func (t *Table) LoadFactor() float64 {
	if len(t.buckets) == 0 {
		return 0
	}

	return float64(t.size) / float64(len(t.buckets))
}

// Keys returns a sorted copy of every key.
func (t *Table) Keys() []string {
	keys := make([]string, 0, t.size)
	t.Range(func(key []byte, _ int) bool {
		keys = append(keys, string(key))

		return true
	})
	slices.Sort(keys)

	return keys
}

// Range calls fn for every entry in bucket order until fn returns false.
// fn receives a copy of the key. fn must not mutate the table.
func (t *Table) Range(fn func(key []byte, value int) bool) {
	for _, head := range t.buckets {
		for s := head; s != noSlot; s = t.entries[s].next {
			if !fn([]byte(t.entries[s].key), t.entries[s].value) {
				return
			}
		}
	}
}

// Stats reports the current shape of the table.
// Complexity: O(n + capacity).
func (t *Table) Stats() Stats {
	st := Stats{Len: t.size, Cap: len(t.buckets), LoadFactor: t.LoadFactor()}
	for _, head := range t.buckets {
		n := 0
		for s := head; s != noSlot; s = t.entries[s].next {
			n++
		}
		if n > 0 {
			st.UsedBuckets++
		}
		if n > st.LongestChain {
			st.LongestChain = n
		}
	}
	for s := t.free; s != noSlot; s = t.entries[s].next {
		st.FreeSlots++
	}

	return st
}

// Clear drops every entry and returns the table to its initial capacity.
func (t *Table) Clear() {
	if t.destroyed {
		return
	}
	t.reset()
}

// Destroy releases all storage. Afterwards Insert returns ErrDestroyed,
// lookups miss and Len and Cap report 0. Destroy is idempotent.
func (t *Table) Destroy() {
	t.buckets = nil
	t.entries = nil
	t.free = noSlot
	t.size = 0
	t.destroyed = true
}
