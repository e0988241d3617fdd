// SPDX-License-Identifier: MIT

package hashtable

import "fmt"

// CheckInvariants walks every chain and the free list and returns an error
// describing the first broken invariant:
//   - every live entry sits in bucket hash(key) mod Cap(),
//   - every key appears at most once,
//   - Len() equals the number of chained entries,
//   - every arena slot is either chained or free, never both.
func (t *Table) CheckInvariants() error {
	seen := make(map[string]bool, t.size)
	used := make([]bool, len(t.entries))
	count := 0
	for b, head := range t.buckets {
		for s := head; s != noSlot; s = t.entries[s].next {
			e := t.entries[s]
			if used[s] {
				return fmt.Errorf("slot %d linked twice", s)
			}
			used[s] = true
			if e.hash != t.opts.Hasher([]byte(e.key)) {
				return fmt.Errorf("slot %d caches a stale hash", s)
			}
			if want := bucketOf(e.hash, len(t.buckets)); want != b {
				return fmt.Errorf("key %q in bucket %d, want %d", e.key, b, want)
			}
			if seen[e.key] {
				return fmt.Errorf("key %q stored twice", e.key)
			}
			seen[e.key] = true
			count++
		}
	}
	if count != t.size {
		return fmt.Errorf("size %d but %d entries chained", t.size, count)
	}
	free := 0
	for s := t.free; s != noSlot; s = t.entries[s].next {
		if used[s] {
			return fmt.Errorf("slot %d is both chained and free", s)
		}
		used[s] = true
		free++
	}
	if count+free != len(t.entries) {
		return fmt.Errorf("%d slots leaked", len(t.entries)-count-free)
	}

	return nil
}
