// SPDX-License-Identifier: MIT

// Package hashtable implements a separately chained hash map from byte-string
// keys to int values that grows by doubling.
//
// What:
//
//   - Insert replaces the value of an existing key or appends a new entry
//     at the tail of its bucket chain, then grows the table when the load
//     factor exceeds the configured threshold (0.75 by default).
//   - Get and Contains scan one chain; Remove unlinks an entry. The table
//     never shrinks.
//   - Growth doubles the bucket count and rehashes every entry; this is
//     the only moment bucket indexes change. Order inside a chain is not
//     part of the contract and may change on growth.
//
// Storage:
//
//	Entries live in one arena slice and chains link arena slots by index
//	(next == -1 ends a chain). The bucket array holds head slots. Removed
//	slots go on a free list and are reused by later inserts. Keys are
//	copied on insert; the table never retains caller memory.
//
// Hashing:
//
//	bucket = hash(key) mod capacity. Polynomial (a base-31 rolling hash)
//	is the default; XXHash and FNV1a are available through WithHasher.
//
// Failure model:
//
//	A resize either completes or leaves the table at its previous capacity
//	with every entry intact: the new bucket array is allocated before any
//	entry is relinked. WithMaxCapacity caps growth; at the cap the table
//	keeps working with a higher load factor.
//
// Concurrency:
//
//	A Table is NOT safe for concurrent use; callers serialize access.
//
// Complexity:
//
//   - Insert, Get, Contains, Remove: O(1) amortized, O(chain) worst
//   - growth:                        O(n + capacity)
//
// Errors:
//
//   - ErrBadCapacity  initial capacity < 1 or above the configured maximum
//   - ErrKeyTooLong   key longer than MaxKeyLen bytes
//   - ErrDestroyed    the table was destroyed
package hashtable
