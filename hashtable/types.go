// SPDX-License-Identifier: MIT

package hashtable

import (
	"errors"
	"math"
)

// Sentinel errors for hash table operations.
var (
	// ErrBadCapacity indicates an initial capacity below 1 or above the
	// configured maximum capacity.
	ErrBadCapacity = errors.New("hashtable: capacity must be >= 1")

	// ErrKeyTooLong indicates a key longer than MaxKeyLen bytes.
	ErrKeyTooLong = errors.New("hashtable: key too long")

	// ErrDestroyed is returned by mutating calls on a destroyed table.
	ErrDestroyed = errors.New("hashtable: table destroyed")
)

// Defaults and limits.
const (
	// MaxKeyLen is the longest key, in bytes, accepted by Insert.
	MaxKeyLen = 256

	// DefaultLoadFactor is the size/capacity ratio above which the table grows.
	DefaultLoadFactor = 0.75

	// DefaultCapacity is a reasonable initial bucket count for callers
	// without a size estimate.
	DefaultCapacity = 16

	// growthFactor multiplies the bucket count on each resize.
	growthFactor = 2
)

const (
	panicLoadFactorInvalid  = "hashtable: WithLoadFactor: factor must be finite and > 0"
	panicMaxCapacityInvalid = "hashtable: WithMaxCapacity: max must be >= 0"
	panicHasherNil          = "hashtable: WithHasher: hasher must be non-nil"
)

// HashFunc maps a key to a 64-bit hash. It must be deterministic.
type HashFunc func(key []byte) uint64

// Option configures a Table at construction.
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options holds the construction-time settings of a Table.
type Options struct {
	// LoadFactor is the growth threshold: the table doubles once
	// Len()/Cap() exceeds it.
	LoadFactor float64

	// Hasher maps keys to hashes.
	Hasher HashFunc

	// MaxCapacity caps the bucket count; 0 means unlimited.
	MaxCapacity int
}

// DefaultOptions returns Options with:
//   - LoadFactor 0.75
//   - Polynomial hashing
//   - no capacity ceiling
func DefaultOptions() Options {
	return Options{
		LoadFactor:  DefaultLoadFactor,
		Hasher:      Polynomial,
		MaxCapacity: 0,
	}
}

// WithLoadFactor sets the growth threshold. Chaining tolerates factors
// above 1, so any finite positive value is accepted.
func WithLoadFactor(f float64) Option {
	if !(f > 0) || math.IsInf(f, 0) {
		panic(panicLoadFactorInvalid)
	}

	return func(o *Options) { o.LoadFactor = f }
}

// WithHasher installs a custom hash function.
func WithHasher(h HashFunc) Option {
	if h == nil {
		panic(panicHasherNil)
	}

	return func(o *Options) { o.Hasher = h }
}

// WithMaxCapacity caps growth at n buckets. Zero removes the cap.
func WithMaxCapacity(n int) Option {
	if n < 0 {
		panic(panicMaxCapacityInvalid)
	}

	return func(o *Options) { o.MaxCapacity = n }
}

// Stats is a point-in-time summary of a Table's shape.
type Stats struct {
	// Len is the number of stored entries.
	Len int

	// Cap is the number of buckets.
	Cap int

	// UsedBuckets counts buckets holding at least one entry.
	UsedBuckets int

	// LongestChain is the length of the longest bucket chain.
	LongestChain int

	// FreeSlots counts arena slots waiting for reuse.
	FreeSlots int

	// LoadFactor is Len/Cap.
	LoadFactor float64
}
