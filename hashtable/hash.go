// SPDX-License-Identifier: MIT

package hashtable

import (
	"hash/fnv"

	"github.com/cespare/xxhash/v2"
)

// polyBase is the multiplier of the polynomial rolling hash.
const polyBase = 31

// Polynomial hashes key as Σ key[i]·31^(n-1-i) mod 2⁶⁴ (Horner form).
// Order-sensitive and dependent on every byte.
func Polynomial(key []byte) uint64 {
	var h uint64
	for _, b := range key {
		h = h*polyBase + uint64(b)
	}

	return h
}

// XXHash hashes key with xxHash64. Better dispersion than Polynomial for
// keys sharing long prefixes or suffixes.
func XXHash(key []byte) uint64 {
	return xxhash.Sum64(key)
}

// FNV1a hashes key with 64-bit FNV-1a.
func FNV1a(key []byte) uint64 {
	h := fnv.New64a()
	_, _ = h.Write(key)

	return h.Sum64()
}
