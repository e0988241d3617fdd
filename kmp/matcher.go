// SPDX-License-Identifier: MIT

package kmp

// Matcher is a compiled pattern. The prefix table is built once by Compile
// and read-only afterwards, so a Matcher may be shared by goroutines that
// only search with it.
type Matcher struct {
	pattern []byte
	pi      []int
}

// Compile copies pattern and builds its prefix table.
// Returns ErrEmptyPattern for an empty pattern.
func Compile(pattern []byte) (*Matcher, error) {
	if len(pattern) == 0 {
		return nil, ErrEmptyPattern
	}
	p := append([]byte(nil), pattern...) // own the bytes

	return &Matcher{pattern: p, pi: prefixTable(p)}, nil
}

// MustCompile is like Compile but panics on an empty pattern.
// Intended for package-level patterns known at build time.
func MustCompile(pattern string) *Matcher {
	m, err := Compile([]byte(pattern))
	if err != nil {
		panic(err)
	}

	return m
}

// Pattern returns a copy of the compiled pattern.
func (m *Matcher) Pattern() []byte {
	return append([]byte(nil), m.pattern...)
}

// Table returns a copy of the prefix table.
func (m *Matcher) Table() []int {
	return append([]int(nil), m.pi...)
}

// FindAll returns every (possibly overlapping) offset of the pattern in text.
func (m *Matcher) FindAll(text []byte) []int {
	if len(m.pattern) > len(text) {
		return []int{}
	}

	return scan(text, m.pattern, m.pi, -1)
}

// FindFirst returns the first offset of the pattern in text, or -1.
func (m *Matcher) FindFirst(text []byte) int {
	if len(m.pattern) > len(text) {
		return -1
	}
	hits := scan(text, m.pattern, m.pi, 1)
	if len(hits) == 0 {
		return -1
	}

	return hits[0]
}

// Count returns the number of (possibly overlapping) occurrences in text.
func (m *Matcher) Count(text []byte) int {
	return len(m.FindAll(text))
}
