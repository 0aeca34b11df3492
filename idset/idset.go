// Package idset: packed bitmap set implementation.
//
// This file declares the Set type, its constructor, and all membership,
// bulk, and enumeration operations. Bits are stored little-endian within
// each uint64 word: id i lives in word i>>6 at bit i&63.
package idset

import "math/bits"

const wordBits = 64

// Set is a fixed-universe bitmap set of integer ids.
// The zero value is an empty set over an empty universe.
type Set struct {
	n     int      // universe size; valid ids are [0, n)
	words []uint64 // packed membership bits, len == ceil(n/64)
}

// New returns an empty Set over the universe [0, n).
// A non-positive n yields an empty universe.
// Complexity: O(n/64).
func New(n int) *Set {
	if n <= 0 {
		return &Set{}
	}

	return &Set{n: n, words: make([]uint64, (n+wordBits-1)>>6)}
}

// Universe returns the universe size n fixed at construction.
func (s *Set) Universe() int { return s.n }

// Add inserts id into the set. Ids outside [0, n) are ignored.
// Complexity: O(1).
func (s *Set) Add(id int) {
	if id < 0 || id >= s.n {
		return
	}
	s.words[id>>6] |= 1 << (uint(id) & 63)
}

// Remove deletes id from the set. Ids outside [0, n) are ignored.
// Complexity: O(1).
func (s *Set) Remove(id int) {
	if id < 0 || id >= s.n {
		return
	}
	s.words[id>>6] &^= 1 << (uint(id) & 63)
}

// Contains reports whether id is a member. Ids outside [0, n) report false.
// Complexity: O(1).
func (s *Set) Contains(id int) bool {
	if id < 0 || id >= s.n {
		return false
	}

	return s.words[id>>6]&(1<<(uint(id)&63)) != 0
}

// Count returns the number of members.
// Complexity: O(n/64).
func (s *Set) Count() int {
	total := 0
	for _, w := range s.words {
		total += bits.OnesCount64(w)
	}

	return total
}

// IsEmpty reports whether the set has no members.
// Complexity: O(n/64).
func (s *Set) IsEmpty() bool {
	for _, w := range s.words {
		if w != 0 {
			return false
		}
	}

	return true
}

// Clear removes all members, keeping the universe.
// Complexity: O(n/64).
func (s *Set) Clear() {
	for i := range s.words {
		s.words[i] = 0
	}
}

// Fill adds every id of the universe to the set.
// Complexity: O(n/64).
func (s *Set) Fill() {
	if s.n == 0 {
		return
	}
	for i := range s.words {
		s.words[i] = ^uint64(0)
	}
	// Mask the unused tail bits of the last word.
	if tail := uint(s.n) & 63; tail != 0 {
		s.words[len(s.words)-1] &= (1 << tail) - 1
	}
}

// Clone returns an independent copy of the set.
// Complexity: O(n/64).
func (s *Set) Clone() *Set {
	cp := &Set{n: s.n, words: make([]uint64, len(s.words))}
	copy(cp.words, s.words)

	return cp
}

// ForEach calls fn for each member in ascending id order.
// Iteration stops early when fn returns false.
// Complexity: O(n/64 + k) for k members.
func (s *Set) ForEach(fn func(id int) bool) {
	for wi, w := range s.words {
		for w != 0 {
			tz := bits.TrailingZeros64(w)
			if !fn((wi << 6) + tz) {
				return
			}
			w &^= 1 << uint(tz)
		}
	}
}

// Members returns all member ids in ascending order.
// Complexity: O(n/64 + k) for k members.
func (s *Set) Members() []int {
	out := make([]int, 0, s.Count())
	s.ForEach(func(id int) bool {
		out = append(out, id)

		return true
	})

	return out
}
