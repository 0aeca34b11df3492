// Package idset provides a packed bitmap set over a dense integer
// universe [0, n).
//
// What:
//
//   - Set stores membership of ids in []uint64 words, one bit per id.
//   - Add / Remove / Contains are O(1); Count is a word-wise popcount.
//   - ForEach and Members enumerate members in ascending id order.
//
// Why:
//
//   - Graph ids are dense and sequential, so a bitmap beats a hash set
//     on both memory (one bit per id) and iteration locality.
//   - Traversal visited-tracking, component labelling, and the subgraph
//     solver all key on "is id in this set" in their hot loops.
//
// Out-of-universe ids are tolerated: Add and Remove are silent no-ops,
// Contains reports false. The universe is fixed at construction.
//
// Complexity:
//
//   - Add, Remove, Contains: O(1).
//   - Count, IsEmpty, Clear, Fill, Clone: O(n/64).
//   - ForEach, Members: O(n/64 + k) for k members.
//
// Set is not safe for concurrent use.
package idset
