// Package qptbl implements an ordered key-value table as a QP-Trie:
// a quadbit popcount patricia trie.
//
// In a trie, keys are split into digits of some radix and successive
// digits select branches from successive nodes, so all keys in a
// subtrie share an identical prefix. A patricia (crit-bit) trie omits
// nodes that have only one child; each branch is annotated with the
// position of the digit it tests, and positions always increase as
// you go deeper. Since skipped digits are never examined on the way
// down, a leaf keeps a copy of its key so the untested parts can be
// verified on arrival.
//
// A QP-Trie consumes keys a quadbit (nibble, half-byte) at a time, so
// it is a radix-16 patricia trie: every branch has between 2 and 16
// children. Which children are present is recorded in a 16-bit bitmap
// and the children themselves are kept in a packed array of exactly
// popcount(bitmap) slots, ordered by nibble value. A child's slot is
// found by counting the present children with smaller nibble values:
//
//	bit := uint16(1) << nib
//	if bitmap&bit != 0 {
//		child = twigs[popcount(bitmap&(bit-1))]
//	}
//
// Absent children therefore cost nothing, and compared to a crit-bit
// trie a QP-Trie has about half the depth and fewer indirections.
// The same popcount compaction is what HAMTs use for their nodes.
//
// Keys are arbitrary byte strings with one caveat inherited from the
// branching scheme: a branch testing a position beyond a key's end
// routes that key through the same bitmap bit as a 0x00 byte would.
// Trailing zero bytes are therefore not significant - "ab\x00" and
// "ab" name the same entry - and the operations strip them on entry.
// Zero bytes in the middle of a key are fine, and so is the empty
// key. Traversal visits keys in ascending lexicographic byte order.
//
// A Trie must not be mutated concurrently: Get and the traversals may
// run in parallel with each other, but Set, Add and Del require
// external synchronization against every other operation.
package qptbl
