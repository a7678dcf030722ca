package qptbl

import (
	"fmt"
	"strconv"
	"strings"
)

// Twig flags act as a dynamic type tag distinguishing the two node
// variants and, for a branch, which half of the tested byte it
// examines. A byte takes two trie levels: first the upper nibble,
// then the lower. The combined value (index, flags) strictly
// increases along any root-to-leaf path.
const (
	flagLeaf  byte = iota // key/val twig
	flagUpper             // branch testing the upper nibble of byte [index]
	flagLower             // branch testing the lower nibble of byte [index]
)

// KV represents a key-value pair.
type KV struct {
	Key string
	Val any
}

// Twig is a uniform element of a QP-Trie: either a leaf holding a
// key-value pair or a branch testing one nibble of the key.
//
// A branch's bitmap has a bit set for every nibble value a child
// exists for, and twigs holds exactly popcount(bitmap) children in
// ascending nibble order. Leaves leave the branch fields zero and
// branches leave the leaf fields zero.
type Twig struct {
	twigs  []Twig // branch: packed child array
	key    string // leaf: stored key copy
	val    any    // leaf: caller's value
	index  int    // branch: byte offset into the key under test
	bitmap uint16 // branch: presence bitmap over nibble values
	flags  byte
}

func (twig *Twig) IsLeaf() bool {
	return twig.flags == flagLeaf
}

func (twig *Twig) IsBranch() bool {
	return twig.flags != flagLeaf
}

// twigbit derives the bitmap mask a key selects at this branch. A key
// that ends before the tested byte is routed through bit 0 - the same
// bit a 0x00 byte selects - so that short keys always have a
// well-defined, lexicographically smallest slot.
func (twig *Twig) twigbit(key string) uint16 {
	if twig.index >= len(key) {
		return 1
	}

	return nibbit(key[twig.index], twig.flags)
}

// hastwig reports whether the child selected by bit is present.
func (twig *Twig) hastwig(bit uint16) bool {
	return twig.bitmap&bit != 0
}

// twigoff is the rank of bit among the set bits of the bitmap, which
// is the child's position in the packed array.
func (twig *Twig) twigoff(bit uint16) int {
	return popcnt(twig.bitmap & (bit - 1))
}

// twigmax is the number of present children.
func (twig *Twig) twigmax() int {
	return popcnt(twig.bitmap)
}

func (twig *Twig) String() string {
	var b strings.Builder

	b.WriteString("<qptbl|")

	if twig.IsLeaf() {
		b.WriteString("Leaf")
		b.WriteString(fmt.Sprintf("|%#v:%v", twig.key, twig.val))
	} else {
		b.WriteString("Branch")

		half := "hi"
		if twig.flags == flagLower {
			half = "lo"
		}

		b.WriteString("|ix:" + strconv.Itoa(twig.index) + "," + half)
		b.WriteString(fmt.Sprintf("|bmp:%016b", twig.bitmap))
	}

	b.WriteByte('>')

	return b.String()
}
