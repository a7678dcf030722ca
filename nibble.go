package qptbl

import (
	"github.com/hideo55/go-popcount"
)

const (
	nibbleWidth = 4                // bits per trie digit
	bitmapWidth = 1 << nibbleWidth // 16 possible nibble values
)

// popcnt counts the set bits of a branch bitmap.
func popcnt(bitmap uint16) int {
	return int(popcount.Count(uint64(bitmap)))
}

// nibbit selects a nibble from a key byte according to the branch
// flags and turns it into a single-bit bitmap mask.
//
// mask:
//
//	flagUpper -> 0xff -> 0xf0
//	flagLower -> 0x00 -> 0x0f
//
// shift:
//
//	flagUpper -> 1 -> 4
//	flagLower -> 0 -> 0
func nibbit(k, flags byte) uint16 {
	var (
		mask  = (flags - 2) ^ 0x0f
		shift = (2 - flags) << 2
	)

	return uint16(1) << ((k & mask) >> shift)
}

// byteAt reads a key byte, continuing a key past its end with zeros
// the way a C string ends with NUL.
func byteAt(key string, off int) byte {
	if off < len(key) {
		return key[off]
	}

	return 0
}
