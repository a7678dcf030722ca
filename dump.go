package qptbl

import (
	"fmt"
	"io"
	"strings"
	"unsafe"
)

// Stats describes the shape and cost of a trie.
type Stats struct {
	Kind     string  // always "qp"
	Size     int     // bytes spent on twig structs
	AvgDepth float64 // mean number of branches above a leaf
	Branches int
	Leaves   int
}

// Stats walks the trie and accumulates structural statistics. Nothing
// is mutated; the walk is safe to run concurrently with reads.
func (t *Trie) Stats() Stats {
	st := Stats{Kind: "qp"}

	if t.size == 0 {
		return st
	}

	depth := statsRec(&t.root, 0, &st)

	if st.Leaves > 0 {
		st.AvgDepth = float64(depth) / float64(st.Leaves)
	}

	return st
}

// statsRec returns the sum of leaf depths below twig.
func statsRec(twig *Twig, depth int, st *Stats) int {
	st.Size += int(unsafe.Sizeof(*twig))

	if twig.IsLeaf() {
		st.Leaves++

		return depth
	}

	st.Branches++

	sum := 0
	for i := range twig.twigs {
		sum += statsRec(&twig.twigs[i], depth+1, st)
	}

	return sum
}

// Dump writes an indentation-nested structural trace of the trie to
// w. For debugging; the format is not stable.
func (t *Trie) Dump(w io.Writer) {
	fmt.Fprintf(w, "qptbl (%d keys)\n", t.size)

	if t.size == 0 {
		return
	}

	dumpRec(w, &t.root, 0)
}

func dumpRec(w io.Writer, twig *Twig, depth int) {
	indent := strings.Repeat("  ", depth)

	if twig.IsLeaf() {
		fmt.Fprintf(w, "%sleaf %q -> %v\n", indent, twig.key, twig.val)

		return
	}

	half := "hi"
	if twig.flags == flagLower {
		half = "lo"
	}

	fmt.Fprintf(w, "%sbranch byte %d/%s bitmap %016b\n",
		indent, twig.index, half, twig.bitmap)

	for nib := 0; nib < bitmapWidth; nib++ {
		bit := uint16(1) << nib

		if !twig.hastwig(bit) {
			continue
		}

		fmt.Fprintf(w, "%stwig %x\n", indent, nib)
		dumpRec(w, &twig.twigs[twig.twigoff(bit)], depth+1)
	}
}

// dumpString is a convenience wrapper for tests and debugging.
func (t *Trie) dumpString() string {
	w := new(strings.Builder)
	t.Dump(w)

	return w.String()
}
