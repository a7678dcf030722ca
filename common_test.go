package qptbl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// validate checks every structural invariant of the trie and that the
// leaf count matches Len.
func validate(t *testing.T, qp *Trie) {
	t.Helper()

	if qp.Len() == 0 {
		require.Equal(t, Twig{}, qp.root)
		return
	}

	keys := checkTwig(t, &qp.root, -1)

	require.Len(t, keys, qp.Len())
}

// checkTwig validates the subtrie and returns its leaf keys. pos is
// the parent branch's combined (index, flags) position.
func checkTwig(t *testing.T, twig *Twig, pos int) []string {
	t.Helper()

	if twig.IsLeaf() {
		require.Nil(t, twig.twigs)
		require.Zero(t, twig.bitmap)

		return []string{twig.key}
	}

	// branch positions strictly increase from root to leaf
	branchPos := twig.index<<1 | int(twig.flags-1)
	require.Greater(t, branchPos, pos)

	// no branch has fewer than two children, and the packed array
	// is exactly as long as the bitmap says
	total := twig.twigmax()
	require.GreaterOrEqual(t, total, 2)
	require.Equal(t, total, len(twig.twigs))
	require.Empty(t, twig.key)
	require.Nil(t, twig.val)

	var keys []string

	for nib := 0; nib < bitmapWidth; nib++ {
		bit := uint16(1) << nib

		if !twig.hastwig(bit) {
			continue
		}

		sub := checkTwig(t, &twig.twigs[twig.twigoff(bit)], branchPos)

		// every key below the child is routed to it by the branch
		for _, key := range sub {
			require.Equal(t, bit, twig.twigbit(key), "%v / %#v", twig, key)
		}

		keys = append(keys, sub...)
	}

	return keys
}
