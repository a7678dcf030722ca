package qptbl

import (
	"strings"
)

// Trie is an ordered string-keyed table. The zero value is an empty
// table ready for use.
type Trie struct {
	root Twig
	size int
}

// New returns a new Trie optionally initialized with the given
// key-value pairs.
func New(init ...KV) *Trie {
	qp := &Trie{}

	for _, kv := range init {
		qp.Set(kv.Key, kv.Val)
	}

	return qp
}

// Len returns the number of keys in the trie.
func (t *Trie) Len() int {
	return t.size
}

// trimKey strips insignificant trailing NUL bytes (see the package
// documentation).
func trimKey(key string) string {
	return strings.TrimRight(key, "\x00")
}

// Get returns the value associated with the given key.
func (t *Trie) Get(key string) (any, bool) {
	if t.size == 0 {
		return nil, false
	}

	key = trimKey(key)
	cur := &t.root

	for cur.IsBranch() {
		bit := cur.twigbit(key)

		if !cur.hastwig(bit) {
			return nil, false
		}

		cur = &cur.twigs[cur.twigoff(bit)]
	}

	// a leaf reached through matching nibbles can still hold an
	// unrelated key - the untested parts have to be verified
	if cur.key != key {
		return nil, false
	}

	return cur.val, true
}

// Set associates a value with a key, overwriting any previous value.
// Returns the previous value and whether it was replaced.
func (t *Trie) Set(key string, val any) (any, bool) {
	return t.insert(trimKey(key), val, true)
}

// Add associates a value with a key that must not be present yet.
// Returns ErrDuplicateKey, leaving the stored value unchanged, if it
// is.
func (t *Trie) Add(key string, val any) error {
	if _, found := t.insert(trimKey(key), val, false); found {
		return ErrDuplicateKey
	}

	return nil
}

func (t *Trie) insert(key string, val any, replace bool) (any, bool) {
	if t.size == 0 {
		t.root = Twig{flags: flagLeaf, key: key, val: val}
		t.size++

		return nil, false
	}

	// find the most similar leaf - where a twig is absent any
	// sibling will do, since all keys below share the tested prefix
	cur := &t.root

	for cur.IsBranch() {
		var (
			bit = cur.twigbit(key)
			off int
		)

		if cur.hastwig(bit) {
			off = cur.twigoff(bit)
		}

		cur = &cur.twigs[off]
	}

	// find the first differing byte
	var (
		max = len(key)
		off int
	)

	if len(cur.key) > max {
		max = len(cur.key)
	}

	for off = 0; off < max; off++ {
		if byteAt(key, off) != byteAt(cur.key, off) {
			goto newKey
		}
	}

	// the leaf has the same key
	if !replace {
		return cur.val, true
	}

	{
		old := cur.val
		cur.val = val

		return old, true
	}

newKey:
	// the new branch tests the first differing nibble
	var (
		k1 = byteAt(key, off)
		k2 = byteAt(cur.key, off)

		flags = flagLower
	)

	if (k1^k2)&0xf0 != 0 {
		flags = flagUpper
	}

	// descend again to where the new branch belongs: the first twig
	// whose (index, flags) position is at or past the divergence
	bit1 := nibbit(k1, flags)
	cur = &t.root

	for cur.IsBranch() {
		if off == cur.index && flags == cur.flags {
			goto growBranch
		}

		if off < cur.index || (off == cur.index && flags < cur.flags) {
			break
		}

		cur = &cur.twigs[cur.twigoff(cur.twigbit(key))]
	}

	// split: replace cur with a 2-twig branch holding the old
	// subtrie and the new leaf, ordered by nibble value
	{
		var (
			bit2  = nibbit(k2, flags)
			leaf  = Twig{flags: flagLeaf, key: key, val: val}
			twigs = make([]Twig, 2)
		)

		if bit1 < bit2 {
			twigs[0], twigs[1] = leaf, *cur
		} else {
			twigs[0], twigs[1] = *cur, leaf
		}

		*cur = Twig{
			twigs:  twigs,
			index:  off,
			bitmap: bit1 | bit2,
			flags:  flags,
		}
		t.size++

		return nil, false
	}

growBranch:
	// grow the existing branch by exactly one twig at the bit's rank
	{
		var (
			at    = cur.twigoff(bit1)
			total = cur.twigmax()
			twigs = make([]Twig, total+1)
		)

		copy(twigs[:at], cur.twigs[:at])
		twigs[at] = Twig{flags: flagLeaf, key: key, val: val}
		copy(twigs[at+1:], cur.twigs[at:])

		cur.twigs = twigs
		cur.bitmap |= bit1
		t.size++

		return nil, false
	}
}

// Del removes a key from the trie and returns its value, if any.
func (t *Trie) Del(key string) (any, bool) {
	if t.size == 0 {
		return nil, false
	}

	key = trimKey(key)

	var (
		cur    = &t.root
		parent *Twig
		bit    uint16
	)

	for cur.IsBranch() {
		bit = cur.twigbit(key)

		if !cur.hastwig(bit) {
			return nil, false
		}

		parent = cur
		cur = &cur.twigs[cur.twigoff(bit)]
	}

	if cur.key != key {
		return nil, false
	}

	val := cur.val
	t.size--

	if parent == nil {
		// the root was the only leaf
		t.root = Twig{}

		return val, true
	}

	var (
		at    = parent.twigoff(bit)
		total = parent.twigmax()
	)

	if total == 2 {
		// a branch may not keep a single twig - collapse it into
		// the survivor
		*parent = parent.twigs[1-at]

		return val, true
	}

	twigs := make([]Twig, total-1)
	copy(twigs[:at], parent.twigs[:at])
	copy(twigs[at:], parent.twigs[at+1:])

	parent.twigs = twigs
	parent.bitmap &^= bit

	return val, true
}
