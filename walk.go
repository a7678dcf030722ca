package qptbl

import "strings"

// Walk calls a handler for every key-value pair in ascending
// lexicographic key order. The handler can continue the walk by
// returning true or abort it with false; Walk reports whether every
// pair was visited.
func (t *Trie) Walk(handler func(key string, val any) bool) bool {
	if t.size == 0 {
		return true
	}

	return walk(&t.root, handler)
}

// walk visits the leaf or recurses into the packed twig array, which
// is already in ascending nibble order.
func walk(twig *Twig, handler func(string, any) bool) bool {
	if twig.IsLeaf() {
		return handler(twig.key, twig.val)
	}

	for i := range twig.twigs {
		if !walk(&twig.twigs[i], handler) {
			return false
		}
	}

	return true
}

// Iter calls a handler for all keys with a given prefix, in ascending
// lexicographic order. It reports whether all prefixed keys were
// iterated; the handler can abort by returning false.
func (t *Trie) Iter(prefix string, handler func(KV) bool) bool {
	if t.size == 0 {
		return true
	}

	prefix = trimKey(prefix)

	if prefix == "" {
		return t.Walk(func(key string, val any) bool {
			return handler(KV{key, val})
		})
	}

	// walk for the best member, remembering the deepest subtrie
	// still constrained to the whole prefix
	var (
		cur = &t.root
		top = &t.root
	)

	for cur.IsBranch() {
		var (
			inPrefix = cur.index < len(prefix)
			bit      = cur.twigbit(prefix)
			off      int
		)

		switch {
		case cur.hastwig(bit):
			off = cur.twigoff(bit)
		case inPrefix:
			// a byte inside the prefix has no matching twig,
			// so no stored key starts with it
			return true
		}

		cur = &cur.twigs[off]

		if inPrefix {
			top = cur
		}
	}

	// every key below top agrees with this leaf on the first
	// len(prefix) bytes
	if !strings.HasPrefix(cur.key, prefix) {
		return true
	}

	return walk(top, func(key string, val any) bool {
		return handler(KV{key, val})
	})
}

// Keys returns all keys in ascending lexicographic order.
func (t *Trie) Keys() []string {
	keys := make([]string, 0, t.size)

	t.Walk(func(key string, _ any) bool {
		keys = append(keys, key)
		return true
	})

	return keys
}
