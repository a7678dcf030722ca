package qptbl

import (
	"fmt"
	"sort"
	"testing"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalk_Order(t *testing.T) {
	t.Parallel()

	qp := New(KV{"ab", 2}, KV{"a", 1}, KV{"ac", 3})

	val, ok := qp.Get("ab")
	require.Equal(t, 2, val)
	require.True(t, ok)

	var (
		keys []string
		vals []any
	)

	done := qp.Walk(func(key string, val any) bool {
		keys = append(keys, key)
		vals = append(vals, val)

		return true
	})

	assert.True(t, done)
	assert.Equal(t, []string{"a", "ab", "ac"}, keys)
	assert.Equal(t, []any{1, 2, 3}, vals)
}

func TestWalk_Abort(t *testing.T) {
	t.Parallel()

	var (
		qp      = New(KV{"a", 1}, KV{"b", 2}, KV{"c", 3})
		visited int
	)

	done := qp.Walk(func(string, any) bool {
		visited++

		return false
	})

	assert.False(t, done)
	assert.Equal(t, 1, visited)
}

func TestWalk_Empty(t *testing.T) {
	t.Parallel()

	done := New().Walk(func(string, any) bool {
		t.Fatal("handler called on an empty trie")

		return false
	})

	assert.True(t, done)
}

func TestWalk_Sorted_FakeData(t *testing.T) {
	t.Parallel()

	const (
		total = 10_000
		seed  = 1234567890
	)

	var (
		qp   = New()
		fake = gofakeit.New(seed)
	)

	for i := 0; i < total; i++ {
		qp.Set(fake.Sentence(3), i)
	}

	validate(t, qp)

	var keys []string

	qp.Walk(func(key string, _ any) bool {
		keys = append(keys, key)

		return true
	})

	require.Len(t, keys, qp.Len())

	sorted := append([]string(nil), keys...)
	sort.Strings(sorted)

	assert.Equal(t, sorted, keys)
}

func TestKeys(t *testing.T) {
	t.Parallel()

	qp := New(KV{"bcd", 1}, KV{"", 2}, KV{"b", 3}, KV{"abc", 4})

	assert.Equal(t, []string{"", "abc", "b", "bcd"}, qp.Keys())
}

func TestIter(t *testing.T) {
	t.Parallel()

	qp := New(
		KV{"a", 1},
		KV{"ab", 2},
		KV{"abc", 3},
		KV{"abd", 4},
		KV{"a\x00b", 5},
		KV{"b", 6},
		KV{"xyz", 7},
	)

	for _, tcase := range []*struct {
		Prefix  string
		ExpKeys []string
	}{
		{"", []string{"a", "a\x00b", "ab", "abc", "abd", "b", "xyz"}},
		{"a", []string{"a", "a\x00b", "ab", "abc", "abd"}},
		{"ab", []string{"ab", "abc", "abd"}},
		{"abc", []string{"abc"}},
		{"abe", nil},
		{"b", []string{"b"}},
		{"xy", []string{"xyz"}},
		{"xyzq", nil},
		{"z", nil},
	} {
		var (
			tcase = tcase
			name  = fmt.Sprintf("%#v", tcase.Prefix)
		)

		t.Run(name, func(t *testing.T) {
			var keys []string

			done := qp.Iter(tcase.Prefix, func(kv KV) bool {
				keys = append(keys, kv.Key)

				return true
			})

			assert.True(t, done)
			assert.Equal(t, tcase.ExpKeys, keys)
		})
	}
}

func TestIter_Abort(t *testing.T) {
	t.Parallel()

	var (
		qp      = New(KV{"ab", 1}, KV{"ac", 2}, KV{"ad", 3})
		visited int
	)

	done := qp.Iter("a", func(KV) bool {
		visited++

		return visited < 2
	})

	assert.False(t, done)
	assert.Equal(t, 2, visited)
}

func TestInvariants_AddDel(t *testing.T) {
	t.Parallel()

	const (
		total = 1_000
		seed  = 42
	)

	var (
		qp   = New()
		fake = gofakeit.New(seed)
		keys []string
	)

	for i := 0; i < total; i++ {
		key := fake.Word() + fake.Word()

		if _, found := qp.Get(key); found {
			continue
		}

		require.NoError(t, qp.Add(key, i))
		keys = append(keys, key)

		if i%100 == 0 {
			validate(t, qp)
		}
	}

	validate(t, qp)

	// delete in insertion order, validating as the trie shrinks
	for i, key := range keys {
		_, ok := qp.Del(key)
		require.True(t, ok, key)

		if i%100 == 0 {
			validate(t, qp)
		}
	}

	validate(t, qp)
	assert.Equal(t, 0, qp.Len())
}
