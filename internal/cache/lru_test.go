package cache_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stage/internal/cache"
	"go.trai.ch/stage/internal/core/domain"
)

func TestLRU_InsertAndGet(t *testing.T) {
	c := cache.New[int](3, nil, nil)

	c.Insert("a", 1)
	c.Insert("b", 2)

	v, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	_, ok = c.Get("missing")
	assert.False(t, ok)
	assert.Equal(t, 2, c.Len())
}

func TestLRU_EvictsOldestAtBound(t *testing.T) {
	var evicted []string
	c := cache.New[int](2, nil, func(key string) {
		evicted = append(evicted, key)
	})

	c.Insert("a", 1)
	c.Insert("b", 2)
	c.Insert("c", 3)

	assert.Equal(t, []string{"a"}, evicted)
	assert.Equal(t, []string{"b", "c"}, c.Keys())
	_, ok := c.Get("a")
	assert.False(t, ok)
}

func TestLRU_TouchProtectsFromEviction(t *testing.T) {
	c := cache.New[int](2, nil, nil)

	c.Insert("a", 1)
	c.Insert("b", 2)
	c.Touch("a")
	c.Insert("c", 3)

	// b was least recently used once a was touched.
	_, ok := c.Get("b")
	assert.False(t, ok)
	assert.Equal(t, []string{"a", "c"}, c.Keys())
}

func TestLRU_GetDoesNotAlterOrder(t *testing.T) {
	c := cache.New[int](2, nil, nil)

	c.Insert("a", 1)
	c.Insert("b", 2)
	c.Get("a")
	c.Insert("c", 3)

	// A plain Get is not a use; a is still evicted first.
	_, ok := c.Get("a")
	assert.False(t, ok)
}

func TestLRU_InsertSameKeyDisposesOld(t *testing.T) {
	var disposed []int
	c := cache.New[int](3, func(_ string, v int) {
		disposed = append(disposed, v)
	}, nil)

	c.Insert("a", 1)
	c.Insert("a", 2)

	assert.Equal(t, []int{1}, disposed)
	assert.Equal(t, 1, c.Len())
	v, _ := c.Get("a")
	assert.Equal(t, 2, v)
}

func TestLRU_InsertSameKeyMovesToTail(t *testing.T) {
	c := cache.New[int](2, nil, nil)

	c.Insert("a", 1)
	c.Insert("b", 2)
	c.Insert("a", 3)
	c.Insert("c", 4)

	// a was refreshed, so b drops out.
	_, ok := c.Get("b")
	assert.False(t, ok)
	assert.Equal(t, []string{"a", "c"}, c.Keys())
}

func TestLRU_RemoveDoesNotDispose(t *testing.T) {
	disposed := 0
	c := cache.New[int](3, func(string, int) { disposed++ }, nil)

	c.Insert("a", 1)
	v, ok := c.Remove("a")

	require.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Zero(t, disposed)
	assert.Zero(t, c.Len())

	_, ok = c.Remove("a")
	assert.False(t, ok)
}

func TestLRU_SetMax(t *testing.T) {
	t.Run("rejects bounds below one", func(t *testing.T) {
		c := cache.New[int](3, nil, nil)

		err := c.SetMax(0)
		require.ErrorIs(t, err, domain.ErrInvalidConfig)

		err = c.SetMax(-5)
		require.ErrorIs(t, err, domain.ErrInvalidConfig)
		assert.Equal(t, 3, c.Max())
	})

	t.Run("shrinking evicts oldest entries", func(t *testing.T) {
		var evicted []string
		disposed := 0
		c := cache.New[int](3, func(string, int) { disposed++ }, func(key string) {
			evicted = append(evicted, key)
		})

		c.Insert("a", 1)
		c.Insert("b", 2)
		c.Insert("c", 3)

		require.NoError(t, c.SetMax(1))
		assert.Equal(t, []string{"a", "b"}, evicted)
		assert.Equal(t, 2, disposed)
		assert.Equal(t, []string{"c"}, c.Keys())
	})

	t.Run("growing keeps entries", func(t *testing.T) {
		c := cache.New[int](1, nil, nil)
		c.Insert("a", 1)

		require.NoError(t, c.SetMax(5))
		assert.Equal(t, 1, c.Len())
		assert.Equal(t, 5, c.Max())
	})
}

func TestLRU_ClearDisposesWithoutEvictionCallback(t *testing.T) {
	var disposed []string
	evictions := 0
	c := cache.New[int](3, func(key string, _ int) {
		disposed = append(disposed, key)
	}, func(string) { evictions++ })

	c.Insert("a", 1)
	c.Insert("b", 2)
	c.Clear()

	assert.ElementsMatch(t, []string{"a", "b"}, disposed)
	assert.Zero(t, evictions)
	assert.Zero(t, c.Len())
	assert.Empty(t, c.Keys())
}

func TestLRU_KeysReturnsCopy(t *testing.T) {
	c := cache.New[int](3, nil, nil)
	c.Insert("a", 1)
	c.Insert("b", 2)

	keys := c.Keys()
	keys[0] = "mutated"

	assert.Equal(t, []string{"a", "b"}, c.Keys())
}
