/*
 * Copyright (c) 2025-present Sigma-Soft, Ltd.
 */

package objcache_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voedger/edm/pkg/objcache"
)

func TestCacheBasicUsage(t *testing.T) {
	require := require.New(t)

	cache := objcache.New[string, []int](2, nil)

	t.Run("should be empty after creation", func(t *testing.T) {
		_, ok := cache.Get("a")
		require.False(ok)
		require.Zero(cache.Len())
	})

	t.Run("should get put value", func(t *testing.T) {
		cache.Put("a", []int{1})
		v, ok := cache.Get("a")
		require.True(ok)
		require.Equal([]int{1}, v)
	})

	t.Run("should be empty after purge", func(t *testing.T) {
		cache.Purge()
		_, ok := cache.Get("a")
		require.False(ok)
		require.Zero(cache.Len())
	})
}

func TestCacheEviction(t *testing.T) {
	require := require.New(t)

	evicted := []string{}
	cache := objcache.New(2, func(k string, _ int) { evicted = append(evicted, k) })

	cache.Put("a", 1)
	cache.Put("b", 2)
	_, _ = cache.Get("a")
	cache.Put("c", 3)

	require.Equal([]string{"b"}, evicted)
	require.Equal(2, cache.Len())

	_, ok := cache.Get("b")
	require.False(ok)
}

func TestCacheConcurrentAccess(t *testing.T) {
	require := require.New(t)

	const goroutines, keys = 8, 100
	cache := objcache.New[string, int](keys, nil)

	wg := sync.WaitGroup{}
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < keys; i++ {
				k := fmt.Sprint(i)
				if _, ok := cache.Get(k); !ok {
					cache.Put(k, i)
				}
			}
		}()
	}
	wg.Wait()

	require.Equal(keys, cache.Len())
	for i := 0; i < keys; i++ {
		v, ok := cache.Get(fmt.Sprint(i))
		require.True(ok)
		require.Equal(i, v)
	}
}

func TestCacheNewPanics(t *testing.T) {
	require.Panics(t, func() { objcache.New[string, int](0, nil) })
}
