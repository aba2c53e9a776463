/*
 * Copyright (c) 2025-present Sigma-Soft, Ltd.
 */

package objcache

// Objects cache.
//
// Cache is safe for concurrent use.
type ICache[K comparable, V any] interface {
	// Gets value by key. Returns value and true if key exists, zero value and false otherwise
	Get(K) (value V, ok bool)

	// Puts value with key
	Put(K, V)

	// Removes all values from cache
	Purge()

	// Returns number of values in cache
	Len() int
}
