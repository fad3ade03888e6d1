// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cache implements the memo tables used by the calendar engine.
//
// Cache is a process-wide, bounded, concurrency-safe random-replacement cache
// for values that depend only on their key, such as the start of a Hebrew
// year. Memo is an unbounded table owned by a single session; it counts hits
// and misses so callers can observe how much work a session saved.
package cache

import (
	"sync"
)

// DefaultSize is the default size of a cache.
const DefaultSize = 1 << 10

// Cache is a random-replacement cache for pure functions of K.
//
// Its zero value is safe to use. It is safe for concurrent use.
type Cache[K comparable, V any] struct {
	// MaxSize is the maximum size of the cache. If it is zero, DefaultSize is used.
	//
	// If V implements Sizer, it is used to estimate size. Otherwise every
	// element is assumed to have size 1.
	//
	// MaxSize is not safe to mutate concurrently with calls to Get.
	MaxSize int64

	mu sync.RWMutex
	m  map[K]V
	n  int64
}

// Get the element associated with k from the cache, using fill to populate
// missing elements.
func (c *Cache[K, V]) Get(k K, fill func(K) V) V {
	c.mu.RLock()
	if v, ok := c.m[k]; ok {
		c.mu.RUnlock()
		return v
	}
	c.mu.RUnlock()

	nv := fill(k)

	c.mu.Lock()
	defer c.mu.Unlock()

	if v, ok := c.m[k]; ok {
		// another goroutine filled the cache in the meantime
		return v
	}
	if c.m == nil {
		c.m = make(map[K]V)
	}
	c.m[k] = nv
	c.n += size(nv)
	for k := range c.m {
		if !c.fullRLocked() {
			break
		}
		c.evictLocked(k)
	}
	return nv
}

// full returns whether c is full. c.mu must be held for reading when calling
// it.
func (c *Cache[K, V]) fullRLocked() bool {
	m := c.MaxSize
	if m == 0 {
		m = DefaultSize
	}
	return c.n > m
}

// evictLocked evicts the given key from the cache. c.mu must be held for
// writing when calling it.
func (c *Cache[K, V]) evictLocked(k K) {
	if v, ok := c.m[k]; ok {
		delete(c.m, k)
		c.n -= size(v)
	}
}

// Sizer is an optional interface for a value to report its own size. The
// reported size must be positive and never change for the same receiver.
type Sizer interface {
	Size() int64
}

func size[V any](v V) int64 {
	if s, ok := any(v).(Sizer); ok {
		return s.Size()
	}
	return 1
}

// Memo is an unbounded memo table. Its zero value is ready to use. It is not
// safe for concurrent use.
type Memo[K comparable, V any] struct {
	m      map[K]V
	hits   int
	misses int
}

// Get returns the value stored for k and whether it was present. Every call
// counts as either a hit or a miss.
func (m *Memo[K, V]) Get(k K) (V, bool) {
	v, ok := m.m[k]
	if ok {
		m.hits++
	} else {
		m.misses++
	}
	return v, ok
}

// Set stores v for k, replacing any previous value.
func (m *Memo[K, V]) Set(k K, v V) {
	if m.m == nil {
		m.m = make(map[K]V)
	}
	m.m[k] = v
}

// Len returns the number of stored entries.
func (m *Memo[K, V]) Len() int {
	return len(m.m)
}

// Stats returns the number of hits and misses recorded by Get.
func (m *Memo[K, V]) Stats() (hits, misses int) {
	return m.hits, m.misses
}

