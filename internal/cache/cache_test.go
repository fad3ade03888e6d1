// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cache

import (
	"sync"
	"testing"
)

func TestCacheGet(t *testing.T) {
	var (
		c     Cache[int, int]
		calls int
	)
	fill := func(k int) int {
		calls++
		return k * k
	}
	for i := 0; i < 3; i++ {
		if got := c.Get(7, fill); got != 49 {
			t.Fatalf("Get(7) = %d, want 49", got)
		}
	}
	if calls != 1 {
		t.Errorf("fill called %d times, want 1", calls)
	}
}

func TestCacheBounded(t *testing.T) {
	c := Cache[int, int]{MaxSize: 4}
	for i := 0; i < 100; i++ {
		c.Get(i, func(k int) int { return k })
	}
	c.mu.RLock()
	n := len(c.m)
	c.mu.RUnlock()
	if n > 4 {
		t.Errorf("cache holds %d elements, want at most 4", n)
	}
	if c.n != int64(n) {
		t.Errorf("cache size is %d, want %d", c.n, n)
	}
}

func TestCacheConcurrent(t *testing.T) {
	var (
		c  Cache[int, int]
		wg sync.WaitGroup
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for k := 0; k < 100; k++ {
				if got := c.Get(k, func(k int) int { return -k }); got != -k {
					t.Errorf("Get(%d) = %d, want %d", k, got, -k)
				}
			}
		}()
	}
	wg.Wait()
}

func TestMemo(t *testing.T) {
	type key struct {
		id   string
		year int
	}
	var m Memo[key, string]
	if _, ok := m.Get(key{"hebrew", 5785}); ok {
		t.Fatal("Get on empty Memo reported a hit")
	}
	m.Set(key{"hebrew", 5785}, "x")
	if v, ok := m.Get(key{"hebrew", 5785}); !ok || v != "x" {
		t.Errorf("Get = %q, %v, want \"x\", true", v, ok)
	}
	if _, ok := m.Get(key{"hebrew", 5786}); ok {
		t.Error("Get of a different key reported a hit")
	}
	if hits, misses := m.Stats(); hits != 1 || misses != 2 {
		t.Errorf("Stats() = %d, %d, want 1, 2", hits, misses)
	}
	if n := m.Len(); n != 1 {
		t.Errorf("Len() = %d, want 1", n)
	}
}
