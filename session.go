// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calendar

import (
	"gonih.org/calendar/internal/cache"
	"gonih.org/calendar/iso"
)

// A Session memoizes conversions for one logical sequence of operations,
// such as the conversions behind a single Add or Until. It is owned by the
// caller that starts the sequence and should be dropped with it.
//
// A Session is not safe for concurrent use. Passing a nil *Session to a
// Calendar method uses a fresh session for that call.
type Session struct {
	toISO  cache.Memo[isoKey, iso.Date]
	toCal  cache.Memo[calKey, Date]
	months cache.Memo[yearKey, []lunarMonth]
}

type isoKey struct {
	id               ID
	year, month, day int
	overflow         Overflow
}

type calKey struct {
	id ID
	d  iso.Date
}

type yearKey struct {
	id   ID
	year int
}

// NewSession returns an empty session.
func NewSession() *Session {
	return new(Session)
}

// Stats reports memo usage of a session.
type Stats struct {
	Hits    int `json:"hits"`
	Misses  int `json:"misses"`
	Entries int `json:"entries"`
}

// Stats returns the combined hit, miss and entry counts of all memo tables
// of s.
func (s *Session) Stats() Stats {
	var st Stats
	add := func(hits, misses, n int) {
		st.Hits += hits
		st.Misses += misses
		st.Entries += n
	}
	h, m := s.toISO.Stats()
	add(h, m, s.toISO.Len())
	h, m = s.toCal.Stats()
	add(h, m, s.toCal.Len())
	h, m = s.months.Stats()
	add(h, m, s.months.Len())
	return st
}
