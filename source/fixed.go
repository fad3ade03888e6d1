// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package source

import "gonih.org/calendar/iso"

// Most rules below are expressed on fixed day numbers (RD), where day 1 is
// 0001-01-01 in the proleptic Gregorian calendar. An iso.Date counts from
// zero on the same day, so the two only differ by one.

func fixed(d iso.Date) int {
	return int(d) + 1
}

// floorDiv returns ⌊a/b⌋ for b > 0.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

// floorMod returns a mod b in [0, b) for b > 0.
func floorMod(a, b int) int {
	return a - b*floorDiv(a, b)
}
