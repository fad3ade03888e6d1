// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package source

import "gonih.org/calendar/iso"

// sakaOffset is the difference between an ISO year and the Saka year that
// starts in it.
const sakaOffset = 78

// indianYearStart returns the first day (1 Chaitra) of the Saka year that
// starts in the given ISO year.
func indianYearStart(isoYear int) iso.Date {
	if iso.IsLeap(isoYear) {
		return iso.Of(isoYear, 3, 21)
	}
	return iso.Of(isoYear, 3, 22)
}

func indianMonthLength(isoYear, month int) int {
	switch {
	case month == 1 && iso.IsLeap(isoYear):
		return 31
	case month == 1:
		return 30
	case month <= 6:
		return 31
	}
	return 30
}

func indian(d iso.Date) Raw {
	y := d.Year()
	start := indianYearStart(y)
	if d < start {
		y--
		start = indianYearStart(y)
	}
	yday := int(d - start)
	month := 1
	for ; month < 12; month++ {
		n := indianMonthLength(y, month)
		if yday < n {
			break
		}
		yday -= n
	}
	return Raw{Year: y - sakaOffset, Month: month, Day: yday + 1, Era: "saka"}
}
