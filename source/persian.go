// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package source

import "gonih.org/calendar/iso"

// persianEpoch is 1 Farvardin 1 AP on the fixed day count used by common
// locale data, which places it on 0622-03-21.
const persianEpoch = 226895

// persianMonthStart[m] is the number of days in a year before month m+1.
var persianMonthStart = [...]int{0, 31, 62, 93, 124, 155, 186, 216, 246, 276, 306, 336}

// persianNewYear returns the number of days from the epoch to 1 Farvardin of
// year, following the 33 year arithmetic cycle.
func persianNewYear(year int) int {
	return 365*(year-1) + floorDiv(8*year+21, 33)
}

func persian(d iso.Date) Raw {
	days := fixed(d) - persianEpoch
	year := 1 + floorDiv(33*days+3, 12053)
	yday := days - persianNewYear(year)
	// The estimate is off by at most one year around Nowruz.
	if yday < 0 {
		year--
		yday = days - persianNewYear(year)
	} else if n := persianNewYear(year + 1); days >= n {
		year++
		yday = days - n
	}
	var month int
	if yday < 216 {
		month = yday / 31
	} else {
		month = (yday - 6) / 30
	}
	return Raw{Year: year, Month: month + 1, Day: yday - persianMonthStart[month] + 1, Era: "ap"}
}
