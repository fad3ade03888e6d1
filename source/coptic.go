// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package source

import "gonih.org/calendar/iso"

// Coptic and Ethiopic years have twelve months of 30 days followed by five
// or six epagomenal days, with a leap year every fourth year.
const (
	copticEpoch   = 103605 // 0284-08-29
	ethiopicEpoch = 2796   // 0008-08-27

	// Amete Alem years are Amete Mihret years plus this offset.
	ameteAlemOffset = 5500
)

func fixedFromCoptic(epoch, year, month, day int) int {
	return epoch - 1 + 365*(year-1) + floorDiv(year, 4) + 30*(month-1) + day
}

func copticFromFixed(epoch, rd int) (year, month, day int) {
	year = floorDiv(4*(rd-epoch)+1463, 1461)
	month = floorDiv(rd-fixedFromCoptic(epoch, year, 1, 1), 30) + 1
	day = rd + 1 - fixedFromCoptic(epoch, year, month, 1)
	return year, month, day
}

func coptic(d iso.Date) Raw {
	y, m, day := copticFromFixed(copticEpoch, fixed(d))
	if y >= 1 {
		return Raw{Year: y, Month: m, Day: day, Era: "era1"}
	}
	return Raw{Year: 1 - y, Month: m, Day: day, Era: "era0"}
}

func ethiopic(d iso.Date) Raw {
	y, m, day := copticFromFixed(ethiopicEpoch, fixed(d))
	if y >= 1 {
		return Raw{Year: y, Month: m, Day: day, Era: "era1"}
	}
	return Raw{Year: y + ameteAlemOffset, Month: m, Day: day, Era: "era0"}
}

func ethioaa(d iso.Date) Raw {
	y, m, day := copticFromFixed(ethiopicEpoch, fixed(d))
	return Raw{Year: y + ameteAlemOffset, Month: m, Day: day, Era: "era0"}
}
