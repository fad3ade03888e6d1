// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package source

import "gonih.org/calendar/iso"

// Epochs of the tabular Islamic calendar. The civil variant counts from
// Friday 0622-07-19, the astronomical one from the Thursday before.
const (
	islamicCivilEpoch        = 227015
	islamicAstronomicalEpoch = 227014
)

// fixedFromIslamic uses months alternating between 30 and 29 days and eleven
// leap years in a thirty year cycle, in which the last month has 30 days.
func fixedFromIslamic(epoch, year, month, day int) int {
	return epoch - 1 + (year-1)*354 + floorDiv(3+11*year, 30) + 29*(month-1) + floorDiv(6*month-1, 11) + day
}

func islamic(epoch int, d iso.Date) Raw {
	rd := fixed(d)
	year := floorDiv(30*(rd-epoch)+10646, 10631)
	prior := rd - fixedFromIslamic(epoch, year, 1, 1)
	month := floorDiv(11*prior+330, 325)
	day := rd - fixedFromIslamic(epoch, year, month, 1) + 1
	return Raw{Year: year, Month: month, Day: day, Era: "ah"}
}
