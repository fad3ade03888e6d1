// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package source

import (
	"gonih.org/calendar/internal/cache"
	"gonih.org/calendar/iso"
)

// hebrewEpoch is 1 Tishri AM 1 (Julian 3761-10-07 BCE).
const hebrewEpoch = -1373427

// hebrewElapsedDays returns the number of days from the epoch to the molad
// of Tishri of year, delayed by one day when the molad falls on a Sunday,
// Wednesday or Friday.
func hebrewElapsedDays(year int) int {
	months := floorDiv(235*year-234, 19)
	parts := 12084 + 13753*months
	days := 29*months + floorDiv(parts, 25920)
	if floorMod(3*(days+1), 7) < 3 {
		days++
	}
	return days
}

// hebrewYearLengthCorrection applies the remaining postponements, which keep
// every year length in {353, 354, 355, 383, 384, 385}.
func hebrewYearLengthCorrection(year int) int {
	ny0 := hebrewElapsedDays(year - 1)
	ny1 := hebrewElapsedDays(year)
	ny2 := hebrewElapsedDays(year + 1)
	switch {
	case ny2-ny1 == 356:
		return 2
	case ny1-ny0 == 382:
		return 1
	}
	return 0
}

var newYears = cache.Cache[int, int]{MaxSize: 1 << 12}

// hebrewNewYear returns the fixed day of 1 Tishri of year.
func hebrewNewYear(year int) int {
	return newYears.Get(year, func(y int) int {
		return hebrewEpoch + hebrewElapsedDays(y) + hebrewYearLengthCorrection(y)
	})
}

// hebrewLeapYear reports whether year has thirteen months.
func hebrewLeapYear(year int) bool {
	return floorMod(7*year+1, 19) < 7
}

type hebrewMonth struct {
	name string
	days int
}

// hebrewMonths returns the months of year starting with Tishri. Heshvan and
// Kislev depend on the length of the year.
func hebrewMonths(year int) []hebrewMonth {
	n := hebrewNewYear(year+1) - hebrewNewYear(year)
	heshvan, kislev := 29, 30
	switch n % 10 {
	case 5:
		heshvan = 30
	case 3:
		kislev = 29
	}
	ms := []hebrewMonth{
		{"Tishri", 30},
		{"Heshvan", heshvan},
		{"Kislev", kislev},
		{"Tevet", 29},
		{"Shevat", 30},
	}
	if hebrewLeapYear(year) {
		ms = append(ms, hebrewMonth{"Adar I", 30}, hebrewMonth{"Adar II", 29})
	} else {
		ms = append(ms, hebrewMonth{"Adar", 29})
	}
	return append(ms,
		hebrewMonth{"Nisan", 30},
		hebrewMonth{"Iyar", 29},
		hebrewMonth{"Sivan", 30},
		hebrewMonth{"Tamuz", 29},
		hebrewMonth{"Av", 30},
		hebrewMonth{"Elul", 29},
	)
}

// hebrew reports months in order from Tishri, so in leap years Adar II and
// every later month have an index one higher than in common years. The month
// name is reported as MonthExtra.
func hebrew(d iso.Date) Raw {
	rd := fixed(d)
	year := floorDiv((rd-hebrewEpoch)*98496, 35975351)
	for hebrewNewYear(year+1) <= rd {
		year++
	}
	for hebrewNewYear(year) > rd {
		year--
	}
	yday := rd - hebrewNewYear(year)
	ms := hebrewMonths(year)
	for i, m := range ms {
		if yday < m.days || i == len(ms)-1 {
			return Raw{Year: year, Month: i + 1, Day: yday + 1, MonthExtra: m.name}
		}
		yday -= m.days
	}
	panic("unreachable")
}
