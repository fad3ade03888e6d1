// Copyright 2009 The Go Authors.
// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package iso implements the proleptic Gregorian day coordinate that every
// calendar in package calendar converts through.
//
// A Date is a plain count of days since 0001-01-01. Differences between
// dates are day counts and adding days is integer addition, which is what
// the conversion engine needs: it steps through the ISO coordinate a day, a
// week or a month at a time while probing a calendar source. Years are
// unbounded in both directions and there is a year zero, so 1 BC is year 0
// and 44 BC is year -43.
//
// Field-level arithmetic (adding months, differences in years and months)
// follows the rules of the ISO 8601 calendar and supports both overflow
// policies: Constrain clamps out-of-range fields, Reject fails.
package iso

import (
	"time"
)

// Computations on dates are essentially copied from the standard library.
// See this comment for explanations:
// https://cs.opensource.google/go/go/+/refs/tags/go1.20.6:src/time/time.go;l=353
// They are simplified by the fact that we never deal with clock times.

const (
	// The unsigned zero year for internal calculations.
	// Must be 1 mod 400, and dates before it will not compute correctly.
	absoluteZeroYear = -292277022399

	// The year of the zero Date.
	internalYear = 1

	// Offsets to convert between internal or absolute days.
	absoluteToInternal = (absoluteZeroYear - internalYear) * 365.2425
	internalToAbsolute = -absoluteToInternal

	// Days in a given period of years.
	daysPer400Years = 146097
	daysPer100Years = 36524
	daysPer4Years   = 1461
)

// daysBefore[m] counts the number of days in a non-leap year before month m
// begins. There is an entry for m=12, counting the number of days before
// January of next year (365).
var daysBefore = [...]int{
	0,
	31,
	31 + 28,
	31 + 28 + 31,
	31 + 28 + 31 + 30,
	31 + 28 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31 + 30 + 31,
}

// IsLeap reports whether year is a leap year in the proleptic Gregorian
// calendar.
func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in the given month of year. The
// month must be in the range [1, 12].
func DaysInMonth(year, month int) int {
	if month == 2 && IsLeap(year) {
		return 29
	}
	return daysBefore[month] - daysBefore[month-1]
}

// DaysInYear returns 366 for leap years and 365 otherwise.
func DaysInYear(year int) int {
	if IsLeap(year) {
		return 366
	}
	return 365
}

// absDate computes the year, the zero-based day of year and, when full is
// set, the month and day of an absolute day number.
func absDate(abs uint64, full bool) (year, month, day, yday int) {
	d := abs

	// Account for 400 year cycles.
	n := d / daysPer400Years
	y := 400 * n
	d -= daysPer400Years * n

	// Cut off 100-year cycles.
	// The last cycle has one extra leap year, so on the last day of that
	// year, day / daysPer100Years will be 4 instead of 3. Cut it back down to
	// 3 by subtracting n>>2.
	n = d / daysPer100Years
	n -= n >> 2
	y += 100 * n
	d -= daysPer100Years * n

	// Cut off 4-year cycles.
	// The last cycle has a missing leap year, which does not affect the
	// computation.
	n = d / daysPer4Years
	y += 4 * n
	d -= daysPer4Years * n

	// Cut off years within a 4-year cycle.
	// The last year is a leap year, so on the last day of that year,
	// day / 365 will be 4 instead of 3. Cut it back down to 3 by
	// subtracting n>>2.
	n = d / 365
	n -= n >> 2
	y += n
	d -= 365 * n

	year = int(int64(y) + absoluteZeroYear)
	yday = int(d)

	if !full {
		return
	}

	day = yday
	if IsLeap(year) {
		switch {
		case day > 31+29-1:
			// After leap day; pretend it wasn't there.
			day--
		case day == 31+29-1:
			return year, 2, 29, yday
		}
	}

	// Estimate month on assumption that every month has 31 days.
	// The estimate may be too low by at most one month, so adjust.
	month = day / 31
	end := daysBefore[month+1]
	var begin int
	if day >= end {
		month++
		begin = end
	} else {
		begin = daysBefore[month]
	}

	month++ // because January is 1
	day = day - begin + 1
	return year, month, day, yday
}

// daysSinceEpoch returns the number of days from the absolute epoch to the
// start of year.
func daysSinceEpoch(year int) int {
	y := year - absoluteZeroYear

	n := y / 400
	y -= 400 * n
	d := daysPer400Years * n

	n = y / 100
	y -= 100 * n
	d += daysPer100Years * n

	n = y / 4
	y -= 4 * n
	d += daysPer4Years * n

	d += 365 * y

	return d
}

// norm returns nhi, nlo such that
//
//	hi * base + lo == nhi * base + nlo
//	0 <= nlo < base
func norm(hi, lo, base int) (nhi, nlo int) {
	if lo < 0 {
		n := (-lo-1)/base + 1
		hi -= n
		lo += n * base
	}
	if lo >= base {
		n := lo / base
		hi += n
		lo -= n * base
	}
	return hi, lo
}

// A Date is a day in the proleptic Gregorian calendar, counted in days since
// 0001-01-01. Dates can be compared with Go's comparison operators, and
// adding n to a Date moves it n days forward.
type Date int

// Of returns the Date of the given year, month and day.
//
// The arguments may be outside their usual ranges and are normalized the
// same way [time.Date] does: January 32 is February 1 and month 13 is
// January of the following year. Use [Regulate] to clamp or reject instead.
func Of(year, month, day int) Date {
	year, m := norm(year, month-1, 12)
	month = m + 1

	d := daysSinceEpoch(year)
	d += daysBefore[month-1]
	if IsLeap(year) && month >= 3 {
		d++
	}
	d += day - 1

	return Date(d - internalToAbsolute)
}

// abs returns the absolute day number of d.
func (d Date) abs() uint64 {
	return uint64(d + internalToAbsolute)
}

// Date returns the year, month and day of d.
func (d Date) Date() (year, month, day int) {
	year, month, day, _ = absDate(d.abs(), true)
	return year, month, day
}

// Year returns the year in which d occurs.
func (d Date) Year() int {
	year, _, _, _ := absDate(d.abs(), false)
	return year
}

// Month returns the month of the year of d, in the range [1, 12].
func (d Date) Month() int {
	_, month, _ := d.Date()
	return month
}

// Day returns the day of the month of d.
func (d Date) Day() int {
	_, _, day := d.Date()
	return day
}

// YearDay returns the day of the year of d, in the range [1,365] for
// non-leap years, and [1,366] in leap years.
func (d Date) YearDay() int {
	_, _, _, yday := absDate(d.abs(), false)
	return yday + 1
}

// Weekday returns the day of the week of d.
func (d Date) Weekday() time.Weekday {
	return (time.Monday + time.Weekday(d.abs()%7)) % 7 // 0001-01-01 was a Monday
}

// AddDays returns d moved n days forward, or backward for negative n.
func (d Date) AddDays(n int) Date {
	return d + Date(n)
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or
// after e.
func (d Date) Compare(e Date) int {
	switch {
	case d < e:
		return -1
	case d > e:
		return 1
	}
	return 0
}
