// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calendar

import (
	"gonih.org/calendar/iso"
	"gonih.org/calendar/source"
)

// persianCalendar is the Solar Hijri calendar. Its leap years follow the
// source, so they are found by probing the length of Esfand.
type persianCalendar struct{}

func (persianCalendar) calendarType() Type { return Solar }
func (persianCalendar) eraNames() []string { return []string{"ap"} }
func (persianCalendar) searchYears() int { return 8 }
func (persianCalendar) monthsInYear(*env, int) (int, error) { return 12, nil }

func (persianCalendar) minimumMonthLength(d Date) int {
	switch {
	case d.Month <= 6:
		return 31
	case d.Month <= 11:
		return 30
	}
	return 29
}

func (c persianCalendar) maximumMonthLength(d Date) int {
	if d.Month == 12 {
		return 30
	}
	return c.minimumMonthLength(d)
}

func (persianCalendar) inLeapYear(e *env, year int) (bool, error) {
	n, err := e.daysInMonth(Date{Year: year, Month: 12, Day: 1})
	return n == 30, err
}

// estimateISO counts from the March equinox of the ISO year.
func (persianCalendar) estimateISO(d Date) iso.Date {
	m := min(max(d.Month, 1), 12)
	start := 31 * (m - 1)
	if m > 7 {
		start -= m - 7
	}
	return iso.Of(d.Year+621, 3, 21) + iso.Date(start+d.Day-1)
}

func (persianCalendar) adjust(_ *env, f Fields, _ Overflow) (Date, error) {
	if err := checkFields(Persian, f, false, true); err != nil {
		return Date{}, err
	}
	y, err := eraYear(Persian, "ap", f)
	if err != nil {
		return Date{}, err
	}
	m, err := regularMonth(Persian, f, 12)
	if err != nil {
		return Date{}, err
	}
	return Date{Year: y, EraYear: y, Era: "ap", Month: m, MonthCode: monthCode(m, false), Day: *f.Day}, nil
}

func (persianCalendar) fromRaw(_ *env, r source.Raw) (Date, error) {
	return Date{Year: r.Year, EraYear: r.Year, Era: "ap", Month: r.Month, MonthCode: monthCode(r.Month, false), Day: r.Day}, nil
}

// sakaOffset is the difference between ISO and Saka years for most of the
// Saka year.
const sakaOffset = 78

// indianCalendar is the Indian national calendar. Its leap years are those
// of the ISO year in which the Saka year starts, so every month length is
// known in advance.
type indianCalendar struct{}

func (indianCalendar) calendarType() Type { return Solar }
func (indianCalendar) eraNames() []string { return []string{"saka"} }
func (indianCalendar) searchYears() int { return 8 }
func (indianCalendar) monthsInYear(*env, int) (int, error) { return 12, nil }

func (indianCalendar) leap(year int) bool {
	return iso.IsLeap(year + sakaOffset)
}

func (c indianCalendar) inLeapYear(_ *env, year int) (bool, error) {
	return c.leap(year), nil
}

func (c indianCalendar) minimumMonthLength(d Date) int {
	switch {
	case d.Month <= 1:
		if c.leap(d.Year) {
			return 31
		}
		return 30
	case d.Month <= 6:
		return 31
	}
	return 30
}

func (c indianCalendar) maximumMonthLength(d Date) int {
	return c.minimumMonthLength(d)
}

func (indianCalendar) estimateISO(d Date) iso.Date {
	m := min(max(d.Month, 1), 12)
	var start int
	switch {
	case m > 7:
		start = 30 + 31*5 + 30*(m-7)
	case m > 1:
		start = 30 + 31*(m-2)
	}
	return iso.Of(d.Year+sakaOffset, 3, 22) + iso.Date(start+d.Day-1)
}

func (indianCalendar) adjust(_ *env, f Fields, _ Overflow) (Date, error) {
	if err := checkFields(Indian, f, false, true); err != nil {
		return Date{}, err
	}
	y, err := eraYear(Indian, "saka", f)
	if err != nil {
		return Date{}, err
	}
	m, err := regularMonth(Indian, f, 12)
	if err != nil {
		return Date{}, err
	}
	return Date{Year: y, EraYear: y, Era: "saka", Month: m, MonthCode: monthCode(m, false), Day: *f.Day}, nil
}

func (indianCalendar) fromRaw(_ *env, r source.Raw) (Date, error) {
	return Date{Year: r.Year, EraYear: r.Year, Era: "saka", Month: r.Month, MonthCode: monthCode(r.Month, false), Day: r.Day}, nil
}
