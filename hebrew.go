// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calendar

import (
	"gonih.org/calendar/iso"
	"gonih.org/calendar/source"
)

// hebrewMonth is an entry of the static Hebrew month table.
type hebrewMonth struct {
	name     string
	code     string
	min, max int
}

// Months of common and leap years, starting with Tishri. In leap years Adar I
// is inserted as month code 5L and Adar becomes Adar II.
var (
	hebrewCommon = []hebrewMonth{
		{"Tishri", "1", 30, 30},
		{"Heshvan", "2", 29, 30},
		{"Kislev", "3", 29, 30},
		{"Tevet", "4", 29, 29},
		{"Shevat", "5", 30, 30},
		{"Adar", "6", 29, 29},
		{"Nisan", "7", 30, 30},
		{"Iyar", "8", 29, 29},
		{"Sivan", "9", 30, 30},
		{"Tamuz", "10", 29, 29},
		{"Av", "11", 30, 30},
		{"Elul", "12", 29, 29},
	}
	hebrewLeap = []hebrewMonth{
		{"Tishri", "1", 30, 30},
		{"Heshvan", "2", 29, 30},
		{"Kislev", "3", 29, 30},
		{"Tevet", "4", 29, 29},
		{"Shevat", "5", 30, 30},
		{"Adar I", "5L", 30, 30},
		{"Adar II", "6", 29, 29},
		{"Nisan", "7", 30, 30},
		{"Iyar", "8", 29, 29},
		{"Sivan", "9", 30, 30},
		{"Tamuz", "10", 29, 29},
		{"Av", "11", 30, 30},
		{"Elul", "12", 29, 29},
	}
)

// Hebrew year y starts in the autumn of ISO year y-hebrewEpochYear.
const hebrewEpochYear = 3761

type hebrewCalendar struct{}

func (hebrewCalendar) calendarType() Type { return Lunisolar }
func (hebrewCalendar) eraNames() []string { return nil }
func (hebrewCalendar) searchYears() int { return 20 }

func (hebrewCalendar) leap(year int) bool {
	n := (7*year + 1) % 19
	if n < 0 {
		n += 19
	}
	return n < 7
}

func (c hebrewCalendar) months(year int) []hebrewMonth {
	if c.leap(year) {
		return hebrewLeap
	}
	return hebrewCommon
}

func (c hebrewCalendar) month(d Date) hebrewMonth {
	ms := c.months(d.Year)
	return ms[min(max(d.Month, 1), len(ms))-1]
}

func (c hebrewCalendar) monthsInYear(_ *env, year int) (int, error) {
	return len(c.months(year)), nil
}

func (c hebrewCalendar) inLeapYear(_ *env, year int) (bool, error) {
	return c.leap(year), nil
}

func (c hebrewCalendar) minimumMonthLength(d Date) int { return c.month(d).min }
func (c hebrewCalendar) maximumMonthLength(d Date) int { return c.month(d).max }

// estimateISO assumes a new year in mid September and months of 29.5 days.
func (hebrewCalendar) estimateISO(d Date) iso.Date {
	return iso.Of(d.Year-hebrewEpochYear, 9, 15) + iso.Date((d.Month-1)*59/2+d.Day-1)
}

// monthOf returns the position of a month code in year. A leap month code
// that does not exist in a common year is an error under Reject and falls
// back to the last day of the preceding month under Constrain, which is
// reported by a non-zero day.
func (c hebrewCalendar) monthOf(year int, code string, o Overflow) (month, day int, err error) {
	n, leap, err := parseMonthCode(Hebrew, code)
	if err != nil {
		return 0, 0, err
	}
	for i, m := range c.months(year) {
		if m.code == code {
			return i + 1, 0, nil
		}
	}
	if !leap || n != 5 {
		return 0, 0, errorf(Hebrew, KindOutOfRange, "invalid month code %q", code)
	}
	if o == Reject {
		return 0, 0, errorf(Hebrew, KindOutOfRange, "month code %q does not exist in common year %d", code, year)
	}
	return 5, hebrewCommon[4].max, nil
}

func (c hebrewCalendar) adjust(_ *env, f Fields, o Overflow) (Date, error) {
	if err := checkFields(Hebrew, f, false, false); err != nil {
		return Date{}, err
	}
	y, err := plainYear(Hebrew, f)
	if err != nil {
		return Date{}, err
	}
	d := Date{Year: y, EraYear: y, Day: *f.Day}
	if f.MonthCode == "" {
		d.Month = *f.Month
		if d.Month >= 1 && d.Month <= len(c.months(y)) {
			d.MonthCode = c.month(d).code
		}
		return d, nil
	}
	m, day, err := c.monthOf(y, f.MonthCode, o)
	if err != nil {
		return Date{}, err
	}
	if f.Month != nil && *f.Month != m {
		return Date{}, errorf(Hebrew, KindInconsistent, "month %d and monthCode %q disagree", *f.Month, f.MonthCode)
	}
	d.Month = m
	d.MonthCode = c.month(d).code
	if day != 0 {
		d.Day = day
	}
	return d, nil
}

// fromRaw takes the month position from the source. A month name, if
// reported, must match the position.
func (c hebrewCalendar) fromRaw(_ *env, r source.Raw) (Date, error) {
	ms := c.months(r.Year)
	if r.Month > len(ms) {
		return Date{}, errorf(Hebrew, KindOutOfRange, "source reported month %d in year %d with %d months", r.Month, r.Year, len(ms))
	}
	m := ms[r.Month-1]
	if r.MonthExtra != "" && r.MonthExtra != m.name {
		return Date{}, errorf(Hebrew, KindUnresolvable, "source reported month %q at position %d, want %q", r.MonthExtra, r.Month, m.name)
	}
	return Date{Year: r.Year, EraYear: r.Year, Month: r.Month, MonthCode: m.code, Day: r.Day}, nil
}
