// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calendar

import (
	"github.com/shopspring/decimal"

	"gonih.org/calendar/iso"
	"gonih.org/calendar/source"
)

// lunarToSolar is the ratio of the mean tabular Islamic year to the mean
// Gregorian year.
var lunarToSolar = decimal.NewFromInt(354).
	Add(decimal.NewFromInt(11).Div(decimal.NewFromInt(30))).
	Div(decimal.RequireFromString("365.2425"))

// hijraYear is the ISO year in which Islamic year 1 starts.
const hijraYear = 622

// eraYear resolves the year of a calendar with a single era named era.
func eraYear(id ID, era string, f Fields) (int, error) {
	if f.Era != "" && f.Era != era {
		return 0, errorf(id, KindUnresolvable, "unknown era %q", f.Era)
	}
	return plainYear(id, f)
}

// islamicCalendar covers all variants of the Islamic calendar. They differ
// only in the source rules.
type islamicCalendar struct {
	id ID
}

func (c islamicCalendar) calendarType() Type { return Lunar }
func (c islamicCalendar) eraNames() []string { return []string{"ah"} }
func (c islamicCalendar) searchYears() int { return 30 }
func (c islamicCalendar) monthsInYear(*env, int) (int, error) { return 12, nil }
func (c islamicCalendar) minimumMonthLength(Date) int { return 29 }
func (c islamicCalendar) maximumMonthLength(Date) int { return 30 }

// inLeapYear reports whether the last month of year has 30 days.
func (c islamicCalendar) inLeapYear(e *env, year int) (bool, error) {
	n, err := e.daysInMonth(Date{Year: year, Month: 12, Day: 1})
	return n == 30, err
}

func (c islamicCalendar) estimateISO(d Date) iso.Date {
	y := decimal.NewFromInt(int64(d.Year)).Mul(lunarToSolar).Floor().IntPart()
	return iso.Of(int(y)+hijraYear, 1, 1)
}

func (c islamicCalendar) adjust(_ *env, f Fields, _ Overflow) (Date, error) {
	if err := checkFields(c.id, f, false, true); err != nil {
		return Date{}, err
	}
	y, err := eraYear(c.id, "ah", f)
	if err != nil {
		return Date{}, err
	}
	m, err := regularMonth(c.id, f, 12)
	if err != nil {
		return Date{}, err
	}
	return Date{Year: y, EraYear: y, Era: "ah", Month: m, MonthCode: monthCode(m, false), Day: *f.Day}, nil
}

func (c islamicCalendar) fromRaw(_ *env, r source.Raw) (Date, error) {
	return Date{Year: r.Year, EraYear: r.Year, Era: "ah", Month: r.Month, MonthCode: monthCode(r.Month, false), Day: r.Day}, nil
}
