// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calendar

import (
	"gonih.org/calendar/iso"
	"gonih.org/calendar/source"
)

// lunarMonth is an entry of a Chinese month table.
type lunarMonth struct {
	code string
	days int
}

// chineseCalendar is the Chinese (or Dangi) lunisolar calendar. Which months
// are leap months is not computed but read from the source, one year at a
// time.
type chineseCalendar struct {
	id ID
}

func (c chineseCalendar) calendarType() Type { return Lunisolar }
func (c chineseCalendar) eraNames() []string { return nil }
func (c chineseCalendar) searchYears() int { return 70 }
func (c chineseCalendar) minimumMonthLength(Date) int { return 29 }
func (c chineseCalendar) maximumMonthLength(Date) int { return 30 }

// Complete lunar years in the source. The last lunar year of the tables
// runs into the first months of the ISO year after them, and the first ISO
// weeks of the tables belong to the lunar year before them.
const (
	minLunarYear = source.MinChineseYear
	maxLunarYear = source.MaxChineseYear - 1
)

// monthList returns the months of year in order. The new year always falls
// between January 21 and February 20, so February 17 is either in the first
// month of year or within 29 days before it.
func (c chineseCalendar) monthList(e *env, year int) ([]lunarMonth, error) {
	if year < minLunarYear || year > maxLunarYear {
		return nil, errorf(c.id, KindOutOfRange, "year %d not in [%d, %d]", year, minLunarYear, maxLunarYear)
	}
	k := yearKey{c.id, year}
	if ms, ok := e.s.months.Get(k); ok {
		return ms, nil
	}
	d := iso.Of(year, 2, 17)
	r, err := e.resolve(d)
	if err != nil {
		return nil, err
	}
	if r.Year != year || r.Month != 1 {
		d += 29
		if r, err = e.resolve(d); err != nil {
			return nil, err
		}
	}
	if r.Year != year || r.Month != 1 || r.MonthExtra != "" {
		return nil, errorf(c.id, KindInternal, "first month of year %d not found near %v", year, d)
	}
	d -= iso.Date(r.Day - 1)
	r.Day = 1

	var ms []lunarMonth
	for r.Year == year {
		if len(ms) == 13 {
			return nil, errorf(c.id, KindInternal, "year %d has more than 13 months", year)
		}
		m := lunarMonth{code: monthCode(r.Month, r.MonthExtra == source.LeapMonthSuffix), days: 29}
		next, err := e.resolve(d + 29)
		if err != nil {
			return nil, err
		}
		if next.Day != 1 {
			m.days = 30
			if next, err = e.resolve(d + 30); err != nil {
				return nil, err
			}
		}
		if next.Day != 1 {
			return nil, errorf(c.id, KindInternal, "month %s of year %d is longer than 30 days", m.code, year)
		}
		ms = append(ms, m)
		d, r = d+iso.Date(m.days), next
	}
	e.s.months.Set(k, ms)
	return ms, nil
}

func (c chineseCalendar) monthsInYear(e *env, year int) (int, error) {
	ms, err := c.monthList(e, year)
	return len(ms), err
}

func (c chineseCalendar) inLeapYear(e *env, year int) (bool, error) {
	ms, err := c.monthList(e, year)
	return len(ms) == 13, err
}

// estimateISO assumes a new year in early February and months of 29.5 days.
func (c chineseCalendar) estimateISO(d Date) iso.Date {
	return iso.Of(d.Year, 2, 5) + iso.Date((d.Month-1)*59/2+d.Day-1)
}

// monthOf returns the position of a month code in ms. A leap month code that
// does not exist in the year is an error under Reject and falls back to the
// last day of the regular month with the same number under Constrain, which
// is reported by a non-zero day.
func (c chineseCalendar) monthOf(ms []lunarMonth, year int, code string, o Overflow) (month, day int, err error) {
	n, leap, err := parseMonthCode(c.id, code)
	if err != nil {
		return 0, 0, err
	}
	for i, m := range ms {
		if m.code == code {
			return i + 1, 0, nil
		}
	}
	if !leap || n > 12 {
		return 0, 0, errorf(c.id, KindOutOfRange, "invalid month code %q", code)
	}
	if o == Reject {
		return 0, 0, errorf(c.id, KindOutOfRange, "month code %q does not exist in year %d", code, year)
	}
	regular := monthCode(n, false)
	for i, m := range ms {
		if m.code == regular {
			return i + 1, m.days, nil
		}
	}
	return 0, 0, errorf(c.id, KindInternal, "year %d has no month %q", year, regular)
}

func (c chineseCalendar) adjust(e *env, f Fields, o Overflow) (Date, error) {
	if err := checkFields(c.id, f, false, false); err != nil {
		return Date{}, err
	}
	y, err := plainYear(c.id, f)
	if err != nil {
		return Date{}, err
	}
	ms, err := c.monthList(e, y)
	if err != nil {
		return Date{}, err
	}
	d := Date{Year: y, EraYear: y, Day: *f.Day}
	if f.MonthCode == "" {
		d.Month = *f.Month
		if d.Month >= 1 && d.Month <= len(ms) {
			d.MonthCode = ms[d.Month-1].code
		}
		return d, nil
	}
	m, day, err := c.monthOf(ms, y, f.MonthCode, o)
	if err != nil {
		return Date{}, err
	}
	if f.Month != nil && *f.Month != m {
		return Date{}, errorf(c.id, KindInconsistent, "month %d and monthCode %q disagree", *f.Month, f.MonthCode)
	}
	d.Month, d.MonthCode = m, ms[m-1].code
	if day != 0 {
		d.Day = day
	}
	return d, nil
}

// fromRaw turns the month number and leap marker of the source into a
// position in the month table.
func (c chineseCalendar) fromRaw(e *env, r source.Raw) (Date, error) {
	ms, err := c.monthList(e, r.Year)
	if err != nil {
		return Date{}, err
	}
	code := monthCode(r.Month, r.MonthExtra == source.LeapMonthSuffix)
	for i, m := range ms {
		if m.code == code {
			return Date{Year: r.Year, EraYear: r.Year, Month: i + 1, MonthCode: code, Day: r.Day}, nil
		}
	}
	return Date{}, errorf(c.id, KindUnresolvable, "month %q not in year %d", code, r.Year)
}
