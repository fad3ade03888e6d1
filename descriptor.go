// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calendar

import (
	"gonih.org/calendar/iso"
	"gonih.org/calendar/source"
)

// A descriptor supplies the calendar specific primitives the engine is built
// on. Descriptors are immutable and shared by all users of a calendar.
//
// Methods taking an *env may probe the calendar source and memoize results
// in the session.
type descriptor interface {
	calendarType() Type
	// eraNames lists the eras accepted in Fields, or nil if the calendar
	// has no eras.
	eraNames() []string
	monthsInYear(e *env, year int) (int, error)
	minimumMonthLength(d Date) int
	maximumMonthLength(d Date) int
	inLeapYear(e *env, year int) (bool, error)
	// estimateISO returns a rough guess of the ISO date of d, which need
	// not be exact.
	estimateISO(d Date) iso.Date
	// adjust validates caller supplied fields and resolves them into a
	// Date. Months and days are not yet checked against the calendar.
	adjust(e *env, f Fields, o Overflow) (Date, error)
	// fromRaw normalizes fields reported by the calendar source.
	fromRaw(e *env, r source.Raw) (Date, error)
	// searchYears bounds the number of years searched backwards for a
	// month and day without a year.
	searchYears() int
}

// closedForm is implemented by descriptors that convert directly instead of
// converging on the source.
type closedForm interface {
	toISO(d Date, o Overflow) (iso.Date, error)
	fromISO(d iso.Date) Date
	add(d Date, dur Duration, o Overflow) (Date, error)
	until(a, b Date, largest Unit) Duration
	daysInYear(year int) int
}

// checkFields performs the validation common to all calendars. withEras
// reports whether the calendar requires an era alongside an era year.
func checkFields(id ID, f Fields, withEras, acceptsEra bool) error {
	if f.MonthExtra != "" {
		return errorf(id, KindOutOfRange, "unexpected monthExtra %q", f.MonthExtra)
	}
	if f.Year == nil && f.EraYear == nil {
		return errorf(id, KindMissingField, "year or eraYear is required")
	}
	if f.Month == nil && f.MonthCode == "" {
		return errorf(id, KindMissingField, "month or monthCode is required")
	}
	if f.Day == nil {
		return errorf(id, KindMissingField, "day is required")
	}
	if f.Era != "" && !acceptsEra {
		return errorf(id, KindInconsistent, "no eras in %s calendar", id)
	}
	if withEras {
		if f.EraYear != nil && f.Era == "" {
			return errorf(id, KindMissingField, "era is required with eraYear")
		}
		if f.Era != "" && f.EraYear == nil {
			return errorf(id, KindMissingField, "eraYear is required with era")
		}
	}
	if f.MonthCode != "" {
		if _, _, err := parseMonthCode(id, f.MonthCode); err != nil {
			return err
		}
	}
	return nil
}

// plainYear resolves the year of a calendar with at most one era.
func plainYear(id ID, f Fields) (int, error) {
	switch {
	case f.Year == nil:
		return *f.EraYear, nil
	case f.EraYear != nil && *f.EraYear != *f.Year:
		return 0, errorf(id, KindInconsistent, "year %d and eraYear %d disagree", *f.Year, *f.EraYear)
	}
	return *f.Year, nil
}

// regularMonth resolves the month of a calendar without leap months, in
// which a month code is the month number.
func regularMonth(id ID, f Fields, months int) (int, error) {
	if f.MonthCode == "" {
		return *f.Month, nil
	}
	n, leap, err := parseMonthCode(id, f.MonthCode)
	if err != nil {
		return 0, err
	}
	if leap || n > months {
		return 0, errorf(id, KindOutOfRange, "invalid month code %q", f.MonthCode)
	}
	if f.Month != nil && *f.Month != n {
		return 0, errorf(id, KindInconsistent, "month %d and monthCode %q disagree", *f.Month, f.MonthCode)
	}
	return n, nil
}

// isoCalendar is iso8601, the only calendar that converts in closed form.
type isoCalendar struct{}

func (isoCalendar) calendarType() Type { return Solar }
func (isoCalendar) eraNames() []string { return nil }
func (isoCalendar) searchYears() int { return 8 }
func (isoCalendar) estimateISO(d Date) iso.Date {
	y, m, day, _ := iso.Regulate(d.Year, d.Month, d.Day, Constrain)
	return iso.Of(y, m, day)
}

func (isoCalendar) monthsInYear(*env, int) (int, error) { return 12, nil }

func (isoCalendar) minimumMonthLength(d Date) int {
	return iso.DaysInMonth(d.Year, min(max(d.Month, 1), 12))
}

func (c isoCalendar) maximumMonthLength(d Date) int {
	return c.minimumMonthLength(d)
}

func (isoCalendar) inLeapYear(_ *env, year int) (bool, error) {
	return iso.IsLeap(year), nil
}

func (isoCalendar) adjust(_ *env, f Fields, _ Overflow) (Date, error) {
	if err := checkFields(ISO8601, f, false, false); err != nil {
		return Date{}, err
	}
	y, err := plainYear(ISO8601, f)
	if err != nil {
		return Date{}, err
	}
	m, err := regularMonth(ISO8601, f, 12)
	if err != nil {
		return Date{}, err
	}
	return Date{Year: y, EraYear: y, Month: m, MonthCode: monthCode(m, false), Day: *f.Day}, nil
}

func (c isoCalendar) fromRaw(_ *env, r source.Raw) (Date, error) {
	return c.fromISO(iso.Of(r.Year, r.Month, r.Day)), nil
}

func (isoCalendar) toISO(d Date, o Overflow) (iso.Date, error) {
	y, m, day, err := iso.Regulate(d.Year, d.Month, d.Day, o)
	if err != nil {
		return 0, wrapRange(ISO8601, err)
	}
	return iso.Of(y, m, day), nil
}

func (isoCalendar) fromISO(d iso.Date) Date {
	y, m, day := d.Date()
	return Date{Year: y, EraYear: y, Month: m, MonthCode: monthCode(m, false), Day: day}
}

func (c isoCalendar) add(d Date, dur Duration, o Overflow) (Date, error) {
	start, err := c.toISO(d, Constrain)
	if err != nil {
		return Date{}, err
	}
	r, err := iso.AddDate(start, dur, o)
	if err != nil {
		return Date{}, wrapRange(ISO8601, err)
	}
	return c.fromISO(r), nil
}

func (isoCalendar) daysInYear(year int) int { return iso.DaysInYear(year) }

func (c isoCalendar) until(a, b Date, largest Unit) Duration {
	x, _ := c.toISO(a, Constrain)
	y, _ := c.toISO(b, Constrain)
	return iso.Until(x, y, largest)
}
