// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calendar

import (
	"gonih.org/calendar/iso"
)

// maxProbeSteps bounds the forward probe of daysInMonth. Every calendar has
// minimumMonthLength ≥ maximumMonthLength/2, so two steps always suffice.
const maxProbeSteps = 4

// addDays moves d by n days.
func (e *env) addDays(d Date, n int) (Date, error) {
	x, err := e.dateToISO(d, Constrain)
	if err != nil {
		return Date{}, err
	}
	return e.toCalendar(x.AddDays(n))
}

// daysUntil returns the number of days from a to b.
func (e *env) daysUntil(a, b Date) (int, error) {
	x, err := e.dateToISO(a, Constrain)
	if err != nil {
		return 0, err
	}
	y, err := e.dateToISO(b, Constrain)
	if err != nil {
		return 0, err
	}
	return int(y - x), nil
}

// firstOfMonth returns the first day of the month of d.
func firstOfMonth(d Date) Date {
	d.Day = 1
	return d
}

// addMonths moves d by n calendar months. It steps between first days of
// months, adding the exact length of each month crossed, and only then
// applies the day of d to the resulting month. Under Reject, a day that
// does not exist in the resulting month is an error; under Constrain it is
// clamped to the last day.
func (e *env) addMonths(d Date, n int, o Overflow) (Date, error) {
	cur := firstOfMonth(d)
	for i := 0; i < n; i++ {
		days, err := e.daysInMonth(cur)
		if err != nil {
			return Date{}, err
		}
		if cur, err = e.addDays(cur, days); err != nil {
			return Date{}, err
		}
	}
	for i := 0; i > n; i-- {
		days, err := e.daysInPreviousMonth(cur)
		if err != nil {
			return Date{}, err
		}
		if cur, err = e.addDays(cur, -days); err != nil {
			return Date{}, err
		}
	}
	cur.Day = d.Day
	res, err := e.regulate(cur, Constrain)
	if err != nil {
		return Date{}, err
	}
	if o == Reject && res.Day != d.Day {
		return Date{}, errorf(e.id, KindOutOfRange, "day %d does not exist in month %s of year %d", d.Day, res.MonthCode, res.Year)
	}
	return res, nil
}

// addYears moves d by n years, keeping its ordinal month and day. A month
// or day that does not exist in the new year is clamped or rejected
// according to o.
func (e *env) addYears(d Date, n int, o Overflow) (Date, error) {
	return e.regulate(Date{Year: d.Year + n, Month: d.Month, Day: d.Day}, o)
}

// add adds a duration to d. Years are added first by shifting the year,
// then months by stepping through the calendar, then weeks and days.
func (e *env) add(d Date, dur Duration, o Overflow) (Date, error) {
	if c, ok := e.desc.(closedForm); ok {
		return c.add(d, dur, o)
	}
	if dur.IsZero() {
		return d, nil
	}
	var err error
	if dur.Years != 0 {
		if d, err = e.addYears(d, dur.Years, o); err != nil {
			return Date{}, err
		}
	}
	if dur.Months != 0 {
		if d, err = e.addMonths(d, dur.Months, o); err != nil {
			return Date{}, err
		}
	}
	if days := 7*dur.Weeks + dur.Days; days != 0 {
		return e.addDays(d, days)
	}
	return d, nil
}

// until returns the duration from a to b. For Days and Weeks it is the ISO
// day count. For Months and Years, whole years (if requested) and then
// whole months are counted as long as adding them to a does not pass b, and
// the remainder is counted in weeks and days.
func (e *env) until(a, b Date, largest Unit) (Duration, error) {
	if c, ok := e.desc.(closedForm); ok {
		return c.until(a, b, largest), nil
	}
	switch largest {
	case Days, Weeks:
		days, err := e.daysUntil(a, b)
		if err != nil {
			return Duration{}, err
		}
		if largest == Days {
			return Duration{Days: days}, nil
		}
		return Duration{Weeks: days / 7, Days: days % 7}, nil
	}

	sign := Compare(b, a)
	if sign == 0 {
		return Duration{}, nil
	}
	var dur Duration
	cur := a
	if largest == Years && b.Year != a.Year {
		years := b.Year - a.Year
		moved, err := e.addYears(a, years, Constrain)
		if err != nil {
			return Duration{}, err
		}
		if Compare(b, moved)*sign < 0 {
			years -= sign
			if moved, err = e.addYears(a, years, Constrain); err != nil {
				return Duration{}, err
			}
		}
		dur.Years, cur = years, moved
	}

	// Walk one month at a time from the first of the month, so that a
	// clamped day does not shorten later steps.
	limit := 13 * (abs(b.Year-cur.Year) + 2)
	first := firstOfMonth(cur)
	for {
		if abs(dur.Months) > limit {
			return Duration{}, errorf(e.id, KindInternal, "month walk from %+v to %+v exceeded %d steps", a, b, limit)
		}
		next, err := e.addMonths(first, sign, Constrain)
		if err != nil {
			return Duration{}, err
		}
		next.Day = a.Day
		candidate, err := e.regulate(next, Constrain)
		if err != nil {
			return Duration{}, err
		}
		if Compare(b, candidate)*sign < 0 {
			break
		}
		dur.Months += sign
		cur, first = candidate, firstOfMonth(candidate)
	}
	days, err := e.daysUntil(cur, b)
	if err != nil {
		return Duration{}, err
	}
	dur.Weeks, dur.Days = days/7, days%7
	return dur, nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// daysInMonth returns the length of the month of d. Unless the descriptor
// knows it, the month is probed by adding its minimum length until the
// calendar month changes.
func (e *env) daysInMonth(d Date) (int, error) {
	lo := e.desc.minimumMonthLength(d)
	if lo == e.desc.maximumMonthLength(d) {
		return lo, nil
	}
	start, err := e.dateToISO(firstOfMonth(d), Constrain)
	if err != nil {
		return 0, err
	}
	probe := start
	for i := 0; i < maxProbeSteps; i++ {
		probe += iso.Date(lo)
		rt, err := e.toCalendar(probe)
		if err != nil {
			return 0, err
		}
		if rt.Year != d.Year || rt.Month != d.Month {
			// probe is day rt.Day of the following month.
			return int(probe-iso.Date(rt.Day)-start) + 1, nil
		}
	}
	return 0, errorf(e.id, KindInternal, "month %d of year %d longer than %d days", d.Month, d.Year, maxProbeSteps*lo)
}

// daysInPreviousMonth returns the length of the month before the month of
// d, by looking at the day before its first day.
func (e *env) daysInPreviousMonth(d Date) (int, error) {
	prev := Date{Year: d.Year, Month: d.Month - 1, Day: 1}
	if prev.Month < 1 {
		prev.Year--
		n, err := e.desc.monthsInYear(e, prev.Year)
		if err != nil {
			return 0, err
		}
		prev.Month = n
	}
	if lo := e.desc.minimumMonthLength(prev); lo == e.desc.maximumMonthLength(prev) {
		return lo, nil
	}
	start, err := e.dateToISO(firstOfMonth(d), Constrain)
	if err != nil {
		return 0, err
	}
	last, err := e.toCalendar(start - 1)
	if err != nil {
		return 0, err
	}
	return last.Day, nil
}
