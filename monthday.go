// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calendar

import (
	"strconv"

	"gonih.org/calendar/iso"
)

// monthDayReference is the ISO date from which years containing a month and
// day are searched.
var monthDayReference = iso.Of(1972, 12, 31)

// YearMonthFromFields returns the ISO date of the first day of the month
// described by f. The day of f is ignored.
func (c *Calendar) YearMonthFromFields(s *Session, f Fields, o Overflow) (iso.Date, error) {
	f.Day = Int(1)
	return c.ToISO(s, f, o)
}

// MonthDayFromFields resolves a month and day, which may lack a year. In
// lunisolar calendars f must contain a month code or a year, as month
// numbers are ambiguous without a year.
//
// Without a year, the latest calendar year up to the one containing
// 1972-12-31 that contains the month and day is used as reference. If no
// year within the search range of the calendar contains them, Reject fails
// and Constrain returns the latest constrained candidate.
func (c *Calendar) MonthDayFromFields(s *Session, f Fields, o Overflow) (MonthDay, error) {
	e := c.env(s)
	if f.Day == nil {
		return MonthDay{}, errorf(c.id, KindMissingField, "day is required")
	}
	hasYear := f.Year != nil || (f.EraYear != nil && f.Era != "")
	code := f.MonthCode
	if code == "" {
		if c.desc.calendarType() == Lunisolar && !hasYear {
			return MonthDay{}, errorf(c.id, KindMissingField, "monthCode or year is required in a lunisolar calendar")
		}
		if f.Month == nil {
			return MonthDay{}, errorf(c.id, KindMissingField, "month or monthCode is required")
		}
	}

	if hasYear {
		x, err := e.toISO(f, o)
		if err != nil {
			return MonthDay{}, err
		}
		d, err := e.toCalendar(x)
		if err != nil {
			return MonthDay{}, err
		}
		return MonthDay{MonthCode: d.MonthCode, Day: d.Day, ReferenceISO: x}, nil
	}

	if code == "" {
		code = strconv.Itoa(*f.Month)
	}
	n, leap, err := parseMonthCode(c.id, code)
	if err != nil {
		return MonthDay{}, err
	}
	if f.Month != nil && f.MonthCode != "" && (leap || *f.Month != n) {
		return MonthDay{}, errorf(c.id, KindInconsistent, "month %d and monthCode %q disagree", *f.Month, f.MonthCode)
	}
	ref, err := e.toCalendar(monthDayReference)
	if err != nil {
		return MonthDay{}, err
	}
	var (
		closest    MonthDay
		closestKey [3]int
		found      bool
	)
	for i := 0; i < c.desc.searchYears(); i++ {
		d, err := c.desc.adjust(e, Fields{Year: Int(ref.Year - i), MonthCode: code, Day: f.Day}, Constrain)
		if err != nil {
			return MonthDay{}, err
		}
		x, err := e.dateToISO(d, Constrain)
		if err != nil {
			return MonthDay{}, err
		}
		got, err := e.toCalendar(x)
		if err != nil {
			return MonthDay{}, err
		}
		md := MonthDay{MonthCode: got.MonthCode, Day: got.Day, ReferenceISO: x}
		if got.MonthCode == code && got.Day == *f.Day {
			return md, nil
		}
		gn, gleap, _ := parseMonthCode(c.id, got.MonthCode)
		key := [3]int{gn, b2i(gleap), got.Day}
		if !found || compareKey(key, closestKey) > 0 {
			closest, closestKey, found = md, key, true
		}
	}
	if o == Constrain && found {
		e.log.Debug("constrained month and day", "calendar", c.id, "monthCode", code, "day", *f.Day, "result", closest.ReferenceISO)
		return closest, nil
	}
	return MonthDay{}, errorf(c.id, KindUnresolvable, "no year in %d..%d with month %s and day %d", ref.Year-c.desc.searchYears()+1, ref.Year, code, *f.Day)
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

func compareKey(a, b [3]int) int {
	for i := range a {
		if a[i] != b[i] {
			return sign(a[i] - b[i])
		}
	}
	return 0
}
