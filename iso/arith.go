// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iso

import (
	"fmt"
)

// Unit is the largest unit of a date difference.
type Unit int

const (
	Days Unit = iota
	Weeks
	Months
	Years
)

var unitNames = [...]string{
	Days:   "days",
	Weeks:  "weeks",
	Months: "months",
	Years:  "years",
}

// String implements fmt.Stringer.
func (u Unit) String() string {
	if u < Days || u > Years {
		return fmt.Sprintf("Unit(%d)", int(u))
	}
	return unitNames[u]
}

// ParseUnit parses a unit name. Singular and plural forms are accepted and
// the empty string is Days.
func ParseUnit(s string) (Unit, error) {
	switch s {
	case "", "day", "days":
		return Days, nil
	case "week", "weeks":
		return Weeks, nil
	case "month", "months":
		return Months, nil
	case "year", "years":
		return Years, nil
	}
	return Days, fmt.Errorf("invalid unit %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (u Unit) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (u *Unit) UnmarshalText(b []byte) error {
	v, err := ParseUnit(string(b))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

// Duration is a date-only duration. Its fields are independent and may have
// mixed signs when constructed by hand; durations returned by this package
// and by package calendar never do.
type Duration struct {
	Years  int `json:"years"`
	Months int `json:"months"`
	Weeks  int `json:"weeks"`
	Days   int `json:"days"`
}

// Negated returns the duration with every field negated.
func (d Duration) Negated() Duration {
	return Duration{-d.Years, -d.Months, -d.Weeks, -d.Days}
}

// IsZero reports whether every field of d is zero.
func (d Duration) IsZero() bool {
	return d == Duration{}
}

// Regulate validates year, month and day. Under Constrain, month is clamped
// to [1, 12] and day to the length of the resulting month. Under Reject, a
// *RangeError is returned for the first field out of range.
func Regulate(year, month, day int, o Overflow) (int, int, int, error) {
	if o == Reject {
		if month < 1 || month > 12 {
			return 0, 0, 0, &RangeError{Field: "month", Value: month, Min: 1, Max: 12}
		}
		if n := DaysInMonth(year, month); day < 1 || day > n {
			return 0, 0, 0, &RangeError{Field: "day", Value: day, Min: 1, Max: n}
		}
		return year, month, day, nil
	}
	month = min(max(month, 1), 12)
	day = min(max(day, 1), DaysInMonth(year, month))
	return year, month, day, nil
}

// AddDate adds a duration to the given date. Years and months are added to
// the fields first and the day is regulated against the resulting month
// using o; weeks and days are then added as plain days. For example, adding
// one month to January 31 yields the last day of February under Constrain
// and an error under Reject.
func AddDate(d Date, dur Duration, o Overflow) (Date, error) {
	year, month, day := d.Date()
	year, m := norm(year+dur.Years, month-1+dur.Months, 12)
	year, month, day, err := Regulate(year, m+1, day, o)
	if err != nil {
		return 0, err
	}
	return Of(year, month, day).AddDays(7*dur.Weeks + dur.Days), nil
}

// Until returns the duration from a to b, balanced up to the largest unit.
// When b is before a, every field of the result is non-positive.
//
// For Months and Years, whole months are counted as long as adding them to a
// does not pass b; the remainder is reported in weeks and days.
func Until(a, b Date, largest Unit) Duration {
	switch largest {
	case Days:
		return Duration{Days: int(b - a)}
	case Weeks:
		days := int(b - a)
		return Duration{Weeks: days / 7, Days: days % 7}
	}

	sign := b.Compare(a)
	if sign == 0 {
		return Duration{}
	}
	y1, m1, _ := a.Date()
	y2, m2, _ := b.Date()

	years := y2 - y1
	mid, _ := AddDate(a, Duration{Years: years}, Constrain)
	if mid == b {
		return balanceMonths(Duration{Years: years}, largest)
	}
	months := m2 - m1
	if b.Compare(mid) != sign {
		years -= sign
		months += sign * 12
	}
	mid, _ = AddDate(a, Duration{Years: years, Months: months}, Constrain)
	if mid == b {
		return balanceMonths(Duration{Years: years, Months: months}, largest)
	}
	if b.Compare(mid) != sign {
		months -= sign
		if months == -sign {
			years -= sign
			months = 11 * sign
		}
		mid, _ = AddDate(a, Duration{Years: years, Months: months}, Constrain)
	}
	return balanceMonths(Duration{Years: years, Months: months, Days: int(b - mid)}, largest)
}

func balanceMonths(d Duration, largest Unit) Duration {
	if largest == Months {
		d.Months += 12 * d.Years
		d.Years = 0
	}
	d.Weeks, d.Days = d.Days/7, d.Days%7
	return d
}
