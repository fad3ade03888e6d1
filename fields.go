// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calendar

import (
	"regexp"
	"strconv"

	"gonih.org/calendar/iso"
)

// Re-exported vocabulary of package iso.
type (
	Overflow = iso.Overflow
	Duration = iso.Duration
	Unit     = iso.Unit
)

const (
	Constrain = iso.Constrain
	Reject    = iso.Reject

	Days   = iso.Days
	Weeks  = iso.Weeks
	Months = iso.Months
	Years  = iso.Years
)

// Fields is a possibly incomplete calendar date, as supplied by a caller. A
// nil pointer means the field is absent.
//
// At least one of Year and EraYear, at least one of Month and MonthCode, and
// Day must be present. When redundant fields are given they must agree.
type Fields struct {
	Year    *int   `json:"year,omitempty"`
	EraYear *int   `json:"eraYear,omitempty"`
	Era     string `json:"era,omitempty"`
	Month   *int   `json:"month,omitempty"`
	// MonthCode is "<n>" for a regular month and "<n>L" for a leap month.
	// Unlike Month it does not shift in years with a leap month.
	MonthCode  string `json:"monthCode,omitempty"`
	MonthExtra string `json:"monthExtra,omitempty"`
	Day        *int   `json:"day,omitempty"`
}

// Int returns a pointer to v, for use in Fields literals.
func Int(v int) *int {
	return &v
}

// YMD returns Fields with year, month and day set.
func YMD(year, month, day int) Fields {
	return Fields{Year: Int(year), Month: Int(month), Day: Int(day)}
}

// Date is a resolved calendar date. All fields are present and consistent.
type Date struct {
	Year      int    `json:"year"`
	Month     int    `json:"month"`
	Day       int    `json:"day"`
	MonthCode string `json:"monthCode"`
	Era       string `json:"era,omitempty"`
	EraYear   int    `json:"eraYear"`
}

// Fields returns d as Fields.
func (d Date) Fields() Fields {
	return Fields{
		Year:      Int(d.Year),
		EraYear:   Int(d.EraYear),
		Era:       d.Era,
		Month:     Int(d.Month),
		MonthCode: d.MonthCode,
		Day:       Int(d.Day),
	}
}

// Compare returns -1, 0 or +1 depending on whether a is before, equal to or
// after b, comparing year, month and day in that order. It assumes that
// month numbers are chronological within a year, which holds for every
// supported calendar.
func Compare(a, b Date) int {
	switch {
	case a.Year != b.Year:
		return sign(a.Year - b.Year)
	case a.Month != b.Month:
		return sign(a.Month - b.Month)
	}
	return sign(a.Day - b.Day)
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}

// MonthDay is a month and day without a year, together with the ISO date of
// a reference year containing it.
type MonthDay struct {
	MonthCode    string   `json:"monthCode"`
	Day          int      `json:"day"`
	ReferenceISO iso.Date `json:"referenceISO"`
}

var monthCodeRE = regexp.MustCompile(`^(1?[0-9])(L?)$`)

// parseMonthCode returns the number and leap marker of a month code.
func parseMonthCode(id ID, code string) (n int, leap bool, err error) {
	m := monthCodeRE.FindStringSubmatch(code)
	if m == nil {
		return 0, false, errorf(id, KindOutOfRange, "invalid month code %q", code)
	}
	n, _ = strconv.Atoi(m[1])
	if n < 1 || n > 13 {
		return 0, false, errorf(id, KindOutOfRange, "invalid month code %q", code)
	}
	return n, m[2] == "L", nil
}

func monthCode(n int, leap bool) string {
	s := strconv.Itoa(n)
	if leap {
		s += "L"
	}
	return s
}
