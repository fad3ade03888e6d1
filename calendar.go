// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package calendar converts dates between the ISO calendar and other world
// calendars and does arithmetic on them.
//
// All calendars are implemented by one conversion engine. A calendar only
// describes itself (month lengths, leap years, eras and a rough estimate of
// the ISO date of a calendar date) and the engine finds exact ISO dates by
// converging on a source.Source, which maps ISO days to calendar fields. The
// default source computes those fields from calendar rules; other sources,
// such as ones backed by a locale library, can be plugged in with
// WithSource.
//
// Calendar dates are given as Fields, which may be incomplete or redundant
// (for example an era and era year instead of a year, or a month code instead
// of a month number), and are returned as a Date, in which all fields are
// present and consistent.
//
// Month numbers are positions in the year. In lunisolar calendars they shift
// in years with a leap month, so code that needs a stable identifier of a
// month should use month codes: "5" is always the fifth regular month and
// "5L" the leap month following it.
//
// A Session memoizes the conversions an operation needs. It is passed to
// every method and may be shared by a sequence of related calls of one
// goroutine.
package calendar

import (
	"log/slog"
	"strings"
	"time"

	"gonih.org/calendar/iso"
	"gonih.org/calendar/source"
)

// Calendar is a calendar system. It is immutable and safe for concurrent
// use.
type Calendar struct {
	id   ID
	desc descriptor
	src  source.Source
	log  *slog.Logger
}

// Option configures a Calendar.
type Option func(*Calendar)

// WithSource makes the calendar use src instead of source.Default.
func WithSource(src source.Source) Option {
	return func(c *Calendar) {
		c.src = src
	}
}

// WithLogger sets the logger the calendar reports unusual conversions to.
// The default is slog.Default.
func WithLogger(l *slog.Logger) Option {
	return func(c *Calendar) {
		c.log = l
	}
}

// New returns the built-in calendar with the given id.
func New(id string, opts ...Option) (*Calendar, error) {
	d, ok := lookup(ID(id))
	if !ok {
		return nil, errorf(ID(id), KindUnresolvable, "unknown calendar %q", id)
	}
	return newCalendar(ID(id), d, opts), nil
}

func newCalendar(id ID, d descriptor, opts []Option) *Calendar {
	c := &Calendar{id: id, desc: d, src: source.Default(), log: slog.Default()}
	for _, o := range opts {
		o(c)
	}
	return c
}

// MustNew is like New but panics on an unknown id.
func MustNew(id string, opts ...Option) *Calendar {
	c, err := New(id, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Calendar) env(s *Session) *env {
	if s == nil {
		s = NewSession()
	}
	return &env{id: c.id, desc: c.desc, src: c.src, s: s, log: c.log}
}

// ID returns the id of c.
func (c *Calendar) ID() ID {
	return c.id
}

// Type returns the classification of c.
func (c *Calendar) Type() Type {
	return c.desc.calendarType()
}

// Eras returns the names of the eras of c, newest first, or nil if the
// calendar has no eras.
func (c *Calendar) Eras() []string {
	return c.desc.eraNames()
}

// ToISO returns the ISO date of the calendar date described by f. Under
// Constrain, out of range months and days are clamped; under Reject they are
// an error.
func (c *Calendar) ToISO(s *Session, f Fields, o Overflow) (iso.Date, error) {
	return c.env(s).toISO(f, o)
}

// ToCalendar returns the calendar date of an ISO date.
func (c *Calendar) ToCalendar(s *Session, d iso.Date) (Date, error) {
	return c.env(s).toCalendar(d)
}

// Regulate resolves f into a complete, valid date.
func (c *Calendar) Regulate(s *Session, f Fields, o Overflow) (Date, error) {
	e := c.env(s)
	x, err := e.toISO(f, o)
	if err != nil {
		return Date{}, err
	}
	return e.toCalendar(x)
}

// Add returns d moved by dur. Years are added first, keeping the month code
// and day, then months, then weeks and days. If an intermediate date does
// not exist, it is clamped under Constrain and an error under Reject.
func (c *Calendar) Add(s *Session, d Date, dur Duration, o Overflow) (Date, error) {
	return c.env(s).add(d, dur, o)
}

// Until returns the duration from a to b, using units no larger than
// largest. Adding the result to a under Constrain yields b.
func (c *Calendar) Until(s *Session, a, b Date, largest Unit) (Duration, error) {
	return c.env(s).until(a, b, largest)
}

// DaysInMonth returns the number of days in the month of d.
func (c *Calendar) DaysInMonth(s *Session, d Date) (int, error) {
	return c.env(s).daysInMonth(d)
}

// DaysInPreviousMonth returns the number of days in the month before the
// month of d.
func (c *Calendar) DaysInPreviousMonth(s *Session, d Date) (int, error) {
	return c.env(s).daysInPreviousMonth(d)
}

// MonthsInYear returns the number of months in year.
func (c *Calendar) MonthsInYear(s *Session, year int) (int, error) {
	return c.desc.monthsInYear(c.env(s), year)
}

// InLeapYear reports whether year is a leap year. In lunisolar calendars
// that is a year with a leap month; in other calendars a year with a leap
// day.
func (c *Calendar) InLeapYear(s *Session, year int) (bool, error) {
	return c.desc.inLeapYear(c.env(s), year)
}

// DaysInYear returns the number of days in year.
func (c *Calendar) DaysInYear(s *Session, year int) (int, error) {
	if cf, ok := c.desc.(closedForm); ok {
		return cf.daysInYear(year), nil
	}
	e := c.env(s)
	start, err := e.dateToISO(Date{Year: year, Month: 1, Day: 1}, Reject)
	if err != nil {
		return 0, err
	}
	end, err := e.dateToISO(Date{Year: year + 1, Month: 1, Day: 1}, Reject)
	if err != nil {
		return 0, err
	}
	return int(end - start), nil
}

// DayOfYear returns the one-based position of d in its year.
func (c *Calendar) DayOfYear(s *Session, d Date) (int, error) {
	e := c.env(s)
	start, err := e.dateToISO(Date{Year: d.Year, Month: 1, Day: 1}, Reject)
	if err != nil {
		return 0, err
	}
	x, err := e.dateToISO(d, Reject)
	if err != nil {
		return 0, err
	}
	return int(x-start) + 1, nil
}

// DayOfWeek returns the day of the week of d.
func (c *Calendar) DayOfWeek(s *Session, d Date) (time.Weekday, error) {
	x, err := c.env(s).dateToISO(d, Reject)
	if err != nil {
		return 0, err
	}
	return x.Weekday(), nil
}

// MonthType is the kind of a month.
type MonthType string

const (
	RegularMonth MonthType = "regular"
	LeapMonth    MonthType = "leap"
)

// MonthType returns whether d is in a leap month.
func (d Date) MonthType() MonthType {
	if strings.HasSuffix(d.MonthCode, "L") {
		return LeapMonth
	}
	return RegularMonth
}
