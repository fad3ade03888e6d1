// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calendar

import (
	"log/slog"

	"gonih.org/calendar/iso"
	"gonih.org/calendar/source"
)

// Iteration bounds of the converter. For a well-formed descriptor the
// estimate is within a few months of the target after one correction, and
// bisection in steps of at most eight days converges well within
// maxBisectSteps.
const (
	maxBisectSteps = 256
	maxMonthLength = 31
)

// env bundles what a single operation needs: the calendar, its source and
// the session memoizing intermediate results.
type env struct {
	id   ID
	desc descriptor
	src  source.Source
	s    *Session
	log  *slog.Logger
}

// resolve asks the source for the raw fields of d.
func (e *env) resolve(d iso.Date) (source.Raw, error) {
	r, err := e.src.Resolve(string(e.id), d)
	if err != nil {
		return source.Raw{}, wrapSource(e.id, d, err)
	}
	if r.Month < 1 || r.Month > 13 {
		return source.Raw{}, errorf(e.id, KindOutOfRange, "source reported month %d for %v", r.Month, d)
	}
	return r, nil
}

// toCalendar converts an ISO date to a resolved calendar date.
func (e *env) toCalendar(d iso.Date) (Date, error) {
	if c, ok := e.desc.(closedForm); ok {
		return c.fromISO(d), nil
	}
	k := calKey{e.id, d}
	if v, ok := e.s.toCal.Get(k); ok {
		return v, nil
	}
	r, err := e.resolve(d)
	if err != nil {
		return Date{}, err
	}
	v, err := e.desc.fromRaw(e, r)
	if err != nil {
		return Date{}, err
	}
	e.s.toCal.Set(k, v)
	return v, nil
}

// toISO resolves f and converts it to an ISO date.
func (e *env) toISO(f Fields, o Overflow) (iso.Date, error) {
	d, err := e.desc.adjust(e, f, o)
	if err != nil {
		return 0, err
	}
	return e.dateToISO(d, o)
}

// regulateNaive checks month and day against the bounds that hold for every
// year of the calendar. Values that are only invalid in a particular year
// are handled by the converter.
func (e *env) regulateNaive(d Date, o Overflow) (Date, error) {
	months, err := e.desc.monthsInYear(e, d.Year)
	if err != nil {
		return Date{}, err
	}
	if o == Reject {
		if d.Month < 1 || d.Month > months {
			return Date{}, errorf(e.id, KindOutOfRange, "month %d out of range [1, %d]", d.Month, months)
		}
		if n := e.desc.maximumMonthLength(d); d.Day < 1 || d.Day > n {
			return Date{}, errorf(e.id, KindOutOfRange, "day %d out of range [1, %d]", d.Day, n)
		}
		return d, nil
	}
	d.Month = min(max(d.Month, 1), months)
	d.Day = min(max(d.Day, 1), e.desc.maximumMonthLength(d))
	return d, nil
}

// dateToISO converts a resolved date to an ISO date by converging on the
// calendar source.
//
// Starting from the descriptor's estimate, the estimate is corrected once by
// the naive difference to its round trip. If that lands in the target month,
// the day is exact. Otherwise the estimate is moved towards the target in
// steps of eight days, halving the step whenever it overshoots. A date that
// still cannot be matched with a step of one day does not exist: it is
// rejected or constrained to the earlier of the last two candidates.
func (e *env) dateToISO(d Date, o Overflow) (iso.Date, error) {
	if c, ok := e.desc.(closedForm); ok {
		return c.toISO(d, o)
	}
	d, err := e.regulateNaive(d, o)
	if err != nil {
		return 0, err
	}
	k := isoKey{e.id, d.Year, d.Month, d.Day, o}
	if v, ok := e.s.toISO.Get(k); ok {
		return v, nil
	}

	est := e.desc.estimateISO(d)
	rt, err := e.toCalendar(est)
	if err != nil {
		return 0, err
	}
	est += iso.Date(365*(d.Year-rt.Year) + 30*(d.Month-rt.Month) + d.Day - rt.Day)
	if rt, err = e.toCalendar(est); err != nil {
		return 0, err
	}

	var sign int
	if rt.Year == d.Year && rt.Month == d.Month {
		if est, err = e.sameMonth(d, est+iso.Date(d.Day-rt.Day), o); err != nil {
			return 0, err
		}
	} else {
		sign = Compare(d, rt)
		e.log.Debug("bisecting calendar date", "calendar", e.id, "year", d.Year, "month", d.Month, "day", d.Day, "estimate", est)
	}

	increment := 8
	for step := 0; sign != 0; step++ {
		if step >= maxBisectSteps {
			return 0, errorf(e.id, KindInternal, "no convergence for %d-%d-%d after %d steps", d.Year, d.Month, d.Day, step)
		}
		est += iso.Date(sign * increment)
		old := rt
		if rt, err = e.toCalendar(est); err != nil {
			return 0, err
		}
		oldSign := sign
		sign = Compare(d, rt)
		switch {
		case sign == 0:
		case rt.Year == d.Year && rt.Month == d.Month:
			if est, err = e.sameMonth(d, est+iso.Date(d.Day-rt.Day), o); err != nil {
				return 0, err
			}
			sign = 0
		case sign != oldSign && increment > 1:
			increment /= 2
		case sign != oldSign:
			// Neither neighbor matches, so the date does not exist in
			// this calendar.
			if o == Reject {
				return 0, errorf(e.id, KindUnresolvable, "no ISO date for %d-%d-%d", d.Year, d.Month, d.Day)
			}
			if Compare(rt, old) > 0 {
				est--
			}
			e.log.Debug("constrained calendar date", "calendar", e.id, "year", d.Year, "month", d.Month, "day", d.Day, "result", est)
			sign = 0
		}
	}
	e.s.toISO.Set(k, est)
	return est, nil
}

// sameMonth returns est, the ISO date of day d.Day in the month of d, after
// checking that the month is long enough. If it is not, the date is rejected
// or constrained to the last day of the month.
func (e *env) sameMonth(d Date, est iso.Date, o Overflow) (iso.Date, error) {
	if d.Day <= e.desc.minimumMonthLength(d) {
		return est, nil
	}
	rt, err := e.toCalendar(est)
	if err != nil {
		return 0, err
	}
	for i := 0; rt.Year != d.Year || rt.Month != d.Month; i++ {
		if o == Reject {
			return 0, errorf(e.id, KindOutOfRange, "day %d does not exist in month %d of year %d", d.Day, d.Month, d.Year)
		}
		if i >= maxMonthLength {
			return 0, errorf(e.id, KindInternal, "month %d of year %d not found near %v", d.Month, d.Year, est)
		}
		est--
		if rt, err = e.toCalendar(est); err != nil {
			return 0, err
		}
	}
	return est, nil
}

// regulate returns the date that d denotes after applying o.
func (e *env) regulate(d Date, o Overflow) (Date, error) {
	x, err := e.dateToISO(d, o)
	if err != nil {
		return Date{}, err
	}
	return e.toCalendar(x)
}
