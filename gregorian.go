// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calendar

import (
	"gonih.org/calendar/iso"
	"gonih.org/calendar/source"
)

// Family selects the month structure of an era calendar.
type Family string

const (
	// FamilyGregorian calendars have the months and leap years of the ISO
	// calendar and only number years differently.
	FamilyGregorian Family = "gregorian"
	// FamilyOrthodox calendars have twelve months of 30 days and a 13th
	// month of five days, six in every fourth year.
	FamilyOrthodox Family = "orthodox"
)

// eraCalendar is a solar calendar whose years are numbered by an era table.
type eraCalendar struct {
	id     ID
	family Family
	eras   *eraTable
}

func (c *eraCalendar) calendarType() Type { return Solar }
func (c *eraCalendar) eraNames() []string { return c.eras.names() }
func (c *eraCalendar) searchYears() int { return 8 }

func (c *eraCalendar) months() int {
	if c.family == FamilyOrthodox {
		return 13
	}
	return 12
}

func (c *eraCalendar) monthsInYear(*env, int) (int, error) {
	return c.months(), nil
}

// isoYear returns the ISO year in which the given calendar year mostly
// falls.
func (c *eraCalendar) isoYear(year int) int {
	a := c.eras.anchor
	return year + a.isoEpoch.Year - a.anchorEpoch.Year
}

func (c *eraCalendar) leap(year int) bool {
	if c.family == FamilyOrthodox {
		// One year before the Julian leap year.
		return (year+1)%4 == 0
	}
	return iso.IsLeap(c.isoYear(year))
}

func (c *eraCalendar) inLeapYear(_ *env, year int) (bool, error) {
	return c.leap(year), nil
}

func (c *eraCalendar) minimumMonthLength(d Date) int {
	if c.family == FamilyOrthodox {
		if d.Month == 13 {
			if c.leap(d.Year) {
				return 6
			}
			return 5
		}
		return 30
	}
	if d.Month == 2 && c.leap(d.Year) {
		return 29
	}
	return iso.DaysInMonth(1, min(max(d.Month, 1), 12))
}

func (c *eraCalendar) maximumMonthLength(d Date) int {
	return c.minimumMonthLength(d)
}

func (c *eraCalendar) estimateISO(d Date) iso.Date {
	if c.family == FamilyOrthodox {
		a := c.eras.anchor
		e := a.isoEpoch.date()
		n := (d.Year - a.anchorEpoch.Year) * 1461
		q := n / 4
		if n%4 < 0 {
			q--
		}
		return iso.Of(e.Year, e.Month, e.Day) + iso.Date(q+30*(d.Month-1)+d.Day-1)
	}
	y, m, day, _ := iso.Regulate(c.isoYear(d.Year), d.Month, d.Day, Constrain)
	return iso.Of(y, m, day)
}

func (c *eraCalendar) adjust(_ *env, f Fields, _ Overflow) (Date, error) {
	if err := checkFields(c.id, f, true, true); err != nil {
		return Date{}, err
	}
	m, err := regularMonth(c.id, f, c.months())
	if err != nil {
		return Date{}, err
	}
	return c.eras.complete(c.id, f, Date{Month: m, MonthCode: monthCode(m, false), Day: *f.Day})
}

func (c *eraCalendar) fromRaw(_ *env, r source.Raw) (Date, error) {
	f := Fields{Year: Int(r.Year)}
	if r.Era != "" {
		f = Fields{EraYear: Int(r.Year), Era: r.Era}
	}
	return c.eras.complete(c.id, f, Date{Month: r.Month, MonthCode: monthCode(r.Month, false), Day: r.Day})
}

// Built-in era tables.
var (
	gregoryEras = []EraSpec{
		{Name: "ad", ISOEpoch: Epoch{1, 1, 1}},
		{Name: "bc", ReverseOf: "ad"},
	}
	rocEras = []EraSpec{
		{Name: "minguo", ISOEpoch: Epoch{1912, 1, 1}},
		{Name: "before-roc", ReverseOf: "minguo"},
	}
	buddhistEras = []EraSpec{
		{Name: "be", HasYearZero: true, ISOEpoch: Epoch{-543, 1, 1}},
	}
	// Japanese years are counted from the start of Meiji. Earlier dates
	// belong to Meiji with non-positive era years.
	japaneseEras = []EraSpec{
		{Name: "meiji", ISOEpoch: Epoch{1868, 9, 8}, AnchorEpoch: &Epoch{1, 9, 8}, IsAnchor: true},
		{Name: "taisho", ISOEpoch: Epoch{1912, 7, 30}, AnchorEpoch: &Epoch{45, 7, 30}},
		{Name: "showa", ISOEpoch: Epoch{1926, 12, 25}, AnchorEpoch: &Epoch{59, 12, 25}},
		{Name: "heisei", ISOEpoch: Epoch{1989, 1, 8}, AnchorEpoch: &Epoch{122, 1, 8}},
		{Name: "reiwa", ISOEpoch: Epoch{2019, 5, 1}, AnchorEpoch: &Epoch{152, 5, 1}},
	}
	copticEras = []EraSpec{
		{Name: "era1", ISOEpoch: Epoch{284, 8, 29}},
		{Name: "era0", ReverseOf: "era1"},
	}
	// Ethiopic years are Amete Alem years; era1 (Amete Mihret) starts in
	// year 5501 of era0.
	ethiopicEras = []EraSpec{
		{Name: "era0", ISOEpoch: Epoch{-5492, 7, 17}},
		{Name: "era1", ISOEpoch: Epoch{8, 8, 27}, AnchorEpoch: &Epoch{Year: 5501}},
	}
	ethioaaEras = []EraSpec{
		{Name: "era0", ISOEpoch: Epoch{-5492, 7, 17}},
	}
)
