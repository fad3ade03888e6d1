// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calendar

import (
	"cmp"
	"fmt"
	"slices"

	"cloudeng.io/errors"
)

// Epoch is a calendar or ISO date used as the start of an era. Zero months
// and days default to 1.
type Epoch struct {
	Year  int `yaml:"year" json:"year"`
	Month int `yaml:"month,omitempty" json:"month,omitempty"`
	Day   int `yaml:"day,omitempty" json:"day,omitempty"`
}

func (e Epoch) date() Date {
	if e.Month == 0 {
		e.Month = 1
	}
	if e.Day == 0 {
		e.Day = 1
	}
	return Date{Year: e.Year, Month: e.Month, Day: e.Day}
}

func compareEpoch(a, b Epoch) int {
	return Compare(a.date(), b.date())
}

// EraSpec describes one era of a calendar.
type EraSpec struct {
	Name string `yaml:"name" json:"name"`
	// ISOEpoch is the ISO date on which the era starts.
	ISOEpoch Epoch `yaml:"isoEpoch" json:"isoEpoch"`
	// AnchorEpoch is the calendar date on which the era starts. It is
	// omitted for the anchor era, whose first year is 1 (or 0 with
	// HasYearZero).
	AnchorEpoch *Epoch `yaml:"anchorEpoch,omitempty" json:"anchorEpoch,omitempty"`
	// ReverseOf names the era this one counts backwards from, as BC does
	// from AD. A reverse era takes its epochs from that era.
	ReverseOf   string `yaml:"reverseOf,omitempty" json:"reverseOf,omitempty"`
	HasYearZero bool   `yaml:"hasYearZero,omitempty" json:"hasYearZero,omitempty"`
	// IsAnchor marks the anchor era when it has an explicit AnchorEpoch.
	IsAnchor bool `yaml:"isAnchor,omitempty" json:"isAnchor,omitempty"`
}

type era struct {
	name        string
	isoEpoch    Epoch
	anchorEpoch Date
	reverseOf   *era
	hasYearZero bool
}

// yearZero is the era year of the anchor year: 0 if the era counts a year
// zero and 1 otherwise.
func (e *era) yearZero() int {
	if e.hasYearZero {
		return 0
	}
	return 1
}

// eraTable is a validated list of eras, newest first, with a reverse era (if
// any) last.
type eraTable struct {
	eras   []*era
	anchor *era
}

// buildEraTable validates specs and returns the normalized table. Every
// problem found is reported.
func buildEraTable(specs []EraSpec) (*eraTable, error) {
	if len(specs) == 0 {
		return nil, fmt.Errorf("invalid era data: eras are required")
	}
	errs := &errors.M{}
	t := &eraTable{}
	byName := make(map[string]*era)
	reverse := 0
	for _, s := range specs {
		if s.Name == "" {
			errs.Append(fmt.Errorf("invalid era data: era without a name"))
			continue
		}
		if _, ok := byName[s.Name]; ok {
			errs.Append(fmt.Errorf("invalid era data: duplicate era %q", s.Name))
			continue
		}
		e := &era{name: s.Name, isoEpoch: s.ISOEpoch, hasYearZero: s.HasYearZero}
		byName[s.Name] = e
		t.eras = append(t.eras, e)
		switch {
		case s.ReverseOf != "":
			reverse++
			if s.IsAnchor {
				errs.Append(fmt.Errorf("invalid era data: reverse era %q cannot be the anchor", s.Name))
			}
		case s.IsAnchor || s.AnchorEpoch == nil:
			if t.anchor != nil {
				errs.Append(fmt.Errorf("invalid era data: cannot have multiple anchor eras (%q and %q)", t.anchor.name, s.Name))
				continue
			}
			t.anchor = e
			e.anchorEpoch = Date{Year: e.yearZero(), Month: 1, Day: 1}
			if s.AnchorEpoch != nil {
				e.anchorEpoch = s.AnchorEpoch.date()
			}
		default:
			e.anchorEpoch = s.AnchorEpoch.date()
		}
	}
	if len(specs) == 1 && specs[0].ReverseOf != "" {
		errs.Append(fmt.Errorf("invalid era data: a reverse era cannot be the only era"))
	}
	if reverse > 1 {
		errs.Append(fmt.Errorf("invalid era data: at most one reverse era is allowed, got %d", reverse))
	}
	if t.anchor == nil {
		errs.Append(fmt.Errorf("invalid era data: no anchor era"))
	}
	for _, s := range specs {
		if s.ReverseOf == "" {
			continue
		}
		e, r := byName[s.Name], byName[s.ReverseOf]
		if e == nil {
			continue
		}
		if r == nil || r == e {
			errs.Append(fmt.Errorf("invalid era data: unmatched reverseOf era %q", s.ReverseOf))
			continue
		}
		e.reverseOf = r
		e.isoEpoch = r.isoEpoch
		e.anchorEpoch = r.anchorEpoch
		e.hasYearZero = r.hasYearZero
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}

	slices.SortStableFunc(t.eras, func(a, b *era) int {
		switch {
		case a.reverseOf != nil:
			return 1
		case b.reverseOf != nil:
			return -1
		}
		return cmp.Compare(0, compareEpoch(a.isoEpoch, b.isoEpoch))
	})
	if n := len(t.eras); n > 1 {
		if r := t.eras[n-1].reverseOf; r != nil && r != t.eras[n-2] {
			return nil, fmt.Errorf("invalid era data: reverse era %q must follow %q", t.eras[n-1].name, r.name)
		}
	}
	return t, nil
}

// mustEraTable is buildEraTable for the built-in tables.
func mustEraTable(id ID, specs []EraSpec) *eraTable {
	t, err := buildEraTable(specs)
	if err != nil {
		panic(fmt.Sprintf("calendar: built-in %s eras: %v", id, err))
	}
	return t
}

func (t *eraTable) lookup(name string) *era {
	for _, e := range t.eras {
		if e.name == name {
			return e
		}
	}
	return nil
}

func (t *eraTable) names() []string {
	var s []string
	for _, e := range t.eras {
		s = append(s, e.name)
	}
	return s
}

// eraOf returns the era containing d and the era year of d in it.
func (t *eraTable) eraOf(id ID, d Date) (*era, int, error) {
	for i, e := range t.eras {
		if i == len(t.eras)-1 {
			// The last era takes every remaining older year.
			if e.reverseOf != nil {
				if d.Year >= e.anchorEpoch.Year {
					return nil, 0, errorf(id, KindUnresolvable, "year %d is invalid for era %s", d.Year, e.name)
				}
				return e, e.anchorEpoch.Year - d.Year, nil
			}
			return e, d.Year - e.anchorEpoch.Year + e.yearZero(), nil
		}
		if Compare(d, e.anchorEpoch) >= 0 {
			return e, d.Year - e.anchorEpoch.Year + e.yearZero(), nil
		}
	}
	return nil, 0, errorf(id, KindUnresolvable, "year %d was not matched by any era", d.Year)
}

// yearOf returns the calendar year of eraYear in the named era. An empty
// name refers to the anchor era.
func (t *eraTable) yearOf(id ID, name string, eraYear int) (int, error) {
	e := t.anchor
	if name != "" {
		e = t.lookup(name)
	}
	if e == nil {
		return 0, errorf(id, KindUnresolvable, "unknown era %q", name)
	}
	if e.reverseOf != nil {
		if eraYear < 1 {
			return 0, errorf(id, KindOutOfRange, "years in era %s must be positive, not %d", e.name, eraYear)
		}
		return e.anchorEpoch.Year - eraYear, nil
	}
	return eraYear + e.anchorEpoch.Year - e.yearZero(), nil
}

// complete fills in the year, era and era year of d. If d.Year is known,
// the era and era year are computed from it and any supplied era or era year
// must match. Otherwise the year is computed from the era and era year, and
// the era and era year are normalized to the era actually containing the
// date.
func (t *eraTable) complete(id ID, f Fields, d Date) (Date, error) {
	if f.Year == nil {
		if f.EraYear == nil {
			return Date{}, errorf(id, KindMissingField, "either year or eraYear and era are required")
		}
		y, err := t.yearOf(id, f.Era, *f.EraYear)
		if err != nil {
			return Date{}, err
		}
		d.Year = y
		e, ey, err := t.eraOf(id, d)
		if err != nil {
			return Date{}, err
		}
		d.Era, d.EraYear = e.name, ey
		return d, nil
	}
	d.Year = *f.Year
	e, ey, err := t.eraOf(id, d)
	if err != nil {
		return Date{}, err
	}
	if f.Era != "" && f.Era != e.name {
		return Date{}, errorf(id, KindInconsistent, "era %q does not match calculated era %q", f.Era, e.name)
	}
	if f.EraYear != nil && *f.EraYear != ey {
		return Date{}, errorf(id, KindInconsistent, "eraYear %d does not match calculated eraYear %d", *f.EraYear, ey)
	}
	d.Era, d.EraYear = e.name, ey
	return d, nil
}
