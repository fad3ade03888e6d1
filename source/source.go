// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package source defines the locale calendar source consulted by the
// conversion engine in package calendar, and provides a default source
// computing calendar fields from calendar rules.
//
// A Source only answers one question: which calendar fields does a given ISO
// day have. The engine derives everything else (ISO dates of calendar dates,
// month lengths, leap years) by probing it.
package source

import (
	"errors"
	"fmt"

	"gonih.org/calendar/iso"
)

var (
	// ErrUnsupported is returned for calendar ids a source does not know.
	ErrUnsupported = errors.New("unsupported calendar")
	// ErrOutOfRange is returned for ISO dates outside the range a source
	// has data for.
	ErrOutOfRange = errors.New("date out of source range")
)

// Raw is the set of calendar fields a Source reports for a single day.
type Raw struct {
	// Year is the era year when Era is set, and the calendar year (or the
	// related ISO-style year for calendars without eras) otherwise.
	Year int `json:"year"`
	// Month is the one-based position of the month in its year.
	Month int `json:"month"`
	Day   int `json:"day"`
	Era   string `json:"era,omitempty"`
	// MonthExtra carries calendar specific month information, such as the
	// "bis" suffix of a Chinese leap month or the name of a Hebrew month.
	MonthExtra string `json:"monthExtra,omitempty"`
}

// Source resolves ISO dates to calendar fields. Implementations must be
// deterministic and safe for concurrent use.
type Source interface {
	Resolve(id string, d iso.Date) (Raw, error)
}

// Func adapts a function to a Source.
type Func func(id string, d iso.Date) (Raw, error)

// Resolve implements Source.
func (f Func) Resolve(id string, d iso.Date) (Raw, error) {
	return f(id, d)
}

// Default returns the rule based source. It supports every built-in calendar
// id. Chinese and Dangi dates are only available for ISO years 1901 to 2099.
func Default() Source {
	return rules{}
}

type rules struct{}

func (rules) Resolve(id string, d iso.Date) (Raw, error) {
	switch id {
	case "iso8601":
		y, m, day := d.Date()
		return Raw{Year: y, Month: m, Day: day}, nil
	case "gregory":
		return gregory(d), nil
	case "roc":
		return roc(d), nil
	case "buddhist":
		return buddhist(d), nil
	case "japanese":
		return japanese(d), nil
	case "coptic":
		return coptic(d), nil
	case "ethiopic":
		return ethiopic(d), nil
	case "ethioaa":
		return ethioaa(d), nil
	case "persian":
		return persian(d), nil
	case "indian":
		return indian(d), nil
	case "hebrew":
		return hebrew(d), nil
	case "islamic", "islamic-civil", "islamicc", "islamic-umalqura", "islamic-rgsa":
		return islamic(islamicCivilEpoch, d), nil
	case "islamic-tbla":
		return islamic(islamicAstronomicalEpoch, d), nil
	case "chinese", "dangi":
		return chinese(d)
	}
	return Raw{}, fmt.Errorf("%w %q", ErrUnsupported, id)
}
