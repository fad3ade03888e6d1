// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calendar

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"gonih.org/calendar/iso"
	"gonih.org/calendar/source"
)

// Definition describes an era calendar that is not built in. Its months
// follow Family and its years are numbered by Eras.
//
// In YAML:
//
//	id: kyoto
//	family: gregorian
//	eras:
//	  - name: heisei
//	    isoEpoch: {year: 1989, month: 1, day: 8}
//	    isAnchor: true
//	    anchorEpoch: {year: 1, month: 1, day: 8}
//	  - name: reiwa
//	    isoEpoch: {year: 2019, month: 5, day: 1}
//	    anchorEpoch: {year: 31, month: 5, day: 1}
type Definition struct {
	ID     ID        `yaml:"id" json:"id"`
	Family Family    `yaml:"family" json:"family"`
	Eras   []EraSpec `yaml:"eras" json:"eras"`
}

// ParseDefinitions reads a stream of YAML documents, each containing one
// Definition. Unknown keys are an error.
func ParseDefinitions(r io.Reader) ([]Definition, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var defs []Definition
	for {
		var d Definition
		err := dec.Decode(&d)
		if errors.Is(err, io.EOF) {
			return defs, nil
		}
		if err != nil {
			return nil, fmt.Errorf("parsing calendar definition %d: %w", len(defs)+1, err)
		}
		defs = append(defs, d)
	}
}

// MarshalDefinitions encodes defs as a stream of YAML documents, in the
// format read by ParseDefinitions.
func MarshalDefinitions(defs []Definition) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	for _, d := range defs {
		if err := enc.Encode(d); err != nil {
			return nil, err
		}
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Define returns the calendar described by def. Unless overridden by
// WithSource, its dates are computed from the anchor era: Gregorian
// calendars shift the ISO year and Orthodox calendars count 365¼ day years
// from the ISO epoch of the anchor era.
//
// Built-in ids cannot be redefined. A malformed era table is reported as a
// KindInternal error listing every problem found.
func Define(def Definition, opts ...Option) (*Calendar, error) {
	if def.ID == "" {
		return nil, errorf("", KindMissingField, "calendar id is required")
	}
	if _, ok := lookup(def.ID); ok {
		return nil, errorf(def.ID, KindInconsistent, "cannot redefine built-in calendar %s", def.ID)
	}
	if def.Family == "" {
		def.Family = FamilyGregorian
	}
	if def.Family != FamilyGregorian && def.Family != FamilyOrthodox {
		return nil, errorf(def.ID, KindUnresolvable, "unknown calendar family %q", def.Family)
	}
	t, err := buildEraTable(def.Eras)
	if err != nil {
		return nil, &Error{Kind: KindInternal, Calendar: def.ID, Msg: "invalid era table", Err: err}
	}
	a := t.anchor
	var src source.Source
	switch def.Family {
	case FamilyGregorian:
		src = source.Shifted(a.isoEpoch.Year - a.anchorEpoch.Year)
	case FamilyOrthodox:
		e := a.isoEpoch.date()
		src = source.Orthodox(iso.Of(e.Year, e.Month, e.Day), a.anchorEpoch.Year)
	}
	opts = append([]Option{WithSource(src)}, opts...)
	return newCalendar(def.ID, &eraCalendar{id: def.ID, family: def.Family, eras: t}, opts), nil
}
