// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iso

import (
	"fmt"
)

// Overflow selects how out-of-range date fields are handled.
type Overflow int

const (
	// Constrain clamps out-of-range fields to the closest valid value. It is
	// the zero value and the default.
	Constrain Overflow = iota
	// Reject fails with an error on any out-of-range field.
	Reject
)

// String implements fmt.Stringer.
func (o Overflow) String() string {
	switch o {
	case Constrain:
		return "constrain"
	case Reject:
		return "reject"
	}
	return fmt.Sprintf("Overflow(%d)", int(o))
}

// ParseOverflow parses "constrain" or "reject". The empty string is
// Constrain.
func ParseOverflow(s string) (Overflow, error) {
	switch s {
	case "", "constrain":
		return Constrain, nil
	case "reject":
		return Reject, nil
	}
	return Constrain, fmt.Errorf("invalid overflow %q, expected constrain or reject", s)
}

// MarshalText implements encoding.TextMarshaler.
func (o Overflow) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Overflow) UnmarshalText(b []byte) error {
	v, err := ParseOverflow(string(b))
	if err != nil {
		return err
	}
	*o = v
	return nil
}

// RangeError reports a field outside its valid range under Reject.
type RangeError struct {
	Field string
	Value int
	Min   int
	Max   int
}

// Error implements error.
func (e *RangeError) Error() string {
	return fmt.Sprintf("%s %d out of range [%d, %d]", e.Field, e.Value, e.Min, e.Max)
}
