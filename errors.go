// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calendar

import (
	"errors"
	"fmt"

	"gonih.org/calendar/iso"
	"gonih.org/calendar/source"
)

// Kind classifies an Error.
type Kind int

const (
	// KindMissingField reports that a required field (year or eraYear,
	// month or monthCode, day) is absent.
	KindMissingField Kind = iota + 1
	// KindInconsistent reports fields that disagree with each other, or an
	// era given to a calendar without eras.
	KindInconsistent
	// KindOutOfRange reports a field outside the bounds of the calendar
	// under Reject, or a malformed month code.
	KindOutOfRange
	// KindUnresolvable reports an unknown calendar or era, or a date for
	// which no ISO day could be found.
	KindUnresolvable
	// KindInternal reports a broken invariant, such as a malformed era
	// table or an exhausted iteration bound.
	KindInternal
)

var kindNames = map[Kind]string{
	KindMissingField: "missing field",
	KindInconsistent: "inconsistent fields",
	KindOutOfRange:   "out of range",
	KindUnresolvable: "unresolvable",
	KindInternal:     "internal error",
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Error is the error type returned by this package.
type Error struct {
	Kind     Kind
	Calendar ID
	Msg      string
	Err      error
}

func (e *Error) Error() string {
	s := e.Kind.String()
	if e.Calendar != "" {
		s = string(e.Calendar) + ": " + s
	}
	if e.Msg != "" {
		s += ": " + e.Msg
	}
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

// Unwrap returns the underlying error, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same kind. This makes the
// Err* sentinels usable with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind && t.Calendar == "" && t.Msg == "" && t.Err == nil
}

// Sentinels matching any *Error of their kind.
var (
	ErrMissingField = &Error{Kind: KindMissingField}
	ErrInconsistent = &Error{Kind: KindInconsistent}
	ErrOutOfRange   = &Error{Kind: KindOutOfRange}
	ErrUnresolvable = &Error{Kind: KindUnresolvable}
	ErrInternal     = &Error{Kind: KindInternal}
)

// IsTypeError reports whether err is caused by missing fields.
func IsTypeError(err error) bool {
	return errors.Is(err, ErrMissingField)
}

// IsRangeError reports whether err is caused by field values: inconsistent,
// out of range or unresolvable ones.
func IsRangeError(err error) bool {
	return errors.Is(err, ErrInconsistent) || errors.Is(err, ErrOutOfRange) || errors.Is(err, ErrUnresolvable)
}

func errorf(id ID, k Kind, format string, args ...any) error {
	return &Error{Kind: k, Calendar: id, Msg: fmt.Sprintf(format, args...)}
}

// wrapSource classifies an error returned by a source.Source.
func wrapSource(id ID, d iso.Date, err error) error {
	k := KindUnresolvable
	if errors.Is(err, source.ErrOutOfRange) {
		k = KindOutOfRange
	}
	return &Error{Kind: k, Calendar: id, Msg: "resolving " + d.String(), Err: err}
}

// wrapRange converts an *iso.RangeError into a KindOutOfRange error.
func wrapRange(id ID, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: KindOutOfRange, Calendar: id, Err: err}
}
