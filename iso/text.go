// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iso

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// String returns d formatted as YYYY-MM-DD. Years outside [0, 9999] use the
// extended six-digit form with an explicit sign, as in +012345-01-01 or
// -000043-03-15.
func (d Date) String() string {
	return string(d.appendText(make([]byte, 0, 17)))
}

func (d Date) appendText(b []byte) []byte {
	y, m, day := d.Date()
	switch {
	case y < 0:
		b = append(b, '-')
		b = appendInt(b, -y, 6)
	case y > 9999:
		b = append(b, '+')
		b = appendInt(b, y, 6)
	default:
		b = appendInt(b, y, 4)
	}
	b = append(b, '-')
	b = appendInt(b, m, 2)
	b = append(b, '-')
	return appendInt(b, day, 2)
}

// appendInt appends the decimal form of the non-negative x, zero-padded to
// width digits.
func appendInt(b []byte, x, width int) []byte {
	s := strconv.Itoa(x)
	for i := len(s); i < width; i++ {
		b = append(b, '0')
	}
	return append(b, s...)
}

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) {
	return d.appendText(nil), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Date) UnmarshalText(b []byte) error {
	v, err := Parse(string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

var errSyntax = errors.New("expected YYYY-MM-DD or ±YYYYYY-MM-DD")

// Parse parses a date in the form YYYY-MM-DD or ±YYYYYY-MM-DD. Unlike [Of],
// it does not normalize: out-of-range months and days are an error.
func Parse(s string) (Date, error) {
	d, err := parse(s)
	if err != nil {
		return 0, fmt.Errorf("parsing date %q: %w", s, err)
	}
	return d, nil
}

func parse(s string) (Date, error) {
	sign, digits := 1, 4
	switch {
	case strings.HasPrefix(s, "-"):
		sign, digits, s = -1, 6, s[1:]
	case strings.HasPrefix(s, "+"):
		digits, s = 6, s[1:]
	}
	if len(s) != digits+6 || s[digits] != '-' || s[digits+3] != '-' {
		return 0, errSyntax
	}
	y, err := atoi(s[:digits])
	if err != nil {
		return 0, err
	}
	m, err := atoi(s[digits+1 : digits+3])
	if err != nil {
		return 0, err
	}
	day, err := atoi(s[digits+4:])
	if err != nil {
		return 0, err
	}
	if sign < 0 && y == 0 {
		return 0, errors.New("negative zero year")
	}
	y *= sign
	if _, _, _, err := Regulate(y, m, day, Reject); err != nil {
		return 0, err
	}
	return Of(y, m, day), nil
}

func atoi(s string) (int, error) {
	n := 0
	for _, c := range []byte(s) {
		if c < '0' || c > '9' {
			return 0, errSyntax
		}
		n = n*10 + int(c-'0')
	}
	return n, nil
}
