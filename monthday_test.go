// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gonih.org/calendar/iso"
)

func TestMonthDayFromFields(t *testing.T) {
	tcs := []struct {
		id   ID
		f    Fields
		want MonthDay
	}{
		{Gregory, Fields{MonthCode: "2", Day: Int(29)}, MonthDay{"2", 29, iso.Of(1972, 2, 29)}},
		{Gregory, Fields{Month: Int(12), Day: Int(31)}, MonthDay{"12", 31, iso.Of(1972, 12, 31)}},
		{Gregory, Fields{Year: Int(2023), Month: Int(6), Day: Int(1)}, MonthDay{"6", 1, iso.Of(2023, 6, 1)}},
		{Chinese, Fields{MonthCode: "1", Day: Int(1)}, MonthDay{"1", 1, iso.Of(1972, 2, 15)}},
		{Hebrew, Fields{Year: Int(5784), Month: Int(6), Day: Int(1)}, MonthDay{"5L", 1, iso.Of(2024, 2, 10)}},
	}
	for _, tc := range tcs {
		c := MustNew(string(tc.id))
		got, err := c.MonthDayFromFields(nil, tc.f, Reject)
		require.NoError(t, err, "%s %+v", tc.id, tc.f)
		assert.Equal(t, tc.want, got, "%s %+v", tc.id, tc.f)
	}
}

// TestMonthDaySearch checks that the reference date found for a month and
// day without a year has that month and day.
func TestMonthDaySearch(t *testing.T) {
	tcs := []struct {
		id   ID
		code string
		day  int
	}{
		{Hebrew, "5L", 30},
		{Hebrew, "2", 30},
		{IslamicCivil, "12", 30},
		{Persian, "12", 30},
		{Coptic, "13", 6},
		{Chinese, "4L", 1},
	}
	for _, tc := range tcs {
		c := MustNew(string(tc.id))
		s := NewSession()
		md, err := c.MonthDayFromFields(s, Fields{MonthCode: tc.code, Day: Int(tc.day)}, Reject)
		require.NoError(t, err, "%s %s-%d", tc.id, tc.code, tc.day)
		assert.Equal(t, tc.code, md.MonthCode)
		assert.Equal(t, tc.day, md.Day)

		d, err := c.ToCalendar(s, md.ReferenceISO)
		require.NoError(t, err)
		assert.Equal(t, tc.code, d.MonthCode, "%s %v", tc.id, md.ReferenceISO)
		assert.Equal(t, tc.day, d.Day, "%s %v", tc.id, md.ReferenceISO)
	}
}

func TestMonthDayOverflow(t *testing.T) {
	greg := MustNew("gregory")
	f := Fields{Month: Int(2), Day: Int(30)}
	_, err := greg.MonthDayFromFields(nil, f, Reject)
	assert.ErrorIs(t, err, ErrUnresolvable)
	md, err := greg.MonthDayFromFields(nil, f, Constrain)
	require.NoError(t, err)
	assert.Equal(t, MonthDay{"2", 29, iso.Of(1972, 2, 29)}, md)
}

func TestMonthDayErrors(t *testing.T) {
	tcs := []struct {
		id   ID
		f    Fields
		want error
	}{
		{Gregory, Fields{Month: Int(2)}, ErrMissingField},
		{Gregory, Fields{Day: Int(2)}, ErrMissingField},
		{Hebrew, Fields{Month: Int(6), Day: Int(1)}, ErrMissingField},
		{Chinese, Fields{Month: Int(6), Day: Int(1)}, ErrMissingField},
		{Gregory, Fields{Month: Int(3), MonthCode: "4", Day: Int(1)}, ErrInconsistent},
		{Gregory, Fields{MonthCode: "4x", Day: Int(1)}, ErrOutOfRange},
	}
	for _, tc := range tcs {
		c := MustNew(string(tc.id))
		_, err := c.MonthDayFromFields(nil, tc.f, Constrain)
		assert.ErrorIs(t, err, tc.want, "%s %+v", tc.id, tc.f)
	}
}

func TestYearMonthFromFields(t *testing.T) {
	greg := MustNew("gregory")
	got, err := greg.YearMonthFromFields(nil, Fields{Year: Int(2024), Month: Int(2), Day: Int(17)}, Reject)
	require.NoError(t, err)
	assert.Equal(t, iso.Of(2024, 2, 1), got)

	heb := MustNew("hebrew")
	got, err = heb.YearMonthFromFields(nil, Fields{Year: Int(5785), MonthCode: "1"}, Reject)
	require.NoError(t, err)
	assert.Equal(t, iso.Of(2024, 10, 3), got)
}
