// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calendar

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonih.org/set"

	"gonih.org/calendar/iso"
	"gonih.org/calendar/source"
)

func TestNew(t *testing.T) {
	ids := set.Make(IDs()...)
	assert.Len(t, ids, 19)
	for id := range ids {
		c, err := New(string(id))
		require.NoError(t, err)
		assert.Equal(t, id, c.ID())
	}

	_, err := New("klingon")
	assert.ErrorIs(t, err, ErrUnresolvable)
	assert.True(t, IsRangeError(err))
	assert.Panics(t, func() { MustNew("klingon") })
}

func TestTypeAndEras(t *testing.T) {
	tcs := []struct {
		id   ID
		typ  Type
		eras []string
	}{
		{ISO8601, Solar, nil},
		{Gregory, Solar, []string{"ad", "bc"}},
		{Japanese, Solar, []string{"reiwa", "heisei", "showa", "taisho", "meiji"}},
		{Ethiopic, Solar, []string{"era1", "era0"}},
		{Persian, Solar, []string{"ap"}},
		{IslamicCivil, Lunar, []string{"ah"}},
		{Hebrew, Lunisolar, nil},
		{Chinese, Lunisolar, nil},
	}
	for _, tc := range tcs {
		c := MustNew(string(tc.id))
		assert.Equal(t, tc.typ, c.Type(), tc.id)
		assert.Equal(t, tc.eras, c.Eras(), tc.id)
	}
}

func TestToCalendar(t *testing.T) {
	tcs := []struct {
		id   ID
		iso  iso.Date
		want Date
	}{
		{ISO8601, iso.Of(2024, 2, 29), Date{Year: 2024, Month: 2, Day: 29, MonthCode: "2", EraYear: 2024}},
		{Gregory, iso.Of(2024, 3, 15), Date{Year: 2024, Month: 3, Day: 15, MonthCode: "3", Era: "ad", EraYear: 2024}},
		{Gregory, iso.Of(-43, 3, 15), Date{Year: -43, Month: 3, Day: 15, MonthCode: "3", Era: "bc", EraYear: 44}},
		{ROC, iso.Of(1911, 12, 31), Date{Year: 0, Month: 12, Day: 31, MonthCode: "12", Era: "before-roc", EraYear: 1}},
		{Buddhist, iso.Of(2024, 6, 1), Date{Year: 2567, Month: 6, Day: 1, MonthCode: "6", Era: "be", EraYear: 2567}},
		{Japanese, iso.Of(2019, 4, 30), Date{Year: 152, Month: 4, Day: 30, MonthCode: "4", Era: "heisei", EraYear: 31}},
		{Japanese, iso.Of(2019, 5, 1), Date{Year: 152, Month: 5, Day: 1, MonthCode: "5", Era: "reiwa", EraYear: 1}},
		{Coptic, iso.Of(2024, 9, 10), Date{Year: 1740, Month: 13, Day: 5, MonthCode: "13", Era: "era1", EraYear: 1740}},
		{Ethiopic, iso.Of(2024, 9, 11), Date{Year: 7517, Month: 1, Day: 1, MonthCode: "1", Era: "era1", EraYear: 2017}},
		{EthioAA, iso.Of(2024, 9, 11), Date{Year: 7517, Month: 1, Day: 1, MonthCode: "1", Era: "era0", EraYear: 7517}},
		{Persian, iso.Of(2024, 3, 20), Date{Year: 1403, Month: 1, Day: 1, MonthCode: "1", Era: "ap", EraYear: 1403}},
		{Indian, iso.Of(2024, 3, 21), Date{Year: 1946, Month: 1, Day: 1, MonthCode: "1", Era: "saka", EraYear: 1946}},
		{Hebrew, iso.Of(2024, 10, 2), Date{Year: 5784, Month: 13, Day: 29, MonthCode: "12", EraYear: 5784}},
		{Hebrew, iso.Of(2024, 10, 3), Date{Year: 5785, Month: 1, Day: 1, MonthCode: "1", EraYear: 5785}},
		{IslamicCivil, iso.Of(2024, 7, 8), Date{Year: 1446, Month: 1, Day: 1, MonthCode: "1", Era: "ah", EraYear: 1446}},
		{IslamicTbla, iso.Of(2024, 7, 7), Date{Year: 1446, Month: 1, Day: 1, MonthCode: "1", Era: "ah", EraYear: 1446}},
		{Chinese, iso.Of(2024, 2, 10), Date{Year: 2024, Month: 1, Day: 1, MonthCode: "1", EraYear: 2024}},
		{Chinese, iso.Of(2023, 3, 22), Date{Year: 2023, Month: 3, Day: 1, MonthCode: "2L", EraYear: 2023}},
		{Dangi, iso.Of(2024, 2, 10), Date{Year: 2024, Month: 1, Day: 1, MonthCode: "1", EraYear: 2024}},
	}
	for _, tc := range tcs {
		c := MustNew(string(tc.id))
		got, err := c.ToCalendar(nil, tc.iso)
		require.NoError(t, err, "%s %v", tc.id, tc.iso)
		assert.Equal(t, tc.want, got, "%s %v", tc.id, tc.iso)

		back, err := c.ToISO(nil, got.Fields(), Reject)
		require.NoError(t, err, "%s %+v", tc.id, got)
		assert.Equal(t, tc.iso, back, "%s %+v", tc.id, got)
	}
}

// TestRoundTrip converts a range of ISO dates to every calendar and back,
// and checks that calendar dates increase with ISO dates.
func TestRoundTrip(t *testing.T) {
	start, end := iso.Of(2019, 1, 1), iso.Of(2025, 12, 31)
	step := iso.Date(3)
	if testing.Short() {
		step = 29
	}
	for _, id := range IDs() {
		t.Run(string(id), func(t *testing.T) {
			c := MustNew(string(id))
			s := NewSession()
			var prev Date
			for x := start; x <= end; x += step {
				d, err := c.ToCalendar(s, x)
				require.NoError(t, err, "%v", x)
				back, err := c.ToISO(s, d.Fields(), Reject)
				require.NoError(t, err, "%+v", d)
				require.Equal(t, x, back, "%+v", d)
				if x > start {
					require.Negative(t, Compare(prev, d), "%+v not after %+v", d, prev)
				}
				prev = d
			}
		})
	}
}

// TestRoundTripWide covers negative ISO years and era boundaries in every
// calendar without a range limit.
func TestRoundTripWide(t *testing.T) {
	dates := []iso.Date{
		iso.Of(0, 12, 31), iso.Of(1, 1, 1),
		iso.Of(1911, 12, 31), iso.Of(1912, 1, 1),
		iso.Of(1989, 1, 7), iso.Of(1989, 1, 8),
		iso.Of(2019, 4, 30), iso.Of(2019, 5, 1),
	}
	step := iso.Date(997)
	if testing.Short() {
		step = 9973
	}
	for x := iso.Of(-600, 1, 1); x < iso.Of(2300, 1, 1); x += step {
		dates = append(dates, x)
	}
	for _, id := range IDs() {
		if id == Chinese || id == Dangi {
			continue
		}
		t.Run(string(id), func(t *testing.T) {
			c := MustNew(string(id))
			s := NewSession()
			for _, x := range dates {
				d, err := c.ToCalendar(s, x)
				require.NoError(t, err, "%v", x)
				back, err := c.ToISO(s, d.Fields(), Reject)
				require.NoError(t, err, "%+v", d)
				require.Equal(t, x, back, "%+v", d)
			}
		})
	}
}

// TestChineseRange checks that dates outside the complete lunar years of
// the tables are out of range instead of failing internally.
func TestChineseRange(t *testing.T) {
	c := MustNew("chinese")
	d, err := c.ToCalendar(nil, iso.Of(1901, 2, 19))
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 1901, Month: 1, Day: 1, MonthCode: "1", EraYear: 1901}, d)
	d, err = c.ToCalendar(nil, iso.Of(2098, 6, 1))
	require.NoError(t, err)
	assert.Equal(t, 2098, d.Year)

	for _, x := range []iso.Date{iso.Of(1900, 6, 1), iso.Of(1901, 1, 1), iso.Of(2099, 6, 1), iso.Of(2100, 6, 1)} {
		_, err := c.ToCalendar(nil, x)
		assert.ErrorIs(t, err, ErrOutOfRange, "%v", x)
	}
	_, err = c.ToISO(nil, YMD(2099, 1, 1), Constrain)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = c.MonthsInYear(nil, 1900)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestToISOScenarios(t *testing.T) {
	isoCal := MustNew("iso8601")
	// Constrain clamps the day to the end of the month. It does not carry
	// the excess into February.
	got, err := isoCal.ToISO(nil, YMD(2019, 1, 32), Constrain)
	require.NoError(t, err)
	assert.Equal(t, iso.Of(2019, 1, 31), got)
	_, err = isoCal.ToISO(nil, YMD(2019, 1, 32), Reject)
	assert.ErrorIs(t, err, ErrOutOfRange)

	greg := MustNew("gregory")
	got, err = greg.ToISO(nil, Fields{Era: "bc", EraYear: Int(44), Month: Int(3), Day: Int(15)}, Reject)
	require.NoError(t, err)
	assert.Equal(t, iso.Of(-43, 3, 15), got)

	roc := MustNew("roc")
	got, err = roc.ToISO(nil, Fields{Era: "before-roc", EraYear: Int(1), Month: Int(1), Day: Int(1)}, Reject)
	require.NoError(t, err)
	assert.Equal(t, iso.Of(1911, 1, 1), got)

	heb := MustNew("hebrew")
	leap, err := heb.InLeapYear(nil, 5779)
	require.NoError(t, err)
	assert.True(t, leap)
	n, err := heb.MonthsInYear(nil, 5779)
	require.NoError(t, err)
	assert.Equal(t, 13, n)
	d, err := heb.Regulate(nil, Fields{Year: Int(5779), MonthCode: "5L", Day: Int(1)}, Reject)
	require.NoError(t, err)
	assert.Equal(t, 6, d.Month)
	assert.Equal(t, LeapMonth, d.MonthType())

	_, err = heb.Regulate(nil, Fields{Year: Int(5780), MonthCode: "5L", Day: Int(1)}, Reject)
	assert.ErrorIs(t, err, ErrOutOfRange)
	d, err = heb.Regulate(nil, Fields{Year: Int(5780), MonthCode: "5L", Day: Int(1)}, Constrain)
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 5780, Month: 5, Day: 30, MonthCode: "5", EraYear: 5780}, d)

	isl := MustNew("islamic-civil")
	for y := 1440; y < 1450; y++ {
		n, err := isl.MonthsInYear(nil, y)
		require.NoError(t, err)
		assert.Equal(t, 12, n)
		leap, err := isl.InLeapYear(nil, y)
		require.NoError(t, err)
		days, err := isl.DaysInMonth(nil, Date{Year: y, Month: 12, Day: 1})
		require.NoError(t, err)
		assert.Equal(t, days == 30, leap, "year %d", y)
	}
}

func TestToISOOverflow(t *testing.T) {
	tcs := []struct {
		id   ID
		f    Fields
		want iso.Date
	}{
		{Gregory, YMD(2023, 2, 29), iso.Of(2023, 2, 28)},
		{Gregory, YMD(2023, 13, 1), iso.Of(2023, 12, 1)},
		{Gregory, YMD(2023, 0, 0), iso.Of(2023, 1, 1)},
		{Coptic, YMD(1740, 13, 6), iso.Of(2024, 9, 10)},
		{IslamicCivil, YMD(1446, 12, 30), iso.Of(2025, 6, 26)},
		{Persian, YMD(1402, 12, 30), iso.Of(2024, 3, 19)},
		{Hebrew, YMD(5784, 14, 1), iso.Of(2024, 9, 4)},
	}
	for _, tc := range tcs {
		c := MustNew(string(tc.id))
		got, err := c.ToISO(nil, tc.f, Constrain)
		require.NoError(t, err, "%s", tc.id)
		assert.Equal(t, tc.want, got, "%s", tc.id)

		_, err = c.ToISO(nil, tc.f, Reject)
		assert.ErrorIs(t, err, ErrOutOfRange, "%s", tc.id)
	}
}

func TestFieldErrors(t *testing.T) {
	tcs := []struct {
		id   ID
		f    Fields
		want error
	}{
		{Gregory, Fields{Month: Int(1), Day: Int(1)}, ErrMissingField},
		{Gregory, Fields{Year: Int(2024), Day: Int(1)}, ErrMissingField},
		{Gregory, Fields{Year: Int(2024), Month: Int(1)}, ErrMissingField},
		{Gregory, Fields{EraYear: Int(5), Month: Int(1), Day: Int(1)}, ErrMissingField},
		{Gregory, Fields{Era: "ad", Month: Int(1), Day: Int(1)}, ErrMissingField},
		{Gregory, Fields{Era: "ce", EraYear: Int(5), Month: Int(1), Day: Int(1)}, ErrUnresolvable},
		{Gregory, Fields{Year: Int(2024), Era: "bc", EraYear: Int(5), Month: Int(1), Day: Int(1)}, ErrInconsistent},
		{Gregory, Fields{Year: Int(2024), Month: Int(3), MonthCode: "4", Day: Int(1)}, ErrInconsistent},
		{Gregory, Fields{Year: Int(2024), MonthCode: "x", Day: Int(1)}, ErrOutOfRange},
		{Gregory, Fields{Year: Int(2024), MonthCode: "3L", Day: Int(1)}, ErrOutOfRange},
		{Gregory, Fields{Year: Int(2024), MonthCode: "13", Day: Int(1)}, ErrOutOfRange},
		{Gregory, Fields{Year: Int(2024), Month: Int(1), MonthExtra: "bis", Day: Int(1)}, ErrOutOfRange},
		{ISO8601, Fields{Year: Int(2024), Era: "ad", Month: Int(1), Day: Int(1)}, ErrInconsistent},
		{ISO8601, Fields{Year: Int(2024), EraYear: Int(2023), Month: Int(1), Day: Int(1)}, ErrInconsistent},
		{Hebrew, Fields{Year: Int(5784), Era: "am", Month: Int(1), Day: Int(1)}, ErrInconsistent},
		{Hebrew, Fields{Year: Int(5784), MonthCode: "7L", Day: Int(1)}, ErrOutOfRange},
		{Hebrew, Fields{Year: Int(5784), Month: Int(6), MonthCode: "6", Day: Int(1)}, ErrInconsistent},
		{IslamicCivil, Fields{Era: "ce", EraYear: Int(1445), Month: Int(1), Day: Int(1)}, ErrUnresolvable},
		{Chinese, Fields{Year: Int(1800), Month: Int(1), Day: Int(1)}, ErrOutOfRange},
	}
	for _, tc := range tcs {
		c := MustNew(string(tc.id))
		_, err := c.ToISO(nil, tc.f, Constrain)
		assert.ErrorIs(t, err, tc.want, "%s %+v", tc.id, tc.f)
	}

	c := MustNew("islamic-civil")
	got, err := c.ToISO(nil, Fields{Era: "ah", EraYear: Int(1446), Month: Int(1), Day: Int(1)}, Reject)
	require.NoError(t, err)
	assert.Equal(t, iso.Of(2024, 7, 8), got)
	got, err = c.ToISO(nil, Fields{EraYear: Int(1446), Month: Int(1), Day: Int(1)}, Reject)
	require.NoError(t, err)
	assert.Equal(t, iso.Of(2024, 7, 8), got)
}

func TestSourceErrors(t *testing.T) {
	failing := source.Func(func(string, iso.Date) (source.Raw, error) {
		return source.Raw{}, errors.New("locale data unavailable")
	})
	c := MustNew("persian", WithSource(failing))
	_, err := c.ToCalendar(nil, iso.Of(2024, 1, 1))
	assert.ErrorIs(t, err, ErrUnresolvable)
	assert.ErrorContains(t, err, "locale data unavailable")

	bogus := source.Func(func(string, iso.Date) (source.Raw, error) {
		return source.Raw{Year: 1, Month: 14, Day: 1}, nil
	})
	c = MustNew("persian", WithSource(bogus))
	_, err = c.ToCalendar(nil, iso.Of(2024, 1, 1))
	assert.ErrorIs(t, err, ErrOutOfRange)

	ranged := source.Func(func(string, iso.Date) (source.Raw, error) {
		return source.Raw{}, fmt.Errorf("no tables: %w", source.ErrOutOfRange)
	})
	c = MustNew("chinese", WithSource(ranged))
	_, err = c.ToCalendar(nil, iso.Of(2024, 1, 1))
	assert.ErrorIs(t, err, ErrOutOfRange)
	assert.ErrorIs(t, err, source.ErrOutOfRange)
}

// TestStuckSource checks that a source that never reaches a date stops the
// converter with an internal error.
func TestStuckSource(t *testing.T) {
	stuck := source.Func(func(string, iso.Date) (source.Raw, error) {
		return source.Raw{Year: 1, Month: 1, Day: 1, Era: "ap"}, nil
	})
	c := MustNew("persian", WithSource(stuck))
	_, err := c.ToISO(nil, YMD(1403, 6, 1), Constrain)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestSession(t *testing.T) {
	c := MustNew("hebrew")
	s := NewSession()
	_, err := c.ToISO(s, YMD(5784, 7, 1), Reject)
	require.NoError(t, err)
	st := s.Stats()
	assert.Positive(t, st.Misses)
	assert.Positive(t, st.Entries)

	_, err = c.ToISO(s, YMD(5784, 7, 1), Reject)
	require.NoError(t, err)
	again := s.Stats()
	assert.Equal(t, st.Hits+1, again.Hits)
	assert.Equal(t, st.Entries, again.Entries)

	ch := MustNew("chinese")
	_, err = ch.ToCalendar(s, iso.Of(2023, 6, 1))
	require.NoError(t, err)
	_, err = ch.ToCalendar(s, iso.Of(2023, 7, 1))
	require.NoError(t, err)
	assert.Equal(t, 1, s.months.Len())
}
