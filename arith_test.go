// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gonih.org/calendar/iso"
)

func mustRegulate(t *testing.T, c *Calendar, f Fields) Date {
	t.Helper()
	d, err := c.Regulate(nil, f, Reject)
	require.NoError(t, err, "%s %+v", c.ID(), f)
	return d
}

func TestAdd(t *testing.T) {
	greg := MustNew("gregory")
	jan31 := mustRegulate(t, greg, YMD(2024, 1, 31))

	got, err := greg.Add(nil, jan31, Duration{Months: 1}, Constrain)
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 2024, Month: 2, Day: 29, MonthCode: "2", Era: "ad", EraYear: 2024}, got)
	_, err = greg.Add(nil, jan31, Duration{Months: 1}, Reject)
	assert.ErrorIs(t, err, ErrOutOfRange)

	got, err = greg.Add(nil, jan31, Duration{}, Reject)
	require.NoError(t, err)
	assert.Equal(t, jan31, got)

	got, err = greg.Add(nil, jan31, Duration{Months: -2}, Constrain)
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 2023, Month: 11, Day: 30, MonthCode: "11", Era: "ad", EraYear: 2023}, got)

	got, err = greg.Add(nil, jan31, Duration{Years: 1, Months: 1, Weeks: 1, Days: 1}, Constrain)
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 2025, Month: 3, Day: 8, MonthCode: "3", Era: "ad", EraYear: 2025}, got)

	heb := MustNew("hebrew")
	adarI := mustRegulate(t, heb, Fields{Year: Int(5784), MonthCode: "5L", Day: Int(15)})
	got, err = heb.Add(nil, adarI, Duration{Years: 1}, Reject)
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 5785, Month: 6, Day: 15, MonthCode: "6", EraYear: 5785}, got)

	// Years keep the ordinal month, not the month code.
	nisan := mustRegulate(t, heb, Fields{Year: Int(5784), MonthCode: "7", Day: Int(1)})
	assert.Equal(t, 8, nisan.Month)
	got, err = heb.Add(nil, nisan, Duration{Years: 1}, Reject)
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 5785, Month: 8, Day: 1, MonthCode: "8", EraYear: 5785}, got)

	got, err = heb.Add(nil, nisan, Duration{Months: -2}, Reject)
	require.NoError(t, err)
	assert.Equal(t, "5L", got.MonthCode)

	// The thirteenth month of a leap year does not exist in a common year.
	elul := mustRegulate(t, heb, YMD(5784, 13, 29))
	got, err = heb.Add(nil, elul, Duration{Years: 1}, Constrain)
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 5785, Month: 12, Day: 29, MonthCode: "12", EraYear: 5785}, got)
	_, err = heb.Add(nil, elul, Duration{Years: 1}, Reject)
	assert.ErrorIs(t, err, ErrOutOfRange)

	isl := MustNew("islamic-civil")
	last := mustRegulate(t, isl, YMD(1445, 12, 30))
	got, err = isl.Add(nil, last, Duration{Years: 1}, Constrain)
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 1446, Month: 12, Day: 29, MonthCode: "12", Era: "ah", EraYear: 1446}, got)
	_, err = isl.Add(nil, last, Duration{Years: 1}, Reject)
	assert.ErrorIs(t, err, ErrOutOfRange)

	isoCal := MustNew("iso8601")
	got, err = isoCal.Add(nil, mustRegulate(t, isoCal, YMD(2024, 2, 29)), Duration{Years: 1}, Constrain)
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 2025, Month: 2, Day: 28, MonthCode: "2", EraYear: 2025}, got)
}

func TestUntil(t *testing.T) {
	greg := MustNew("gregory")
	tcs := []struct {
		a, b    Fields
		largest Unit
		want    Duration
	}{
		{YMD(2000, 1, 1), YMD(2001, 3, 1), Years, Duration{Years: 1, Months: 2}},
		{YMD(2000, 1, 1), YMD(2001, 3, 1), Months, Duration{Months: 14}},
		{YMD(2024, 1, 31), YMD(2024, 3, 1), Months, Duration{Months: 1, Days: 1}},
		{YMD(2024, 1, 1), YMD(2024, 1, 20), Weeks, Duration{Weeks: 2, Days: 5}},
		{YMD(2024, 1, 1), YMD(2024, 2, 20), Months, Duration{Months: 1, Weeks: 2, Days: 5}},
		{YMD(2023, 12, 25), YMD(2025, 2, 10), Years, Duration{Years: 1, Months: 1, Weeks: 2, Days: 2}},
		{YMD(2024, 1, 1), YMD(2024, 1, 20), Days, Duration{Days: 19}},
		{YMD(2024, 3, 1), YMD(2024, 1, 31), Months, Duration{Months: -1, Days: -1}},
		{YMD(2024, 5, 5), YMD(2024, 5, 5), Years, Duration{}},
	}
	for _, tc := range tcs {
		a, b := mustRegulate(t, greg, tc.a), mustRegulate(t, greg, tc.b)
		got, err := greg.Until(nil, a, b, tc.largest)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "%+v until %+v in %v", a, b, tc.largest)
	}

	heb := MustNew("hebrew")
	a := mustRegulate(t, heb, YMD(5784, 1, 1))
	b := mustRegulate(t, heb, YMD(5785, 1, 1))
	got, err := heb.Until(nil, a, b, Months)
	require.NoError(t, err)
	assert.Equal(t, Duration{Months: 13}, got)
	got, err = heb.Until(nil, a, b, Years)
	require.NoError(t, err)
	assert.Equal(t, Duration{Years: 1}, got)
	got, err = heb.Until(nil, a, b, Days)
	require.NoError(t, err)
	assert.Equal(t, Duration{Days: 383}, got)

	got, err = heb.Until(nil, a, mustRegulate(t, heb, YMD(5784, 2, 20)), Years)
	require.NoError(t, err)
	assert.Equal(t, Duration{Months: 1, Weeks: 2, Days: 5}, got)
}

// TestAddInverse checks that subtracting a duration undoes adding it when
// no month or day has to be clamped on the way.
func TestAddInverse(t *testing.T) {
	tcs := []struct {
		id    ID
		start Fields
		dur   Duration
	}{
		{ISO8601, YMD(2024, 2, 10), Duration{Years: 3, Months: 5}},
		{Gregory, YMD(2023, 1, 15), Duration{Years: 1, Months: 1}},
		{Gregory, YMD(2024, 3, 10), Duration{Months: -14}},
		{Coptic, YMD(1739, 3, 20), Duration{Years: 1, Months: 5}},
		{Persian, YMD(1402, 12, 20), Duration{Years: 1, Months: 1}},
		{Indian, YMD(1945, 6, 10), Duration{Years: 1, Months: 2}},
		{IslamicCivil, YMD(1445, 12, 20), Duration{Years: 2, Months: 1}},
		// Into and out of the leap year 5782.
		{Hebrew, YMD(5780, 4, 4), Duration{Years: 2, Months: 3}},
		{Hebrew, YMD(5780, 4, 15), Duration{Years: 2, Months: 3}},
		{Hebrew, YMD(5780, 4, 26), Duration{Years: 2, Months: 3}},
		{Hebrew, YMD(5780, 5, 8), Duration{Years: 2, Months: 3}},
		{Hebrew, YMD(5784, 8, 1), Duration{Years: 1}},
		{Hebrew, YMD(5784, 6, 15), Duration{Years: -2, Months: 1}},
		// Into and out of the leap year 2023.
		{Chinese, YMD(2021, 1, 10), Duration{Years: 2, Months: 3}},
		{Chinese, YMD(2023, 3, 10), Duration{Years: 1}},
	}
	for _, tc := range tcs {
		c := MustNew(string(tc.id))
		s := NewSession()
		start := mustRegulate(t, c, tc.start)
		fwd, err := c.Add(s, start, tc.dur, Reject)
		require.NoError(t, err, "%s %+v + %+v", tc.id, start, tc.dur)
		assert.Equal(t, start.Day, fwd.Day, "%s %+v + %+v", tc.id, start, tc.dur)
		back, err := c.Add(s, fwd, tc.dur.Negated(), Reject)
		require.NoError(t, err, "%s %+v - %+v", tc.id, fwd, tc.dur)
		assert.Equal(t, start, back, "%s %+v + %+v = %+v", tc.id, start, tc.dur, fwd)
	}

	// Weeks and days are always exact.
	for _, id := range IDs() {
		c := MustNew(string(id))
		s := NewSession()
		for x := iso.Of(2019, 2, 1); x < iso.Of(2024, 1, 1); x += 211 {
			d, err := c.ToCalendar(s, x)
			require.NoError(t, err)
			dur := Duration{Weeks: 5, Days: 3}
			fwd, err := c.Add(s, d, dur, Reject)
			require.NoError(t, err, "%s %+v", id, d)
			back, err := c.Add(s, fwd, dur.Negated(), Reject)
			require.NoError(t, err, "%s %+v", id, fwd)
			assert.Equal(t, d, back, "%s", id)
		}
	}
}

// TestAddUntilInverse checks that adding the result of Until to its start
// yields its end.
func TestAddUntilInverse(t *testing.T) {
	for _, id := range []ID{Gregory, Japanese, Coptic, Persian, Indian, Hebrew, IslamicCivil, Chinese} {
		c := MustNew(string(id))
		s := NewSession()
		start, err := c.ToCalendar(s, iso.Of(2020, 1, 10))
		require.NoError(t, err)
		for x := iso.Of(2020, 3, 3); x < iso.Of(2024, 1, 1); x += 97 {
			end, err := c.ToCalendar(s, x)
			require.NoError(t, err)
			for _, u := range []Unit{Days, Weeks, Months, Years} {
				dur, err := c.Until(s, start, end, u)
				require.NoError(t, err, "%s %v", id, u)
				got, err := c.Add(s, start, dur, Constrain)
				require.NoError(t, err, "%s %+v", id, dur)
				assert.Equal(t, end, got, "%s %+v + %+v", id, start, dur)

				back, err := c.Until(s, end, start, u)
				require.NoError(t, err, "%s %v", id, u)
				if u == Days || u == Weeks {
					assert.Equal(t, dur.Negated(), back, "%s %v", id, u)
				}
			}
		}
	}
}

func TestMonthLengths(t *testing.T) {
	tcs := []struct {
		id   ID
		d    Date
		want int
	}{
		{Gregory, Date{Year: 2024, Month: 2, Day: 1}, 29},
		{Gregory, Date{Year: 2023, Month: 2, Day: 1}, 28},
		{Hebrew, Date{Year: 5784, Month: 2, Day: 1}, 29},
		{Hebrew, Date{Year: 5784, Month: 3, Day: 1}, 29},
		{Hebrew, Date{Year: 5784, Month: 6, Day: 1}, 30},
		{Coptic, Date{Year: 1739, Month: 13, Day: 1}, 6},
		{Coptic, Date{Year: 1740, Month: 13, Day: 1}, 5},
		{IslamicCivil, Date{Year: 1445, Month: 12, Day: 1}, 30},
		{IslamicCivil, Date{Year: 1446, Month: 12, Day: 1}, 29},
		{Persian, Date{Year: 1403, Month: 12, Day: 1}, 30},
		{Persian, Date{Year: 1402, Month: 12, Day: 1}, 29},
		{Indian, Date{Year: 1946, Month: 1, Day: 1}, 31},
		{Indian, Date{Year: 1945, Month: 1, Day: 1}, 30},
	}
	for _, tc := range tcs {
		c := MustNew(string(tc.id))
		got, err := c.DaysInMonth(nil, tc.d)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "%s %+v", tc.id, tc.d)
	}

	greg := MustNew("gregory")
	n, err := greg.DaysInPreviousMonth(nil, Date{Year: 2024, Month: 3, Day: 15})
	require.NoError(t, err)
	assert.Equal(t, 29, n)
	n, err = greg.DaysInPreviousMonth(nil, Date{Year: 2024, Month: 1, Day: 15})
	require.NoError(t, err)
	assert.Equal(t, 31, n)

	heb := MustNew("hebrew")
	n, err = heb.DaysInPreviousMonth(nil, Date{Year: 5785, Month: 1, Day: 1})
	require.NoError(t, err)
	assert.Equal(t, 29, n)
	n, err = heb.DaysInPreviousMonth(nil, Date{Year: 5785, Month: 4, Day: 1})
	require.NoError(t, err)
	assert.Equal(t, 30, n)
}

func TestYearProperties(t *testing.T) {
	tcs := []struct {
		id     ID
		year   int
		days   int
		months int
		leap   bool
	}{
		{ISO8601, 2024, 366, 12, true},
		{Gregory, 2023, 365, 12, false},
		{Buddhist, 2567, 366, 12, true},
		{Coptic, 1739, 366, 13, true},
		{Ethiopic, 7517, 365, 13, false},
		{Hebrew, 5784, 383, 13, true},
		{Hebrew, 5785, 355, 12, false},
		{IslamicCivil, 1445, 355, 12, true},
		{IslamicCivil, 1446, 354, 12, false},
		{Persian, 1403, 366, 12, true},
		{Indian, 1946, 366, 12, true},
		{Chinese, 2023, 384, 13, true},
		{Chinese, 2024, 354, 12, false},
	}
	for _, tc := range tcs {
		c := MustNew(string(tc.id))
		s := NewSession()
		days, err := c.DaysInYear(s, tc.year)
		require.NoError(t, err)
		assert.Equal(t, tc.days, days, "%s %d", tc.id, tc.year)
		months, err := c.MonthsInYear(s, tc.year)
		require.NoError(t, err)
		assert.Equal(t, tc.months, months, "%s %d", tc.id, tc.year)
		leap, err := c.InLeapYear(s, tc.year)
		require.NoError(t, err)
		assert.Equal(t, tc.leap, leap, "%s %d", tc.id, tc.year)

		// Month lengths add up to the length of the year.
		var sum int
		for m := 1; m <= months; m++ {
			n, err := c.DaysInMonth(s, Date{Year: tc.year, Month: m, Day: 1})
			require.NoError(t, err)
			sum += n
		}
		assert.Equal(t, days, sum, "%s %d", tc.id, tc.year)

		last := Date{Year: tc.year, Month: months, Day: 1}
		n, err := c.DaysInMonth(s, last)
		require.NoError(t, err)
		last.Day = n
		doy, err := c.DayOfYear(s, last)
		require.NoError(t, err)
		assert.Equal(t, days, doy, "%s %d", tc.id, tc.year)
	}
}

func TestDayOfWeek(t *testing.T) {
	heb := MustNew("hebrew")
	d := mustRegulate(t, heb, YMD(5785, 1, 1))
	wd, err := heb.DayOfWeek(nil, d)
	require.NoError(t, err)
	assert.Equal(t, time.Thursday, wd)

	doy, err := heb.DayOfYear(nil, d)
	require.NoError(t, err)
	assert.Equal(t, 1, doy)

	greg := MustNew("gregory")
	wd, err = greg.DayOfWeek(nil, mustRegulate(t, greg, YMD(2024, 3, 15)))
	require.NoError(t, err)
	assert.Equal(t, time.Friday, wd)
}
