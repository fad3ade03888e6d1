// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package source

import (
	"fmt"

	lunarcal "github.com/Lofanmi/chinese-calendar-golang/calendar"

	"gonih.org/calendar/internal/cache"
	"gonih.org/calendar/iso"
)

// Range of ISO years covered by the lunar tables. The lunar years they
// cover completely are MinChineseYear to MaxChineseYear-1.
const (
	MinChineseYear = 1901
	MaxChineseYear = 2099
)

// LeapMonthSuffix marks a Chinese leap month in Raw.MonthExtra. A leap month
// has the same number as the month before it.
const LeapMonthSuffix = "bis"

var lunarDays = cache.Cache[iso.Date, Raw]{MaxSize: 1 << 14}

// chinese reports the lunar year as the ISO year in which it starts. Dangi
// shares these tables; the two calendars differ only for a few months in the
// covered range.
func chinese(d iso.Date) (Raw, error) {
	y, m, day := d.Date()
	if y < MinChineseYear || y > MaxChineseYear {
		return Raw{}, fmt.Errorf("%w: %v not in [%d, %d]", ErrOutOfRange, d, MinChineseYear, MaxChineseYear)
	}
	return lunarDays.Get(d, func(iso.Date) Raw {
		c := lunarcal.BySolar(int64(y), int64(m), int64(day), 12, 0, 0)
		r := Raw{
			Year:  int(c.Lunar.GetYear()),
			Month: int(c.Lunar.GetMonth()),
			Day:   int(c.Lunar.GetDay()),
		}
		if c.Lunar.IsLeapMonth() {
			r.MonthExtra = LeapMonthSuffix
		}
		return r
	}), nil
}
