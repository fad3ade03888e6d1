// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package source

import "gonih.org/calendar/iso"

// Shifted returns a source for a calendar with the months and days of the
// ISO calendar, whose year y is ISO year y+offset. It ignores the calendar
// id and reports no era.
func Shifted(offset int) Source {
	return Func(func(_ string, d iso.Date) (Raw, error) {
		y, m, day := d.Date()
		return Raw{Year: y - offset, Month: m, Day: day}, nil
	})
}

// Orthodox returns a source for a calendar with twelve months of 30 days
// and a 13th month of five or six days, whose year first starts on the ISO
// date epoch. As in the Coptic calendar, a year y is a leap year if y+1 is
// divisible by four. It ignores the calendar id and reports no era.
func Orthodox(epoch iso.Date, first int) Source {
	e := fixed(epoch) - 365*(first-1) - floorDiv(first, 4)
	return Func(func(_ string, d iso.Date) (Raw, error) {
		y, m, day := copticFromFixed(e, fixed(d))
		return Raw{Year: y, Month: m, Day: day}, nil
	})
}
