// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package source

import "gonih.org/calendar/iso"

func gregory(d iso.Date) Raw {
	y, m, day := d.Date()
	if y > 0 {
		return Raw{Year: y, Month: m, Day: day, Era: "ad"}
	}
	return Raw{Year: 1 - y, Month: m, Day: day, Era: "bc"}
}

func roc(d iso.Date) Raw {
	y, m, day := d.Date()
	if y >= 1912 {
		return Raw{Year: y - 1911, Month: m, Day: day, Era: "minguo"}
	}
	return Raw{Year: 1912 - y, Month: m, Day: day, Era: "before-roc"}
}

func buddhist(d iso.Date) Raw {
	y, m, day := d.Date()
	return Raw{Year: y + 543, Month: m, Day: day, Era: "be"}
}

// japaneseEras lists the modern eras, newest first, by the ISO date of their
// first day.
var japaneseEras = []struct {
	name  string
	start iso.Date
	year  int
}{
	{"reiwa", iso.Of(2019, 5, 1), 2019},
	{"heisei", iso.Of(1989, 1, 8), 1989},
	{"showa", iso.Of(1926, 12, 25), 1926},
	{"taisho", iso.Of(1912, 7, 30), 1912},
	{"meiji", iso.Of(1868, 9, 8), 1868},
}

// japanese counts every day before the Meiji era as Meiji, with non-positive
// era years for years before 1868.
func japanese(d iso.Date) Raw {
	y, m, day := d.Date()
	for _, e := range japaneseEras {
		if d >= e.start {
			return Raw{Year: y - e.year + 1, Month: m, Day: day, Era: e.name}
		}
	}
	return Raw{Year: y - 1867, Month: m, Day: day, Era: "meiji"}
}
