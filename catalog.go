// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calendar

// Descriptors of the built-in calendars. Era tables are validated here, so a
// malformed table fails at package initialization.
var (
	gregoryCalendar  = &eraCalendar{Gregory, FamilyGregorian, mustEraTable(Gregory, gregoryEras)}
	rocCalendar      = &eraCalendar{ROC, FamilyGregorian, mustEraTable(ROC, rocEras)}
	buddhistCalendar = &eraCalendar{Buddhist, FamilyGregorian, mustEraTable(Buddhist, buddhistEras)}
	japaneseCalendar = &eraCalendar{Japanese, FamilyGregorian, mustEraTable(Japanese, japaneseEras)}
	copticCalendar   = &eraCalendar{Coptic, FamilyOrthodox, mustEraTable(Coptic, copticEras)}
	ethiopicCalendar = &eraCalendar{Ethiopic, FamilyOrthodox, mustEraTable(Ethiopic, ethiopicEras)}
	ethioaaCalendar  = &eraCalendar{EthioAA, FamilyOrthodox, mustEraTable(EthioAA, ethioaaEras)}
)

// lookup returns the descriptor of a built-in calendar.
func lookup(id ID) (descriptor, bool) {
	switch id {
	case ISO8601:
		return isoCalendar{}, true
	case Gregory:
		return gregoryCalendar, true
	case ROC:
		return rocCalendar, true
	case Buddhist:
		return buddhistCalendar, true
	case Japanese:
		return japaneseCalendar, true
	case Coptic:
		return copticCalendar, true
	case Ethiopic:
		return ethiopicCalendar, true
	case EthioAA:
		return ethioaaCalendar, true
	case Persian:
		return persianCalendar{}, true
	case Indian:
		return indianCalendar{}, true
	case Hebrew:
		return hebrewCalendar{}, true
	case Islamic, IslamicCivil, IslamicTbla, IslamicUmalqura, IslamicRGSA, IslamicC:
		return islamicCalendar{id}, true
	case Chinese, Dangi:
		return chineseCalendar{id}, true
	}
	return nil, false
}
