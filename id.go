// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calendar

import (
	"fmt"
)

// ID identifies a calendar.
type ID string

// Built-in calendars.
const (
	ISO8601         ID = "iso8601"
	Gregory         ID = "gregory"
	ROC             ID = "roc"
	Buddhist        ID = "buddhist"
	Japanese        ID = "japanese"
	Coptic          ID = "coptic"
	Ethiopic        ID = "ethiopic"
	EthioAA         ID = "ethioaa"
	Persian         ID = "persian"
	Indian          ID = "indian"
	Hebrew          ID = "hebrew"
	Islamic         ID = "islamic"
	IslamicCivil    ID = "islamic-civil"
	IslamicTbla     ID = "islamic-tbla"
	IslamicUmalqura ID = "islamic-umalqura"
	IslamicRGSA     ID = "islamic-rgsa"
	IslamicC        ID = "islamicc"
	Chinese         ID = "chinese"
	Dangi           ID = "dangi"
)

// IDs returns the ids of all built-in calendars.
func IDs() []ID {
	return []ID{
		ISO8601, Gregory, ROC, Buddhist, Japanese, Coptic, Ethiopic, EthioAA,
		Persian, Indian, Hebrew, Islamic, IslamicCivil, IslamicTbla,
		IslamicUmalqura, IslamicRGSA, IslamicC, Chinese, Dangi,
	}
}

// Type classifies a calendar by what its months and years follow.
type Type int

const (
	Solar Type = iota
	Lunar
	Lunisolar
)

// String implements fmt.Stringer.
func (t Type) String() string {
	switch t {
	case Solar:
		return "solar"
	case Lunar:
		return "lunar"
	case Lunisolar:
		return "lunisolar"
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// MarshalText implements encoding.TextMarshaler.
func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}
