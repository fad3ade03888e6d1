// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package server

import (
	"gonih.org/calendar"
	"gonih.org/calendar/iso"
)

// CalendarDTO describes a calendar in GET /calendars.
type CalendarDTO struct {
	ID   calendar.ID   `json:"id"`
	Type calendar.Type `json:"type"`
	Eras []string      `json:"eras,omitempty"`
}

// DateDTO is a calendar date with its ISO date and derived fields.
type DateDTO struct {
	calendar.Date
	ISO          iso.Date           `json:"iso"`
	DayOfWeek    int                `json:"dayOfWeek"`
	DayOfYear    int                `json:"dayOfYear"`
	DaysInMonth  int                `json:"daysInMonth"`
	DaysInYear   int                `json:"daysInYear"`
	MonthsInYear int                `json:"monthsInYear"`
	InLeapYear   bool               `json:"inLeapYear"`
	MonthType    calendar.MonthType `json:"monthType"`
}

// ToISORequest is the body of POST /calendars/{id}/to-iso and
// POST /calendars/{id}/month-day.
type ToISORequest struct {
	Fields   calendar.Fields `json:"fields"`
	Overflow iso.Overflow    `json:"overflow"`
}

// AddRequest is the body of POST /calendars/{id}/add.
type AddRequest struct {
	Date     calendar.Fields   `json:"date"`
	Duration calendar.Duration `json:"duration"`
	Overflow iso.Overflow      `json:"overflow"`
}

// UntilRequest is the body of POST /calendars/{id}/until.
type UntilRequest struct {
	From        calendar.Fields `json:"from"`
	To          calendar.Fields `json:"to"`
	LargestUnit iso.Unit        `json:"largestUnit"`
}

// UntilResponse is the result of POST /calendars/{id}/until.
type UntilResponse struct {
	Duration calendar.Duration `json:"duration"`
}

// ErrorResponse is returned with every non-2xx status.
type ErrorResponse struct {
	Error   string `json:"error"`
	Kind    string `json:"kind,omitempty"`
	Details string `json:"details,omitempty"`
}
