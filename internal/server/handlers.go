// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"gonih.org/calendar"
	"gonih.org/calendar/iso"
)

// calendarFor returns the calendar named in the URL, or writes a 404.
func (s *Server) calendarFor(w http.ResponseWriter, r *http.Request) (*calendar.Calendar, bool) {
	id := calendar.ID(chi.URLParam(r, "id"))
	c, ok := s.cals[id]
	if !ok {
		writeError(w, http.StatusNotFound, "unknown calendar "+string(id), nil)
	}
	return c, ok
}

// decode reads the JSON body of r into v, or writes a 400.
func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err)
		return false
	}
	return true
}

func (s *Server) listCalendars(w http.ResponseWriter, r *http.Request) {
	out := make([]CalendarDTO, 0, len(s.ids))
	for _, id := range s.ids {
		c := s.cals[id]
		out = append(out, CalendarDTO{ID: id, Type: c.Type(), Eras: c.Eras()})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) getDate(w http.ResponseWriter, r *http.Request) {
	c, ok := s.calendarFor(w, r)
	if !ok {
		return
	}
	x, err := iso.Parse(chi.URLParam(r, "iso"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid ISO date", err)
		return
	}
	sess := calendar.NewSession()
	dto, err := describe(c, sess, x)
	if err != nil {
		s.writeCalendarError(w, r, err)
		return
	}
	s.log.DebugContext(r.Context(), "session", "calendar", c.ID(), "stats", sess.Stats())
	writeJSON(w, http.StatusOK, dto)
}

// describe returns the calendar date of x with its derived fields.
func describe(c *calendar.Calendar, sess *calendar.Session, x iso.Date) (DateDTO, error) {
	d, err := c.ToCalendar(sess, x)
	if err != nil {
		return DateDTO{}, err
	}
	dto := DateDTO{Date: d, ISO: x, DayOfWeek: int(x.Weekday()), MonthType: d.MonthType()}
	if dto.DayOfYear, err = c.DayOfYear(sess, d); err != nil {
		return DateDTO{}, err
	}
	if dto.DaysInMonth, err = c.DaysInMonth(sess, d); err != nil {
		return DateDTO{}, err
	}
	if dto.DaysInYear, err = c.DaysInYear(sess, d.Year); err != nil {
		return DateDTO{}, err
	}
	if dto.MonthsInYear, err = c.MonthsInYear(sess, d.Year); err != nil {
		return DateDTO{}, err
	}
	if dto.InLeapYear, err = c.InLeapYear(sess, d.Year); err != nil {
		return DateDTO{}, err
	}
	return dto, nil
}

func (s *Server) toISO(w http.ResponseWriter, r *http.Request) {
	c, ok := s.calendarFor(w, r)
	if !ok {
		return
	}
	var req ToISORequest
	if !decode(w, r, &req) {
		return
	}
	sess := calendar.NewSession()
	x, err := c.ToISO(sess, req.Fields, req.Overflow)
	if err != nil {
		s.writeCalendarError(w, r, err)
		return
	}
	dto, err := describe(c, sess, x)
	if err != nil {
		s.writeCalendarError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto)
}

func (s *Server) addDuration(w http.ResponseWriter, r *http.Request) {
	c, ok := s.calendarFor(w, r)
	if !ok {
		return
	}
	var req AddRequest
	if !decode(w, r, &req) {
		return
	}
	sess := calendar.NewSession()
	d, err := c.Regulate(sess, req.Date, req.Overflow)
	if err != nil {
		s.writeCalendarError(w, r, err)
		return
	}
	if d, err = c.Add(sess, d, req.Duration, req.Overflow); err != nil {
		s.writeCalendarError(w, r, err)
		return
	}
	x, err := c.ToISO(sess, d.Fields(), calendar.Reject)
	if err != nil {
		s.writeCalendarError(w, r, err)
		return
	}
	dto, err := describe(c, sess, x)
	if err != nil {
		s.writeCalendarError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto)
}

func (s *Server) until(w http.ResponseWriter, r *http.Request) {
	c, ok := s.calendarFor(w, r)
	if !ok {
		return
	}
	var req UntilRequest
	if !decode(w, r, &req) {
		return
	}
	sess := calendar.NewSession()
	a, err := c.Regulate(sess, req.From, calendar.Reject)
	if err != nil {
		s.writeCalendarError(w, r, err)
		return
	}
	b, err := c.Regulate(sess, req.To, calendar.Reject)
	if err != nil {
		s.writeCalendarError(w, r, err)
		return
	}
	dur, err := c.Until(sess, a, b, req.LargestUnit)
	if err != nil {
		s.writeCalendarError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, UntilResponse{Duration: dur})
}

func (s *Server) monthDay(w http.ResponseWriter, r *http.Request) {
	c, ok := s.calendarFor(w, r)
	if !ok {
		return
	}
	var req ToISORequest
	if !decode(w, r, &req) {
		return
	}
	md, err := c.MonthDayFromFields(calendar.NewSession(), req.Fields, req.Overflow)
	if err != nil {
		s.writeCalendarError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, md)
}

// statusOf maps error kinds to HTTP status codes.
func statusOf(k calendar.Kind) int {
	switch k {
	case calendar.KindMissingField, calendar.KindInconsistent, calendar.KindOutOfRange:
		return http.StatusBadRequest
	case calendar.KindUnresolvable:
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

func (s *Server) writeCalendarError(w http.ResponseWriter, r *http.Request, err error) {
	var ce *calendar.Error
	if !errors.As(err, &ce) {
		s.log.ErrorContext(r.Context(), "unexpected error", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error", err)
		return
	}
	status := statusOf(ce.Kind)
	if status == http.StatusInternalServerError {
		s.log.ErrorContext(r.Context(), "calendar invariant broken", "calendar", ce.Calendar, "error", err)
	}
	writeJSON(w, status, ErrorResponse{Error: err.Error(), Kind: ce.Kind.String()})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
