// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package server exposes calendar conversion and arithmetic over HTTP.
//
//	GET  /calendars                    list calendars
//	GET  /calendars/{id}/dates/{iso}   calendar date of an ISO date
//	POST /calendars/{id}/to-iso        ISO date of calendar fields
//	POST /calendars/{id}/add           add a duration to a date
//	POST /calendars/{id}/until         duration between two dates
//	POST /calendars/{id}/month-day     resolve a month and day
//
// Requests and responses are JSON. Every request uses a fresh
// calendar.Session.
package server

import (
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"gonih.org/calendar"
)

// Server serves the calendars of a Config.
type Server struct {
	cals map[calendar.ID]*calendar.Calendar
	ids  []calendar.ID
	log  *slog.Logger
	cfg  Config
}

// New returns a server for all built-in calendars and the calendars defined
// in cfg.
func New(cfg Config, log *slog.Logger) (*Server, error) {
	s := &Server{cals: make(map[calendar.ID]*calendar.Calendar), log: log, cfg: cfg}
	for _, id := range calendar.IDs() {
		c, err := calendar.New(string(id), calendar.WithLogger(log))
		if err != nil {
			return nil, err
		}
		s.register(c)
	}
	for _, def := range cfg.Calendars {
		c, err := calendar.Define(def, calendar.WithLogger(log))
		if err != nil {
			return nil, err
		}
		if _, ok := s.cals[c.ID()]; ok {
			return nil, &calendar.Error{Kind: calendar.KindInconsistent, Calendar: c.ID(), Msg: "calendar defined twice"}
		}
		s.register(c)
		log.Info("defined calendar", "calendar", c.ID(), "eras", c.Eras())
	}
	return s, nil
}

func (s *Server) register(c *calendar.Calendar) {
	s.cals[c.ID()] = c
	s.ids = append(s.ids, c.ID())
}

// IDs returns the ids of all calendars served, in the order they are listed.
func (s *Server) IDs() []calendar.ID {
	return slices.Clone(s.ids)
}

// Handler returns the HTTP handler of s.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Route("/calendars", func(r chi.Router) {
		r.Get("/", s.listCalendars)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/dates/{iso}", s.getDate)
			r.Post("/to-iso", s.toISO)
			r.Post("/add", s.addDuration)
			r.Post("/until", s.until)
			r.Post("/month-day", s.monthDay)
		})
	})
	return r
}

// logRequests logs every request after it completes.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		level := slog.LevelInfo
		switch {
		case ww.Status() >= 500:
			level = slog.LevelError
		case ww.Status() >= 400:
			level = slog.LevelWarn
		}
		s.log.LogAttrs(r.Context(), level, "request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Duration("latency", time.Since(start)),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}
