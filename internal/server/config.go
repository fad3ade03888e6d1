// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package server

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"gonih.org/calendar"
)

// Config configures a Server.
//
// In YAML:
//
//	addr: ":8080"
//	logLevel: debug
//	allowedOrigins: ["http://localhost:5173"]
//	calendars:
//	  - id: kyoto
//	    family: gregorian
//	    eras:
//	      - name: reiwa
//	        isoEpoch: {year: 2019, month: 5, day: 1}
type Config struct {
	Addr           string                `yaml:"addr"`
	LogLevel       slog.Level            `yaml:"logLevel"`
	AllowedOrigins []string              `yaml:"allowedOrigins"`
	Calendars      []calendar.Definition `yaml:"calendars"`
}

// DefaultConfig returns the configuration used without a config file.
func DefaultConfig() Config {
	return Config{
		Addr:           ":8080",
		LogLevel:       slog.LevelInfo,
		AllowedOrigins: []string{"http://localhost:5173", "http://localhost:8080"},
	}
}

// ParseConfig reads a YAML configuration. Fields missing from the input keep
// their default values and unknown fields are an error.
func ParseConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// LoadConfig reads the YAML configuration file at path.
func LoadConfig(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg, err := ParseConfig(bytes.NewReader(b))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}
