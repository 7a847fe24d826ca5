// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// DateTimeLayout is the ISO-8601 local date-time format the expense API
// speaks (no zone designator), e.g. "2025-09-27T10:00:00".
const DateTimeLayout = "2006-01-02T15:04:05"

// DateLayout is the calendar date part of [DateTimeLayout].
const DateLayout = "2006-01-02"

var acceptedLayouts = []string{
	DateTimeLayout,
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	DateLayout,
}

// DateTime wraps time.Time with the API's JSON representation. A zero value
// is encoded as null and null/empty strings decode to the zero value.
type DateTime struct {
	time.Time
}

// NewDateTime wraps t.
func NewDateTime(t time.Time) DateTime {
	return DateTime{Time: t}
}

// ParseDateTime parses s using any of the layouts the API is known to emit.
func ParseDateTime(s string) (DateTime, error) {
	s = strings.TrimSpace(s)
	for _, layout := range acceptedLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return DateTime{Time: t}, nil
		}
	}
	return DateTime{}, fmt.Errorf("unsupported date-time %q", s)
}

// String formats the value with [DateTimeLayout].
func (d DateTime) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateTimeLayout)
}

// DateOnly returns the calendar date part, or "" for a zero value.
func (d DateTime) DateOnly() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

func (d *DateTime) UnmarshalJSON(b []byte) error {
	var raw *string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if raw == nil || strings.TrimSpace(*raw) == "" {
		*d = DateTime{}
		return nil
	}

	parsed, err := ParseDateTime(*raw)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
