// Package config defines shared pacing profiles so client projects can
// tune debounce and throttle behavior from configuration instead of
// hard-coded durations.
package config

import (
	"encoding/json"
	"fmt"
	"time"
)

// Profile holds the pacing settings for one wrapped call site.
type Profile struct {
	Debounce Debounce `json:"debounce"`
	Throttle Throttle `json:"throttle"`
}

// Debounce tunes a debounce wrapper.
type Debounce struct {
	// WaitMillis is the quiet period in milliseconds. Zero still
	// defers execution; it never makes calls synchronous.
	WaitMillis int `json:"wait_ms" validate:"gte=0"`
}

// Wait returns the quiet period as a duration.
func (d Debounce) Wait() time.Duration {
	return time.Duration(d.WaitMillis) * time.Millisecond
}

// Throttle tunes a throttle wrapper and, optionally, the transport
// round tripper.
type Throttle struct {
	IntervalMillis int `json:"interval_ms" validate:"gt=0"`
	RPS            int `json:"rps" validate:"omitempty,gt=0"`
	Burst          int `json:"burst" validate:"omitempty,gt=0"`
}

// Interval returns the throttle window as a duration.
func (t Throttle) Interval() time.Duration {
	return time.Duration(t.IntervalMillis) * time.Millisecond
}

// Default returns the profile used when a project ships no tuning.
func Default() Profile {
	return Profile{
		Debounce: Debounce{WaitMillis: 200},
		Throttle: Throttle{IntervalMillis: 1000},
	}
}

// Parse decodes a JSON profile and validates it.
func Parse(data []byte) (Profile, error) {
	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return Profile{}, fmt.Errorf("decoding profile: %w", err)
	}

	if err := p.Validate(); err != nil {
		return Profile{}, err
	}

	return p, nil
}

// Validate checks the profile against its declared constraints,
// returning FieldErrors naming each offending field.
func (p Profile) Validate() error {
	return validateStruct(p)
}
