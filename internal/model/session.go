// Package model defines the core domain types shared across the application.
package model

import "time"

// Session is the authenticated-person, cached-PIN and expiry triple
// held client-side between runs.
type Session struct {
	ExpiresAt time.Time
	Person    string
	PIN       string
}

// ActiveAt reports whether the session is usable at the given instant.
// Expiry is evaluated lazily on every read; nothing invalidates a
// session proactively.
func (s Session) ActiveAt(now time.Time) bool {
	return s.Person != "" && s.PIN != "" && s.ExpiresAt.After(now)
}

// RemainingMinutes returns the whole minutes left until expiry,
// clamped to zero.
func (s Session) RemainingMinutes(now time.Time) int {
	remaining := s.ExpiresAt.Sub(now)
	if remaining < 0 {
		return 0
	}
	return int(remaining / time.Minute)
}
