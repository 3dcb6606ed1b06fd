package user

import "time"

// ConfirmPhrase must be typed exactly to archive a user.
const ConfirmPhrase = "ARCHIVE"

// DefaultDepartment is assigned when a new user has none.
const DefaultDepartment = "General"

// NeverLoggedIn is the last-login value of a user who has not signed in.
const NeverLoggedIn = "Never"

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithIDGenerator overrides how user ids are minted.
func WithIDGenerator(gen func() string) Option {
	return func(s *Service) { s.newID = gen }
}
