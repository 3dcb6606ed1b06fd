package audit

import "time"

// ListOptions provides filtering options for listing audit entries.
type ListOptions struct {
	Action   *Action
	TargetID string
	Limit    int
	Offset   int
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithIDGenerator overrides how entry ids are minted.
func WithIDGenerator(gen func() string) Option {
	return func(s *Service) { s.newID = gen }
}
