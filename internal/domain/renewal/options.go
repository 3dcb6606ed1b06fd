package renewal

import "time"

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithRenewals replaces the tracked renewals.
func WithRenewals(renewals []Renewal) Option {
	return func(s *Service) { s.renewals = renewals }
}
