package renewal

import "time"

// Env is the environment a renewal belongs to.
type Env string

const (
	EnvProd    Env = "prod"
	EnvStaging Env = "staging"
	EnvDev     Env = "dev"
)

// Type is the kind of asset being renewed.
type Type string

const (
	TypeDomain      Type = "domain"
	TypeHosting     Type = "hosting"
	TypeCertificate Type = "certificate"
)

// Severity grades how close a renewal is.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityGood     Severity = "good"
)

// Thresholds for SeverityOf, in days.
const (
	CriticalDays = 7
	WarningDays  = 30
)

// Renewal is a domain, hosting plan or certificate that must be renewed.
type Renewal struct {
	ID        string  `json:"id"`
	Domain    string  `json:"domain"`
	Env       Env     `json:"env"`
	Type      Type    `json:"type"`
	RenewDate string  `json:"renewDate"`
	DaysLeft  int     `json:"daysLeft"`
	Provider  string  `json:"provider"`
	Cost      float64 `json:"cost"`
}

// ID returns the identifier of r.
func ID(r Renewal) string { return r.ID }

// SeverityOf grades daysLeft.
func SeverityOf(daysLeft int) Severity {
	switch {
	case daysLeft <= CriticalDays:
		return SeverityCritical
	case daysLeft <= WarningDays:
		return SeverityWarning
	default:
		return SeverityGood
	}
}

// Item is a renewal as listed, with its severity and reminder state.
type Item struct {
	Renewal
	Severity   Severity   `json:"severity"`
	Reminded   bool       `json:"reminded"`
	RemindedAt *time.Time `json:"remindedAt,omitempty"`
}

// Stats summarizes the renewal list.
type Stats struct {
	Total     int     `json:"total"`
	Critical  int     `json:"critical"`
	Warning   int     `json:"warning"`
	Reminded  int     `json:"reminded"`
	TotalCost float64 `json:"totalCost"`
}
