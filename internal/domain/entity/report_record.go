package entity

import "time"

// ReportRecord is one row of the posted-report audit log. The log is
// write-mostly diagnostics: scheduling never reads it, so the process
// stays stateless across restarts.
type ReportRecord struct {
	ID           int64
	Kind         string // "weekly" or "monthly"
	Trigger      string // "scheduled" or "manual"
	PeriodStart  time.Time
	PeriodEnd    time.Time
	TotalUpdates int
	PostedAt     time.Time
}
