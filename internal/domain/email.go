package domain

import "time"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// ReportRenderer renders a violation report into email content.
type ReportRenderer interface {
	Render(report *ViolationReport) (subject, htmlBody, textBody string, err error)
}

// ViolationReport holds data for the validation failure email sent to the
// directory maintainers.
type ViolationReport struct {
	Source     string // where the document came from, as described by the caller
	Violations Violations
	CheckedAt  time.Time
}
