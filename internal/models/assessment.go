// ABOUTME: Assessment envelope pairing a vitals submission with its report.
// ABOUTME: Carries the identity and timestamp used by renderers and exports.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Assessment records one evaluation for display or export. ID and AssessedAt
// belong to the envelope only and never feed into the report.
type Assessment struct {
	ID         uuid.UUID    `json:"id"`
	AssessedAt time.Time    `json:"assessed_at"`
	Input      VitalsInput  `json:"input"`
	Report     HealthReport `json:"report"`
}

// NewAssessment creates an Assessment with a generated UUID and current timestamp.
func NewAssessment(in VitalsInput, report HealthReport) *Assessment {
	return &Assessment{
		ID:         uuid.New(),
		AssessedAt: time.Now(),
		Input:      in,
		Report:     report,
	}
}

// WithAssessedAt sets a custom timestamp.
func (a *Assessment) WithAssessedAt(t time.Time) *Assessment {
	a.AssessedAt = t
	return a
}

// ShortID returns the 8-character ID prefix shown to users.
func (a *Assessment) ShortID() string {
	return a.ID.String()[:8]
}
