// GORM model + DTOs used by the intake endpoint.

package models

import "time"

// Visitor is one accepted name, written once and never read back by this service.
// The primary key is a storage detail; JSON only exposes the record shape.
type Visitor struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	Name      string    `gorm:"size:120;not null" json:"name"` // trimmed, as typed
	VisitedAt time.Time `gorm:"not null;index" json:"visitedAt"`
	UserAgent string    `gorm:"type:text" json:"userAgent"` // unbounded, like the header
}

// Submission is the raw request scoped input; Name keeps whatever JSON type arrived.
type Submission struct {
	Name      any
	UserAgent string
}

// VisitorRequest is the expected body of POST /api/visitors.
// No binding tags: every check lives in core.Validate so reasons stay ordered.
type VisitorRequest struct {
	Name any `json:"name"`
}

// SubmitResponse is returned for every accepted name, stored or not.
type SubmitResponse struct {
	Success bool `json:"success"`
}

// ErrorResponse carries the client message of a rejected name.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is the body of GET /api/health.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Store   string `json:"store"` // connected | unavailable
}
