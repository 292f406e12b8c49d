package entity

import "time"

const (
	DefectSeverityLow      = "low"
	DefectSeverityMedium   = "medium"
	DefectSeverityHigh     = "high"
	DefectSeverityCritical = "critical"
)

const (
	DefectStatusOpen       = "open"
	DefectStatusInProgress = "in_progress"
	DefectStatusResolved   = "resolved"
	DefectStatusVerified   = "verified"
	DefectStatusClosed     = "closed"
)

// DefectProtocol registro de un defecto detectado en obra.
type DefectProtocol struct {
	ID          string
	ProjectID   string
	Title       string
	Description string
	Location    string
	Severity    string
	Status      string
	AssignedTo  *string // employee id
	DueDate     *time.Time
	ResolvedAt  *time.Time
	Photos      []string
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	CreatedBy   string
}

// DefectFilter filtros del listado y del PDF.
type DefectFilter struct {
	ProjectID string
	Severity  string
	Status    string
}

func IsValidDefectSeverity(s string) bool {
	switch s {
	case DefectSeverityLow, DefectSeverityMedium, DefectSeverityHigh, DefectSeverityCritical:
		return true
	}
	return false
}

func IsValidDefectStatus(s string) bool {
	switch s {
	case DefectStatusOpen, DefectStatusInProgress, DefectStatusResolved, DefectStatusVerified, DefectStatusClosed:
		return true
	}
	return false
}
