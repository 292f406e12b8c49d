package entity

import "time"

const (
	InspectionTypeRegular    = "regular"
	InspectionTypeSpecial    = "special"
	InspectionTypeFinal      = "final"
	InspectionTypeAcceptance = "acceptance"
)

const (
	InspectionStatusDraft     = "draft"
	InspectionStatusCompleted = "completed"
	InspectionStatusApproved  = "approved"
)

// InspectionFinding hallazgo dentro de un área inspeccionada.
type InspectionFinding struct {
	Area        string   `json:"area"`
	Description string   `json:"description"`
	Severity    string   `json:"severity"`
	Photos      []string `json:"photos,omitempty"`
}

// InspectionProtocol acta de inspección de obra.
type InspectionProtocol struct {
	ID             string
	ProjectID      string
	Title          string
	InspectionType string
	Status         string
	InspectionDate time.Time
	Inspector      string
	Participants   []string
	Areas          []string
	Findings       []InspectionFinding
	Notes          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
	CreatedBy      string
}

func IsValidInspectionType(s string) bool {
	switch s {
	case InspectionTypeRegular, InspectionTypeSpecial, InspectionTypeFinal, InspectionTypeAcceptance:
		return true
	}
	return false
}

func IsValidInspectionStatus(s string) bool {
	return s == InspectionStatusDraft || s == InspectionStatusCompleted || s == InspectionStatusApproved
}
