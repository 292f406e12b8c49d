package entity

import "time"

const (
	RFIStatusOpen     = "open"
	RFIStatusAnswered = "answered"
	RFIStatusClosed   = "closed"
)

// RFI solicitud de información (Request For Information) dirigida a la dirección de obra.
type RFI struct {
	ID         string
	ProjectID  string
	RFINumber  string
	Subject    string
	Question   string
	Answer     string
	Status     string
	Priority   string
	DueDate    *time.Time
	AnsweredAt *time.Time
	AnsweredBy *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
	CreatedBy  string
}

func IsValidRFIStatus(s string) bool {
	return s == RFIStatusOpen || s == RFIStatusAnswered || s == RFIStatusClosed
}
