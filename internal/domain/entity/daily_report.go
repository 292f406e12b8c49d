package entity

import "time"

// DailyReport bitácora diaria de obra.
type DailyReport struct {
	ID            string
	ProjectID     string
	ReportDate    time.Time
	Weather       string
	Temperature   string
	WorkPerformed string
	Attendees     []string
	Equipment     string
	Materials     string
	Issues        string
	Photos        []string // llaves en el blob store
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	CreatedBy     string
}
