package entity

import "time"

// ProgressReport avance porcentual de una obra a una fecha.
type ProgressReport struct {
	ID                 string
	ProjectID          string
	Title              string
	Description        string
	PercentageComplete int
	ReportDate         time.Time
	CreatedAt          time.Time
	CreatedBy          string
}
