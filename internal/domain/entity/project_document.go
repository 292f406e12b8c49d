package entity

import "time"

// ProjectDocument archivo subido a una obra. El binario vive en el blob store bajo FileKey.
type ProjectDocument struct {
	ID          string
	ProjectID   string
	Name        string
	Description string
	Category    string // plano, contrato, permiso, foto...
	FileKey     string
	FileURL     string
	FileSize    int64
	MimeType    string
	UploadedBy  string
	CreatedAt   time.Time
}
