package dto

// AITextResponse resumen o informe en texto libre generado por el LLM.
type AITextResponse struct {
	Text string `json:"text"`
}

// DefectAnalysisResponse análisis estructurado de un defecto.
type DefectAnalysisResponse struct {
	Severity        string   `json:"severity"`
	Category        string   `json:"category"`
	ProbableCause   string   `json:"probable_cause"`
	Recommendations []string `json:"recommendations"`
	EstimatedCost   string   `json:"estimated_cost,omitempty"`
}

// TaskPriorityResponse prioridad sugerida para una tarea abierta.
type TaskPriorityResponse struct {
	TaskID            string `json:"task_id"`
	SuggestedPriority string `json:"suggested_priority"`
	Reason            string `json:"reason"`
}

// UploadPhotoRequest foto como data URL base64 (data:image/jpeg;base64,...).
type UploadPhotoRequest struct {
	DataURL string `json:"data_url" validate:"required"`
}

type UploadPhotoResponse struct {
	Key         string `json:"key"`
	URL         string `json:"url,omitempty"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}
