package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// SuccessResponse respuesta de operaciones sin cuerpo propio (returnItem, delete, markAsRead).
type SuccessResponse struct {
	Success bool `json:"success"`
}

// CountResponse respuesta de operaciones masivas.
type CountResponse struct {
	Count int64 `json:"count"`
}
