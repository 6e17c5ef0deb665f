package model

// HealthResponse ответ эндпоинта /health сервиса сокращения.
type HealthResponse struct {
	Status  string `json:"status"`
	Storage string `json:"storage"`
}
