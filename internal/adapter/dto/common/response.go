package common

// SuccessResponse is the envelope of every successful JSON response
type SuccessResponse struct {
	Code    int         `json:"code" example:"200"`
	Message string      `json:"message" example:"success"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse is the envelope of every JSON error response
type ErrorResponse struct {
	Code    int               `json:"code" example:"2000"`
	Message string            `json:"message" example:"Please provide a meeting transcript to summarize."`
	Info    string            `json:"info,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

// HealthResponse is returned by GET /health
type HealthResponse struct {
	Status      string `json:"status" example:"ok"`
	Environment string `json:"environment" example:"development"`
	Provider    string `json:"provider" example:"gemini"`
	Model       string `json:"model" example:"gemini-2.0-flash"`
}
