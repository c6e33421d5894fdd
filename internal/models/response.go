package models

// APIResponse is the success envelope shared by all endpoints.
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Count   *int        `json:"count,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// APIError is the failure envelope. Error carries a single message; Errors
// carries field-level validation failures.
type APIError struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Error   string       `json:"error,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// FieldError is one request-field validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// OK builds a success envelope.
func OK(message string, data interface{}) APIResponse {
	return APIResponse{Success: true, Message: message, Data: data}
}

// OKCount builds a success envelope with a result count, used by the lead
// listing endpoints.
func OKCount(message string, count int, data interface{}) APIResponse {
	return APIResponse{Success: true, Message: message, Count: &count, Data: data}
}

// Err builds a failure envelope.
func Err(message, detail string) APIError {
	return APIError{Success: false, Message: message, Error: detail}
}
