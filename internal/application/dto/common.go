package dto

// ErrorResponse is the HTTP error body for the CRUD/API surface.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// FunctionError is the error body of the function-style endpoints, which keep
// the original edge-function contract: {"error": ..., "success": false}.
type FunctionError struct {
	Error   string `json:"error"`
	Success bool   `json:"success"`
}

// PeriodDTO is an inclusive date window; empty strings mean open-ended.
type PeriodDTO struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}
