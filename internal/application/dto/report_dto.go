package dto

import (
	"encoding/json"
	"time"
)

// GenerateReportRequest is the body of POST /functions/generate-farm-report.
// Field names keep the original camelCase contract.
type GenerateReportRequest struct {
	ReportType  string `json:"reportType"`
	PeriodStart string `json:"periodStart"`
	PeriodEnd   string `json:"periodEnd"`
}

// ReportResponse is the API view of a persisted report snapshot.
type ReportResponse struct {
	ID          string          `json:"id"`
	ReportType  string          `json:"report_type"`
	Title       string          `json:"title"`
	Content     json.RawMessage `json:"content"`
	PeriodStart string          `json:"period_start"`
	PeriodEnd   string          `json:"period_end"`
	CreatedBy   string          `json:"created_by"`
	CreatedAt   time.Time       `json:"created_at"`
}
