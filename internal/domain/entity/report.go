package entity

import (
	"encoding/json"
	"time"
)

// Report types.
const (
	ReportMonthly          = "monthly"
	ReportQuarterly        = "quarterly"
	ReportAnnual           = "annual"
	ReportInventorySummary = "inventory_summary"
	ReportSalesSummary     = "sales_summary"
	ReportLivestockStatus  = "livestock_status"
)

// Report is a write-once snapshot of one aggregation run. There is no update
// path; reports are append-only.
type Report struct {
	ID          string
	ReportType  string
	Title       string
	Content     json.RawMessage // opaque structured payload
	PeriodStart time.Time
	PeriodEnd   time.Time
	CreatedBy   string
	CreatedAt   time.Time
}

// ValidReportType reports whether t is one of the fixed report types.
func ValidReportType(t string) bool {
	switch t {
	case ReportMonthly, ReportQuarterly, ReportAnnual,
		ReportInventorySummary, ReportSalesSummary, ReportLivestockStatus:
		return true
	}
	return false
}
