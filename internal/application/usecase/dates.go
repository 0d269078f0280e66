package usecase

import (
	"time"

	"github.com/jefftricks/shamba-api/internal/domain"
)

const dateLayout = "2006-01-02"

// parseDate accepts YYYY-MM-DD or RFC3339 input.
func parseDate(s string) (time.Time, error) {
	if t, err := time.ParseInLocation(dateLayout, s, time.Local); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, domain.ErrInvalidInput
	}
	return t, nil
}

// parseDatePtr returns nil for empty input.
func parseDatePtr(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := parseDate(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// formatDatePtr renders a nullable date as YYYY-MM-DD, empty when nil.
func formatDatePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}
