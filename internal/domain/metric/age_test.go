package metric_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jefftricks/shamba-api/internal/domain/metric"
)

var now = time.Date(2026, time.August, 29, 12, 0, 0, 0, time.UTC)

func daysAgo(n int) *time.Time {
	t := now.AddDate(0, 0, -n)
	return &t
}

func TestAgeAt_NoDates_Unknown(t *testing.T) {
	assert.Equal(t, "Unknown", metric.AgeAt(nil, nil, now))
}

func TestAgeAt_FutureDate_Unknown(t *testing.T) {
	future := now.AddDate(0, 1, 0)
	assert.Equal(t, "Unknown", metric.AgeAt(&future, nil, now))
}

func TestAgeAt_FallbackUsedWhenPrimaryMissing(t *testing.T) {
	assert.Equal(t, "10 days", metric.AgeAt(nil, daysAgo(10), now))
}

func TestAgeAt_PrimaryWinsOverFallback(t *testing.T) {
	assert.Equal(t, "5 days", metric.AgeAt(daysAgo(5), daysAgo(100), now))
}

func TestAgeAt_SingularDay(t *testing.T) {
	assert.Equal(t, "1 day", metric.AgeAt(daysAgo(1), nil, now))
}

func TestAgeAt_UnderThirtyDays(t *testing.T) {
	assert.Equal(t, "10 days", metric.AgeAt(daysAgo(10), nil, now))
	assert.Equal(t, "29 days", metric.AgeAt(daysAgo(29), nil, now))
}

func TestAgeAt_MonthsUnderOneYear(t *testing.T) {
	birth := now.AddDate(0, -3, -2)
	assert.Equal(t, "3 months", metric.AgeAt(&birth, nil, now))

	single := now.AddDate(0, -1, -5)
	assert.Equal(t, "1 month", metric.AgeAt(&single, nil, now))
}

func TestAgeAt_WholeYearsOmitZeroMonths(t *testing.T) {
	birth := now.AddDate(-2, 0, 0)
	assert.Equal(t, "2 years", metric.AgeAt(&birth, nil, now))

	one := now.AddDate(-1, 0, 0)
	assert.Equal(t, "1 year", metric.AgeAt(&one, nil, now))
}

func TestAgeAt_FourHundredDays_OneYearOneMonth(t *testing.T) {
	assert.Equal(t, "1 year, 1 month", metric.AgeAt(daysAgo(400), nil, now))
}

func TestAgeAt_YearsAndMonths(t *testing.T) {
	birth := now.AddDate(-3, -4, 0)
	assert.Equal(t, "3 years, 4 months", metric.AgeAt(&birth, nil, now))
}
