package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/GillzV/jobassist/internal/types"
)

func TestComputeStatsEmpty(t *testing.T) {
	stats := computeStats(nil, time.Now())

	assert.Equal(t, 0, stats.TotalApplications)
	assert.Equal(t, 0.0, stats.SuccessRate)
	assert.Empty(t, stats.TopCompanies)
	assert.Empty(t, stats.TopPositions)
}

func TestComputeStats(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	stamp := func(t time.Time) string { return t.Format(time.RFC3339) }

	applications := []types.ApplicationRecord{
		{JobTitle: "Engineer", Company: "Acme", Success: true, AppliedDate: stamp(now.AddDate(0, 0, -1))},
		{JobTitle: "Engineer", Company: "Acme", Success: true, AppliedDate: stamp(now.AddDate(0, 0, -10))},
		{JobTitle: "Analyst", Company: "Initech", Success: false, AppliedDate: stamp(now.AddDate(0, -2, 0))},
		{JobTitle: "Engineer", Company: "Globex", Success: true, AppliedDate: "not a date"},
	}

	stats := computeStats(applications, now)

	assert.Equal(t, 4, stats.TotalApplications)
	assert.Equal(t, 2, stats.ApplicationsThisMonth) // -1 day and -10 days are both in June
	assert.Equal(t, 1, stats.ApplicationsThisWeek)
	assert.Equal(t, 3, stats.SuccessfulApplications)
	assert.Equal(t, 1, stats.FailedApplications)
	assert.InDelta(t, 75.0, stats.SuccessRate, 0.001)

	assert.Equal(t, types.FrequencyItem{Value: "Acme", Count: 2}, stats.TopCompanies[0])
	assert.Equal(t, types.FrequencyItem{Value: "Engineer", Count: 3}, stats.TopPositions[0])
}

func TestTopFrequenciesTruncatesAndBreaksTies(t *testing.T) {
	counts := map[string]int{"b": 2, "a": 2, "c": 1, "d": 3, "e": 1, "f": 1}

	items := topFrequencies(counts, 5)

	assert.Len(t, items, 5)
	assert.Equal(t, types.FrequencyItem{Value: "d", Count: 3}, items[0])
	// Equal counts order alphabetically.
	assert.Equal(t, "a", items[1].Value)
	assert.Equal(t, "b", items[2].Value)
}
