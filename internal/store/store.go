// Package store persists application history, parsed resume records, and user
// settings. The default backend is a JSON-file store under a local data
// directory; a PostgreSQL backend implements the same contract for users who
// point the tool at a database.
package store

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/GillzV/jobassist/internal/types"
)

// Store is the persistence contract shared by the file and database backends.
type Store interface {
	// AddApplication appends a record and returns its generated ID.
	AddApplication(ctx context.Context, record types.ApplicationRecord) (string, error)
	// Applications returns every tracked application in insertion order.
	Applications(ctx context.Context) ([]types.ApplicationRecord, error)
	// Application returns the record with the given ID.
	Application(ctx context.Context, id string) (types.ApplicationRecord, error)
	// UpdateApplication replaces the record with the given ID, preserving the
	// ID and stamping LastUpdated.
	UpdateApplication(ctx context.Context, id string, record types.ApplicationRecord) error
	// DeleteApplication removes the record with the given ID.
	DeleteApplication(ctx context.Context, id string) error
	// SearchApplications filters records by a case-insensitive term. An empty
	// field searches every text field; otherwise only the named field.
	SearchApplications(ctx context.Context, term, field string) ([]types.ApplicationRecord, error)
	// Stats summarizes the tracked history.
	Stats(ctx context.Context) (types.ApplicationStats, error)

	// SaveResume persists the parsed resume record.
	SaveResume(ctx context.Context, record *types.ResumeRecord) error
	// LoadResume returns the persisted resume record, or nil when none exists.
	LoadResume(ctx context.Context) (*types.ResumeRecord, error)
}

// NotFoundError indicates no application record carries the requested ID.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("application not found: %s", e.ID)
}

// computeStats builds the history summary both backends report. "This week"
// covers the trailing seven days; "this month" the current calendar month.
func computeStats(applications []types.ApplicationRecord, now time.Time) types.ApplicationStats {
	stats := types.ApplicationStats{
		TopCompanies: []types.FrequencyItem{},
		TopPositions: []types.FrequencyItem{},
	}
	if len(applications) == 0 {
		return stats
	}

	stats.TotalApplications = len(applications)

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	weekStart := now.AddDate(0, 0, -7)

	companies := map[string]int{}
	positions := map[string]int{}

	for _, app := range applications {
		if appliedAt, err := time.Parse(time.RFC3339, app.AppliedDate); err == nil {
			if !appliedAt.Before(monthStart) {
				stats.ApplicationsThisMonth++
			}
			if appliedAt.After(weekStart) {
				stats.ApplicationsThisWeek++
			}
		}

		if app.Success {
			stats.SuccessfulApplications++
		} else {
			stats.FailedApplications++
		}

		companies[app.Company]++
		positions[app.JobTitle]++
	}

	stats.SuccessRate = float64(stats.SuccessfulApplications) / float64(stats.TotalApplications) * 100

	stats.TopCompanies = topFrequencies(companies, 5)
	stats.TopPositions = topFrequencies(positions, 5)

	return stats
}

// topFrequencies returns the n most frequent values, ties broken
// alphabetically so the result is deterministic.
func topFrequencies(counts map[string]int, n int) []types.FrequencyItem {
	items := make([]types.FrequencyItem, 0, len(counts))
	for value, count := range counts {
		items = append(items, types.FrequencyItem{Value: value, Count: count})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Count != items[j].Count {
			return items[i].Count > items[j].Count
		}
		return items[i].Value < items[j].Value
	})
	if len(items) > n {
		items = items[:n]
	}
	return items
}
