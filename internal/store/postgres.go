package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/GillzV/jobassist/internal/types"
)

// PostgresStore implements Store on a PostgreSQL connection pool. Records are
// stored as JSONB documents keyed by ID, so the file and database backends
// share one serialization.
type PostgresStore struct {
	pool *pgxpool.Pool
}

var _ Store = (*PostgresStore)(nil)

// ConnectPostgres establishes a connection pool and ensures the schema exists.
func ConnectPostgres(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &PostgresStore{pool: pool}
	if err := s.migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the connection pool.
func (s *PostgresStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *PostgresStore) migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS applications (
			id TEXT PRIMARY KEY,
			record JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE TABLE IF NOT EXISTS resume_data (
			singleton BOOLEAN PRIMARY KEY DEFAULT TRUE CHECK (singleton),
			record JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
	`)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// AddApplication inserts the record under a generated UUID.
func (s *PostgresStore) AddApplication(ctx context.Context, record types.ApplicationRecord) (string, error) {
	record.ID = uuid.NewString()
	if record.AppliedDate == "" {
		record.AppliedDate = time.Now().Format(time.RFC3339)
	}

	jsonBytes, err := json.Marshal(record)
	if err != nil {
		return "", fmt.Errorf("failed to marshal application: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO applications (id, record) VALUES ($1, $2)`,
		record.ID, jsonBytes,
	)
	if err != nil {
		return "", fmt.Errorf("failed to insert application: %w", err)
	}
	return record.ID, nil
}

// Applications returns every record in insertion order.
func (s *PostgresStore) Applications(ctx context.Context) ([]types.ApplicationRecord, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT record FROM applications ORDER BY created_at, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	defer rows.Close()

	applications := []types.ApplicationRecord{}
	for rows.Next() {
		var jsonBytes []byte
		if err := rows.Scan(&jsonBytes); err != nil {
			return nil, fmt.Errorf("failed to scan application: %w", err)
		}
		var record types.ApplicationRecord
		if err := json.Unmarshal(jsonBytes, &record); err != nil {
			return nil, fmt.Errorf("failed to decode application: %w", err)
		}
		applications = append(applications, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read applications: %w", err)
	}
	return applications, nil
}

// Application returns the record with the given ID.
func (s *PostgresStore) Application(ctx context.Context, id string) (types.ApplicationRecord, error) {
	var jsonBytes []byte
	err := s.pool.QueryRow(ctx,
		`SELECT record FROM applications WHERE id = $1`, id,
	).Scan(&jsonBytes)
	if err == pgx.ErrNoRows {
		return types.ApplicationRecord{}, &NotFoundError{ID: id}
	}
	if err != nil {
		return types.ApplicationRecord{}, fmt.Errorf("failed to get application: %w", err)
	}

	var record types.ApplicationRecord
	if err := json.Unmarshal(jsonBytes, &record); err != nil {
		return types.ApplicationRecord{}, fmt.Errorf("failed to decode application: %w", err)
	}
	return record, nil
}

// UpdateApplication replaces the stored record, keeping its ID and stamping
// LastUpdated.
func (s *PostgresStore) UpdateApplication(ctx context.Context, id string, record types.ApplicationRecord) error {
	record.ID = id
	record.LastUpdated = time.Now().Format(time.RFC3339)

	jsonBytes, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal application: %w", err)
	}

	tag, err := s.pool.Exec(ctx,
		`UPDATE applications SET record = $1 WHERE id = $2`,
		jsonBytes, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update application: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return &NotFoundError{ID: id}
	}
	return nil
}

// DeleteApplication removes the record with the given ID.
func (s *PostgresStore) DeleteApplication(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx,
		`DELETE FROM applications WHERE id = $1`, id,
	)
	if err != nil {
		return fmt.Errorf("failed to delete application: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return &NotFoundError{ID: id}
	}
	return nil
}

// SearchApplications filters with the same predicate as the file backend so
// both return identical results for identical data.
func (s *PostgresStore) SearchApplications(ctx context.Context, term, field string) ([]types.ApplicationRecord, error) {
	applications, err := s.Applications(ctx)
	if err != nil {
		return nil, err
	}
	return filterApplications(applications, term, field), nil
}

// Stats summarizes the tracked history.
func (s *PostgresStore) Stats(ctx context.Context) (types.ApplicationStats, error) {
	applications, err := s.Applications(ctx)
	if err != nil {
		return types.ApplicationStats{}, err
	}
	return computeStats(applications, time.Now()), nil
}

// SaveResume upserts the single persisted resume record.
func (s *PostgresStore) SaveResume(ctx context.Context, record *types.ResumeRecord) error {
	jsonBytes, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal resume: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO resume_data (singleton, record) VALUES (TRUE, $1)
		 ON CONFLICT (singleton) DO UPDATE SET record = $1, updated_at = NOW()`,
		jsonBytes,
	)
	if err != nil {
		return fmt.Errorf("failed to save resume: %w", err)
	}
	return nil
}

// LoadResume returns the persisted record, or nil when none has been saved.
func (s *PostgresStore) LoadResume(ctx context.Context) (*types.ResumeRecord, error) {
	var jsonBytes []byte
	err := s.pool.QueryRow(ctx,
		`SELECT record FROM resume_data WHERE singleton`,
	).Scan(&jsonBytes)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load resume: %w", err)
	}

	var record types.ResumeRecord
	if err := json.Unmarshal(jsonBytes, &record); err != nil {
		return nil, fmt.Errorf("failed to decode resume: %w", err)
	}
	return &record, nil
}
