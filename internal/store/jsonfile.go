package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/GillzV/jobassist/internal/types"
)

// FileStore persists everything as JSON files under a single data directory:
// applications.json (array), resume_data.json, settings.json, and a backups/
// subdirectory. Writes are serialized with a mutex; the store is safe for
// concurrent use within one process but not across processes.
type FileStore struct {
	dataDir          string
	applicationsPath string
	resumePath       string
	settingsPath     string

	mu sync.Mutex
}

var _ Store = (*FileStore)(nil)

// NewFileStore opens (creating if needed) the data directory.
func NewFileStore(dataDir string) (*FileStore, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &FileStore{
		dataDir:          dataDir,
		applicationsPath: filepath.Join(dataDir, "applications.json"),
		resumePath:       filepath.Join(dataDir, "resume_data.json"),
		settingsPath:     filepath.Join(dataDir, "settings.json"),
	}, nil
}

// AddApplication appends the record with a generated timestamp-derived ID.
// The ID is unique within this store but not across processes.
func (s *FileStore) AddApplication(_ context.Context, record types.ApplicationRecord) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	applications, err := s.readApplications()
	if err != nil {
		return "", err
	}

	record.ID = generateID()
	if record.AppliedDate == "" {
		record.AppliedDate = time.Now().Format(time.RFC3339)
	}

	applications = append(applications, record)
	if err := writeJSON(s.applicationsPath, applications); err != nil {
		return "", err
	}
	return record.ID, nil
}

// Applications returns every record in insertion order.
func (s *FileStore) Applications(_ context.Context) ([]types.ApplicationRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readApplications()
}

// Application returns the record with the given ID.
func (s *FileStore) Application(_ context.Context, id string) (types.ApplicationRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	applications, err := s.readApplications()
	if err != nil {
		return types.ApplicationRecord{}, err
	}
	for _, app := range applications {
		if app.ID == id {
			return app, nil
		}
	}
	return types.ApplicationRecord{}, &NotFoundError{ID: id}
}

// UpdateApplication replaces the stored record, keeping its ID and stamping
// LastUpdated.
func (s *FileStore) UpdateApplication(_ context.Context, id string, record types.ApplicationRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	applications, err := s.readApplications()
	if err != nil {
		return err
	}
	for i, app := range applications {
		if app.ID == id {
			record.ID = id
			record.LastUpdated = time.Now().Format(time.RFC3339)
			applications[i] = record
			return writeJSON(s.applicationsPath, applications)
		}
	}
	return &NotFoundError{ID: id}
}

// DeleteApplication removes the record with the given ID.
func (s *FileStore) DeleteApplication(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	applications, err := s.readApplications()
	if err != nil {
		return err
	}

	filtered := applications[:0]
	for _, app := range applications {
		if app.ID != id {
			filtered = append(filtered, app)
		}
	}
	if len(filtered) == len(applications) {
		return &NotFoundError{ID: id}
	}
	return writeJSON(s.applicationsPath, filtered)
}

// SearchApplications filters by a case-insensitive substring match.
func (s *FileStore) SearchApplications(ctx context.Context, term, field string) ([]types.ApplicationRecord, error) {
	applications, err := s.Applications(ctx)
	if err != nil {
		return nil, err
	}
	return filterApplications(applications, term, field), nil
}

// Stats summarizes the tracked history.
func (s *FileStore) Stats(ctx context.Context) (types.ApplicationStats, error) {
	applications, err := s.Applications(ctx)
	if err != nil {
		return types.ApplicationStats{}, err
	}
	return computeStats(applications, time.Now()), nil
}

// SaveResume writes the parsed record to resume_data.json.
func (s *FileStore) SaveResume(_ context.Context, record *types.ResumeRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return writeJSON(s.resumePath, record)
}

// LoadResume returns the persisted record, or nil when none has been saved.
func (s *FileStore) LoadResume(_ context.Context) (*types.ResumeRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.resumePath)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read resume data: %w", err)
	}

	var record types.ResumeRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to decode resume data: %w", err)
	}
	return &record, nil
}

// Settings returns the saved settings merged over the defaults.
func (s *FileStore) Settings() (Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readSettings()
}

// SaveSettings persists the settings file.
func (s *FileStore) SaveSettings(settings Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return writeJSON(s.settingsPath, settings)
}

// Backup copies the applications and resume files into backups/ with a
// timestamp suffix, then prunes the oldest backups beyond MaxBackups.
// Disabled backups are a no-op, not an error.
func (s *FileStore) Backup() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings, err := s.readSettings()
	if err != nil {
		return err
	}
	if !settings.BackupEnabled {
		return nil
	}

	backupDir := filepath.Join(s.dataDir, "backups")
	if err := os.MkdirAll(backupDir, 0o755); err != nil {
		return fmt.Errorf("failed to create backup directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	sources := map[string]string{
		s.applicationsPath: "applications",
		s.resumePath:       "resume_data",
	}
	for src, prefix := range sources {
		data, err := os.ReadFile(src)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", src, err)
		}
		dst := filepath.Join(backupDir, fmt.Sprintf("%s_%s.json", prefix, timestamp))
		if err := os.WriteFile(dst, data, 0o644); err != nil {
			return fmt.Errorf("failed to write backup: %w", err)
		}
	}

	return pruneBackups(backupDir, settings.MaxBackups)
}

// Export writes every data file into a single timestamped export JSON and
// returns its path.
func (s *FileStore) Export() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	applications, err := s.readApplications()
	if err != nil {
		return "", err
	}
	settings, err := s.readSettings()
	if err != nil {
		return "", err
	}

	var resume *types.ResumeRecord
	if data, err := os.ReadFile(s.resumePath); err == nil {
		resume = &types.ResumeRecord{}
		if err := json.Unmarshal(data, resume); err != nil {
			return "", fmt.Errorf("failed to decode resume data: %w", err)
		}
	}

	export := struct {
		Applications []types.ApplicationRecord `json:"applications"`
		ResumeData   *types.ResumeRecord       `json:"resume_data"`
		Settings     Settings                  `json:"settings"`
		ExportDate   string                    `json:"export_date"`
	}{
		Applications: applications,
		ResumeData:   resume,
		Settings:     settings,
		ExportDate:   time.Now().Format(time.RFC3339),
	}

	path := filepath.Join(s.dataDir, fmt.Sprintf("export_%s.json", time.Now().Format("20060102_150405")))
	if err := writeJSON(path, export); err != nil {
		return "", err
	}
	return path, nil
}

func (s *FileStore) readApplications() ([]types.ApplicationRecord, error) {
	data, err := os.ReadFile(s.applicationsPath)
	if os.IsNotExist(err) {
		return []types.ApplicationRecord{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read applications: %w", err)
	}

	var applications []types.ApplicationRecord
	if err := json.Unmarshal(data, &applications); err != nil {
		return nil, fmt.Errorf("failed to decode applications: %w", err)
	}
	return applications, nil
}

func (s *FileStore) readSettings() (Settings, error) {
	settings := DefaultSettings()

	data, err := os.ReadFile(s.settingsPath)
	if os.IsNotExist(err) {
		return settings, nil
	}
	if err != nil {
		return settings, fmt.Errorf("failed to read settings: %w", err)
	}

	// Decoding on top of the defaults merges: keys absent from the file keep
	// their default value.
	if err := json.Unmarshal(data, &settings); err != nil {
		return DefaultSettings(), fmt.Errorf("failed to decode settings: %w", err)
	}
	return settings, nil
}

// filterApplications is the shared search predicate. Field names follow the
// JSON keys; an empty or "all" field searches every text field.
func filterApplications(applications []types.ApplicationRecord, term, field string) []types.ApplicationRecord {
	term = strings.ToLower(term)
	matched := []types.ApplicationRecord{}

	for _, app := range applications {
		fields := map[string]string{
			"job_title":       app.JobTitle,
			"company":         app.Company,
			"status":          app.Status,
			"confirmation_id": app.ConfirmationID,
		}

		if field == "" || field == "all" {
			for _, value := range fields {
				if strings.Contains(strings.ToLower(value), term) {
					matched = append(matched, app)
					break
				}
			}
			continue
		}
		if strings.Contains(strings.ToLower(fields[field]), term) {
			matched = append(matched, app)
		}
	}
	return matched
}

// generateID builds a timestamp-derived opaque ID with a short random suffix.
func generateID() string {
	return time.Now().Format("20060102_150405_") + uuid.NewString()[:6]
}

// pruneBackups removes the oldest backup files beyond the cap.
func pruneBackups(backupDir string, maxBackups int) error {
	entries, err := os.ReadDir(backupDir)
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}

	type backup struct {
		path    string
		modTime time.Time
	}
	var backups []backup
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		backups = append(backups, backup{
			path:    filepath.Join(backupDir, entry.Name()),
			modTime: info.ModTime(),
		})
	}

	if len(backups) <= maxBackups {
		return nil
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].modTime.Before(backups[j].modTime)
	})
	for _, b := range backups[:len(backups)-maxBackups] {
		if err := os.Remove(b.path); err != nil {
			return fmt.Errorf("failed to remove old backup: %w", err)
		}
	}
	return nil
}

// writeJSON writes v with human-readable indentation and non-ASCII characters
// left unescaped.
func writeJSON(path string, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
	}
	return nil
}
