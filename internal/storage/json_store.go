package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/punchlit/internal/models"
)

// store is the on-disk document. One top-level field per persisted key.
type store struct {
	Version        int                          `json:"version"`
	Settings       Settings                     `json:"settings"`
	Profile        *models.UserProfile          `json:"profile,omitempty"`
	Today          *models.AttendanceRecord     `json:"today,omitempty"`
	History        []models.HistoryEntry        `json:"history"`
	PendingQueue   []models.PendingNotification `json:"pending_queue"`
	TaskCompletion *models.TaskCompletion       `json:"task_completion,omitempty"`
}

type JSONStore struct {
	path  string
	store *store
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = &store{
		Version:      1,
		History:      []models.HistoryEntry{},
		PendingQueue: []models.PendingNotification{},
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'punchlit init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.store = &store{}
	if err := json.Unmarshal(data, s.store); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	// Ensure slices are initialized
	if s.store.History == nil {
		s.store.History = []models.HistoryEntry{}
	}
	if s.store.PendingQueue == nil {
		s.store.PendingQueue = []models.PendingNotification{}
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) GetSettings() (Settings, error) {
	if s.store == nil {
		return Settings{}, fmt.Errorf("storage not loaded")
	}
	return s.store.Settings, nil
}

func (s *JSONStore) SaveSettings(settings Settings) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Settings = settings
	return s.save()
}

func (s *JSONStore) GetProfile() (models.UserProfile, error) {
	if s.store == nil {
		return models.UserProfile{}, fmt.Errorf("storage not loaded")
	}
	if s.store.Profile == nil {
		return models.UserProfile{}, nil
	}
	return *s.store.Profile, nil
}

func (s *JSONStore) SaveProfile(profile models.UserProfile) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Profile = &profile
	return s.save()
}

func (s *JSONStore) GetTodayRecord() (models.AttendanceRecord, error) {
	if s.store == nil {
		return models.AttendanceRecord{}, fmt.Errorf("storage not loaded")
	}
	if s.store.Today == nil {
		return models.AttendanceRecord{}, nil
	}
	return *s.store.Today, nil
}

func (s *JSONStore) SaveTodayRecord(rec models.AttendanceRecord) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Today = &rec
	return s.save()
}

func (s *JSONStore) GetHistory() ([]models.HistoryEntry, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	return s.store.History, nil
}

func (s *JSONStore) SaveHistory(entries []models.HistoryEntry) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	if entries == nil {
		entries = []models.HistoryEntry{}
	}
	s.store.History = entries
	return s.save()
}

func (s *JSONStore) GetPendingQueue() ([]models.PendingNotification, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	return s.store.PendingQueue, nil
}

func (s *JSONStore) SavePendingQueue(queue []models.PendingNotification) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	if queue == nil {
		queue = []models.PendingNotification{}
	}
	s.store.PendingQueue = queue
	return s.save()
}

func (s *JSONStore) GetTaskCompletion() (models.TaskCompletion, error) {
	if s.store == nil {
		return models.TaskCompletion{}, fmt.Errorf("storage not loaded")
	}
	if s.store.TaskCompletion == nil {
		return models.TaskCompletion{}, nil
	}
	return *s.store.TaskCompletion, nil
}

func (s *JSONStore) SaveTaskCompletion(tc models.TaskCompletion) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.TaskCompletion = &tc
	return s.save()
}

func (s *JSONStore) Reset() error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store = &store{
		Version:      1,
		History:      []models.HistoryEntry{},
		PendingQueue: []models.PendingNotification{},
	}
	return s.save()
}

// GetConfigPath returns the path to the underlying storage file.
//
// Concurrency note:
//   - JSONStore is not safe for concurrent use by multiple goroutines without
//     external synchronization.
//   - Running multiple punchlit processes that share the same storage path at
//     the same time is not supported; the last write wins.
func (s *JSONStore) GetConfigPath() string {
	return s.path
}
