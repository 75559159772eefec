package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/punchlit/internal/models"
	_ "modernc.org/sqlite"
)

// Keys of the kv table. Every value is a whole JSON document, mirroring
// the per-key layout of the JSON store.
const (
	keySettings       = "settings"
	keyProfile        = "profile"
	keyToday          = "today"
	keyHistory        = "history"
	keyPendingQueue   = "pending_queue"
	keyTaskCompletion = "task_completion"
)

const schema = `
CREATE TABLE IF NOT EXISTS kv (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`

type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	// Seed empty settings so the key exists from the start, as the JSON
	// store's document does.
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM kv WHERE key = ?", keySettings).Scan(&n); err != nil {
		return fmt.Errorf("failed to check settings: %w", err)
	}
	if n == 0 {
		if err := s.SaveSettings(Settings{}); err != nil {
			return fmt.Errorf("failed to save default settings: %w", err)
		}
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'punchlit init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	// Schema creation is idempotent; run it so stores created by older
	// versions pick up new tables.
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// getJSON unmarshals the value under key into dest. Returns sql.ErrNoRows
// when the key has never been written.
func (s *SQLiteStore) getJSON(key string, dest any) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	var value string
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if err != nil {
		return err
	}

	if err := json.Unmarshal([]byte(value), dest); err != nil {
		return fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) putJSON(key string, v any) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to serialize %s: %w", key, err)
	}

	_, err = s.db.Exec(
		"INSERT INTO kv (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, string(data),
	)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) GetSettings() (Settings, error) {
	var settings Settings
	if err := s.getJSON(keySettings, &settings); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Settings{}, nil
		}
		return Settings{}, err
	}
	return settings, nil
}

func (s *SQLiteStore) SaveSettings(settings Settings) error {
	return s.putJSON(keySettings, settings)
}

func (s *SQLiteStore) GetProfile() (models.UserProfile, error) {
	var profile models.UserProfile
	if err := s.getJSON(keyProfile, &profile); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.UserProfile{}, nil
		}
		return models.UserProfile{}, err
	}
	return profile, nil
}

func (s *SQLiteStore) SaveProfile(profile models.UserProfile) error {
	return s.putJSON(keyProfile, profile)
}

func (s *SQLiteStore) GetTodayRecord() (models.AttendanceRecord, error) {
	var rec models.AttendanceRecord
	if err := s.getJSON(keyToday, &rec); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.AttendanceRecord{}, nil
		}
		return models.AttendanceRecord{}, err
	}
	return rec, nil
}

func (s *SQLiteStore) SaveTodayRecord(rec models.AttendanceRecord) error {
	return s.putJSON(keyToday, rec)
}

func (s *SQLiteStore) GetHistory() ([]models.HistoryEntry, error) {
	var entries []models.HistoryEntry
	if err := s.getJSON(keyHistory, &entries); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []models.HistoryEntry{}, nil
		}
		return nil, err
	}
	if entries == nil {
		entries = []models.HistoryEntry{}
	}
	return entries, nil
}

func (s *SQLiteStore) SaveHistory(entries []models.HistoryEntry) error {
	if entries == nil {
		entries = []models.HistoryEntry{}
	}
	return s.putJSON(keyHistory, entries)
}

func (s *SQLiteStore) GetPendingQueue() ([]models.PendingNotification, error) {
	var queue []models.PendingNotification
	if err := s.getJSON(keyPendingQueue, &queue); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []models.PendingNotification{}, nil
		}
		return nil, err
	}
	if queue == nil {
		queue = []models.PendingNotification{}
	}
	return queue, nil
}

func (s *SQLiteStore) SavePendingQueue(queue []models.PendingNotification) error {
	if queue == nil {
		queue = []models.PendingNotification{}
	}
	return s.putJSON(keyPendingQueue, queue)
}

func (s *SQLiteStore) GetTaskCompletion() (models.TaskCompletion, error) {
	var tc models.TaskCompletion
	if err := s.getJSON(keyTaskCompletion, &tc); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.TaskCompletion{}, nil
		}
		return models.TaskCompletion{}, err
	}
	return tc, nil
}

func (s *SQLiteStore) SaveTaskCompletion(tc models.TaskCompletion) error {
	return s.putJSON(keyTaskCompletion, tc)
}

func (s *SQLiteStore) Reset() error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}
	if _, err := s.db.Exec("DELETE FROM kv"); err != nil {
		return fmt.Errorf("failed to reset storage: %w", err)
	}
	return s.SaveSettings(Settings{})
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}

// GetDB exposes the underlying connection for diagnostics.
func (s *SQLiteStore) GetDB() *sql.DB {
	return s.db
}
