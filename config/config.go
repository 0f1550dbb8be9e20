package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Settings is the persisted server configuration.
type Settings struct {
	Server  ServerConfig  `json:"server"`
	Storage StorageConfig `json:"storage"`
	Log     LogConfig     `json:"log"`
	Share   ShareConfig   `json:"share"`
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	ListenAddr string `json:"listenAddr"`
}

// StorageConfig holds filesystem locations.
type StorageConfig struct {
	DataDir      string `json:"dataDir"`
	DatabasePath string `json:"databasePath"`
}

// LogConfig holds the rotating log file settings.
type LogConfig struct {
	FilePath   string `json:"filePath"`
	MaxSizeMB  int    `json:"maxSizeMb"`
	MaxBackups int    `json:"maxBackups"`
	MaxAgeDays int    `json:"maxAgeDays"`
}

// ShareConfig configures the CAP list share channels. Each command receives
// the payload on stdin; an empty command disables that channel.
type ShareConfig struct {
	ShareCommand     []string `json:"shareCommand"`
	ClipboardCommand []string `json:"clipboardCommand"`
}

// DefaultSettings returns the configuration used when no settings file exists.
func DefaultSettings() *Settings {
	return &Settings{
		Server: ServerConfig{
			ListenAddr: ":8080",
		},
		Storage: StorageConfig{
			DataDir:      "data",
			DatabasePath: filepath.Join("data", "cetcounselor.db"),
		},
		Log: LogConfig{
			FilePath:   filepath.Join("data", "cetcounselor.log"),
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 30,
		},
		Share: ShareConfig{},
	}
}

// Manager loads and saves the JSON settings file.
type Manager struct {
	path string

	mu     sync.RWMutex
	cached *Settings
}

// NewManager creates a manager for the settings file at path.
func NewManager(path string) *Manager {
	return &Manager{path: path}
}

// Load returns the settings, reading the file on first use. A missing file
// yields the defaults; a malformed file is an error.
func (m *Manager) Load() (*Settings, error) {
	m.mu.RLock()
	if m.cached != nil {
		defer m.mu.RUnlock()
		return m.cached, nil
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.cached != nil {
		return m.cached, nil
	}

	data, err := os.ReadFile(m.path)
	if err != nil {
		if os.IsNotExist(err) {
			m.cached = DefaultSettings()
			return m.cached, nil
		}
		return nil, fmt.Errorf("read settings: %w", err)
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("parse settings: %w", err)
	}
	m.cached = settings
	return m.cached, nil
}

// Save writes the settings file and updates the cache.
func (m *Manager) Save(settings *Settings) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if dir := filepath.Dir(m.path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create settings directory: %w", err)
		}
	}
	if err := os.WriteFile(m.path, data, 0644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	m.cached = settings
	return nil
}
