package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"waveslogin/internal/platform"
	"waveslogin/internal/ui/preferences"

	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	WaveDurationMillis *int64 `yaml:"wave_duration_ms,omitempty"`
	CheckDelayMillis   *int64 `yaml:"check_delay_ms,omitempty"`
	Fullscreen         bool   `yaml:"fullscreen"`
}

// Store reads and writes settings under a directory.
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// DefaultStore creates a store in the user config directory for appName.
func DefaultStore(appName string) (*Store, error) {
	configDir, err := platform.ConfigDir()
	if err != nil {
		return nil, fmt.Errorf("resolve user config dir: %w", err)
	}
	return NewStore(filepath.Join(configDir, appName)), nil
}

// Path returns the settings file location.
func (store *Store) Path() string {
	return filepath.Join(store.dir, settingsFileName)
}

// Load reads user preferences from YAML.
// If the file does not exist, default settings are returned.
func (store *Store) Load() (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := os.ReadFile(store.Path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings.Normalize(), nil
}

// Save writes user preferences to YAML.
func (store *Store) Save(settings preferences.Settings) error {
	if err := os.MkdirAll(store.dir, 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	waveMillis := settings.WaveDuration.Milliseconds()
	delayMillis := settings.CheckDelay.Milliseconds()
	fileData := yamlSettings{
		WaveDurationMillis: &waveMillis,
		CheckDelayMillis:   &delayMillis,
		Fullscreen:         settings.Fullscreen,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(store.Path(), serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}
	return nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	if fileData.WaveDurationMillis != nil {
		settings.WaveDuration = time.Duration(*fileData.WaveDurationMillis) * time.Millisecond
	}
	if fileData.CheckDelayMillis != nil {
		settings.CheckDelay = time.Duration(*fileData.CheckDelayMillis) * time.Millisecond
	}
	settings.Fullscreen = fileData.Fullscreen
}
