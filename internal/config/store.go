package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// DefaultConfig returns the configuration written on first access, with every
// known key present and empty so the admin surface can enumerate them.
func DefaultConfig() Config {
	cfg := Config{
		KeyClass:                 "",
		KeyHostURL:               "",
		KeyStoreURL:              "",
		KeyAccessToken:           "",
		KeyCurrency:              "",
		KeyStoreViewTranslations: "",
		KeyConfigurableTypeValue: "",
		KeySimpleTypeValue:       "",
		KeyDefaultLanguage:       "en",
		KeyValidLanguages:        "en",
		KeyAdminToken:            "",
	}

	for _, key := range productFieldKeys {
		cfg[key] = ""
	}

	return cfg
}

// Store persists the configuration as a YAML file. Reads return an immutable
// snapshot; writes replace the whole document.
type Store struct {
	path string

	mu sync.Mutex
}

// NewStore returns a store backed by the YAML file at path. The file is
// created with defaults on first access.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Snapshot loads the current configuration. A missing file is created with
// DefaultConfig before returning it.
func (s *Store) Snapshot() (Config, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		cfg := DefaultConfig()
		if err := s.write(cfg); err != nil {
			return nil, err
		}

		return cfg, nil
	}

	if err != nil {
		return nil, fmt.Errorf("read configuration %q: %w", s.path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse configuration %q: %w", s.path, err)
	}

	if cfg == nil {
		cfg = Config{}
	}

	return cfg, nil
}

// Save replaces the stored configuration.
func (s *Store) Save(cfg Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.write(cfg)
}

func (s *Store) write(cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode configuration: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create configuration directory %q: %w", dir, err)
		}
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write configuration %q: %w", s.path, err)
	}

	return nil
}
