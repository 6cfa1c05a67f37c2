// Package config persists the user-tunable reminder settings as a flat
// KEY=value file. Unknown keys are ignored and malformed values fall
// back to their defaults, so a hand-edited file never breaks startup.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/hydrate-cli/hydrate/internal/fileutil"
)

const (
	keyInterval = "INTERVAL_MINUTES"
	keySound    = "SOUND_ENABLED"
	keyMessage  = "CUSTOM_MESSAGE"
	keyIcon     = "ICON_PATH"
)

const (
	DefaultIntervalMinutes = 30
	DefaultIconPath        = "/usr/share/icons/hicolor/256x256/apps/hydrate.png"
)

// Config holds the reminder settings. An empty CustomMessage means the
// loop picks randomly from the built-in message set.
type Config struct {
	IntervalMinutes int
	SoundEnabled    bool
	CustomMessage   string
	IconPath        string
}

// Default returns the settings used before the user has configured anything.
func Default() Config {
	return Config{
		IntervalMinutes: DefaultIntervalMinutes,
		SoundEnabled:    true,
		CustomMessage:   "",
		IconPath:        DefaultIconPath,
	}
}

// Store reads and writes the config file at a fixed path.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the config file location.
func (s *Store) Path() string {
	return s.path
}

// Load reads the config file. When the file does not exist it is
// created with default values as a side effect.
func (s *Store) Load() (Config, error) {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		cfg := Default()
		if err := s.Save(cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	env, err := godotenv.Read(s.path)
	if err != nil {
		return Default(), err
	}

	cfg := Default()
	if v, ok := env[keyInterval]; ok {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.IntervalMinutes = n
		}
	}
	if v, ok := env[keySound]; ok {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.SoundEnabled = b
		}
	}
	if v, ok := env[keyMessage]; ok {
		cfg.CustomMessage = v
	}
	if v, ok := env[keyIcon]; ok && v != "" {
		cfg.IconPath = v
	}
	return cfg, nil
}

// Save rewrites the whole config file atomically.
func (s *Store) Save(cfg Config) error {
	env := map[string]string{
		keyInterval: strconv.Itoa(cfg.IntervalMinutes),
		keySound:    strconv.FormatBool(cfg.SoundEnabled),
		keyMessage:  cfg.CustomMessage,
		keyIcon:     cfg.IconPath,
	}
	content, err := godotenv.Marshal(env)
	if err != nil {
		return err
	}
	return fileutil.AtomicWriteFile(s.path, []byte(content+"\n"), 0600)
}
