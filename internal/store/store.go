package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Settings is the decoded contents of config.json: a mapping from string
// keys to arbitrary JSON values. The store interprets only the keys named
// in paths.go; unknown keys round-trip untouched.
type Settings map[string]any

// DefaultSettings returns a fresh copy of the default mapping.
func DefaultSettings() Settings {
	return Settings{KeyFavoriteColumns: []any{}}
}

// Options configures a Store. The zero value gives the plain contract:
// default directory, no backups, no quarantine, no logging.
type Options struct {
	// Dir is the base settings directory. Empty means DefaultDir().
	Dir string

	// BackupsKeep, when positive, enables a pre-save copy of config.json
	// into backups/, pruned to the newest BackupsKeep files.
	BackupsKeep int

	// QuarantineCorrupt moves an unparseable config.json aside as
	// corrupt_config_<timestamp>.json instead of leaving it in place.
	QuarantineCorrupt bool

	// LogWriter receives timestamped operational log lines. Nil disables
	// logging. Backup and quarantine failures surface only here.
	LogWriter io.Writer
}

// Store reads and writes the settings file. It keeps no settings in
// memory: every Load and Save is a fresh filesystem round trip, and the
// on-disk file is the single source of truth.
type Store struct {
	dir         string
	backupsKeep int
	quarantine  bool
	logw        io.Writer
}

// New resolves the settings directory, creates it if missing, and seeds
// config.json with the default mapping on first use. Existing files are
// left untouched. Directory or seed failures propagate.
func New(opts Options) (*Store, error) {
	dir := opts.Dir
	if dir == "" {
		var err error
		dir, err = DefaultDir()
		if err != nil {
			return nil, err
		}
	}

	s := &Store{
		dir:         dir,
		backupsKeep: opts.BackupsKeep,
		quarantine:  opts.QuarantineCorrupt,
		logw:        opts.LogWriter,
	}

	if err := os.MkdirAll(dir, DirPerm); err != nil {
		return nil, fmt.Errorf("creating settings directory %s: %w", dir, err)
	}

	if _, err := os.Stat(s.Path()); os.IsNotExist(err) {
		if err := s.writeSettings(DefaultSettings()); err != nil {
			return nil, fmt.Errorf("seeding default settings: %w", err)
		}
		s.logf("created default %s", ConfigFile)
	}

	return s, nil
}

// Dir returns the base settings directory.
func (s *Store) Dir() string { return s.dir }

// Path returns the full path to config.json.
func (s *Store) Path() string { return ConfigPath(s.dir) }

// Load reads and parses config.json. It never fails: any read or parse
// problem yields a fresh copy of the default mapping.
func (s *Store) Load() Settings {
	cfg, _ := s.LoadChecked()
	return cfg
}

// LoadChecked is Load with a diagnostic second return: fromDefault is true
// when the result is the default mapping substituted for an unreadable or
// unparseable file.
func (s *Store) LoadChecked() (Settings, bool) {
	data, err := os.ReadFile(s.Path())
	if err != nil {
		s.logf("reading %s: %v; using defaults", ConfigFile, err)
		return DefaultSettings(), true
	}

	var cfg Settings
	if err := json.Unmarshal(data, &cfg); err != nil {
		s.logf("parsing %s: %v; using defaults", ConfigFile, err)
		if s.quarantine {
			s.quarantineCorrupt()
		}
		return DefaultSettings(), true
	}
	if cfg == nil {
		// The file contained the JSON literal "null".
		return DefaultSettings(), true
	}
	return cfg, false
}

// Save serializes cfg and overwrites config.json in full. When backups are
// enabled the previous file is copied aside first; a failed backup is
// logged but never blocks the save. Write failures propagate.
func (s *Store) Save(cfg Settings) error {
	if s.backupsKeep > 0 {
		s.backup()
	}
	if err := s.writeSettings(cfg); err != nil {
		return err
	}
	s.logf("saved %s", ConfigFile)
	return nil
}

// SetFavoriteColumns replaces the favorite_columns key with the given
// column names, de-duplicated preserving first occurrence, and saves the
// result. Unrelated keys survive the read-modify-write.
func (s *Store) SetFavoriteColumns(columns []string) error {
	cfg := s.Load()
	cfg[KeyFavoriteColumns] = dedupe(columns)
	if err := s.Save(cfg); err != nil {
		return err
	}
	s.logf("updated %s: %v", KeyFavoriteColumns, columns)
	return nil
}

// FavoriteColumns loads the settings and extracts the favorite column
// names, skipping any non-string entries left by other writers.
func (s *Store) FavoriteColumns() []string {
	return StringList(s.Load()[KeyFavoriteColumns])
}

// Setting returns the value stored under the nested settings object,
// with ok reporting whether the key was present.
func (s *Store) Setting(key string) (any, bool) {
	nested, ok := s.Load()[KeySettings].(map[string]any)
	if !ok {
		return nil, false
	}
	v, ok := nested[key]
	return v, ok
}

// SetSetting writes a single key under the nested settings object,
// creating the object if needed, and saves the full mapping.
func (s *Store) SetSetting(key string, value any) error {
	cfg := s.Load()
	nested, ok := cfg[KeySettings].(map[string]any)
	if !ok {
		nested = map[string]any{}
		cfg[KeySettings] = nested
	}
	nested[key] = value
	return s.Save(cfg)
}

// Reset overwrites config.json with the default mapping. With backups
// enabled the previous contents are copied aside first.
func (s *Store) Reset() error {
	if err := s.Save(DefaultSettings()); err != nil {
		return err
	}
	s.logf("reset settings to defaults")
	return nil
}

// writeSettings encodes cfg and overwrites config.json in place. No
// temp-file rename: the converter is single-user, and a torn write is
// absorbed by Load's default fallback.
func (s *Store) writeSettings(cfg Settings) error {
	data, err := MarshalSettings(cfg)
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	if err := os.WriteFile(s.Path(), data, FilePerm); err != nil {
		return fmt.Errorf("writing %s: %w", s.Path(), err)
	}
	return nil
}

// MarshalSettings renders cfg as 2-space-indented JSON with non-ASCII
// characters kept literal, so Japanese column names stay readable in the
// file.
func MarshalSettings(cfg Settings) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(cfg); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// StringList extracts the string elements of a decoded JSON array.
// Non-string elements and non-array values yield an empty or partial
// result rather than an error.
func StringList(v any) []string {
	switch list := v.(type) {
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			if str, ok := item.(string); ok {
				out = append(out, str)
			}
		}
		return out
	case []string:
		out := make([]string, len(list))
		copy(out, list)
		return out
	default:
		return nil
	}
}

// dedupe removes duplicate column names preserving first occurrence.
// Always returns a non-nil slice so the key serializes as [] rather
// than null.
func dedupe(columns []string) []string {
	seen := make(map[string]bool, len(columns))
	out := make([]string, 0, len(columns))
	for _, c := range columns {
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}
