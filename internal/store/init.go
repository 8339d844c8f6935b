package store

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/docxconv-labs/docxconv/internal/platform"
)

// Init creates the full settings directory tree with progress messages to
// w: the base directory, the seeded config.json, and the backups/ and
// logs/ subdirectories. Existing items are skipped with a message, so
// running it twice never overwrites user content.
func Init(w io.Writer, dir string) error {
	if dir == "" {
		var err error
		dir, err = DefaultDir()
		if err != nil {
			return err
		}
	}

	if err := ensureDir(w, dir, DirPerm); err != nil {
		return err
	}

	seed, err := MarshalSettings(DefaultSettings())
	if err != nil {
		return fmt.Errorf("encoding default settings: %w", err)
	}
	if err := ensureFile(w, ConfigPath(dir), string(seed), FilePerm); err != nil {
		return err
	}

	if err := ensureDir(w, filepath.Join(dir, BackupsDir), DirPerm); err != nil {
		return err
	}
	if err := ensureDir(w, filepath.Join(dir, LogsDir), DirPerm); err != nil {
		return err
	}

	return nil
}

// ensureDir creates a directory if it doesn't exist.
func ensureDir(w io.Writer, path string, perm os.FileMode) error {
	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			fmt.Fprintf(w, "  [SKIP] %s already exists\n", path)
			return nil
		}
		return fmt.Errorf("%s exists but is not a directory", path)
	}

	if err := os.MkdirAll(path, perm); err != nil {
		return fmt.Errorf("creating directory %s: %w", path, err)
	}
	// MkdirAll may not apply exact perms if parent dirs needed creation.
	if err := platform.Chmod(path, perm); err != nil {
		return fmt.Errorf("setting permissions on %s: %w", path, err)
	}
	fmt.Fprintf(w, "  [ OK ] Created %s\n", path)
	return nil
}

// ensureFile creates a file with content if it doesn't exist.
func ensureFile(w io.Writer, path, content string, perm os.FileMode) error {
	if _, err := os.Stat(path); err == nil {
		fmt.Fprintf(w, "  [SKIP] %s already exists\n", path)
		return nil
	}

	if err := os.WriteFile(path, []byte(content), perm); err != nil {
		return fmt.Errorf("creating file %s: %w", path, err)
	}
	fmt.Fprintf(w, "  [ OK ] Created %s\n", path)
	return nil
}
