package store

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"
)

const stampLayout = "20060102_150405"

// backup copies the current config.json into backups/ with a timestamped
// name, then prunes old copies. Failures are logged and swallowed: a
// missing backup must never block a save.
func (s *Store) backup() {
	src := s.Path()
	if _, err := os.Stat(src); err != nil {
		return
	}

	dir := filepath.Join(s.dir, BackupsDir)
	if err := os.MkdirAll(dir, DirPerm); err != nil {
		s.logf("creating %s: %v", BackupsDir, err)
		return
	}

	stamp := time.Now().Format(stampLayout)
	dst := filepath.Join(dir, fmt.Sprintf("config_%s.json", stamp))
	if err := copyFile(src, dst); err != nil {
		s.logf("backing up %s: %v", ConfigFile, err)
		return
	}
	s.logf("backed up %s to %s", ConfigFile, filepath.Base(dst))

	s.pruneBackups(dir)
}

// pruneBackups keeps the newest backupsKeep files. Timestamped names sort
// chronologically, so lexical order is age order.
func (s *Store) pruneBackups(dir string) {
	matches, err := filepath.Glob(filepath.Join(dir, "config_*.json"))
	if err != nil || len(matches) <= s.backupsKeep {
		return
	}
	sort.Strings(matches)
	for _, old := range matches[:len(matches)-s.backupsKeep] {
		if err := os.Remove(old); err != nil {
			s.logf("pruning backup %s: %v", filepath.Base(old), err)
			continue
		}
		s.logf("pruned backup %s", filepath.Base(old))
	}
}

// quarantineCorrupt moves an unparseable config.json aside so the next
// bootstrap reseeds a clean default while the bad contents stay available
// for inspection.
func (s *Store) quarantineCorrupt() {
	stamp := time.Now().Format(stampLayout)
	dst := filepath.Join(s.dir, fmt.Sprintf("corrupt_config_%s.json", stamp))
	if err := os.Rename(s.Path(), dst); err != nil {
		s.logf("quarantining %s: %v", ConfigFile, err)
		return
	}
	s.logf("moved corrupt %s to %s", ConfigFile, filepath.Base(dst))
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
