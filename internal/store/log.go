package store

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// logf writes a timestamped line to the configured log writer, if any.
func (s *Store) logf(format string, args ...any) {
	if s.logw == nil {
		return
	}
	fmt.Fprintf(s.logw, "%s %s\n",
		time.Now().Format("2006-01-02 15:04:05"),
		fmt.Sprintf(format, args...))
}

// OpenLogFile opens <dir>/logs/config.log for appending, creating the
// logs directory if needed. The caller owns the returned file.
func OpenLogFile(dir string) (*os.File, error) {
	logsDir := filepath.Join(dir, LogsDir)
	if err := os.MkdirAll(logsDir, DirPerm); err != nil {
		return nil, fmt.Errorf("creating %s: %w", logsDir, err)
	}
	f, err := os.OpenFile(LogPath(dir), os.O_CREATE|os.O_APPEND|os.O_WRONLY, FilePerm)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	return f, nil
}
