package cli

import (
	"github.com/docxconv-labs/docxconv/internal/branding"
	"github.com/docxconv-labs/docxconv/internal/config"
	"github.com/docxconv-labs/docxconv/internal/store"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` owns the per-user settings of the DOCX-to-spreadsheet
converter: the favorite column list and related options persisted as JSON
at ~/.docx_converter/config.json.`,
	SilenceUsage: true,
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}

// openStore builds a Store configured from the tool preferences. The
// returned cleanup closes the operational log file, if one was opened.
func openStore() (*store.Store, func(), error) {
	config.Load()

	dir, err := store.DefaultDir()
	if err != nil {
		return nil, nil, err
	}

	opts := store.Options{
		Dir:               dir,
		BackupsKeep:       config.BackupsKeep(),
		QuarantineCorrupt: config.QuarantineCorrupt(),
	}

	cleanup := func() {}
	if config.LogFileEnabled() {
		// A log that cannot be opened is not worth failing the command.
		if f, err := store.OpenLogFile(dir); err == nil {
			opts.LogWriter = f
			cleanup = func() { f.Close() }
		}
	}

	s, err := store.New(opts)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return s, cleanup, nil
}
