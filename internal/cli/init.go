package cli

import (
	"fmt"
	"os"

	"github.com/docxconv-labs/docxconv/internal/store"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the settings directory and default files",
	Long: `Create ~/.docx_converter/ with a default config.json plus the backups/
and logs/ subdirectories. Safe to run repeatedly: existing files are
never overwritten.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := store.DefaultDir()
		if err != nil {
			return err
		}
		fmt.Printf("Initializing %s:\n", dir)
		return store.Init(os.Stdout, dir)
	},
}
