package cli

import (
	"os"

	"github.com/docxconv-labs/docxconv/internal/store"
	"github.com/spf13/cobra"
)

var doctorFix bool

func init() {
	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false,
		"Repair missing directories and reseed an unusable config.json")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Health check for the settings directory",
	Long: `Verify that ~/.docx_converter/ is intact: the directory tree exists,
config.json parses and conforms to the settings schema, and its format
version is one this build understands.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := store.DefaultDir()
		if err != nil {
			return err
		}
		return store.Check(os.Stdout, dir, doctorFix)
	},
}
