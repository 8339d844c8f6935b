package cli

import (
	"fmt"

	"github.com/docxconv-labs/docxconv/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	prefsCmd.AddCommand(prefsGetCmd)
	prefsCmd.AddCommand(prefsSetCmd)
	rootCmd.AddCommand(prefsCmd)
}

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Manage CLI preferences",
	Long: `Read and write docxconv preferences stored at ~/.docx_converter/tool.yaml,
such as output_format, backups.keep, quarantine_corrupt, and log_file.`,
}

var prefsGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a preference value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		fmt.Println(config.Get(args[0]))
		return nil
	},
}

var prefsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a preference value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		key, value := args[0], args[1]
		if err := config.Set(key, value); err != nil {
			return fmt.Errorf("setting preference %q: %w", key, err)
		}
		fmt.Printf("Set %s = %s\n", key, value)
		return nil
	},
}
