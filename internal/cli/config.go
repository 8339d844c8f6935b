package cli

import (
	"encoding/json"
	"fmt"

	"github.com/docxconv-labs/docxconv/internal/store"
	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"
)

var (
	configShowOutput string
	configResetYes   bool
)

func init() {
	configShowCmd.Flags().StringVarP(&configShowOutput, "output", "o", "json",
		"Output format: json or yaml")
	configResetCmd.Flags().BoolVar(&configResetYes, "yes", false,
		"Skip the confirmation requirement")
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configResetCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and edit the converter settings file",
	Long: `Operate on ~/.docx_converter/config.json: show the full mapping, read or
write individual keys under the settings object, or reset to defaults.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the full settings mapping",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, cleanup, err := openStore()
		if err != nil {
			return err
		}
		defer cleanup()

		cfg := s.Load()
		switch configShowOutput {
		case "json":
			out, err := store.MarshalSettings(cfg)
			if err != nil {
				return fmt.Errorf("marshaling settings: %w", err)
			}
			fmt.Print(string(out))
		case "yaml":
			out, err := yaml.Marshal(map[string]any(cfg))
			if err != nil {
				return fmt.Errorf("marshaling settings: %w", err)
			}
			fmt.Print(string(out))
		default:
			return fmt.Errorf("unknown output format %q (want json or yaml)", configShowOutput)
		}
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print one value from the settings object",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, cleanup, err := openStore()
		if err != nil {
			return err
		}
		defer cleanup()

		value, ok := s.Setting(args[0])
		if !ok {
			return fmt.Errorf("setting %q is not set", args[0])
		}
		out, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("marshaling value: %w", err)
		}
		fmt.Println(string(out))
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Write one value into the settings object",
	Long: `Set a key under the settings object in config.json. The value is parsed
as JSON when possible (numbers, booleans, arrays, objects) and stored as a
string otherwise.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, cleanup, err := openStore()
		if err != nil {
			return err
		}
		defer cleanup()

		key, value := args[0], parseValue(args[1])
		if err := s.SetSetting(key, value); err != nil {
			return fmt.Errorf("setting %q: %w", key, err)
		}
		fmt.Printf("Set %s = %v\n", key, value)
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the resolved settings file path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := store.DefaultDir()
		if err != nil {
			return err
		}
		fmt.Println(store.ConfigPath(dir))
		return nil
	},
}

var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the settings file to defaults",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !configResetYes {
			return fmt.Errorf("reset discards all settings; re-run with --yes to confirm")
		}

		s, cleanup, err := openStore()
		if err != nil {
			return err
		}
		defer cleanup()

		if err := s.Reset(); err != nil {
			return fmt.Errorf("resetting settings: %w", err)
		}
		fmt.Println("Settings reset to defaults")
		return nil
	},
}

// parseValue interprets a CLI argument as JSON when possible, falling back
// to the raw string. "5" becomes a number, "true" a boolean, "原稿" stays
// a string.
func parseValue(arg string) any {
	var v any
	if err := json.Unmarshal([]byte(arg), &v); err != nil {
		return arg
	}
	return v
}
