package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/docxconv-labs/docxconv/internal/config"
	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"
)

var favoritesOutput string

func init() {
	favoritesListCmd.Flags().StringVarP(&favoritesOutput, "output", "o", "",
		"Output format: plain, json, or yaml (default from tool preferences)")
	favoritesCmd.AddCommand(favoritesListCmd)
	favoritesCmd.AddCommand(favoritesSetCmd)
	favoritesCmd.AddCommand(favoritesAddCmd)
	favoritesCmd.AddCommand(favoritesRemoveCmd)
	favoritesCmd.AddCommand(favoritesClearCmd)
	rootCmd.AddCommand(favoritesCmd)
}

var favoritesCmd = &cobra.Command{
	Use:   "favorites",
	Short: "Manage the favorite column list",
	Long: `Read and modify the favorite_columns list in config.json — the columns
the converter offers first when building a spreadsheet.`,
}

var favoritesListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the favorite columns",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, cleanup, err := openStore()
		if err != nil {
			return err
		}
		defer cleanup()

		format := favoritesOutput
		if format == "" {
			format = config.OutputFormat()
		}
		out, err := renderColumns(s.FavoriteColumns(), format)
		if err != nil {
			return err
		}
		fmt.Print(out)
		return nil
	},
}

var favoritesSetCmd = &cobra.Command{
	Use:   "set <column>...",
	Short: "Replace the favorite columns",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, cleanup, err := openStore()
		if err != nil {
			return err
		}
		defer cleanup()

		if err := s.SetFavoriteColumns(args); err != nil {
			return fmt.Errorf("updating favorite columns: %w", err)
		}
		fmt.Printf("Favorite columns: %s\n", strings.Join(s.FavoriteColumns(), ", "))
		return nil
	},
}

var favoritesAddCmd = &cobra.Command{
	Use:   "add <column>...",
	Short: "Append columns to the favorites",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, cleanup, err := openStore()
		if err != nil {
			return err
		}
		defer cleanup()

		columns := append(s.FavoriteColumns(), args...)
		if err := s.SetFavoriteColumns(columns); err != nil {
			return fmt.Errorf("updating favorite columns: %w", err)
		}
		fmt.Printf("Favorite columns: %s\n", strings.Join(s.FavoriteColumns(), ", "))
		return nil
	},
}

var favoritesRemoveCmd = &cobra.Command{
	Use:   "remove <column>...",
	Short: "Remove columns from the favorites",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, cleanup, err := openStore()
		if err != nil {
			return err
		}
		defer cleanup()

		drop := make(map[string]bool, len(args))
		for _, c := range args {
			drop[c] = true
		}
		var kept []string
		for _, c := range s.FavoriteColumns() {
			if !drop[c] {
				kept = append(kept, c)
			}
		}
		if err := s.SetFavoriteColumns(kept); err != nil {
			return fmt.Errorf("updating favorite columns: %w", err)
		}
		fmt.Printf("Favorite columns: %s\n", strings.Join(s.FavoriteColumns(), ", "))
		return nil
	},
}

var favoritesClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Empty the favorite column list",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, cleanup, err := openStore()
		if err != nil {
			return err
		}
		defer cleanup()

		if err := s.SetFavoriteColumns(nil); err != nil {
			return fmt.Errorf("clearing favorite columns: %w", err)
		}
		fmt.Println("Favorite columns cleared")
		return nil
	},
}

// renderColumns formats the column list in the requested output format.
func renderColumns(columns []string, format string) (string, error) {
	switch format {
	case "plain":
		if len(columns) == 0 {
			return "", nil
		}
		return strings.Join(columns, "\n") + "\n", nil
	case "json":
		if columns == nil {
			columns = []string{}
		}
		out, err := json.MarshalIndent(columns, "", "  ")
		if err != nil {
			return "", fmt.Errorf("marshaling columns: %w", err)
		}
		return string(out) + "\n", nil
	case "yaml":
		if columns == nil {
			columns = []string{}
		}
		out, err := yaml.Marshal(columns)
		if err != nil {
			return "", fmt.Errorf("marshaling columns: %w", err)
		}
		return string(out), nil
	default:
		return "", fmt.Errorf("unknown output format %q (want plain, json, or yaml)", format)
	}
}
