package store

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/docxconv-labs/docxconv/internal/schema"
)

// Check validates the settings directory and file, printing a report to w.
// When fix is true it repairs what it can by re-running Init. It returns
// an error only for failures of the check itself; findings are reported,
// not returned.
func Check(w io.Writer, dir string, fix bool) error {
	if dir == "" {
		var err error
		dir, err = DefaultDir()
		if err != nil {
			return err
		}
	}

	fmt.Fprintln(w, "Settings check:")

	if _, err := os.Stat(dir); os.IsNotExist(err) {
		fmt.Fprintf(w, "  [MISS] %s does not exist\n", dir)
		if fix {
			fmt.Fprintln(w, "  [FIX ] Running init...")
			if initErr := Init(w, dir); initErr != nil {
				return fmt.Errorf("auto-fix init: %w", initErr)
			}
		} else {
			fmt.Fprintln(w, "         Run 'docxconv init' to create")
		}
		return nil
	}
	fmt.Fprintf(w, "  [ OK ] %s exists\n", dir)

	checkConfigFile(w, dir, fix)
	checkDirExists(w, filepath.Join(dir, BackupsDir), fix)
	checkDirExists(w, filepath.Join(dir, LogsDir), fix)

	return nil
}

// checkConfigFile verifies config.json exists, parses, conforms to the
// settings schema, and does not declare a newer format version than this
// build understands.
func checkConfigFile(w io.Writer, dir string, fix bool) {
	path := ConfigPath(dir)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		fmt.Fprintf(w, "  [MISS] %s does not exist\n", path)
		if fix {
			if seedErr := seedDefault(dir); seedErr != nil {
				fmt.Fprintf(w, "  [FAIL] Could not seed defaults: %v\n", seedErr)
				return
			}
			fmt.Fprintf(w, "  [FIX ] Seeded default %s\n", ConfigFile)
		}
		return
	}
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %s: %v\n", path, err)
		return
	}

	var cfg Settings
	if err := json.Unmarshal(data, &cfg); err != nil {
		fmt.Fprintf(w, "  [WARN] %s is not valid JSON: %v\n", path, err)
		fmt.Fprintln(w, "         Load will fall back to defaults")
		if fix {
			if seedErr := seedDefault(dir); seedErr != nil {
				fmt.Fprintf(w, "  [FAIL] Could not reseed defaults: %v\n", seedErr)
				return
			}
			fmt.Fprintf(w, "  [FIX ] Replaced with default %s\n", ConfigFile)
		}
		return
	}
	fmt.Fprintf(w, "  [ OK ] %s parses\n", path)

	result, err := schema.Validate(data)
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] Schema check: %v\n", err)
	} else if result.Valid {
		fmt.Fprintf(w, "  [ OK ] %s conforms to the settings schema\n", ConfigFile)
	} else {
		fmt.Fprintf(w, "  [WARN] %s has %d schema issue(s):\n", ConfigFile, len(result.Issues))
		for _, issue := range result.Issues {
			fmt.Fprintf(w, "         %s: %s\n", issue.Path, issue.Message)
		}
	}

	checkVersion(w, cfg)
}

// checkVersion warns when the file declares a settings format version
// newer than this build supports. The key is optional.
func checkVersion(w io.Writer, cfg Settings) {
	v, ok := cfg[KeyVersion].(string)
	if !ok {
		return
	}
	newer, err := schema.IsNewerThanSupported(v)
	if err != nil {
		fmt.Fprintf(w, "  [WARN] version %q is not valid semver\n", v)
		return
	}
	if newer {
		fmt.Fprintf(w, "  [WARN] settings version %s is newer than supported %s; update the tool\n",
			v, schema.SupportedVersion)
		return
	}
	fmt.Fprintf(w, "  [ OK ] settings version %s (supported: %s)\n", v, schema.SupportedVersion)
}

func checkDirExists(w io.Writer, path string, fix bool) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Fprintf(w, "  [MISS] %s does not exist\n", path)
		if fix {
			if mkErr := os.MkdirAll(path, DirPerm); mkErr != nil {
				fmt.Fprintf(w, "  [FAIL] Could not create %s: %v\n", path, mkErr)
				return
			}
			fmt.Fprintf(w, "  [FIX ] Created %s\n", path)
		}
		return
	}
	fmt.Fprintf(w, "  [ OK ] %s exists\n", path)
}

func seedDefault(dir string) error {
	data, err := MarshalSettings(DefaultSettings())
	if err != nil {
		return err
	}
	return os.WriteFile(ConfigPath(dir), data, FilePerm)
}
