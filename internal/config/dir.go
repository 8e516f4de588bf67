// Package config resolves where docket keeps its files and reads runtime
// options from the environment.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

const appName = "docket"

// Dir returns the docket configuration directory.
//
// Resolution:
//   - $DOCKET_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/docket if set (respects XDG on any platform)
//   - %AppData%/docket on Windows
//   - ~/.config/docket on macOS and Linux
func Dir() string {
	if dir := os.Getenv("DOCKET_CONFIG_HOME"); dir != "" {
		return dir
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}

	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, appName)
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName)
}

// VaultDataDir returns the per-vault data directory (<vault>/.docket), the
// counterpart of a plugin's data folder inside a notes vault.
func VaultDataDir(vaultDir string) string {
	return filepath.Join(vaultDir, "."+appName)
}

// GlobalTemplatesDir returns the directory for user-wide template overrides.
// Returns "" when no configuration directory can be resolved.
func GlobalTemplatesDir() string {
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "templates")
}
