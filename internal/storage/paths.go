package storage

import (
	"os"
	"path/filepath"
	"runtime"
)

// DefaultPath returns the platform-specific location of Windsurf's global
// storage file.
func DefaultPath() string {
	home, _ := os.UserHomeDir()

	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "Windsurf", "User", "globalStorage", "storage.json")
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData == "" {
			appData = filepath.Join(home, "AppData", "Roaming")
		}
		return filepath.Join(appData, "Windsurf", "User", "globalStorage", "storage.json")
	default:
		configDir := os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			configDir = filepath.Join(home, ".config")
		}
		return filepath.Join(configDir, "Windsurf", "User", "globalStorage", "storage.json")
	}
}
