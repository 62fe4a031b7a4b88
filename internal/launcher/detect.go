package launcher

import (
	"os"
	"path/filepath"
)

// bundleExists checks for a macOS .app bundle in appsDir.
func bundleExists(appsDir, bundle string) bool {
	_, err := os.Stat(filepath.Join(appsDir, bundle))
	return err == nil
}
