// Package launcher opens a project folder in the Windsurf editor. The path
// travels as a discrete argv element end to end; it is never interpolated
// into a shell string, so paths containing quotes or other metacharacters
// open correctly.
package launcher

import (
	"os/exec"
	"runtime"
)

const appName = "Windsurf"

// cliName is the windsurf command-line binary shipped with the editor.
const cliName = "windsurf"

// Command builds the platform-specific launch command for path.
func Command(path string) *exec.Cmd {
	return commandForOS(runtime.GOOS, path)
}

func commandForOS(goos, path string) *exec.Cmd {
	switch goos {
	case "darwin":
		return exec.Command("open", "-a", appName, path)
	case "windows":
		// cmd.exe re-parses its command line, so quoting in the path would
		// not survive `start`. Launch the CLI directly when it is present.
		if _, err := exec.LookPath(cliName); err == nil {
			return exec.Command(cliName, path)
		}
		return exec.Command("cmd", "/c", "start", "", cliName, path)
	default:
		if _, err := exec.LookPath(cliName); err == nil {
			return exec.Command(cliName, path)
		}
		return exec.Command("xdg-open", path)
	}
}

// Open launches Windsurf with path and waits for the launch command to
// finish. On macOS `open` returns as soon as the app has been told to open
// the folder, so waiting stays cheap while still surfacing a non-zero exit.
func Open(path string) error {
	return Command(path).Run()
}

// Installed reports whether the Windsurf editor appears to be present.
func Installed() bool {
	return installedForOS(runtime.GOOS, "/Applications")
}

func installedForOS(goos, appsDir string) bool {
	if goos == "darwin" {
		if bundleExists(appsDir, appName+".app") {
			return true
		}
	}
	_, err := exec.LookPath(cliName)
	return err == nil
}
