// Package browser opens the generated dashboard in the user's default
// browser. Failure here is cosmetic, the caller just prints the path.
package browser

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"runtime"
)

// OpenFile opens a local HTML file via the platform opener. The path is
// resolved to absolute and wrapped in a file:// URL so openers that only
// accept URLs still work.
func OpenFile(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving dashboard path: %w", err)
	}
	url := "file://" + filepath.ToSlash(abs)

	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", url).Start()
	case "windows":
		// rundll32 avoids cmd /c start shell interpretation of the path.
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	default:
		return exec.Command("xdg-open", url).Start()
	}
}
