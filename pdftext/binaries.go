package pdftext

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// findBinary searches for an executable on the system PATH first, then
// checks common OS-specific install directories as a fallback.
func findBinary(name string) (string, bool) {
	if runtime.GOOS == "windows" && filepath.Ext(name) != ".exe" {
		name = name + ".exe"
	}

	if p, err := exec.LookPath(name); err == nil {
		return p, true
	}

	for _, dir := range defaultDirs() {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return p, true
		}
	}
	return "", false
}

// defaultDirs returns the directories where poppler-utils or xpdf usually
// install pdftotext, for the current OS.
func defaultDirs() []string {
	switch runtime.GOOS {
	case "linux":
		return []string{"/usr/bin", "/usr/local/bin", "/snap/bin"}
	case "darwin":
		return []string{"/opt/homebrew/bin", "/usr/local/bin", "/opt/local/bin"}
	case "windows":
		pf := os.Getenv("ProgramFiles")
		if pf == "" {
			pf = `C:\Program Files`
		}
		return []string{
			filepath.Join(pf, "poppler", "Library", "bin"),
			filepath.Join(pf, "xpdf-tools", "bin64"),
		}
	default:
		return nil
	}
}
