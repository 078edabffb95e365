package notepad

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultFilename is used when the user leaves the name blank.
const DefaultFilename = "notepad"

// ExportName turns a user-supplied name into "<name>.txt".
func ExportName(name string) string {
	name = strings.TrimSpace(name)
	if name != "" {
		name = filepath.Base(filepath.Clean(name))
	}
	if name == "" || name == "." || name == ".." || name == string(filepath.Separator) {
		name = DefaultFilename
	}
	if strings.EqualFold(filepath.Ext(name), ".txt") {
		return name
	}
	return name + ".txt"
}

// Export writes text as plain text to dir/ExportName(name).
func Export(dir, name, text string) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	path := filepath.Join(dir, ExportName(name))
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
