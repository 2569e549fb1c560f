// Package sanitize keeps user-supplied filenames and output paths safe:
// no directory traversal, no characters that break on common filesystems.
package sanitize

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Filename removes path traversal and dangerous characters from a filename.
// Returns just the base name, stripped of any directory components.
func Filename(name string) string {
	name = filepath.Base(name)

	replacer := strings.NewReplacer(
		"..", "_",
		"/", "_",
		"\\", "_",
		"\x00", "",
		":", "_",
		"*", "_",
		"?", "_",
		"\"", "_",
		"<", "_",
		">", "_",
		"|", "_",
	)
	name = replacer.Replace(name)

	if name == "" || name == "." || name == ".." {
		return "untitled"
	}

	return name
}

// OutputPath resolves and validates an output path, ensuring it stays
// within the target directory.
func OutputPath(dir, filename string) (string, error) {
	sanitized := Filename(filename)

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving directory: %w", err)
	}

	full, err := filepath.Abs(filepath.Join(absDir, sanitized))
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	if !strings.HasPrefix(full, absDir+string(filepath.Separator)) && full != absDir {
		return "", fmt.Errorf("path traversal detected: %q escapes %q", full, absDir)
	}

	return full, nil
}

// OutputTemplate builds the yt-dlp output template for a download, routed
// through OutputPath so the result is absolute and confined to dir. With a
// custom name, any extension the user typed is dropped — yt-dlp owns the
// final extension (it changes under merge and audio extraction).
func OutputTemplate(dir, customName string) (string, error) {
	name := "%(title)s.%(ext)s"
	if customName != "" {
		base := strings.TrimSuffix(customName, filepath.Ext(customName))
		name = Filename(base) + ".%(ext)s"
	}
	return OutputPath(dir, name)
}
