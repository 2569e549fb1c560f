package sanitize

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestFilename(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"normal-name", "normal-name"},
		{"with spaces ok", "with spaces ok"},
		{"../../../etc/passwd", "passwd"},
		{"a/b/c", "c"},
		{"bad:name*here?", "bad_name_here_"},
		{`quote"and<angle>`, "quote_and_angle_"},
		{"pipe|name", "pipe_name"},
		{"", "untitled"},
		{".", "untitled"},
		{"..", "_"}, // the replacer rewrites ".." before the sentinel check
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Filename(tt.input)
			if got != tt.expected {
				t.Errorf("Filename(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestOutputPath(t *testing.T) {
	dir := t.TempDir()

	path, err := OutputPath(dir, "video.mp4")
	if err != nil {
		t.Fatalf("OutputPath() error: %v", err)
	}
	if filepath.Dir(path) != dir {
		t.Errorf("path %q not inside %q", path, dir)
	}

	// Traversal attempts are reduced to base names, never escapes
	path, err = OutputPath(dir, "../../escape.mp4")
	if err != nil {
		t.Fatalf("OutputPath() error: %v", err)
	}
	if !strings.HasPrefix(path, dir) {
		t.Errorf("traversal escaped: %q", path)
	}
}

func TestOutputTemplate(t *testing.T) {
	tests := []struct {
		name   string
		dir    string
		custom string
		want   string
	}{
		{"default template", "/dl", "", filepath.Join("/dl", "%(title)s.%(ext)s")},
		{"custom name", "/dl", "my_video", filepath.Join("/dl", "my_video.%(ext)s")},
		{"custom name extension dropped", "/dl", "clip.mp4", filepath.Join("/dl", "clip.%(ext)s")},
		{"custom name sanitized", "/dl", "a:b", filepath.Join("/dl", "a_b.%(ext)s")},
		{"custom name traversal confined", "/dl", "../../escape", filepath.Join("/dl", "escape.%(ext)s")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := OutputTemplate(tt.dir, tt.custom)
			if err != nil {
				t.Fatalf("OutputTemplate(%q, %q) error: %v", tt.dir, tt.custom, err)
			}
			if got != tt.want {
				t.Errorf("OutputTemplate(%q, %q) = %q, want %q", tt.dir, tt.custom, got, tt.want)
			}
		})
	}
}
