package slugify

import (
	"strings"
	"testing"
)

func TestMake(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "Hello World", "hello-world"},
		{"punctuation", "Hello, World! How's it going?", "hello-world-hows-it-going"},
		{"leading trailing spaces", "  Spaced Out  ", "spaced-out"},
		{"collapses hyphens", "a -- b", "a-b"},
		{"already slug", "already-a-slug", "already-a-slug"},
		{"numbers kept", "Project 2026", "project-2026"},
		{"empty", "", ""},
		{"only symbols", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Make(tt.input); got != tt.want {
				t.Errorf("Make(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestWithTimestamp(t *testing.T) {
	got := WithTimestamp("my-project")
	if !strings.HasPrefix(got, "my-project-") {
		t.Errorf("WithTimestamp = %q, want my-project-<unix> prefix", got)
	}
	if got == "my-project-" {
		t.Errorf("timestamp suffix missing: %q", got)
	}
}
