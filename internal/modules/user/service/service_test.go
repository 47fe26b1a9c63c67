package user

import "testing"

func TestSafeRedirect(t *testing.T) {
	tests := []struct {
		name   string
		target string
		want   string
	}{
		{"empty", "", "/"},
		{"root relative", "/admin/projects", "/admin/projects"},
		{"absolute http", "http://evil.example/phish", "/"},
		{"absolute https", "https://evil.example", "/"},
		{"protocol relative", "//evil.example", "/"},
		{"backslash trick", "/\\evil.example", "/"},
		{"relative without slash", "admin", "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SafeRedirect(tt.target); got != tt.want {
				t.Errorf("SafeRedirect(%q) = %q, want %q", tt.target, got, tt.want)
			}
		})
	}
}
