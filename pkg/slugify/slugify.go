// Package slugify derives URL-safe slugs from titles.
package slugify

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9\s-]`)
	multipleHyphens = regexp.MustCompile(`-{2,}`)
)

// Make converts a title into a lowercase hyphen-separated slug.
// Example: "My First Project!" -> "my-first-project"
func Make(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = nonAlphanumeric.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, " ", "-")
	s = multipleHyphens.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// WithTimestamp appends the current unix timestamp, used to de-duplicate a
// slug that already exists.
func WithTimestamp(slug string) string {
	return fmt.Sprintf("%s-%d", slug, time.Now().Unix())
}
