package post

import (
	"context"
	"strings"

	"github.com/rakandev/portfolio-cms/pkg/slugify"
)

const wordsPerMinute = 200

func (s *postService) generateUniqueSlug(ctx context.Context, title string) string {
	slug := slugify.Make(title)
	if slug == "" {
		slug = "post"
	}

	if existing, _ := s.repo.FindBySlug(ctx, slug); existing != nil {
		slug = slugify.WithTimestamp(slug)
	}
	return slug
}

// estimateReadTime returns the reading time in minutes, minimum 1.
func estimateReadTime(content string) int {
	words := len(strings.Fields(content))
	minutes := words / wordsPerMinute
	if words%wordsPerMinute != 0 {
		minutes++
	}
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}
