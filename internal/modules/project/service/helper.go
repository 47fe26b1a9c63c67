package project

import (
	"context"

	"github.com/rakandev/portfolio-cms/internal/entity"
	"github.com/rakandev/portfolio-cms/pkg/slugify"
)

// generateUniqueSlug derives a slug from the title, appending a unix
// timestamp when the base slug is taken. The slug column's unique index is
// the backstop for the check-then-insert race between concurrent creates.
func generateUniqueSlug(ctx context.Context, findBySlug func(context.Context, string) (*entity.Project, error), title string) string {
	slug := slugify.Make(title)
	if slug == "" {
		slug = "project"
	}

	if existing, _ := findBySlug(ctx, slug); existing != nil {
		slug = slugify.WithTimestamp(slug)
	}
	return slug
}

func normalizePage(page, limit *int) {
	if *page < 1 {
		*page = 1
	}
	if *limit < 1 {
		*limit = 10
	}
	if *limit > 100 {
		*limit = 100
	}
}
