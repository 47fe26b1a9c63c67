package search

import (
	"fmt"
	"html"
	"log"
	"strings"

	"github.com/meilisearch/meilisearch-go"
	"github.com/microcosm-cc/bluemonday"

	"github.com/rakandev/portfolio-cms/internal/entity"
)

const (
	indexProjects = "projects"
	indexPosts    = "posts"
)

// SearchService mirrors published projects and posts into meilisearch and
// serves the public full-text search. Only published documents are ever
// indexed; unpublishing removes the document.
type SearchService interface {
	IndexProject(project *entity.Project) error
	DeleteProject(id string) error
	IndexPost(post *entity.Post) error
	DeletePost(id string) error
	Search(query string, limit int64) ([]Hit, error)
}

// Hit is one public search result.
type Hit struct {
	ID      string   `json:"id"`
	Type    string   `json:"type"` // "project" or "post"
	Title   string   `json:"title"`
	Slug    string   `json:"slug"`
	Summary string   `json:"summary"`
	Tags    []string `json:"tags"`
}

type searchService struct {
	client    meilisearch.ServiceManager
	sanitizer *bluemonday.Policy
}

func NewSearchService(client meilisearch.ServiceManager) SearchService {
	s := &searchService{
		client:    client,
		sanitizer: bluemonday.StrictPolicy(),
	}
	s.initIndexes()
	return s
}

func (s *searchService) initIndexes() {
	for _, index := range []string{indexProjects, indexPosts} {
		sortable := []string{"created_at"}
		if _, err := s.client.Index(index).UpdateSortableAttributes(&sortable); err != nil {
			log.Printf("Failed to update %s sortable attributes: %v", index, err)
		}
	}
}

type searchDoc struct {
	ID        string   `json:"id"`
	Type      string   `json:"type"`
	Title     string   `json:"title"`
	Slug      string   `json:"slug"`
	Summary   string   `json:"summary"`
	Content   string   `json:"content"`
	Tags      []string `json:"tags"`
	CreatedAt int64    `json:"created_at"`
}

func (s *searchService) IndexProject(project *entity.Project) error {
	doc := searchDoc{
		ID:        project.ID.String(),
		Type:      "project",
		Title:     project.Title,
		Slug:      project.Slug,
		Summary:   project.ShortDesc,
		Content:   s.cleanContent(project.Description),
		Tags:      project.TechStack,
		CreatedAt: project.CreatedAt.Unix(),
	}

	_, err := s.client.Index(indexProjects).AddDocuments([]searchDoc{doc}, strPtr("id"))
	if err != nil {
		return fmt.Errorf("failed to index project %s: %w", project.ID, err)
	}
	return nil
}

func (s *searchService) DeleteProject(id string) error {
	_, err := s.client.Index(indexProjects).DeleteDocument(id)
	return err
}

func (s *searchService) IndexPost(post *entity.Post) error {
	doc := searchDoc{
		ID:        post.ID.String(),
		Type:      "post",
		Title:     post.Title,
		Slug:      post.Slug,
		Summary:   post.Excerpt,
		Content:   s.cleanContent(post.Content),
		Tags:      post.Tags,
		CreatedAt: post.CreatedAt.Unix(),
	}

	_, err := s.client.Index(indexPosts).AddDocuments([]searchDoc{doc}, strPtr("id"))
	if err != nil {
		return fmt.Errorf("failed to index post %s: %w", post.ID, err)
	}
	return nil
}

func (s *searchService) DeletePost(id string) error {
	_, err := s.client.Index(indexPosts).DeleteDocument(id)
	return err
}

func (s *searchService) Search(query string, limit int64) ([]Hit, error) {
	hits := make([]Hit, 0)

	for _, index := range []string{indexProjects, indexPosts} {
		resp, err := s.client.Index(index).Search(query, &meilisearch.SearchRequest{Limit: limit})
		if err != nil {
			return nil, fmt.Errorf("search on %s failed: %w", index, err)
		}

		hits = append(hits, decodeHits(index, resp.Hits)...)
	}

	return hits, nil
}

// decodeHits converts raw meilisearch hits into the public result shape.
// A document that fails to decode is skipped, not fatal.
func decodeHits(index string, raw meilisearch.Hits) []Hit {
	out := make([]Hit, 0, len(raw))
	for _, h := range raw {
		var hit Hit
		if err := h.DecodeInto(&hit); err != nil {
			log.Printf("Failed to decode %s search hit: %v", index, err)
			continue
		}
		out = append(out, hit)
	}
	return out
}

// cleanContent strips markup before indexing so search snippets stay text.
func (s *searchService) cleanContent(content string) string {
	content = strings.ReplaceAll(content, "</p>", " ")
	content = strings.ReplaceAll(content, "<br>", " ")
	content = strings.ReplaceAll(content, "</div>", " ")

	sanitized := s.sanitizer.Sanitize(content)
	cleanText := html.UnescapeString(sanitized)

	return strings.Join(strings.Fields(cleanText), " ")
}

func strPtr(s string) *string {
	return &s
}
