package search

import (
	"encoding/json"
	"testing"

	"github.com/meilisearch/meilisearch-go"
)

func TestDecodeHits(t *testing.T) {
	raw := meilisearch.Hits{
		{
			"id":      json.RawMessage(`"b4b60f44-5c4d-4b0e-9f1a-2f3a7c1d9e0b"`),
			"type":    json.RawMessage(`"project"`),
			"title":   json.RawMessage(`"My App"`),
			"slug":    json.RawMessage(`"my-app"`),
			"summary": json.RawMessage(`"a thing I built"`),
			"tags":    json.RawMessage(`["go","gin"]`),
			// Indexed-but-unexposed fields are ignored.
			"content":    json.RawMessage(`"full body text"`),
			"created_at": json.RawMessage(`1724800000`),
		},
		{
			"id":    json.RawMessage(`"0b9d2c61-1111-4222-8333-444455556666"`),
			"type":  json.RawMessage(`"post"`),
			"title": json.RawMessage(`"Hello"`),
			"slug":  json.RawMessage(`"hello"`),
			// A document that no longer matches the schema is skipped,
			// not fatal for the whole response.
			"tags": json.RawMessage(`"not-an-array"`),
		},
	}

	hits := decodeHits(indexProjects, raw)

	if len(hits) != 1 {
		t.Fatalf("got %d hits, want 1 (undecodable hit skipped)", len(hits))
	}

	hit := hits[0]
	if hit.ID != "b4b60f44-5c4d-4b0e-9f1a-2f3a7c1d9e0b" {
		t.Errorf("id = %q", hit.ID)
	}
	if hit.Type != "project" || hit.Title != "My App" || hit.Slug != "my-app" {
		t.Errorf("decoded hit = %+v", hit)
	}
	if hit.Summary != "a thing I built" {
		t.Errorf("summary = %q", hit.Summary)
	}
	if len(hit.Tags) != 2 || hit.Tags[0] != "go" || hit.Tags[1] != "gin" {
		t.Errorf("tags = %v", hit.Tags)
	}
}

func TestDecodeHitsEmpty(t *testing.T) {
	if hits := decodeHits(indexPosts, nil); len(hits) != 0 {
		t.Errorf("got %d hits from empty input, want 0", len(hits))
	}
}
