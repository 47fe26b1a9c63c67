package validator

import (
	"errors"
	"testing"

	"github.com/gin-gonic/gin/binding"
)

type contactForm struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Content string `json:"content" binding:"required,min=2"`
	Rating  int    `json:"rating" binding:"min=1,max=5"`
}

type projectForm struct {
	Title       string `json:"title" binding:"required"`
	ShortDesc   string `json:"short_desc" binding:"required"`
	IsPublished *bool  `json:"is_published" binding:"required"`
}

func TestFieldErrors(t *testing.T) {
	err := binding.Validator.ValidateStruct(contactForm{Email: "not-an-email", Content: "x", Rating: 9})
	if err == nil {
		t.Fatal("expected validation to fail")
	}

	got := FieldErrors(err)

	if got["name"] != "name is required" {
		t.Errorf("name: got %q", got["name"])
	}
	if got["email"] != "email must be a valid email address" {
		t.Errorf("email: got %q", got["email"])
	}
	if got["content"] != "content must be at least 2 characters" {
		t.Errorf("content: got %q", got["content"])
	}
	if got["rating"] != "rating must be at most 5" {
		t.Errorf("rating: got %q", got["rating"])
	}
}

func TestFieldErrorsUseJSONTagNames(t *testing.T) {
	err := binding.Validator.ValidateStruct(projectForm{})
	if err == nil {
		t.Fatal("expected validation to fail")
	}

	got := FieldErrors(err)

	if got["short_desc"] != "short_desc is required" {
		t.Errorf("short_desc: got %v", got)
	}
	if got["is_published"] != "is_published is required" {
		t.Errorf("is_published: got %v", got)
	}
	if _, ok := got["ShortDesc"]; ok {
		t.Error("field key should come from the json tag, not the Go name")
	}
}

func TestFieldErrorsNonValidation(t *testing.T) {
	got := FieldErrors(errors.New("unexpected EOF"))
	if got["body"] != "invalid request body" {
		t.Errorf("got %v, want body entry", got)
	}
}
