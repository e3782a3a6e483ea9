// Package content exposes the editorial catalog (guides, articles,
// categories) that surrounds the quizzes. The quiz engine itself does
// not depend on it.
package content

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

var ErrNotFound = errors.New("content not found")

type Category struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
}

type Guide struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Slug        string          `json:"slug"`
	Description string          `json:"description,omitempty"`
	Summary     string          `json:"summary,omitempty"`
	Body        json.RawMessage `json:"body,omitempty"`
	Author      string          `json:"author,omitempty"`
	PublishedAt *time.Time      `json:"publishedAt,omitempty"`
	Categories  []Category      `json:"categories,omitempty"`
}

type Article struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Slug        string          `json:"slug"`
	Description string          `json:"description,omitempty"`
	Body        json.RawMessage `json:"body,omitempty"`
	GuideID     string          `json:"guideId,omitempty"`
	Author      string          `json:"author,omitempty"`
	PublishedAt *time.Time      `json:"publishedAt,omitempty"`
}

// Provider is the read surface over the editorial store. Listings
// return only published entries, newest first; slugs resolve drafts
// too so editors can preview.
type Provider interface {
	GetPublishedGuides(ctx context.Context) ([]Guide, error)
	GetGuideBySlug(ctx context.Context, slug string) (Guide, error)
	GetPublishedArticles(ctx context.Context) ([]Article, error)
	GetArticleBySlug(ctx context.Context, slug string) (Article, error)
	GetArticlesByGuide(ctx context.Context, guideID string) ([]Article, error)
	GetCategories(ctx context.Context) ([]Category, error)
}
