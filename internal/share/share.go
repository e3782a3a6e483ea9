// Package share builds shareable links and embed snippets for quizzes.
// Everything here is pure string construction; posting to the platforms
// themselves is left to the client.
package share

import (
	"fmt"
	"net/url"
	"strings"

	"dentadvisor-quiz-service/internal/domain"
)

// Links are the share targets rendered alongside a quiz result.
type Links struct {
	PageURL  string `json:"pageUrl"`
	Text     string `json:"text"`
	Facebook string `json:"facebook"`
	Twitter  string `json:"twitter"`
	LinkedIn string `json:"linkedin"`
}

// Builder constructs quiz URLs rooted at the public site address.
type Builder struct {
	baseURL string
}

func NewBuilder(baseURL string) *Builder {
	return &Builder{baseURL: strings.TrimRight(baseURL, "/")}
}

// PageURL is the full-page address of a quiz.
func (b *Builder) PageURL(slug string) string {
	return b.baseURL + "/quizzes/" + slug
}

// EmbedURL is the reduced-chrome address served inside iframes.
func (b *Builder) EmbedURL(slug string) string {
	return b.baseURL + "/embed/quiz/" + slug
}

// ResultLinks builds the share targets for a resolved result tier. The text
// references the tier title so a share reads as an outcome, not just a link.
func (b *Builder) ResultLinks(quiz domain.Quiz, tier domain.ResultTier) Links {
	page := b.PageURL(quiz.Slug)
	text := fmt.Sprintf("I took the %s quiz on DentAdvisor - %s", quiz.Title, tier.Title)
	return Links{
		PageURL:  page,
		Text:     text,
		Facebook: FacebookURL(page),
		Twitter:  TwitterURL(page, text),
		LinkedIn: LinkedInURL(page),
	}
}

// QuizLinks builds share targets for a quiz itself, used before any result
// exists (e.g. the page header share bar).
func (b *Builder) QuizLinks(quiz domain.Quiz) Links {
	page := b.PageURL(quiz.Slug)
	text := "Take this free quiz: " + quiz.Title
	return Links{
		PageURL:  page,
		Text:     text,
		Facebook: FacebookURL(page),
		Twitter:  TwitterURL(page, text),
		LinkedIn: LinkedInURL(page),
	}
}

// EmbedSnippet renders the copyable iframe code for a quiz. Width is a CSS
// dimension ("100%", "600px"); height is in pixels.
func (b *Builder) EmbedSnippet(quiz domain.Quiz, width string, height int) string {
	if width == "" {
		width = "100%"
	}
	if height <= 0 {
		height = 700
	}
	return fmt.Sprintf(`<iframe
  src=%q
  width=%q
  height="%d"
  frameborder="0"
  style="border: 1px solid #e5e7eb; border-radius: 8px; max-width: 600px;"
  title=%q
></iframe>`, b.EmbedURL(quiz.Slug), width, height, quiz.Title)
}

func FacebookURL(page string) string {
	return "https://www.facebook.com/sharer/sharer.php?u=" + url.QueryEscape(page)
}

func TwitterURL(page, text string) string {
	return "https://twitter.com/intent/tweet?url=" + url.QueryEscape(page) + "&text=" + url.QueryEscape(text)
}

func LinkedInURL(page string) string {
	return "https://www.linkedin.com/sharing/share-offsite/?url=" + url.QueryEscape(page)
}
