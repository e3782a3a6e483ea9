package share

import (
	"strings"
	"testing"

	"dentadvisor-quiz-service/internal/domain"
)

func testQuiz() domain.Quiz {
	return domain.Quiz{Slug: "can-my-dent-be-fixed", Title: "Can My Dent Be Fixed?"}
}

func TestBuilderURLs(t *testing.T) {
	b := NewBuilder("https://dentadvisor.example.com/")

	if got := b.PageURL("can-my-dent-be-fixed"); got != "https://dentadvisor.example.com/quizzes/can-my-dent-be-fixed" {
		t.Fatalf("page url: %s", got)
	}
	if got := b.EmbedURL("can-my-dent-be-fixed"); got != "https://dentadvisor.example.com/embed/quiz/can-my-dent-be-fixed" {
		t.Fatalf("embed url: %s", got)
	}
}

func TestResultLinksEscapeAndReference(t *testing.T) {
	b := NewBuilder("https://dentadvisor.example.com")
	tier := domain.ResultTier{Title: "Great Candidate for PDR"}

	links := b.ResultLinks(testQuiz(), tier)

	if !strings.Contains(links.Text, "Great Candidate for PDR") {
		t.Fatalf("share text should reference the tier title, got %q", links.Text)
	}
	if !strings.HasPrefix(links.Facebook, "https://www.facebook.com/sharer/sharer.php?u=") {
		t.Fatalf("facebook url: %s", links.Facebook)
	}
	if !strings.HasPrefix(links.Twitter, "https://twitter.com/intent/tweet?url=") {
		t.Fatalf("twitter url: %s", links.Twitter)
	}
	if !strings.HasPrefix(links.LinkedIn, "https://www.linkedin.com/sharing/share-offsite/?url=") {
		t.Fatalf("linkedin url: %s", links.LinkedIn)
	}
	if strings.Contains(links.Twitter, " ") {
		t.Fatalf("twitter url must be query-escaped: %s", links.Twitter)
	}
	if !strings.Contains(links.Facebook, "https%3A%2F%2Fdentadvisor.example.com") {
		t.Fatalf("page url must be escaped inside share url: %s", links.Facebook)
	}
}

func TestEmbedSnippetDefaults(t *testing.T) {
	b := NewBuilder("https://dentadvisor.example.com")

	snippet := b.EmbedSnippet(testQuiz(), "", 0)

	if !strings.Contains(snippet, `src="https://dentadvisor.example.com/embed/quiz/can-my-dent-be-fixed"`) {
		t.Fatalf("snippet missing embed src: %s", snippet)
	}
	if !strings.Contains(snippet, `width="100%"`) || !strings.Contains(snippet, `height="700"`) {
		t.Fatalf("snippet missing default dimensions: %s", snippet)
	}
	if !strings.Contains(snippet, `title="Can My Dent Be Fixed?"`) {
		t.Fatalf("snippet missing title: %s", snippet)
	}
}

func TestEmbedSnippetCustomDimensions(t *testing.T) {
	b := NewBuilder("https://dentadvisor.example.com")
	snippet := b.EmbedSnippet(testQuiz(), "600px", 500)
	if !strings.Contains(snippet, `width="600px"`) || !strings.Contains(snippet, `height="500"`) {
		t.Fatalf("snippet did not honor dimensions: %s", snippet)
	}
}
