package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"dentadvisor-quiz-service/internal/domain"
	"dentadvisor-quiz-service/internal/infra/memory"
)

func TestQuizRepositoryCachesInRedis(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	client := newClient(mr)

	loader := &countingLoader{
		QuizLoader: memory.NewStaticQuizLoader(map[string]domain.Quiz{
			"sample": sampleQuiz(),
		}),
	}
	repo := NewQuizRepository(client, loader, time.Minute)

	quiz, err := repo.GetQuiz(context.Background(), "sample")
	if err != nil {
		t.Fatalf("get quiz: %v", err)
	}
	if loader.calls != 1 {
		t.Fatalf("expected loader called once, got %d", loader.calls)
	}
	if !mr.Exists("quiz:def:sample") {
		t.Fatalf("expected definition cached in redis")
	}

	// Second call should hit the redis cache, loader not incremented.
	cached, err := repo.GetQuiz(context.Background(), "sample")
	if err != nil {
		t.Fatalf("get quiz 2: %v", err)
	}
	if loader.calls != 1 {
		t.Fatalf("expected cache hit, loader calls=%d", loader.calls)
	}
	if len(cached.Questions) != len(quiz.Questions) || cached.Results[0].Title != quiz.Results[0].Title {
		t.Fatalf("cached definition differs from loaded one")
	}
}

func TestQuizRepositoryPropagatesNotFound(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	repo := NewQuizRepository(newClient(mr), memory.NewStaticQuizLoader(nil), time.Minute)
	if _, err := repo.GetQuiz(context.Background(), "ghost"); !errors.Is(err, domain.ErrQuizNotFound) {
		t.Fatalf("expected quiz not found, got %v", err)
	}
	if mr.Exists("quiz:def:ghost") {
		t.Fatalf("misses must not be cached")
	}
}

type countingLoader struct {
	memory.QuizLoader
	calls int
}

func (l *countingLoader) LoadQuiz(ctx context.Context, slug string) (domain.Quiz, error) {
	l.calls++
	return l.QuizLoader.LoadQuiz(ctx, slug)
}

func sampleQuiz() domain.Quiz {
	return domain.Quiz{
		Slug:  "sample",
		Title: "Sample",
		Questions: []domain.Question{
			{
				ID:   "q1",
				Text: "How deep is the dent?",
				Options: []domain.Option{
					{Label: "Shallow", Value: "shallow", Points: 3},
					{Label: "Deep", Value: "deep"},
				},
			},
		},
		Results: []domain.ResultTier{
			{MinScore: 0, MaxScore: 1, Title: "Unlikely", Severity: domain.SeverityNegative},
			{MinScore: 2, MaxScore: 3, Title: "Likely", Severity: domain.SeverityPositive},
		},
	}
}

func newClient(mr *miniredis.Miniredis) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
}
