package app_test

import (
	"testing"

	"dentadvisor-quiz-service/internal/app"
	"dentadvisor-quiz-service/internal/domain"
)

func TestResolveTierMatchesInclusiveRange(t *testing.T) {
	tiers := []domain.ResultTier{
		{MinScore: 0, MaxScore: 3, Title: "Low"},
		{MinScore: 4, MaxScore: 6, Title: "High"},
	}

	if got := app.ResolveTier(6, tiers); got.Title != "High" {
		t.Fatalf("score 6: expected High, got %q", got.Title)
	}
	if got := app.ResolveTier(4, tiers); got.Title != "High" {
		t.Fatalf("score 4: boundary should be inclusive, got %q", got.Title)
	}
	if got := app.ResolveTier(3, tiers); got.Title != "Low" {
		t.Fatalf("score 3: boundary should be inclusive, got %q", got.Title)
	}
	if got := app.ResolveTier(0, tiers); got.Title != "Low" {
		t.Fatalf("score 0: expected Low, got %q", got.Title)
	}
}

func TestResolveTierFallsBackToFirst(t *testing.T) {
	tiers := []domain.ResultTier{
		{MinScore: 0, MaxScore: 5, Title: "A"},
		{MinScore: 6, MaxScore: 10, Title: "B"},
	}

	if got := app.ResolveTier(11, tiers); got.Title != "A" {
		t.Fatalf("score past every maximum should fall back to first tier, got %q", got.Title)
	}
	if got := app.ResolveTier(-2, tiers); got.Title != "A" {
		t.Fatalf("negative score should fall back to first tier, got %q", got.Title)
	}
}

func TestResolveTierDeterministic(t *testing.T) {
	tiers := []domain.ResultTier{
		{MinScore: 0, MaxScore: 10, Title: "Only"},
	}
	first := app.ResolveTier(7, tiers)
	second := app.ResolveTier(7, tiers)
	if first.Title != second.Title {
		t.Fatalf("same score resolved different tiers: %q vs %q", first.Title, second.Title)
	}
}

func TestMaxScoreSumsBestOptions(t *testing.T) {
	quiz := domain.Quiz{
		Questions: []domain.Question{
			{ID: "q1", Options: []domain.Option{{Value: "a", Points: 1}, {Value: "b", Points: 3}}},
			{ID: "q2", Options: []domain.Option{{Value: "a", Points: 2}, {Value: "b"}}},
		},
	}
	if got := app.MaxScore(quiz); got != 5 {
		t.Fatalf("expected max score 5, got %d", got)
	}
}

func TestValidateCoverageFindsGaps(t *testing.T) {
	quiz := domain.Quiz{
		Questions: []domain.Question{
			{ID: "q1", Options: []domain.Option{{Value: "a"}, {Value: "b", Points: 10}}},
		},
		Results: []domain.ResultTier{
			{MinScore: 0, MaxScore: 3, Title: "Low"},
			{MinScore: 7, MaxScore: 10, Title: "High"},
		},
	}
	gaps := app.ValidateCoverage(quiz)
	if len(gaps) != 1 {
		t.Fatalf("expected one gap, got %v", gaps)
	}
	if gaps[0].From != 4 || gaps[0].To != 6 {
		t.Fatalf("expected gap 4-6, got %+v", gaps[0])
	}
}

func TestValidateCoverageCleanQuiz(t *testing.T) {
	quiz := domain.Quiz{
		Questions: []domain.Question{
			{ID: "q1", Options: []domain.Option{{Value: "a"}, {Value: "b", Points: 4}}},
		},
		Results: []domain.ResultTier{
			{MinScore: 0, MaxScore: 2, Title: "Low"},
			{MinScore: 3, MaxScore: 4, Title: "High"},
		},
	}
	if gaps := app.ValidateCoverage(quiz); len(gaps) != 0 {
		t.Fatalf("expected full coverage, got gaps %v", gaps)
	}
}
