package app_test

import (
	"errors"
	"testing"

	"dentadvisor-quiz-service/internal/app"
	"dentadvisor-quiz-service/internal/domain"
	"dentadvisor-quiz-service/internal/share"
)

func twoQuestionQuiz() domain.Quiz {
	return domain.Quiz{
		Slug:  "sample",
		Title: "Sample Quiz",
		Questions: []domain.Question{
			{
				ID:   "q1",
				Text: "First question",
				Options: []domain.Option{
					{Label: "None", Value: "none"},
					{Label: "Lots", Value: "lots", Points: 3},
				},
			},
			{
				ID:   "q2",
				Text: "Second question",
				Options: []domain.Option{
					{Label: "None", Value: "none"},
					{Label: "Lots", Value: "lots", Points: 3},
				},
			},
		},
		Results: []domain.ResultTier{
			{MinScore: 0, MaxScore: 3, Title: "Low", Severity: domain.SeverityNegative},
			{MinScore: 4, MaxScore: 6, Title: "High", Severity: domain.SeverityPositive},
		},
	}
}

func TestSessionAccumulatesAndResolves(t *testing.T) {
	session := app.NewSession("a1", twoQuestionQuiz(), false, share.NewBuilder("https://example.com"))

	view, err := session.SubmitAnswer(domain.AnswerSubmission{QuestionID: "q1", OptionValue: "lots"})
	if err != nil {
		t.Fatalf("submit q1: %v", err)
	}
	if view.Phase != app.PhaseAnswering || view.Question.ID != "q2" {
		t.Fatalf("expected to advance to q2, got phase %s", view.Phase)
	}
	if view.Progress.Number != 2 || view.Progress.Total != 2 {
		t.Fatalf("expected progress 2/2, got %+v", view.Progress)
	}

	view, err = session.SubmitAnswer(domain.AnswerSubmission{QuestionID: "q2", OptionValue: "lots"})
	if err != nil {
		t.Fatalf("submit q2: %v", err)
	}
	if view.Phase != app.PhaseResults {
		t.Fatalf("expected results phase, got %s", view.Phase)
	}
	if view.Result.Score != 6 || view.Result.Tier.Title != "High" {
		t.Fatalf("expected score 6 / High, got %d / %q", view.Result.Score, view.Result.Tier.Title)
	}
	if view.Result.Share == nil || view.Result.Share.Facebook == "" {
		t.Fatalf("expected share links on results view")
	}
}

func TestSessionZeroScoreHitsLowestTier(t *testing.T) {
	session := app.NewSession("a1", twoQuestionQuiz(), false, nil)

	if _, err := session.SubmitAnswer(domain.AnswerSubmission{QuestionID: "q1", OptionValue: "none"}); err != nil {
		t.Fatalf("submit q1: %v", err)
	}
	view, err := session.SubmitAnswer(domain.AnswerSubmission{QuestionID: "q2", OptionValue: "none"})
	if err != nil {
		t.Fatalf("submit q2: %v", err)
	}
	if view.Result.Score != 0 || view.Result.Tier.Title != "Low" {
		t.Fatalf("expected score 0 / Low, got %d / %q", view.Result.Score, view.Result.Tier.Title)
	}
}

func TestSessionRejectsOutOfOrderAnswers(t *testing.T) {
	session := app.NewSession("a1", twoQuestionQuiz(), false, nil)

	if _, err := session.SubmitAnswer(domain.AnswerSubmission{QuestionID: "q2", OptionValue: "lots"}); !errors.Is(err, domain.ErrQuestionMismatch) {
		t.Fatalf("expected question mismatch, got %v", err)
	}
	if _, err := session.SubmitAnswer(domain.AnswerSubmission{QuestionID: "q1", OptionValue: "bogus"}); !errors.Is(err, domain.ErrOptionNotFound) {
		t.Fatalf("expected option not found, got %v", err)
	}

	finishQuiz(t, session)

	if _, err := session.SubmitAnswer(domain.AnswerSubmission{QuestionID: "q1", OptionValue: "lots"}); !errors.Is(err, domain.ErrNotAnswering) {
		t.Fatalf("expected not answering after results, got %v", err)
	}
}

func TestSessionLeadGateIsSkippable(t *testing.T) {
	session := app.NewSession("a1", twoQuestionQuiz(), true, nil)

	if _, err := session.SkipLeadGate(); !errors.Is(err, domain.ErrNotAtLeadGate) {
		t.Fatalf("expected gate error before finishing, got %v", err)
	}

	view := finishQuiz(t, session)
	if view.Phase != app.PhaseLeadGate {
		t.Fatalf("expected lead gate after last answer, got %s", view.Phase)
	}
	if !view.LeadGate.Skippable {
		t.Fatalf("lead gate must always be skippable")
	}

	view, err := session.SkipLeadGate()
	if err != nil {
		t.Fatalf("skip: %v", err)
	}
	if view.Phase != app.PhaseResults || view.Result.Tier.Title != "High" {
		t.Fatalf("skipping the gate must resolve the same tier, got %+v", view.Result)
	}
}

func TestSessionRetakeResetsEverything(t *testing.T) {
	session := app.NewSession("a1", twoQuestionQuiz(), false, nil)

	if _, err := session.Retake(); !errors.Is(err, domain.ErrNotFinished) {
		t.Fatalf("expected retake rejected mid-quiz, got %v", err)
	}

	finishQuiz(t, session)

	view, err := session.Retake()
	if err != nil {
		t.Fatalf("retake: %v", err)
	}
	if view.Phase != app.PhaseAnswering || view.Question.ID != "q1" || view.Progress.Number != 1 {
		t.Fatalf("expected reset to first question, got %+v", view)
	}

	// A different answer path after retake must score independently.
	if _, err := session.SubmitAnswer(domain.AnswerSubmission{QuestionID: "q1", OptionValue: "none"}); err != nil {
		t.Fatalf("submit after retake: %v", err)
	}
	result, err := session.SubmitAnswer(domain.AnswerSubmission{QuestionID: "q2", OptionValue: "lots"})
	if err != nil {
		t.Fatalf("submit after retake: %v", err)
	}
	if result.Result.Score != 3 || result.Result.Tier.Title != "Low" {
		t.Fatalf("expected fresh score 3 / Low after retake, got %d / %q", result.Result.Score, result.Result.Tier.Title)
	}
}

func TestSessionScoreOrderIndependent(t *testing.T) {
	high := app.NewSession("a1", twoQuestionQuiz(), false, nil)
	if _, err := high.SubmitAnswer(domain.AnswerSubmission{QuestionID: "q1", OptionValue: "lots"}); err != nil {
		t.Fatalf("submit: %v", err)
	}
	highView, err := high.SubmitAnswer(domain.AnswerSubmission{QuestionID: "q2", OptionValue: "none"})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	low := app.NewSession("a2", twoQuestionQuiz(), false, nil)
	if _, err := low.SubmitAnswer(domain.AnswerSubmission{QuestionID: "q1", OptionValue: "none"}); err != nil {
		t.Fatalf("submit: %v", err)
	}
	lowView, err := low.SubmitAnswer(domain.AnswerSubmission{QuestionID: "q2", OptionValue: "lots"})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if highView.Result.Score != lowView.Result.Score {
		t.Fatalf("same point total in different order scored %d vs %d", highView.Result.Score, lowView.Result.Score)
	}
}

func finishQuiz(t *testing.T, session *app.Session) app.View {
	t.Helper()
	if _, err := session.SubmitAnswer(domain.AnswerSubmission{QuestionID: "q1", OptionValue: "lots"}); err != nil {
		t.Fatalf("submit q1: %v", err)
	}
	view, err := session.SubmitAnswer(domain.AnswerSubmission{QuestionID: "q2", OptionValue: "lots"})
	if err != nil {
		t.Fatalf("submit q2: %v", err)
	}
	return view
}
