package app

import (
	"dentadvisor-quiz-service/internal/domain"
	"dentadvisor-quiz-service/internal/share"
)

// View is the presentation shell's projection of an attempt. Exactly one of
// Question/LeadGate/Result is set, matching Phase; hosts render it without
// reaching into the session, so only the current question's options are ever
// available to answer.
type View struct {
	AttemptID string        `json:"attemptId"`
	QuizSlug  string        `json:"quizSlug"`
	QuizTitle string        `json:"quizTitle"`
	Phase     Phase         `json:"phase"`
	Progress  *ProgressView `json:"progress,omitempty"`
	Question  *QuestionView `json:"question,omitempty"`
	LeadGate  *LeadGateView `json:"leadGate,omitempty"`
	Result    *ResultView   `json:"result,omitempty"`
}

// ProgressView feeds the "Question N of M" header and the proportional bar.
type ProgressView struct {
	Number  int `json:"number"`
	Total   int `json:"total"`
	Percent int `json:"percent"`
}

// OptionView is an answer control. Points are withheld so hosts cannot leak
// scoring to the user mid-quiz.
type OptionView struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type QuestionView struct {
	ID       string       `json:"id"`
	Text     string       `json:"text"`
	HelpText string       `json:"helpText,omitempty"`
	Options  []OptionView `json:"options"`
}

// LeadGateView is the optional interstitial form. Skippable is always true:
// results are the value proposition, the gate must never wall them off.
type LeadGateView struct {
	Heading     string   `json:"heading"`
	Description string   `json:"description"`
	Fields      []string `json:"fields"`
	Skippable   bool     `json:"skippable"`
}

type ResultView struct {
	Score   int                 `json:"score"`
	Tier    domain.ResultTier   `json:"tier"`
	CTA     domain.CallToAction `json:"cta"`
	Sources []domain.Citation   `json:"sources"`
	Share   *share.Links        `json:"share,omitempty"`
}

func leadGateView() *LeadGateView {
	return &LeadGateView{
		Heading:     "Get Your Personalized Results",
		Description: "Enter your information to receive your detailed assessment and connect with certified PDR technicians.",
		Fields:      []string{"name", "phone", "email", "zip"},
		Skippable:   true,
	}
}

func progressView(index, total int) *ProgressView {
	return &ProgressView{
		Number:  index + 1,
		Total:   total,
		Percent: (index + 1) * 100 / total,
	}
}

func questionView(q domain.Question) *QuestionView {
	options := make([]OptionView, 0, len(q.Options))
	for _, opt := range q.Options {
		options = append(options, OptionView{Label: opt.Label, Value: opt.Value})
	}
	return &QuestionView{ID: q.ID, Text: q.Text, HelpText: q.HelpText, Options: options}
}
