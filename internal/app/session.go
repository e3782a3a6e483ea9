package app

import (
	"sync"

	"dentadvisor-quiz-service/internal/domain"
	"dentadvisor-quiz-service/internal/share"
)

// Phase is the stage of a quiz attempt.
type Phase string

const (
	PhaseAnswering Phase = "answering"
	PhaseLeadGate  Phase = "lead_gate"
	PhaseResults   Phase = "results"
)

// Session is one in-memory quiz attempt: current question index, recorded
// answers, eagerly accumulated score, and phase. It lives for the duration
// of the interaction and is never persisted. Answers commit irrevocably and
// advance forward only; Retake is the sole way back.
//
// The mutex serializes transport goroutines; within one attempt the UI only
// permits a single in-flight interaction, so there is no contention to speak
// of, just the usual store-level safety.
type Session struct {
	id       string
	quiz     domain.Quiz
	leadGate bool
	shares   *share.Builder

	mu      sync.Mutex
	phase   Phase
	index   int
	answers map[string]string
	score   int
}

func newSession(id string, quiz domain.Quiz, leadGate bool, shares *share.Builder) *Session {
	return &Session{
		id:       id,
		quiz:     quiz,
		leadGate: leadGate,
		shares:   shares,
		phase:    PhaseAnswering,
		answers:  make(map[string]string),
	}
}

// NewSession is exported for infrastructure layers that need to seed attempts.
func NewSession(id string, quiz domain.Quiz, leadGate bool, shares *share.Builder) *Session {
	return newSession(id, quiz, leadGate, shares)
}

func (s *Session) ID() string { return s.id }

// SubmitAnswer records the chosen option for the current question, adds its
// points to the running score, and advances: to the next question, or past
// the last question to the lead gate (when enabled) or straight to results.
func (s *Session) SubmitAnswer(sub domain.AnswerSubmission) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseAnswering {
		return View{}, domain.ErrNotAnswering
	}
	question := s.quiz.Questions[s.index]
	if sub.QuestionID != question.ID {
		return View{}, domain.ErrQuestionMismatch
	}

	var chosen *domain.Option
	for i := range question.Options {
		if question.Options[i].Value == sub.OptionValue {
			chosen = &question.Options[i]
			break
		}
	}
	if chosen == nil {
		return View{}, domain.ErrOptionNotFound
	}

	s.answers[question.ID] = chosen.Value
	s.score += ScoreFor(*chosen)

	if s.index == len(s.quiz.Questions)-1 {
		if s.leadGate {
			s.phase = PhaseLeadGate
		} else {
			s.phase = PhaseResults
		}
	} else {
		s.index++
	}
	return s.viewLocked(), nil
}

// SkipLeadGate moves from the gate to results without a lead submission.
// The resolved tier is identical to what a gateless configuration produces.
func (s *Session) SkipLeadGate() (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseLeadGate {
		return View{}, domain.ErrNotAtLeadGate
	}
	s.phase = PhaseResults
	return s.viewLocked(), nil
}

// Retake resets the attempt to the first question with a zero score and no
// recorded answers. Valid once the answering phase is over.
func (s *Session) Retake() (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase == PhaseAnswering {
		return View{}, domain.ErrNotFinished
	}
	s.phase = PhaseAnswering
	s.index = 0
	s.score = 0
	s.answers = make(map[string]string)
	return s.viewLocked(), nil
}

// View projects the current phase for rendering.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

func (s *Session) viewLocked() View {
	view := View{
		AttemptID: s.id,
		QuizSlug:  s.quiz.Slug,
		QuizTitle: s.quiz.Title,
		Phase:     s.phase,
	}
	switch s.phase {
	case PhaseAnswering:
		view.Progress = progressView(s.index, len(s.quiz.Questions))
		view.Question = questionView(s.quiz.Questions[s.index])
	case PhaseLeadGate:
		view.LeadGate = leadGateView()
	case PhaseResults:
		tier := ResolveTier(s.score, s.quiz.Results)
		result := &ResultView{
			Score:   s.score,
			Tier:    tier,
			CTA:     s.quiz.CTA,
			Sources: s.quiz.Sources,
		}
		if s.shares != nil {
			links := s.shares.ResultLinks(s.quiz, tier)
			result.Share = &links
		}
		view.Result = result
	}
	return view
}
