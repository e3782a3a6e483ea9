package app

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"dentadvisor-quiz-service/internal/domain"
	"dentadvisor-quiz-service/internal/share"
)

// AttemptRepository abstracts how live attempts are stored (in-memory today;
// the interface keeps transports independent of the store).
type AttemptRepository interface {
	Put(session *Session)
	Get(attemptID string) (*Session, bool)
	Delete(attemptID string)
}

// QuizRepository resolves a slug to its quiz definition (static catalog,
// cache, or backing store).
type QuizRepository interface {
	GetQuiz(ctx context.Context, slug string) (domain.Quiz, error)
}

// AttemptService contains the quiz-taking use cases. Both hosts — the
// full-page route and the embed route — drive attempts through this one
// service, so identical answers always resolve identical tiers.
type AttemptService struct {
	attempts AttemptRepository
	quizzes  QuizRepository
	shares   *share.Builder
	leadGate bool
	newID    func() string
}

func NewAttemptService(attempts AttemptRepository, quizzes QuizRepository, shares *share.Builder, leadGate bool) *AttemptService {
	return &AttemptService{
		attempts: attempts,
		quizzes:  quizzes,
		shares:   shares,
		leadGate: leadGate,
		newID:    uuid.NewString,
	}
}

// Start creates an attempt for the quiz at slug and returns the first
// question view. A definition with zero questions is a content bug, not a
// user-facing condition; it fails here rather than mid-attempt.
func (s *AttemptService) Start(ctx context.Context, slug string) (View, error) {
	quiz, err := s.quizzes.GetQuiz(ctx, slug)
	if err != nil {
		return View{}, err
	}
	if len(quiz.Questions) == 0 {
		return View{}, fmt.Errorf("quiz %q has no questions", slug)
	}

	session := newSession(s.newID(), quiz, s.leadGate, s.shares)
	s.attempts.Put(session)
	return session.View(), nil
}

// Current returns the attempt's present view without changing state.
func (s *AttemptService) Current(_ context.Context, attemptID string) (View, error) {
	session, ok := s.attempts.Get(attemptID)
	if !ok {
		return View{}, domain.ErrAttemptNotFound
	}
	return session.View(), nil
}

// SubmitAnswer forwards an answer to the attempt's state machine.
func (s *AttemptService) SubmitAnswer(_ context.Context, attemptID string, sub domain.AnswerSubmission) (View, error) {
	session, ok := s.attempts.Get(attemptID)
	if !ok {
		return View{}, domain.ErrAttemptNotFound
	}
	return session.SubmitAnswer(sub)
}

// SkipLeadGate advances a gated attempt to results.
func (s *AttemptService) SkipLeadGate(_ context.Context, attemptID string) (View, error) {
	session, ok := s.attempts.Get(attemptID)
	if !ok {
		return View{}, domain.ErrAttemptNotFound
	}
	return session.SkipLeadGate()
}

// Retake resets a finished or gated attempt back to its first question.
func (s *AttemptService) Retake(_ context.Context, attemptID string) (View, error) {
	session, ok := s.attempts.Get(attemptID)
	if !ok {
		return View{}, domain.ErrAttemptNotFound
	}
	return session.Retake()
}

// Abandon discards an attempt, mirroring a host unmount or navigation away.
func (s *AttemptService) Abandon(_ context.Context, attemptID string) {
	s.attempts.Delete(attemptID)
}
