package domain

import "errors"

var (
	// ErrQuizNotFound indicates the slug has no matching quiz definition.
	ErrQuizNotFound = errors.New("quiz not found")
	// ErrAttemptNotFound is returned when an attempt ID is unknown or expired.
	ErrAttemptNotFound = errors.New("quiz attempt not found")
	// ErrQuestionMismatch indicates an answer for a question other than the
	// one currently presented. Well-behaved hosts only offer controls for the
	// current question, so this signals a host bug, not user error.
	ErrQuestionMismatch = errors.New("answer does not match the current question")
	// ErrOptionNotFound indicates a submitted option value is not among the
	// current question's options.
	ErrOptionNotFound = errors.New("option not found")
	// ErrNotAnswering is returned when an answer arrives outside the
	// answering phase.
	ErrNotAnswering = errors.New("attempt is not in the answering phase")
	// ErrNotAtLeadGate is returned when a skip arrives outside the lead gate.
	ErrNotAtLeadGate = errors.New("attempt is not at the lead gate")
	// ErrNotFinished is returned when a retake arrives while questions remain.
	ErrNotFinished = errors.New("attempt has unanswered questions")
)
