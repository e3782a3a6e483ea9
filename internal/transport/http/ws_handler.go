package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"dentadvisor-quiz-service/internal/app"
	"dentadvisor-quiz-service/internal/domain"
)

// WSHandler drives one attempt per connection. It is behaviorally identical
// to the REST routes: the same service methods run underneath, so a given
// answer sequence resolves the same tier on either transport.
type WSHandler struct {
	attempts *app.AttemptService
	upgrader websocket.Upgrader
	log      *logrus.Logger
}

func NewWSHandler(attempts *app.AttemptService, log *logrus.Logger) *WSHandler {
	if log == nil {
		log = logrus.New()
	}
	return &WSHandler{
		attempts: attempts,
		log:      log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type startPayload struct {
	Slug string `json:"slug"`
}

type answerPayload struct {
	QuestionID  string `json:"questionId"`
	OptionValue string `json:"optionValue"`
}

type outboundMessage struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

type errorPayload struct {
	Message string `json:"message"`
}

// ServeWS upgrades the request and loops over inbound messages. Writes all
// happen from this loop, so no writer goroutine is needed.
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.WithError(err).Warn("ws upgrade failed")
		return
	}
	defer conn.Close()

	var attemptID string
	defer func() {
		if attemptID != "" {
			h.attempts.Abandon(r.Context(), attemptID)
		}
	}()

	sendError := func(msg string) bool {
		return conn.WriteJSON(outboundMessage{Type: "error", Payload: errorPayload{Message: msg}}) == nil
	}
	sendView := func(view app.View) bool {
		return conn.WriteJSON(outboundMessage{Type: "view", Payload: view}) == nil
	}

	for {
		var inbound inboundMessage
		if err := conn.ReadJSON(&inbound); err != nil {
			return
		}

		switch inbound.Type {
		case "start":
			var payload startPayload
			if err := json.Unmarshal(inbound.Payload, &payload); err != nil || payload.Slug == "" {
				if !sendError("invalid start payload") {
					return
				}
				continue
			}
			if attemptID != "" {
				h.attempts.Abandon(r.Context(), attemptID)
				attemptID = ""
			}
			view, err := h.attempts.Start(r.Context(), payload.Slug)
			if err != nil {
				if !sendError(wsErrorMessage(err)) {
					return
				}
				continue
			}
			attemptID = view.AttemptID
			if !sendView(view) {
				return
			}

		case "answer":
			var payload answerPayload
			if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
				if !sendError("invalid answer payload") {
					return
				}
				continue
			}
			view, err := h.attempts.SubmitAnswer(r.Context(), attemptID, domain.AnswerSubmission{
				QuestionID:  payload.QuestionID,
				OptionValue: payload.OptionValue,
			})
			if err != nil {
				if !sendError(wsErrorMessage(err)) {
					return
				}
				continue
			}
			if !sendView(view) {
				return
			}

		case "skip":
			view, err := h.attempts.SkipLeadGate(r.Context(), attemptID)
			if err != nil {
				if !sendError(wsErrorMessage(err)) {
					return
				}
				continue
			}
			if !sendView(view) {
				return
			}

		case "retake":
			view, err := h.attempts.Retake(r.Context(), attemptID)
			if err != nil {
				if !sendError(wsErrorMessage(err)) {
					return
				}
				continue
			}
			if !sendView(view) {
				return
			}

		default:
			if !sendError("unsupported message type") {
				return
			}
		}
	}
}

func wsErrorMessage(err error) string {
	if errors.Is(err, domain.ErrAttemptNotFound) {
		return "no attempt in progress; send a start message first"
	}
	return err.Error()
}
