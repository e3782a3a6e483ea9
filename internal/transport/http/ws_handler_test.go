package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"dentadvisor-quiz-service/internal/app"
	"dentadvisor-quiz-service/internal/catalog"
	"dentadvisor-quiz-service/internal/infra/memory"
	"dentadvisor-quiz-service/internal/share"
)

func dialTestWS(t *testing.T) *websocket.Conn {
	t.Helper()
	cat := catalog.New()
	shares := share.NewBuilder("https://dentadvisor.example.com")
	quizRepo := memory.NewQuizRepository(cat, time.Minute)
	service := app.NewAttemptService(memory.NewSessionStore(), quizRepo, shares, true)
	wsHandler := NewWSHandler(service, nil)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", wsHandler.ServeWS)
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	conn, _, err := websocket.DefaultDialer.Dial("ws"+server.URL[len("http"):]+"/ws", nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readFrame(t *testing.T, conn *websocket.Conn) (string, app.View, string) {
	t.Helper()
	var msg struct {
		Type    string `json:"type"`
		Payload struct {
			app.View
			Message string `json:"message"`
		} `json:"payload"`
	}
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read frame: %v", err)
	}
	return msg.Type, msg.Payload.View, msg.Payload.Message
}

func TestWebSocketAttemptFlow(t *testing.T) {
	conn := dialTestWS(t)

	if err := conn.WriteJSON(map[string]any{
		"type":    "start",
		"payload": map[string]any{"slug": "can-my-dent-be-fixed"},
	}); err != nil {
		t.Fatalf("write start: %v", err)
	}

	typ, view, _ := readFrame(t, conn)
	if typ != "view" || view.Phase != app.PhaseAnswering {
		t.Fatalf("expected answering view, got type=%s phase=%s", typ, view.Phase)
	}

	for view.Phase == app.PhaseAnswering {
		if err := conn.WriteJSON(map[string]any{
			"type": "answer",
			"payload": map[string]any{
				"questionId":  view.Question.ID,
				"optionValue": view.Question.Options[0].Value,
			},
		}); err != nil {
			t.Fatalf("write answer: %v", err)
		}
		typ, view, _ = readFrame(t, conn)
		if typ != "view" {
			t.Fatalf("expected view frame, got %s", typ)
		}
	}

	if view.Phase != app.PhaseLeadGate {
		t.Fatalf("expected lead gate, got %s", view.Phase)
	}

	if err := conn.WriteJSON(map[string]any{"type": "skip"}); err != nil {
		t.Fatalf("write skip: %v", err)
	}
	typ, view, _ = readFrame(t, conn)
	if typ != "view" || view.Phase != app.PhaseResults || view.Result == nil {
		t.Fatalf("expected results frame, got type=%s %+v", typ, view)
	}

	if err := conn.WriteJSON(map[string]any{"type": "retake"}); err != nil {
		t.Fatalf("write retake: %v", err)
	}
	typ, view, _ = readFrame(t, conn)
	if typ != "view" || view.Phase != app.PhaseAnswering || view.Progress.Number != 1 {
		t.Fatalf("expected fresh first question after retake, got %+v", view)
	}
}

func TestWebSocketRequiresStart(t *testing.T) {
	conn := dialTestWS(t)

	if err := conn.WriteJSON(map[string]any{
		"type":    "answer",
		"payload": map[string]any{"questionId": "q1", "optionValue": "x"},
	}); err != nil {
		t.Fatalf("write answer: %v", err)
	}
	typ, _, message := readFrame(t, conn)
	if typ != "error" || message == "" {
		t.Fatalf("expected error frame before start, got type=%s message=%q", typ, message)
	}
}

func TestWebSocketUnknownSlug(t *testing.T) {
	conn := dialTestWS(t)

	if err := conn.WriteJSON(map[string]any{
		"type":    "start",
		"payload": map[string]any{"slug": "not-a-quiz"},
	}); err != nil {
		t.Fatalf("write start: %v", err)
	}
	typ, _, _ := readFrame(t, conn)
	if typ != "error" {
		t.Fatalf("expected error frame for unknown slug, got %s", typ)
	}
}

func TestWebSocketUnsupportedType(t *testing.T) {
	conn := dialTestWS(t)

	if err := conn.WriteJSON(map[string]any{"type": "bogus"}); err != nil {
		t.Fatalf("write: %v", err)
	}
	typ, _, _ := readFrame(t, conn)
	if typ != "error" {
		t.Fatalf("expected error frame, got %s", typ)
	}
}
