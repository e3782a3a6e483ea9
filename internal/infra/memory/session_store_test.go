package memory

import (
	"testing"

	"dentadvisor-quiz-service/internal/app"
)

func TestSessionStoreLifecycle(t *testing.T) {
	store := NewSessionStore()

	session := app.NewSession("a1", sampleQuiz(), false, nil)
	store.Put(session)

	got, ok := store.Get("a1")
	if !ok || got.ID() != "a1" {
		t.Fatalf("expected stored attempt, got ok=%v", ok)
	}

	store.Delete("a1")
	if _, ok := store.Get("a1"); ok {
		t.Fatalf("expected attempt removed")
	}
}

func TestSessionStoreGetMissing(t *testing.T) {
	store := NewSessionStore()
	if _, ok := store.Get("ghost"); ok {
		t.Fatalf("expected miss for unknown attempt")
	}
}
