package leads

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"dentadvisor-quiz-service/internal/domain"
)

func TestHTTPForwarderSubmit(t *testing.T) {
	var got domain.Lead
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("expected json content type, got %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode lead: %v", err)
		}
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	f := NewHTTPForwarder(srv.URL, nil)
	lead := domain.Lead{
		Name:     "Jordan Smith",
		Phone:    "555-0134",
		Email:    "jordan@example.com",
		ZIP:      "80301",
		QuizSlug: "hail-damage-assessment",
	}
	if err := f.Submit(context.Background(), lead); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if got.Email != lead.Email || got.QuizSlug != lead.QuizSlug {
		t.Fatalf("endpoint received %+v, want %+v", got, lead)
	}
}

func TestHTTPForwarderSubmitNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	f := NewHTTPForwarder(srv.URL, nil)
	if err := f.Submit(context.Background(), domain.Lead{Name: "x"}); err == nil {
		t.Fatal("expected error for 502 response")
	}
}

type sinkFunc func(ctx context.Context, lead domain.Lead) error

func (fn sinkFunc) Submit(ctx context.Context, lead domain.Lead) error { return fn(ctx, lead) }

func TestMultiAttemptsAllSinks(t *testing.T) {
	var first, second bool
	m := Multi(
		sinkFunc(func(context.Context, domain.Lead) error {
			first = true
			return errors.New("boom")
		}),
		sinkFunc(func(context.Context, domain.Lead) error {
			second = true
			return nil
		}),
	)
	err := m.Submit(context.Background(), domain.Lead{})
	if err == nil {
		t.Fatal("expected joined error from failing sink")
	}
	if !first || !second {
		t.Fatalf("expected both sinks attempted, got first=%v second=%v", first, second)
	}
}
