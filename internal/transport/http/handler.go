package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"

	"dentadvisor-quiz-service/internal/app"
	"dentadvisor-quiz-service/internal/catalog"
	"dentadvisor-quiz-service/internal/content"
	"dentadvisor-quiz-service/internal/domain"
	"dentadvisor-quiz-service/internal/leads"
	"dentadvisor-quiz-service/internal/share"
)

// Handler serves the REST surface: quiz catalog, attempt lifecycle, lead
// capture, and the editorial content routes. The embed and full-page hosts
// hit the same routes and the same service, differing only in chrome.
type Handler struct {
	attempts *app.AttemptService
	catalog  *catalog.Catalog
	shares   *share.Builder
	leads    leads.Forwarder
	content  content.Provider
	log      *logrus.Logger
}

func NewHandler(attempts *app.AttemptService, cat *catalog.Catalog, shares *share.Builder, forwarder leads.Forwarder, provider content.Provider, log *logrus.Logger) *Handler {
	if log == nil {
		log = logrus.New()
	}
	return &Handler{
		attempts: attempts,
		catalog:  cat,
		shares:   shares,
		leads:    forwarder,
		content:  provider,
		log:      log,
	}
}

// Router assembles the chi mux. CORS is wide open so iframe embeds on any
// site can drive attempts.
func (h *Handler) Router() *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/healthz", h.health)

	r.Route("/api", func(r chi.Router) {
		r.Get("/quizzes", h.listQuizzes)
		r.Get("/quizzes/{slug}", h.getQuiz)
		r.Get("/quizzes/{slug}/embed", h.getEmbedSnippet)
		r.Post("/quizzes/{slug}/attempts", h.startAttempt)

		r.Get("/attempts/{id}", h.getAttempt)
		r.Post("/attempts/{id}/answers", h.submitAnswer)
		r.Post("/attempts/{id}/skip", h.skipLeadGate)
		r.Post("/attempts/{id}/retake", h.retake)
		r.Delete("/attempts/{id}", h.abandonAttempt)

		r.Post("/leads", h.submitLead)

		if h.content != nil {
			r.Get("/guides", h.listGuides)
			r.Get("/guides/{slug}", h.getGuide)
			r.Get("/guides/{slug}/articles", h.listGuideArticles)
			r.Get("/articles", h.listArticles)
			r.Get("/articles/{slug}", h.getArticle)
			r.Get("/categories", h.listCategories)
		}
	})

	return r
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type quizSummary struct {
	Slug          string `json:"slug"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	QuestionCount int    `json:"questionCount"`
	PageURL       string `json:"pageUrl"`
	EmbedURL      string `json:"embedUrl"`
}

func (h *Handler) listQuizzes(w http.ResponseWriter, _ *http.Request) {
	all := h.catalog.All()
	out := make([]quizSummary, 0, len(all))
	for _, quiz := range all {
		out = append(out, quizSummary{
			Slug:          quiz.Slug,
			Title:         quiz.Title,
			Description:   quiz.Description,
			QuestionCount: len(quiz.Questions),
			PageURL:       h.shares.PageURL(quiz.Slug),
			EmbedURL:      h.shares.EmbedURL(quiz.Slug),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"quizzes": out})
}

// hostChrome tells the host what surrounding UI to render. The quiz
// definition itself never varies by host.
type hostChrome struct {
	ShowHeader      bool   `json:"showHeader"`
	ShowShareBar    bool   `json:"showShareBar"`
	ShowSources     bool   `json:"showSources"`
	Attribution     bool   `json:"attribution"`
	AttributionText string `json:"attributionText,omitempty"`
	AttributionURL  string `json:"attributionUrl,omitempty"`
}

type questionPayload struct {
	ID       string           `json:"id"`
	Text     string           `json:"text"`
	HelpText string           `json:"helpText,omitempty"`
	Options  []app.OptionView `json:"options"`
}

type quizPayload struct {
	Slug        string            `json:"slug"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Questions   []questionPayload `json:"questions"`
	Chrome      hostChrome        `json:"chrome"`
	Share       share.Links       `json:"share"`
}

func (h *Handler) getQuiz(w http.ResponseWriter, r *http.Request) {
	quiz, err := h.catalog.Lookup(chi.URLParam(r, "slug"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	questions := make([]questionPayload, 0, len(quiz.Questions))
	for _, q := range quiz.Questions {
		options := make([]app.OptionView, 0, len(q.Options))
		for _, opt := range q.Options {
			options = append(options, app.OptionView{Label: opt.Label, Value: opt.Value})
		}
		questions = append(questions, questionPayload{ID: q.ID, Text: q.Text, HelpText: q.HelpText, Options: options})
	}

	embed := r.URL.Query().Get("host") == "embed"
	chrome := hostChrome{
		ShowHeader:   !embed,
		ShowShareBar: !embed,
		ShowSources:  true,
		Attribution:  embed,
	}
	if embed {
		chrome.AttributionText = "Powered by DentAdvisor"
		chrome.AttributionURL = h.shares.PageURL(quiz.Slug)
	}

	writeJSON(w, http.StatusOK, quizPayload{
		Slug:        quiz.Slug,
		Title:       quiz.Title,
		Description: quiz.Description,
		Questions:   questions,
		Chrome:      chrome,
		Share:       h.shares.QuizLinks(quiz),
	})
}

func (h *Handler) getEmbedSnippet(w http.ResponseWriter, r *http.Request) {
	quiz, err := h.catalog.Lookup(chi.URLParam(r, "slug"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	width := r.URL.Query().Get("width")
	height, _ := strconv.Atoi(r.URL.Query().Get("height"))
	writeJSON(w, http.StatusOK, map[string]string{
		"embedUrl": h.shares.EmbedURL(quiz.Slug),
		"snippet":  h.shares.EmbedSnippet(quiz, width, height),
	})
}

func (h *Handler) startAttempt(w http.ResponseWriter, r *http.Request) {
	view, err := h.attempts.Start(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, view)
}

func (h *Handler) getAttempt(w http.ResponseWriter, r *http.Request) {
	view, err := h.attempts.Current(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) submitAnswer(w http.ResponseWriter, r *http.Request) {
	var sub domain.AnswerSubmission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid answer payload"})
		return
	}
	view, err := h.attempts.SubmitAnswer(r.Context(), chi.URLParam(r, "id"), sub)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) skipLeadGate(w http.ResponseWriter, r *http.Request) {
	view, err := h.attempts.SkipLeadGate(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) retake(w http.ResponseWriter, r *http.Request) {
	view, err := h.attempts.Retake(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) abandonAttempt(w http.ResponseWriter, r *http.Request) {
	h.attempts.Abandon(r.Context(), chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

// submitLead captures a contact form. Forwarding failures are reported as
// submitted=false rather than an error status; the caller already has their
// results and must not be walled off by a broken intake endpoint.
func (h *Handler) submitLead(w http.ResponseWriter, r *http.Request) {
	var lead domain.Lead
	if err := json.NewDecoder(r.Body).Decode(&lead); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid lead payload"})
		return
	}
	if lead.Name == "" || lead.Phone == "" || lead.Email == "" || lead.ZIP == "" {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "name, phone, email and zip are required"})
		return
	}
	if h.leads == nil {
		writeJSON(w, http.StatusOK, map[string]bool{"submitted": false})
		return
	}
	if err := h.leads.Submit(r.Context(), lead); err != nil {
		h.log.WithError(err).WithField("quiz", lead.QuizSlug).Warn("lead forwarding failed")
		writeJSON(w, http.StatusOK, map[string]bool{"submitted": false})
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"submitted": true})
}

func (h *Handler) listGuides(w http.ResponseWriter, r *http.Request) {
	guides, err := h.content.GetPublishedGuides(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"guides": guides})
}

func (h *Handler) getGuide(w http.ResponseWriter, r *http.Request) {
	guide, err := h.content.GetGuideBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, guide)
}

func (h *Handler) listGuideArticles(w http.ResponseWriter, r *http.Request) {
	guide, err := h.content.GetGuideBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	articles, err := h.content.GetArticlesByGuide(r.Context(), guide.ID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"articles": articles})
}

func (h *Handler) listArticles(w http.ResponseWriter, r *http.Request) {
	articles, err := h.content.GetPublishedArticles(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"articles": articles})
}

func (h *Handler) getArticle(w http.ResponseWriter, r *http.Request) {
	article, err := h.content.GetArticleBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, article)
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.content.GetCategories(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"categories": categories})
}

type errorBody struct {
	Error string `json:"error"`
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrQuizNotFound),
		errors.Is(err, domain.ErrAttemptNotFound),
		errors.Is(err, content.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorBody{Error: err.Error()})
	case errors.Is(err, domain.ErrQuestionMismatch),
		errors.Is(err, domain.ErrOptionNotFound),
		errors.Is(err, domain.ErrNotAnswering),
		errors.Is(err, domain.ErrNotAtLeadGate),
		errors.Is(err, domain.ErrNotFinished):
		writeJSON(w, http.StatusConflict, errorBody{Error: err.Error()})
	default:
		h.log.WithError(err).Error("request failed")
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "internal error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
