package domain

// Severity drives the color and iconography of a result tier.
type Severity string

const (
	SeverityPositive Severity = "positive"
	SeverityCaution  Severity = "caution"
	SeverityNegative Severity = "negative"
)

// Option is one selectable answer. Value is opaque and unique within its
// question only; Points defaults to 0 when absent from the source data.
type Option struct {
	Label  string `json:"label"`
	Value  string `json:"value"`
	Points int    `json:"points,omitempty"`
}

// Question is a single step of a quiz. Options keep their declared order.
type Question struct {
	ID       string   `json:"id"`
	Text     string   `json:"text"`
	HelpText string   `json:"helpText,omitempty"`
	Options  []Option `json:"options"`
}

// ResultTier maps an inclusive score range to an outcome.
type ResultTier struct {
	MinScore       int      `json:"minScore"`
	MaxScore       int      `json:"maxScore"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Recommendation string   `json:"recommendation"`
	Severity       Severity `json:"severity"`
}

// Citation backs a quiz's recommendations with a source.
type Citation struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

// CallToAction is the conversion link shown alongside results.
type CallToAction struct {
	Text string `json:"text"`
	Link string `json:"link"`
}

// Quiz is an immutable quiz definition. Question and tier order is
// significant; both hosts (full page and embed) consume the same value.
type Quiz struct {
	Slug        string       `json:"slug"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Questions   []Question   `json:"questions"`
	Results     []ResultTier `json:"results"`
	Sources     []Citation   `json:"sources"`
	CTA         CallToAction `json:"cta"`
}

// AnswerSubmission is the answer signal from clients: which option of
// which question was chosen.
type AnswerSubmission struct {
	QuestionID  string `json:"questionId"`
	OptionValue string `json:"optionValue"`
}

// Lead is the contact payload captured by the lead gate or the results
// form. Field values are forwarded opaquely; validation is the submission
// endpoint's concern.
type Lead struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	ZIP         string `json:"zip"`
	DamageType  string `json:"damage,omitempty"`
	Description string `json:"description,omitempty"`
	QuizSlug    string `json:"quizSlug,omitempty"`
}
