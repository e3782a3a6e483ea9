// Package catalog holds the canonical quiz registry: one immutable
// definition per slug, constructed once and shared by every host. The
// full-page and embed routes both resolve through the same instance, so the
// same slug can never yield different questions or scoring.
package catalog

import (
	"context"
	"fmt"

	"dentadvisor-quiz-service/internal/app"
	"dentadvisor-quiz-service/internal/domain"
)

// Catalog is a keyed registry of quiz definitions.
type Catalog struct {
	quizzes map[string]domain.Quiz
	order   []string
}

// New builds the registry with every shipped quiz.
func New() *Catalog {
	c := &Catalog{quizzes: make(map[string]domain.Quiz)}
	for _, quiz := range []domain.Quiz{
		canMyDentBeFixed(),
		hailDamageAssessment(),
		classicCarCompatibility(),
		diyOrPro(),
		pdrVsBodyShop(),
		insuranceClaimNavigator(),
		technicianQualified(),
		dentValueImpact(),
		leaseReturnCalculator(),
		fleetROICalculator(),
	} {
		c.register(quiz)
	}
	return c
}

func (c *Catalog) register(quiz domain.Quiz) {
	if _, dup := c.quizzes[quiz.Slug]; dup {
		panic(fmt.Sprintf("catalog: duplicate quiz slug %q", quiz.Slug))
	}
	c.quizzes[quiz.Slug] = quiz
	c.order = append(c.order, quiz.Slug)
}

// Lookup resolves a slug. Unknown slugs are a user-visible not-found
// condition, distinct from a malformed definition.
func (c *Catalog) Lookup(slug string) (domain.Quiz, error) {
	quiz, ok := c.quizzes[slug]
	if !ok {
		return domain.Quiz{}, domain.ErrQuizNotFound
	}
	return quiz, nil
}

// Slugs lists registered quizzes in declaration order.
func (c *Catalog) Slugs() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// All returns every definition in declaration order.
func (c *Catalog) All() []domain.Quiz {
	out := make([]domain.Quiz, 0, len(c.order))
	for _, slug := range c.order {
		out = append(out, c.quizzes[slug])
	}
	return out
}

// LoadQuiz lets the catalog stand in for a backing-store loader behind the
// caching repositories.
func (c *Catalog) LoadQuiz(_ context.Context, slug string) (domain.Quiz, error) {
	return c.Lookup(slug)
}

// Validate checks every shipped definition and returns human-readable
// warnings: questions without options or quizzes without tiers are hard
// errors (returned via err), tier ranges that leave achievable scores
// uncovered are warnings — ResolveTier falls back to the first tier at
// runtime, but content authors should close the gap.
func (c *Catalog) Validate() (warnings []string, err error) {
	for _, slug := range c.order {
		quiz := c.quizzes[slug]
		if len(quiz.Questions) == 0 {
			return warnings, fmt.Errorf("quiz %q has no questions", slug)
		}
		if len(quiz.Results) == 0 {
			return warnings, fmt.Errorf("quiz %q has no result tiers", slug)
		}
		for _, q := range quiz.Questions {
			if len(q.Options) == 0 {
				return warnings, fmt.Errorf("quiz %q question %q has no options", slug, q.ID)
			}
			seen := make(map[string]bool, len(q.Options))
			for _, opt := range q.Options {
				if seen[opt.Value] {
					return warnings, fmt.Errorf("quiz %q question %q repeats option value %q", slug, q.ID, opt.Value)
				}
				seen[opt.Value] = true
			}
		}
		for _, gap := range app.ValidateCoverage(quiz) {
			warnings = append(warnings, fmt.Sprintf("quiz %q: scores %d-%d match no result tier (first tier will be used)", slug, gap.From, gap.To))
		}
	}
	return warnings, nil
}
