package postgres

import (
	"context"
	"fmt"

	"dentadvisor-quiz-service/internal/domain"
	"github.com/jackc/pgx/v4/pgxpool"
)

// LeadStore persists captured leads alongside any external forwarding.
type LeadStore struct {
	pool *pgxpool.Pool
}

func NewLeadStore(pool *pgxpool.Pool) *LeadStore {
	return &LeadStore{pool: pool}
}

func (s *LeadStore) Submit(ctx context.Context, lead domain.Lead) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO leads (name, phone, email, zip, damage, description, quiz_slug)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		lead.Name, lead.Phone, lead.Email, lead.ZIP, lead.DamageType, lead.Description, lead.QuizSlug,
	)
	if err != nil {
		return fmt.Errorf("store lead: %w", err)
	}
	return nil
}
