package postgres

import (
	"context"
	"errors"
	"fmt"

	"dentadvisor-quiz-service/internal/content"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

// ContentStore implements content.Provider over the guides, articles
// and categories tables.
type ContentStore struct {
	pool *pgxpool.Pool
}

func NewContentStore(pool *pgxpool.Pool) *ContentStore {
	return &ContentStore{pool: pool}
}

const guideColumns = `id, title, slug, description, summary, content, author, published_at`

func (s *ContentStore) GetPublishedGuides(ctx context.Context) ([]content.Guide, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+guideColumns+` FROM guides
		 WHERE published_at IS NOT NULL AND published_at <= now()
		 ORDER BY sort_order, published_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list guides: %w", err)
	}
	defer rows.Close()

	var guides []content.Guide
	for rows.Next() {
		g, err := scanGuide(rows)
		if err != nil {
			return nil, err
		}
		guides = append(guides, g)
	}
	return guides, rows.Err()
}

func (s *ContentStore) GetGuideBySlug(ctx context.Context, slug string) (content.Guide, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+guideColumns+` FROM guides WHERE slug=$1`, slug)
	g, err := scanGuide(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return content.Guide{}, content.ErrNotFound
	}
	if err != nil {
		return content.Guide{}, err
	}
	g.Categories, err = s.guideCategories(ctx, g.ID)
	return g, err
}

func (s *ContentStore) guideCategories(ctx context.Context, guideID string) ([]content.Category, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT c.id, c.title, c.slug, c.description
		 FROM categories c
		 JOIN guide_categories gc ON gc.category_id = c.id
		 WHERE gc.guide_id = $1
		 ORDER BY c.title`, guideID)
	if err != nil {
		return nil, fmt.Errorf("guide categories: %w", err)
	}
	defer rows.Close()

	var cats []content.Category
	for rows.Next() {
		var c content.Category
		if err := rows.Scan(&c.ID, &c.Title, &c.Slug, &c.Description); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		cats = append(cats, c)
	}
	return cats, rows.Err()
}

const articleColumns = `id, title, slug, description, content, COALESCE(guide_id, ''), author, published_at`

func (s *ContentStore) GetPublishedArticles(ctx context.Context) ([]content.Article, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+articleColumns+` FROM articles
		 WHERE published_at IS NOT NULL AND published_at <= now()
		 ORDER BY published_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	defer rows.Close()
	return collectArticles(rows)
}

func (s *ContentStore) GetArticleBySlug(ctx context.Context, slug string) (content.Article, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+articleColumns+` FROM articles WHERE slug=$1`, slug)
	a, err := scanArticle(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return content.Article{}, content.ErrNotFound
	}
	return a, err
}

func (s *ContentStore) GetArticlesByGuide(ctx context.Context, guideID string) ([]content.Article, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+articleColumns+` FROM articles
		 WHERE guide_id = $1 AND published_at IS NOT NULL AND published_at <= now()
		 ORDER BY published_at DESC`, guideID)
	if err != nil {
		return nil, fmt.Errorf("articles by guide: %w", err)
	}
	defer rows.Close()
	return collectArticles(rows)
}

func (s *ContentStore) GetCategories(ctx context.Context) ([]content.Category, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, title, slug, description FROM categories ORDER BY title`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var cats []content.Category
	for rows.Next() {
		var c content.Category
		if err := rows.Scan(&c.ID, &c.Title, &c.Slug, &c.Description); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		cats = append(cats, c)
	}
	return cats, rows.Err()
}

func scanGuide(row pgx.Row) (content.Guide, error) {
	var g content.Guide
	var body []byte
	err := row.Scan(&g.ID, &g.Title, &g.Slug, &g.Description, &g.Summary, &body, &g.Author, &g.PublishedAt)
	if err != nil {
		return content.Guide{}, err
	}
	g.Body = body
	return g, nil
}

func scanArticle(row pgx.Row) (content.Article, error) {
	var a content.Article
	var body []byte
	err := row.Scan(&a.ID, &a.Title, &a.Slug, &a.Description, &body, &a.GuideID, &a.Author, &a.PublishedAt)
	if err != nil {
		return content.Article{}, err
	}
	a.Body = body
	return a, nil
}

func collectArticles(rows pgx.Rows) ([]content.Article, error) {
	var articles []content.Article
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		articles = append(articles, a)
	}
	return articles, rows.Err()
}
