package migrations

import (
	"context"
	_ "embed"

	"github.com/uptrace/bun"
)

//go:embed 0003_create_content.sql
var createContentSQL string

func init() {
	Migrations.MustRegister(
		func(ctx context.Context, db *bun.DB) error {
			_, err := db.Exec(createContentSQL)
			return err
		},
		func(ctx context.Context, db *bun.DB) error {
			_, err := db.Exec(`DROP TABLE IF EXISTS article_categories; DROP TABLE IF EXISTS articles; DROP TABLE IF EXISTS guide_categories; DROP TABLE IF EXISTS guides; DROP TABLE IF EXISTS categories`)
			return err
		},
	)
}
