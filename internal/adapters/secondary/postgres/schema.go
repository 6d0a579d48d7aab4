package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EnsureSchema creates the gallery tables when they do not exist yet.
// Statements are idempotent so startup is safe against an already
// provisioned database.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS artifact (
			id BIGSERIAL PRIMARY KEY,
			title TEXT NOT NULL,
			artist TEXT NOT NULL DEFAULT '',
			culture TEXT NOT NULL DEFAULT '',
			period TEXT NOT NULL DEFAULT '',
			medium TEXT NOT NULL DEFAULT '',
			museum TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			metadata TEXT NOT NULL DEFAULT '',
			image_path TEXT NOT NULL DEFAULT '',
			uploaded_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			external_object_id BIGINT UNIQUE,
			object_number TEXT NOT NULL DEFAULT '',
			classification TEXT NOT NULL DEFAULT '',
			dated TEXT NOT NULL DEFAULT '',
			date_begin INTEGER NOT NULL DEFAULT 0,
			date_end INTEGER NOT NULL DEFAULT 0,
			century TEXT NOT NULL DEFAULT '',
			technique TEXT NOT NULL DEFAULT '',
			dimensions TEXT NOT NULL DEFAULT '',
			provenance TEXT NOT NULL DEFAULT '',
			credit_line TEXT NOT NULL DEFAULT '',
			department TEXT NOT NULL DEFAULT '',
			division TEXT NOT NULL DEFAULT '',
			copyright TEXT NOT NULL DEFAULT '',
			verification_level INTEGER NOT NULL DEFAULT 0,
			image_permission_level INTEGER NOT NULL DEFAULT 0,
			access_level INTEGER NOT NULL DEFAULT 1,
			catalog_url TEXT NOT NULL DEFAULT '',
			primary_image_url TEXT NOT NULL DEFAULT '',
			iiif_base_uri TEXT NOT NULL DEFAULT '',
			last_synced_at TIMESTAMPTZ
		)`,
		`CREATE TABLE IF NOT EXISTS interpolation (
			id BIGSERIAL PRIMARY KEY,
			model TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			image_path TEXT NOT NULL,
			uploaded_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS interpolation_source (
			interpolation_id BIGINT NOT NULL REFERENCES interpolation(id) ON DELETE CASCADE,
			artifact_id BIGINT NOT NULL REFERENCES artifact(id) ON DELETE CASCADE,
			weight DOUBLE PRECISION NOT NULL CHECK (weight >= 0),
			position SMALLINT NOT NULL DEFAULT 0,
			PRIMARY KEY (interpolation_id, artifact_id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_interpolation_source_artifact
			ON interpolation_source (artifact_id)`,
		`CREATE TABLE IF NOT EXISTS admin (
			id BIGSERIAL PRIMARY KEY,
			username TEXT UNIQUE NOT NULL,
			password_hash TEXT NOT NULL
		)`,
	}

	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
