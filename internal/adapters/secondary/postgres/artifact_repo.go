package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"relic-gallery-service/internal/core/domain"
	ports "relic-gallery-service/internal/core/ports/output"
)

const artifactColumns = `id, title, artist, culture, period, medium, museum, description,
	metadata, image_path, uploaded_at, external_object_id, object_number, classification,
	dated, date_begin, date_end, century, technique, dimensions, provenance, credit_line,
	department, division, copyright, verification_level, image_permission_level,
	access_level, catalog_url, primary_image_url, iiif_base_uri, last_synced_at`

type artifactRepo struct {
	pool *pgxpool.Pool
}

func NewArtifactRepository(pool *pgxpool.Pool) ports.ArtifactRepository {
	return &artifactRepo{pool: pool}
}

func (r *artifactRepo) Create(ctx context.Context, a *domain.Artifact) error {
	query := `
		INSERT INTO artifact
			(title, artist, culture, period, medium, museum, description, metadata,
			 image_path, uploaded_at, external_object_id, object_number, classification,
			 dated, date_begin, date_end, century, technique, dimensions, provenance,
			 credit_line, department, division, copyright, verification_level,
			 image_permission_level, access_level, catalog_url, primary_image_url,
			 iiif_base_uri, last_synced_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,
			$21,$22,$23,$24,$25,$26,$27,$28,$29,$30,$31)
		RETURNING id
	`
	err := r.pool.QueryRow(ctx, query,
		a.Title, a.Artist, a.Culture, a.Period, a.Medium, a.Museum, a.Description,
		a.Metadata, a.ImagePath, a.UploadedAt, a.ExternalObjectID, a.ObjectNumber,
		a.Classification, a.Dated, a.DateBegin, a.DateEnd, a.Century, a.Technique,
		a.Dimensions, a.Provenance, a.CreditLine, a.Department, a.Division, a.Copyright,
		a.VerificationLevel, a.ImagePermissionLevel, a.AccessLevel, a.CatalogURL,
		a.PrimaryImageURL, a.IIIFBaseURI, a.LastSyncedAt,
	).Scan(&a.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrArtifactAlreadyImported
		}
		return fmt.Errorf("create artifact: %w", err)
	}
	return nil
}

func (r *artifactRepo) GetByID(ctx context.Context, id int64) (*domain.Artifact, error) {
	query := fmt.Sprintf("SELECT %s FROM artifact WHERE id = $1", artifactColumns)
	a, err := scanArtifact(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrArtifactNotFound
		}
		return nil, fmt.Errorf("get artifact by id: %w", err)
	}
	return a, nil
}

func (r *artifactRepo) GetByExternalObjectID(ctx context.Context, externalID int64) (*domain.Artifact, error) {
	query := fmt.Sprintf("SELECT %s FROM artifact WHERE external_object_id = $1", artifactColumns)
	a, err := scanArtifact(r.pool.QueryRow(ctx, query, externalID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrArtifactNotFound
		}
		return nil, fmt.Errorf("get artifact by external object id: %w", err)
	}
	return a, nil
}

func (r *artifactRepo) ListByIDs(ctx context.Context, ids []int64) ([]*domain.Artifact, error) {
	if len(ids) == 0 {
		return []*domain.Artifact{}, nil
	}

	query := fmt.Sprintf("SELECT %s FROM artifact WHERE id = ANY($1) ORDER BY id", artifactColumns)
	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("list artifacts by ids: %w", err)
	}
	defer rows.Close()

	return collectArtifacts(rows)
}

func (r *artifactRepo) List(ctx context.Context, filter ports.ArtifactListFilter) ([]*domain.Artifact, int, error) {
	conditions := []string{}
	args := []interface{}{}
	argPos := 1

	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(title ILIKE $%d OR artist ILIKE $%d OR culture ILIKE $%d)", argPos, argPos, argPos))
		args = append(args, "%"+filter.Search+"%")
		argPos++
	}

	whereClause := "1=1"
	if len(conditions) > 0 {
		whereClause = strings.Join(conditions, " AND ")
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM artifact WHERE %s", whereClause)
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count artifacts: %w", err)
	}

	orderBy := "id DESC"
	switch filter.SortBy {
	case "title", "artist", "uploaded_at":
		dir := "DESC"
		if filter.Order == "asc" {
			dir = "ASC"
		}
		orderBy = fmt.Sprintf("%s %s", filter.SortBy, dir)
	}

	query := fmt.Sprintf("SELECT %s FROM artifact WHERE %s ORDER BY %s",
		artifactColumns, whereClause, orderBy)
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argPos, argPos+1)
		args = append(args, filter.Limit, filter.Offset)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list artifacts: %w", err)
	}
	defer rows.Close()

	artifacts, err := collectArtifacts(rows)
	if err != nil {
		return nil, 0, err
	}
	return artifacts, total, nil
}

func (r *artifactRepo) Update(ctx context.Context, a *domain.Artifact) error {
	query := `
		UPDATE artifact
		SET title=$1, artist=$2, culture=$3, period=$4, medium=$5, museum=$6,
			description=$7, metadata=$8
		WHERE id=$9
	`
	result, err := r.pool.Exec(ctx, query,
		a.Title, a.Artist, a.Culture, a.Period, a.Medium, a.Museum,
		a.Description, a.Metadata, a.ID,
	)
	if err != nil {
		return fmt.Errorf("update artifact: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrArtifactNotFound
	}
	return nil
}

// Delete removes the artifact inside one transaction. Source links cascade
// via FK; interpolations that end up with fewer than two sources are deleted
// as well, and their image paths are returned for file cleanup.
func (r *artifactRepo) Delete(ctx context.Context, id int64) ([]string, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin delete artifact: %w", err)
	}
	defer tx.Rollback(ctx)

	rows, err := tx.Query(ctx,
		"SELECT interpolation_id FROM interpolation_source WHERE artifact_id = $1", id)
	if err != nil {
		return nil, fmt.Errorf("list dependent interpolations: %w", err)
	}
	var dependents []int64
	for rows.Next() {
		var interpID int64
		if err := rows.Scan(&interpID); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan dependent interpolation: %w", err)
		}
		dependents = append(dependents, interpID)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate dependent interpolations: %w", err)
	}

	result, err := tx.Exec(ctx, "DELETE FROM artifact WHERE id = $1", id)
	if err != nil {
		return nil, fmt.Errorf("delete artifact: %w", err)
	}
	if result.RowsAffected() == 0 {
		return nil, domain.ErrArtifactNotFound
	}

	var droppedImages []string
	if len(dependents) > 0 {
		rows, err = tx.Query(ctx, `
			DELETE FROM interpolation
			WHERE id = ANY($1)
				AND (SELECT COUNT(*) FROM interpolation_source s WHERE s.interpolation_id = interpolation.id) < 2
			RETURNING image_path
		`, dependents)
		if err != nil {
			return nil, fmt.Errorf("delete orphaned interpolations: %w", err)
		}
		for rows.Next() {
			var path string
			if err := rows.Scan(&path); err != nil {
				rows.Close()
				return nil, fmt.Errorf("scan orphaned interpolation: %w", err)
			}
			droppedImages = append(droppedImages, path)
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("iterate orphaned interpolations: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit delete artifact: %w", err)
	}
	return droppedImages, nil
}

func scanArtifact(row pgx.Row) (*domain.Artifact, error) {
	a := &domain.Artifact{}
	err := row.Scan(
		&a.ID, &a.Title, &a.Artist, &a.Culture, &a.Period, &a.Medium, &a.Museum,
		&a.Description, &a.Metadata, &a.ImagePath, &a.UploadedAt, &a.ExternalObjectID,
		&a.ObjectNumber, &a.Classification, &a.Dated, &a.DateBegin, &a.DateEnd,
		&a.Century, &a.Technique, &a.Dimensions, &a.Provenance, &a.CreditLine,
		&a.Department, &a.Division, &a.Copyright, &a.VerificationLevel,
		&a.ImagePermissionLevel, &a.AccessLevel, &a.CatalogURL, &a.PrimaryImageURL,
		&a.IIIFBaseURI, &a.LastSyncedAt,
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func collectArtifacts(rows pgx.Rows) ([]*domain.Artifact, error) {
	var artifacts []*domain.Artifact
	for rows.Next() {
		a, err := scanArtifact(rows)
		if err != nil {
			return nil, fmt.Errorf("scan artifact row: %w", err)
		}
		artifacts = append(artifacts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate artifact rows: %w", err)
	}
	if artifacts == nil {
		artifacts = []*domain.Artifact{}
	}
	return artifacts, nil
}
