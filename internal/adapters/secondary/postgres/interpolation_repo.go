package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"relic-gallery-service/internal/core/domain"
	ports "relic-gallery-service/internal/core/ports/output"
)

type interpolationRepo struct {
	pool *pgxpool.Pool
}

func NewInterpolationRepository(pool *pgxpool.Pool) ports.InterpolationRepository {
	return &interpolationRepo{pool: pool}
}

func (r *interpolationRepo) Create(ctx context.Context, interp *domain.Interpolation) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin create interpolation: %w", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO interpolation (model, description, image_path, uploaded_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, interp.Model, interp.Description, interp.ImagePath, interp.UploadedAt).Scan(&interp.ID)
	if err != nil {
		return fmt.Errorf("create interpolation: %w", err)
	}

	if err := insertSources(ctx, tx, interp.ID, interp.Sources); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit create interpolation: %w", err)
	}
	return nil
}

func (r *interpolationRepo) GetByID(ctx context.Context, id int64) (*domain.Interpolation, error) {
	interp := &domain.Interpolation{}
	err := r.pool.QueryRow(ctx, `
		SELECT id, model, description, image_path, uploaded_at
		FROM interpolation WHERE id = $1
	`, id).Scan(&interp.ID, &interp.Model, &interp.Description, &interp.ImagePath, &interp.UploadedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrInterpolationNotFound
		}
		return nil, fmt.Errorf("get interpolation by id: %w", err)
	}

	if err := r.attachSources(ctx, []*domain.Interpolation{interp}); err != nil {
		return nil, err
	}
	return interp, nil
}

func (r *interpolationRepo) List(ctx context.Context, filter ports.InterpolationListFilter) ([]*domain.Interpolation, int, error) {
	conditions := []string{}
	args := []interface{}{}
	argPos := 1

	if filter.Model != "" {
		conditions = append(conditions, fmt.Sprintf("i.model = $%d", argPos))
		args = append(args, filter.Model)
		argPos++
	}
	if filter.SourceCount > 0 {
		conditions = append(conditions, fmt.Sprintf(
			"(SELECT COUNT(*) FROM interpolation_source s WHERE s.interpolation_id = i.id) = $%d", argPos))
		args = append(args, filter.SourceCount)
		argPos++
	}

	whereClause := "1=1"
	if len(conditions) > 0 {
		whereClause = strings.Join(conditions, " AND ")
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM interpolation i WHERE %s", whereClause)
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count interpolations: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT i.id, i.model, i.description, i.image_path, i.uploaded_at
		FROM interpolation i
		WHERE %s
		ORDER BY i.id DESC
	`, whereClause)
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argPos, argPos+1)
		args = append(args, filter.Limit, filter.Offset)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list interpolations: %w", err)
	}
	defer rows.Close()

	interps, err := collectInterpolations(rows)
	if err != nil {
		return nil, 0, err
	}
	if err := r.attachSources(ctx, interps); err != nil {
		return nil, 0, err
	}
	return interps, total, nil
}

func (r *interpolationRepo) ListByArtifact(ctx context.Context, artifactID int64) ([]*domain.Interpolation, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT i.id, i.model, i.description, i.image_path, i.uploaded_at
		FROM interpolation i
		JOIN interpolation_source s ON s.interpolation_id = i.id
		WHERE s.artifact_id = $1
		ORDER BY i.id DESC
	`, artifactID)
	if err != nil {
		return nil, fmt.Errorf("list interpolations by artifact: %w", err)
	}
	defer rows.Close()

	interps, err := collectInterpolations(rows)
	if err != nil {
		return nil, err
	}
	if err := r.attachSources(ctx, interps); err != nil {
		return nil, err
	}
	return interps, nil
}

func (r *interpolationRepo) Update(ctx context.Context, interp *domain.Interpolation) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin update interpolation: %w", err)
	}
	defer tx.Rollback(ctx)

	result, err := tx.Exec(ctx, `
		UPDATE interpolation SET model=$1, description=$2 WHERE id=$3
	`, interp.Model, interp.Description, interp.ID)
	if err != nil {
		return fmt.Errorf("update interpolation: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrInterpolationNotFound
	}

	if _, err := tx.Exec(ctx,
		"DELETE FROM interpolation_source WHERE interpolation_id = $1", interp.ID); err != nil {
		return fmt.Errorf("clear interpolation sources: %w", err)
	}
	if err := insertSources(ctx, tx, interp.ID, interp.Sources); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit update interpolation: %w", err)
	}
	return nil
}

func (r *interpolationRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.pool.Exec(ctx, "DELETE FROM interpolation WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete interpolation: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrInterpolationNotFound
	}
	return nil
}

func insertSources(ctx context.Context, tx pgx.Tx, interpolationID int64, sources []domain.InterpolationSource) error {
	for _, s := range sources {
		_, err := tx.Exec(ctx, `
			INSERT INTO interpolation_source (interpolation_id, artifact_id, weight, position)
			VALUES ($1, $2, $3, $4)
		`, interpolationID, s.ArtifactID, s.Weight, s.Position)
		if err != nil {
			return fmt.Errorf("insert interpolation source: %w", err)
		}
	}
	return nil
}

// attachSources loads the source links for a batch of interpolations with a
// single query, in stored position order.
func (r *interpolationRepo) attachSources(ctx context.Context, interps []*domain.Interpolation) error {
	if len(interps) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(interps))
	byID := make(map[int64]*domain.Interpolation, len(interps))
	for _, interp := range interps {
		interp.Sources = []domain.InterpolationSource{}
		ids = append(ids, interp.ID)
		byID[interp.ID] = interp
	}

	rows, err := r.pool.Query(ctx, `
		SELECT interpolation_id, artifact_id, weight, position
		FROM interpolation_source
		WHERE interpolation_id = ANY($1)
		ORDER BY interpolation_id, position
	`, ids)
	if err != nil {
		return fmt.Errorf("load interpolation sources: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var interpID int64
		var src domain.InterpolationSource
		if err := rows.Scan(&interpID, &src.ArtifactID, &src.Weight, &src.Position); err != nil {
			return fmt.Errorf("scan interpolation source: %w", err)
		}
		if interp := byID[interpID]; interp != nil {
			interp.Sources = append(interp.Sources, src)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate interpolation sources: %w", err)
	}
	return nil
}

func collectInterpolations(rows pgx.Rows) ([]*domain.Interpolation, error) {
	var interps []*domain.Interpolation
	for rows.Next() {
		interp := &domain.Interpolation{}
		err := rows.Scan(&interp.ID, &interp.Model, &interp.Description,
			&interp.ImagePath, &interp.UploadedAt)
		if err != nil {
			return nil, fmt.Errorf("scan interpolation row: %w", err)
		}
		interps = append(interps, interp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate interpolation rows: %w", err)
	}
	if interps == nil {
		interps = []*domain.Interpolation{}
	}
	return interps, nil
}
