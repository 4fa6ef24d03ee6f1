package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"kodeksa-backend/internal/domain"
)

type solutionRepository struct {
	pool *pgxpool.Pool
}

func NewSolutionRepository(pool *pgxpool.Pool) domain.SolutionRepository {
	return &solutionRepository{pool: pool}
}

const solutionColumns = `id, title, icon, description, is_active, "order", created_at, updated_at`

func (r *solutionRepository) Create(ctx context.Context, solution *domain.Solution) error {
	if solution.ID == "" {
		solution.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	solution.CreatedAt = now
	solution.UpdatedAt = now

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin solution insert: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO solutions (` + solutionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err = tx.Exec(ctx, query,
		solution.ID, solution.Title, solution.Icon, solution.Description,
		solution.IsActive, solution.Order, solution.CreatedAt, solution.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert solution: %w", err)
	}

	for i := range solution.Features {
		f := &solution.Features[i]
		if f.ID == "" {
			f.ID = uuid.NewString()
		}
		f.SolutionID = solution.ID
		f.CreatedAt = now
		f.UpdatedAt = now
		_, err = tx.Exec(ctx, `
			INSERT INTO features (id, solution_id, feature_description, is_active, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			f.ID, f.SolutionID, f.FeatureDescription, f.IsActive, f.CreatedAt, f.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert feature: %w", err)
		}
	}

	return tx.Commit(ctx)
}

func (r *solutionRepository) GetByID(ctx context.Context, id string) (*domain.Solution, error) {
	query := `SELECT ` + solutionColumns + ` FROM solutions WHERE id = $1`

	var s domain.Solution
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.Title, &s.Icon, &s.Description, &s.IsActive, &s.Order,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get solution: %w", err)
	}
	return &s, nil
}

func (r *solutionRepository) Fetch(ctx context.Context, filter domain.SolutionFilter) ([]domain.Solution, int64, error) {
	where := ` WHERE 1=1`
	args := []interface{}{}
	argPos := 1

	if filter.IsActive != nil {
		where += fmt.Sprintf(" AND is_active = $%d", argPos)
		args = append(args, *filter.IsActive)
		argPos++
	}

	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM solutions`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count solutions: %w", err)
	}

	query := `SELECT ` + solutionColumns + ` FROM solutions` + where +
		fmt.Sprintf(` ORDER BY "order" ASC, created_at ASC LIMIT $%d OFFSET $%d`, argPos, argPos+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("query solutions: %w", err)
	}
	defer rows.Close()

	solutions := []domain.Solution{}
	for rows.Next() {
		var s domain.Solution
		err := rows.Scan(
			&s.ID, &s.Title, &s.Icon, &s.Description, &s.IsActive, &s.Order,
			&s.CreatedAt, &s.UpdatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("scan solution: %w", err)
		}
		solutions = append(solutions, s)
	}
	return solutions, total, rows.Err()
}

func (r *solutionRepository) Update(ctx context.Context, solution *domain.Solution) error {
	solution.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE solutions
		SET title = $2, icon = $3, description = $4, is_active = $5, "order" = $6, updated_at = $7
		WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query,
		solution.ID, solution.Title, solution.Icon, solution.Description,
		solution.IsActive, solution.Order, solution.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update solution: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes the solution and its features in one transaction.
func (r *solutionRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin solution delete: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM features WHERE solution_id = $1`, id); err != nil {
		return fmt.Errorf("delete solution features: %w", err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM solutions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete solution: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return tx.Commit(ctx)
}

func (r *solutionRepository) CreateFeature(ctx context.Context, feature *domain.Feature) error {
	if feature.ID == "" {
		feature.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	feature.CreatedAt = now
	feature.UpdatedAt = now

	query := `
		INSERT INTO features (id, solution_id, feature_description, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.pool.Exec(ctx, query,
		feature.ID, feature.SolutionID, feature.FeatureDescription,
		feature.IsActive, feature.CreatedAt, feature.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert feature: %w", err)
	}
	return nil
}

func (r *solutionRepository) GetFeature(ctx context.Context, id string) (*domain.Feature, error) {
	query := `
		SELECT id, solution_id, feature_description, is_active, created_at, updated_at
		FROM features WHERE id = $1`

	var f domain.Feature
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&f.ID, &f.SolutionID, &f.FeatureDescription, &f.IsActive, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get feature: %w", err)
	}
	return &f, nil
}

func (r *solutionRepository) FetchFeatures(ctx context.Context, solutionID string) ([]domain.Feature, error) {
	query := `
		SELECT id, solution_id, feature_description, is_active, created_at, updated_at
		FROM features
		WHERE solution_id = $1
		ORDER BY created_at ASC`

	rows, err := r.pool.Query(ctx, query, solutionID)
	if err != nil {
		return nil, fmt.Errorf("query features: %w", err)
	}
	defer rows.Close()

	features := []domain.Feature{}
	for rows.Next() {
		var f domain.Feature
		if err := rows.Scan(&f.ID, &f.SolutionID, &f.FeatureDescription, &f.IsActive, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan feature: %w", err)
		}
		features = append(features, f)
	}
	return features, rows.Err()
}

func (r *solutionRepository) UpdateFeature(ctx context.Context, feature *domain.Feature) error {
	feature.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE features
		SET feature_description = $2, is_active = $3, updated_at = $4
		WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query,
		feature.ID, feature.FeatureDescription, feature.IsActive, feature.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update feature: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *solutionRepository) DeleteFeature(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM features WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete feature: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
