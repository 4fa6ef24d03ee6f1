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

type workExperienceRepository struct {
	pool *pgxpool.Pool
}

func NewWorkExperienceRepository(pool *pgxpool.Pool) domain.WorkExperienceRepository {
	return &workExperienceRepository{pool: pool}
}

const workExperienceColumns = `id, user_id, company_name, role, from_year, until_year, role_description, created_at, updated_at`

func (r *workExperienceRepository) Create(ctx context.Context, exp *domain.WorkExperience) error {
	if exp.ID == "" {
		exp.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	exp.CreatedAt = now
	exp.UpdatedAt = now

	query := `
		INSERT INTO work_experiences (` + workExperienceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.pool.Exec(ctx, query,
		exp.ID, exp.UserID, exp.CompanyName, exp.Role,
		exp.FromYear, exp.UntilYear, exp.RoleDescription,
		exp.CreatedAt, exp.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert work experience: %w", err)
	}
	return nil
}

func (r *workExperienceRepository) GetByID(ctx context.Context, id string) (*domain.WorkExperience, error) {
	query := `SELECT ` + workExperienceColumns + ` FROM work_experiences WHERE id = $1`

	var exp domain.WorkExperience
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&exp.ID, &exp.UserID, &exp.CompanyName, &exp.Role,
		&exp.FromYear, &exp.UntilYear, &exp.RoleDescription,
		&exp.CreatedAt, &exp.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get work experience: %w", err)
	}
	return &exp, nil
}

func (r *workExperienceRepository) Fetch(ctx context.Context) ([]domain.WorkExperience, error) {
	query := `SELECT ` + workExperienceColumns + ` FROM work_experiences
		ORDER BY from_year DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query work experiences: %w", err)
	}
	defer rows.Close()
	return scanWorkExperiences(rows)
}

func (r *workExperienceRepository) FetchByUser(ctx context.Context, userID string) ([]domain.WorkExperience, error) {
	query := `SELECT ` + workExperienceColumns + ` FROM work_experiences
		WHERE user_id = $1
		ORDER BY from_year DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("query work experiences: %w", err)
	}
	defer rows.Close()
	return scanWorkExperiences(rows)
}

func scanWorkExperiences(rows pgx.Rows) ([]domain.WorkExperience, error) {
	exps := []domain.WorkExperience{}
	for rows.Next() {
		var exp domain.WorkExperience
		err := rows.Scan(
			&exp.ID, &exp.UserID, &exp.CompanyName, &exp.Role,
			&exp.FromYear, &exp.UntilYear, &exp.RoleDescription,
			&exp.CreatedAt, &exp.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan work experience: %w", err)
		}
		exps = append(exps, exp)
	}
	return exps, rows.Err()
}

func (r *workExperienceRepository) Update(ctx context.Context, exp *domain.WorkExperience) error {
	exp.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE work_experiences
		SET company_name = $2, role = $3, from_year = $4, until_year = $5,
		    role_description = $6, updated_at = $7
		WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query,
		exp.ID, exp.CompanyName, exp.Role, exp.FromYear, exp.UntilYear,
		exp.RoleDescription, exp.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update work experience: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *workExperienceRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM work_experiences WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete work experience: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
