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

type curriculumRepository struct {
	pool *pgxpool.Pool
}

func NewCurriculumRepository(pool *pgxpool.Pool) domain.CurriculumRepository {
	return &curriculumRepository{pool: pool}
}

func (r *curriculumRepository) Create(ctx context.Context, cur *domain.Curriculum) error {
	if cur.ID == "" {
		cur.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	cur.CreatedAt = now
	cur.UpdatedAt = now

	query := `
		INSERT INTO curriculums (id, user_id, about_me, github_slug, linkedin_slug, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.pool.Exec(ctx, query,
		cur.ID, cur.UserID, cur.AboutMe, cur.GithubSlug, cur.LinkedinSlug,
		cur.CreatedAt, cur.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err, "") {
			return domain.ErrCurriculumExists
		}
		return fmt.Errorf("insert curriculum: %w", err)
	}
	return nil
}

const curriculumColumns = `id, user_id, about_me, github_slug, linkedin_slug, created_at, updated_at`

func (r *curriculumRepository) GetByID(ctx context.Context, id string) (*domain.Curriculum, error) {
	query := `SELECT ` + curriculumColumns + ` FROM curriculums WHERE id = $1`
	return r.getOne(ctx, query, id)
}

func (r *curriculumRepository) GetByUserID(ctx context.Context, userID string) (*domain.Curriculum, error) {
	query := `SELECT ` + curriculumColumns + ` FROM curriculums WHERE user_id = $1`
	return r.getOne(ctx, query, userID)
}

func (r *curriculumRepository) getOne(ctx context.Context, query string, arg interface{}) (*domain.Curriculum, error) {
	var cur domain.Curriculum
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&cur.ID, &cur.UserID, &cur.AboutMe, &cur.GithubSlug, &cur.LinkedinSlug,
		&cur.CreatedAt, &cur.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get curriculum: %w", err)
	}
	return &cur, nil
}

func (r *curriculumRepository) Update(ctx context.Context, cur *domain.Curriculum) error {
	cur.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE curriculums
		SET about_me = $2, github_slug = $3, linkedin_slug = $4, updated_at = $5
		WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query,
		cur.ID, cur.AboutMe, cur.GithubSlug, cur.LinkedinSlug, cur.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update curriculum: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *curriculumRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM curriculums WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete curriculum: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
