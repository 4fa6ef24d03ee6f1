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

type skillRepository struct {
	pool *pgxpool.Pool
}

func NewSkillRepository(pool *pgxpool.Pool) domain.SkillRepository {
	return &skillRepository{pool: pool}
}

func (r *skillRepository) Create(ctx context.Context, skill *domain.Skill) error {
	if skill.ID == "" {
		skill.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	skill.CreatedAt = now
	skill.UpdatedAt = now

	query := `
		INSERT INTO skills (id, user_id, skill_name, url_certificate, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.pool.Exec(ctx, query,
		skill.ID, skill.UserID, skill.SkillName, skill.URLCertificate,
		skill.CreatedAt, skill.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert skill: %w", err)
	}
	return nil
}

func (r *skillRepository) GetByID(ctx context.Context, id string) (*domain.Skill, error) {
	query := `
		SELECT id, user_id, skill_name, url_certificate, created_at, updated_at
		FROM skills WHERE id = $1`

	var s domain.Skill
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.UserID, &s.SkillName, &s.URLCertificate, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get skill: %w", err)
	}
	return &s, nil
}

func (r *skillRepository) Fetch(ctx context.Context) ([]domain.Skill, error) {
	query := `
		SELECT id, user_id, skill_name, url_certificate, created_at, updated_at
		FROM skills
		ORDER BY created_at ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query skills: %w", err)
	}
	defer rows.Close()
	return scanSkills(rows)
}

func (r *skillRepository) FetchByUser(ctx context.Context, userID string) ([]domain.Skill, error) {
	query := `
		SELECT id, user_id, skill_name, url_certificate, created_at, updated_at
		FROM skills
		WHERE user_id = $1
		ORDER BY created_at ASC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("query skills: %w", err)
	}
	defer rows.Close()
	return scanSkills(rows)
}

func scanSkills(rows pgx.Rows) ([]domain.Skill, error) {
	skills := []domain.Skill{}
	for rows.Next() {
		var s domain.Skill
		if err := rows.Scan(&s.ID, &s.UserID, &s.SkillName, &s.URLCertificate, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan skill: %w", err)
		}
		skills = append(skills, s)
	}
	return skills, rows.Err()
}

func (r *skillRepository) Update(ctx context.Context, skill *domain.Skill) error {
	skill.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE skills
		SET skill_name = $2, url_certificate = $3, updated_at = $4
		WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, skill.ID, skill.SkillName, skill.URLCertificate, skill.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update skill: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *skillRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM skills WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete skill: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
