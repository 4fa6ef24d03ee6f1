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

type vacancyRepository struct {
	pool *pgxpool.Pool
}

func NewVacancyRepository(pool *pgxpool.Pool) domain.VacancyRepository {
	return &vacancyRepository{pool: pool}
}

const vacancyColumns = `id_vacancy, job_title, slug, mode, years_experience, short_description, description, stack_required, status, is_active, created_at, updated_at`

func scanVacancy(row pgx.Row) (*domain.Vacancy, error) {
	var v domain.Vacancy
	err := row.Scan(
		&v.ID, &v.JobTitle, &v.Slug, &v.Mode, &v.YearsExperience,
		&v.ShortDescription, &v.Description, &v.StackRequired,
		&v.Status, &v.IsActive, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &v, nil
}

func (r *vacancyRepository) Create(ctx context.Context, v *domain.Vacancy) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	v.CreatedAt = now
	v.UpdatedAt = now

	query := `
		INSERT INTO vacancies (` + vacancyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.pool.Exec(ctx, query,
		v.ID, v.JobTitle, v.Slug, v.Mode, v.YearsExperience,
		v.ShortDescription, v.Description, v.StackRequired,
		v.Status, v.IsActive, v.CreatedAt, v.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err, "") {
			return domain.ErrVacancySlugExists
		}
		return fmt.Errorf("insert vacancy: %w", err)
	}
	return nil
}

func (r *vacancyRepository) GetByID(ctx context.Context, id string) (*domain.Vacancy, error) {
	query := `SELECT ` + vacancyColumns + ` FROM vacancies WHERE id_vacancy = $1`
	return scanVacancy(r.pool.QueryRow(ctx, query, id))
}

func (r *vacancyRepository) GetBySlug(ctx context.Context, slug string) (*domain.Vacancy, error) {
	query := `SELECT ` + vacancyColumns + ` FROM vacancies WHERE slug = $1`
	return scanVacancy(r.pool.QueryRow(ctx, query, slug))
}

func (r *vacancyRepository) GetApplications(ctx context.Context, vacancyID string) ([]domain.Application, error) {
	query := `
		SELECT id, vacancy_id, name, email, phone, application_motivation, cv_url, status, is_active, created_at, updated_at
		FROM applications
		WHERE vacancy_id = $1
		ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, vacancyID)
	if err != nil {
		return nil, fmt.Errorf("query applications for vacancy: %w", err)
	}
	defer rows.Close()

	apps := []domain.Application{}
	for rows.Next() {
		var a domain.Application
		err := rows.Scan(
			&a.ID, &a.VacancyID, &a.Name, &a.Email, &a.Phone,
			&a.ApplicationMotivation, &a.CvURL, &a.Status, &a.IsActive,
			&a.CreatedAt, &a.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan application: %w", err)
		}
		apps = append(apps, a)
	}
	return apps, rows.Err()
}

func (r *vacancyRepository) Fetch(ctx context.Context, filter domain.VacancyFilter) ([]domain.Vacancy, int64, error) {
	where := ` WHERE 1=1`
	args := []interface{}{}
	argPos := 1

	if filter.IsActive != nil {
		where += fmt.Sprintf(" AND is_active = $%d", argPos)
		args = append(args, *filter.IsActive)
		argPos++
	}
	if filter.Status != "" {
		where += fmt.Sprintf(" AND status = $%d", argPos)
		args = append(args, filter.Status)
		argPos++
	}
	if filter.Mode != "" {
		where += fmt.Sprintf(" AND mode = $%d", argPos)
		args = append(args, filter.Mode)
		argPos++
	}
	if filter.Search != "" {
		where += fmt.Sprintf(
			" AND (job_title ILIKE $%d OR short_description ILIKE $%d OR description ILIKE $%d OR EXISTS (SELECT 1 FROM unnest(stack_required) tech WHERE tech ILIKE $%d))",
			argPos, argPos, argPos, argPos,
		)
		args = append(args, "%"+filter.Search+"%")
		argPos++
	}

	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM vacancies`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count vacancies: %w", err)
	}

	query := `SELECT ` + vacancyColumns + ` FROM vacancies` + where +
		fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", argPos, argPos+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("query vacancies: %w", err)
	}
	defer rows.Close()

	vacancies := []domain.Vacancy{}
	for rows.Next() {
		var v domain.Vacancy
		err := rows.Scan(
			&v.ID, &v.JobTitle, &v.Slug, &v.Mode, &v.YearsExperience,
			&v.ShortDescription, &v.Description, &v.StackRequired,
			&v.Status, &v.IsActive, &v.CreatedAt, &v.UpdatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("scan vacancy: %w", err)
		}
		vacancies = append(vacancies, v)
	}
	return vacancies, total, rows.Err()
}

func (r *vacancyRepository) Update(ctx context.Context, v *domain.Vacancy) error {
	v.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE vacancies
		SET job_title = $2, slug = $3, mode = $4, years_experience = $5,
		    short_description = $6, description = $7, stack_required = $8,
		    status = $9, is_active = $10, updated_at = $11
		WHERE id_vacancy = $1`

	tag, err := r.pool.Exec(ctx, query,
		v.ID, v.JobTitle, v.Slug, v.Mode, v.YearsExperience,
		v.ShortDescription, v.Description, v.StackRequired,
		v.Status, v.IsActive, v.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err, "") {
			return domain.ErrVacancySlugExists
		}
		return fmt.Errorf("update vacancy: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *vacancyRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM vacancies WHERE id_vacancy = $1`, id)
	if err != nil {
		return fmt.Errorf("delete vacancy: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
