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

type applicationRepository struct {
	pool *pgxpool.Pool
}

func NewApplicationRepository(pool *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepository{pool: pool}
}

const applicationColumns = `id, vacancy_id, name, email, phone, application_motivation, cv_url, status, is_active, created_at, updated_at`

func scanApplication(row pgx.Row) (*domain.Application, error) {
	var a domain.Application
	err := row.Scan(
		&a.ID, &a.VacancyID, &a.Name, &a.Email, &a.Phone,
		&a.ApplicationMotivation, &a.CvURL, &a.Status, &a.IsActive,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *applicationRepository) Create(ctx context.Context, a *domain.Application) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now

	query := `
		INSERT INTO applications (id, vacancy_id, name, email, phone, application_motivation, cv_url, status, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.pool.Exec(ctx, query,
		a.ID, a.VacancyID, a.Name, a.Email, a.Phone,
		a.ApplicationMotivation, a.CvURL, a.Status, a.IsActive,
		a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err, "") {
			return domain.ErrAlreadyApplied
		}
		return fmt.Errorf("insert application: %w", err)
	}
	return nil
}

func (r *applicationRepository) GetByID(ctx context.Context, id string) (*domain.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE id = $1`
	return scanApplication(r.pool.QueryRow(ctx, query, id))
}

func (r *applicationRepository) GetByVacancyAndEmail(ctx context.Context, vacancyID, email string) (*domain.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE vacancy_id = $1 AND email = $2`
	return scanApplication(r.pool.QueryRow(ctx, query, vacancyID, email))
}

const applicationAliasedColumns = `a.id, a.vacancy_id, a.name, a.email, a.phone, a.application_motivation, a.cv_url, a.status, a.is_active, a.created_at, a.updated_at`

func (r *applicationRepository) Fetch(ctx context.Context, filter domain.ApplicationFilter) ([]domain.Application, int64, error) {
	where := ` WHERE 1=1`
	args := []interface{}{}
	argPos := 1

	if filter.VacancyID != "" {
		where += fmt.Sprintf(" AND a.vacancy_id = $%d", argPos)
		args = append(args, filter.VacancyID)
		argPos++
	}
	if filter.IsActive != nil {
		where += fmt.Sprintf(" AND a.is_active = $%d", argPos)
		args = append(args, *filter.IsActive)
		argPos++
	}
	if filter.Status != "" {
		where += fmt.Sprintf(" AND a.status = $%d", argPos)
		args = append(args, filter.Status)
		argPos++
	}
	if filter.Search != "" {
		where += fmt.Sprintf(
			" AND (a.name ILIKE $%d OR a.email ILIKE $%d OR a.phone ILIKE $%d OR a.application_motivation ILIKE $%d)",
			argPos, argPos, argPos, argPos,
		)
		args = append(args, "%"+filter.Search+"%")
		argPos++
	}

	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM applications a`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count applications: %w", err)
	}

	// The search path carries the vacancy so callers can show what the
	// candidate applied to without a second round trip.
	withVacancy := filter.Search != ""

	columns := applicationAliasedColumns
	from := ` FROM applications a`
	if withVacancy {
		columns += `, v.id_vacancy, v.job_title, v.slug, v.mode, v.years_experience,
			v.short_description, v.description, v.stack_required, v.status, v.is_active,
			v.created_at, v.updated_at`
		from += ` LEFT JOIN vacancies v ON v.id_vacancy = a.vacancy_id`
	}

	query := `SELECT ` + columns + from + where +
		fmt.Sprintf(" ORDER BY a.created_at DESC LIMIT $%d OFFSET $%d", argPos, argPos+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("query applications: %w", err)
	}
	defer rows.Close()

	apps := []domain.Application{}
	for rows.Next() {
		var a domain.Application
		dest := []interface{}{
			&a.ID, &a.VacancyID, &a.Name, &a.Email, &a.Phone,
			&a.ApplicationMotivation, &a.CvURL, &a.Status, &a.IsActive,
			&a.CreatedAt, &a.UpdatedAt,
		}
		var v domain.Vacancy
		if withVacancy {
			dest = append(dest,
				&v.ID, &v.JobTitle, &v.Slug, &v.Mode, &v.YearsExperience,
				&v.ShortDescription, &v.Description, &v.StackRequired,
				&v.Status, &v.IsActive, &v.CreatedAt, &v.UpdatedAt,
			)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, 0, fmt.Errorf("scan application: %w", err)
		}
		if withVacancy {
			vacancy := v
			a.Vacancy = &vacancy
		}
		apps = append(apps, a)
	}
	return apps, total, rows.Err()
}

func (r *applicationRepository) Update(ctx context.Context, a *domain.Application) error {
	a.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE applications
		SET vacancy_id = $2, name = $3, email = $4, phone = $5,
		    application_motivation = $6, cv_url = $7, status = $8,
		    is_active = $9, updated_at = $10
		WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query,
		a.ID, a.VacancyID, a.Name, a.Email, a.Phone, a.ApplicationMotivation,
		a.CvURL, a.Status, a.IsActive, a.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err, "") {
			return domain.ErrAlreadyApplied
		}
		return fmt.Errorf("update application: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *applicationRepository) UpdateStatus(ctx context.Context, id, status string) error {
	query := `UPDATE applications SET status = $2, updated_at = $3 WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id, status, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("update application status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *applicationRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM applications WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete application: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
