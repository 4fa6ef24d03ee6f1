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

type blogRepository struct {
	pool *pgxpool.Pool
}

func NewBlogRepository(pool *pgxpool.Pool) domain.BlogRepository {
	return &blogRepository{pool: pool}
}

const blogColumns = `b.id, b.user_id, b.title, b.slug, b.description, b.cover_image, b.categories, b.reading_time, b.is_active, b.created_at, b.updated_at`

// blogAuthorJoin pulls the denormalized author snapshot in the same query.
const blogAuthorJoin = `, u.first_name || ' ' || u.last_name AS author_name, u.image AS author_avatar, u.role AS author_role
	FROM blogs b
	JOIN users u ON u.id = b.user_id`

func scanBlogWithAuthor(row pgx.Row) (*domain.Blog, error) {
	var b domain.Blog
	var author domain.BlogAuthor
	err := row.Scan(
		&b.ID, &b.UserID, &b.Title, &b.Slug, &b.Description, &b.CoverImage,
		&b.Categories, &b.ReadingTime, &b.IsActive, &b.CreatedAt, &b.UpdatedAt,
		&author.Name, &author.Avatar, &author.Role,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	b.Author = &author
	return &b, nil
}

func (r *blogRepository) Create(ctx context.Context, blog *domain.Blog) error {
	if blog.ID == "" {
		blog.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	blog.CreatedAt = now
	blog.UpdatedAt = now

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin blog insert: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO blogs (id, user_id, title, slug, description, cover_image, categories, reading_time, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err = tx.Exec(ctx, query,
		blog.ID, blog.UserID, blog.Title, blog.Slug, blog.Description,
		blog.CoverImage, blog.Categories, blog.ReadingTime, blog.IsActive,
		blog.CreatedAt, blog.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err, "") {
			return domain.ErrBlogSlugExists
		}
		return fmt.Errorf("insert blog: %w", err)
	}

	for i := range blog.Sections {
		s := &blog.Sections[i]
		if s.ID == "" {
			s.ID = uuid.NewString()
		}
		s.BlogID = blog.ID
		s.CreatedAt = now
		s.UpdatedAt = now
		_, err = tx.Exec(ctx, `
			INSERT INTO blog_sections (id, blog_id, type, "order", content, src, alt, style, items, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
			s.ID, s.BlogID, s.Type, s.Order, s.Content, s.Src, s.Alt, s.Style, s.Items,
			s.CreatedAt, s.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert blog section: %w", err)
		}
	}

	return tx.Commit(ctx)
}

func (r *blogRepository) GetByID(ctx context.Context, id string) (*domain.Blog, error) {
	query := `SELECT ` + blogColumns + blogAuthorJoin + ` WHERE b.id = $1`
	return scanBlogWithAuthor(r.pool.QueryRow(ctx, query, id))
}

func (r *blogRepository) GetBySlug(ctx context.Context, slug string) (*domain.Blog, error) {
	query := `SELECT ` + blogColumns + blogAuthorJoin + ` WHERE b.slug = $1`
	return scanBlogWithAuthor(r.pool.QueryRow(ctx, query, slug))
}

func (r *blogRepository) Fetch(ctx context.Context, filter domain.BlogFilter) ([]domain.Blog, int64, error) {
	where := ` WHERE 1=1`
	args := []interface{}{}
	argPos := 1

	if filter.IsActive != nil {
		where += fmt.Sprintf(" AND b.is_active = $%d", argPos)
		args = append(args, *filter.IsActive)
		argPos++
	}
	if filter.UserID != "" {
		where += fmt.Sprintf(" AND b.user_id = $%d", argPos)
		args = append(args, filter.UserID)
		argPos++
	}
	if filter.Category != "" {
		where += fmt.Sprintf(" AND $%d = ANY(b.categories)", argPos)
		args = append(args, filter.Category)
		argPos++
	}
	if filter.Search != "" {
		where += fmt.Sprintf(" AND (b.title ILIKE $%d OR b.description ILIKE $%d)", argPos, argPos)
		args = append(args, "%"+filter.Search+"%")
		argPos++
	}

	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM blogs b`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count blogs: %w", err)
	}

	query := `SELECT ` + blogColumns + blogAuthorJoin + where +
		fmt.Sprintf(" ORDER BY b.created_at DESC LIMIT $%d OFFSET $%d", argPos, argPos+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("query blogs: %w", err)
	}
	defer rows.Close()

	blogs := []domain.Blog{}
	for rows.Next() {
		var b domain.Blog
		var author domain.BlogAuthor
		err := rows.Scan(
			&b.ID, &b.UserID, &b.Title, &b.Slug, &b.Description, &b.CoverImage,
			&b.Categories, &b.ReadingTime, &b.IsActive, &b.CreatedAt, &b.UpdatedAt,
			&author.Name, &author.Avatar, &author.Role,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("scan blog: %w", err)
		}
		b.Author = &author
		blogs = append(blogs, b)
	}
	return blogs, total, rows.Err()
}

func (r *blogRepository) Update(ctx context.Context, blog *domain.Blog) error {
	blog.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE blogs
		SET title = $2, slug = $3, description = $4, cover_image = $5,
		    categories = $6, reading_time = $7, is_active = $8, updated_at = $9
		WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query,
		blog.ID, blog.Title, blog.Slug, blog.Description, blog.CoverImage,
		blog.Categories, blog.ReadingTime, blog.IsActive, blog.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err, "") {
			return domain.ErrBlogSlugExists
		}
		return fmt.Errorf("update blog: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes the blog and its sections in one transaction.
func (r *blogRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin blog delete: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM blog_sections WHERE blog_id = $1`, id); err != nil {
		return fmt.Errorf("delete blog sections: %w", err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM blogs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete blog: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return tx.Commit(ctx)
}

const sectionColumns = `id, blog_id, type, "order", content, src, alt, style, items, created_at, updated_at`

func scanSection(row pgx.Row) (*domain.BlogSection, error) {
	var s domain.BlogSection
	err := row.Scan(
		&s.ID, &s.BlogID, &s.Type, &s.Order, &s.Content, &s.Src, &s.Alt,
		&s.Style, &s.Items, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *blogRepository) CreateSection(ctx context.Context, section *domain.BlogSection) error {
	if section.ID == "" {
		section.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	section.CreatedAt = now
	section.UpdatedAt = now

	query := `
		INSERT INTO blog_sections (` + sectionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.pool.Exec(ctx, query,
		section.ID, section.BlogID, section.Type, section.Order,
		section.Content, section.Src, section.Alt, section.Style, section.Items,
		section.CreatedAt, section.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert blog section: %w", err)
	}
	return nil
}

func (r *blogRepository) GetSection(ctx context.Context, id string) (*domain.BlogSection, error) {
	query := `SELECT ` + sectionColumns + ` FROM blog_sections WHERE id = $1`
	return scanSection(r.pool.QueryRow(ctx, query, id))
}

func (r *blogRepository) GetSectionsByBlog(ctx context.Context, blogID string) ([]domain.BlogSection, error) {
	query := `SELECT ` + sectionColumns + ` FROM blog_sections WHERE blog_id = $1 ORDER BY "order" ASC`
	return r.querySections(ctx, query, blogID)
}

func (r *blogRepository) GetSectionsByBlogAndIDs(ctx context.Context, blogID string, ids []string) ([]domain.BlogSection, error) {
	query := `SELECT ` + sectionColumns + ` FROM blog_sections WHERE blog_id = $1 AND id = ANY($2)`
	return r.querySections(ctx, query, blogID, ids)
}

func (r *blogRepository) querySections(ctx context.Context, query string, args ...interface{}) ([]domain.BlogSection, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query blog sections: %w", err)
	}
	defer rows.Close()

	sections := []domain.BlogSection{}
	for rows.Next() {
		var s domain.BlogSection
		err := rows.Scan(
			&s.ID, &s.BlogID, &s.Type, &s.Order, &s.Content, &s.Src, &s.Alt,
			&s.Style, &s.Items, &s.CreatedAt, &s.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan blog section: %w", err)
		}
		sections = append(sections, s)
	}
	return sections, rows.Err()
}

func (r *blogRepository) UpdateSection(ctx context.Context, section *domain.BlogSection) error {
	section.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE blog_sections
		SET type = $2, "order" = $3, content = $4, src = $5, alt = $6,
		    style = $7, items = $8, updated_at = $9
		WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query,
		section.ID, section.Type, section.Order, section.Content,
		section.Src, section.Alt, section.Style, section.Items, section.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update blog section: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *blogRepository) UpdateSectionOrder(ctx context.Context, sectionID string, order int) error {
	query := `UPDATE blog_sections SET "order" = $2, updated_at = $3 WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, sectionID, order, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("update blog section order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *blogRepository) DeleteSectionsByBlog(ctx context.Context, blogID string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM blog_sections WHERE blog_id = $1`, blogID)
	if err != nil {
		return fmt.Errorf("delete blog sections: %w", err)
	}
	return nil
}

func (r *blogRepository) DeleteSection(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM blog_sections WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete blog section: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
