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

type cardConfigurationRepository struct {
	pool *pgxpool.Pool
}

func NewCardConfigurationRepository(pool *pgxpool.Pool) domain.CardConfigurationRepository {
	return &cardConfigurationRepository{pool: pool}
}

const cardConfigColumns = `id, user_id, image_size, bg_color,
	text_above, text_above_color, above_font_family, above_font_size, above_font_weight,
	above_letter_spacing, above_text_transform, above_text_top_offset,
	text_below, text_below_color, below_font_family, below_font_size, below_font_weight,
	below_letter_spacing, below_text_transform, created_at, updated_at`

func (r *cardConfigurationRepository) Create(ctx context.Context, cfg *domain.CardConfiguration) error {
	if cfg.ID == "" {
		cfg.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	cfg.CreatedAt = now
	cfg.UpdatedAt = now

	query := `
		INSERT INTO card_configurations (` + cardConfigColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)`

	_, err := r.pool.Exec(ctx, query,
		cfg.ID, cfg.UserID, cfg.ImageSize, cfg.BgColor,
		cfg.TextAbove, cfg.TextAboveColor, cfg.AboveFontFamily, cfg.AboveFontSize, cfg.AboveFontWeight,
		cfg.AboveLetterSpacing, cfg.AboveTextTransform, cfg.AboveTextTopOffset,
		cfg.TextBelow, cfg.TextBelowColor, cfg.BelowFontFamily, cfg.BelowFontSize, cfg.BelowFontWeight,
		cfg.BelowLetterSpacing, cfg.BelowTextTransform, cfg.CreatedAt, cfg.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err, "") {
			return domain.ErrCardConfigExists
		}
		return fmt.Errorf("insert card configuration: %w", err)
	}
	return nil
}

func (r *cardConfigurationRepository) GetByID(ctx context.Context, id string) (*domain.CardConfiguration, error) {
	query := `SELECT ` + cardConfigColumns + ` FROM card_configurations WHERE id = $1`
	return r.getOne(ctx, query, id)
}

func (r *cardConfigurationRepository) GetByUserID(ctx context.Context, userID string) (*domain.CardConfiguration, error) {
	query := `SELECT ` + cardConfigColumns + ` FROM card_configurations WHERE user_id = $1`
	return r.getOne(ctx, query, userID)
}

func (r *cardConfigurationRepository) getOne(ctx context.Context, query string, arg interface{}) (*domain.CardConfiguration, error) {
	var cfg domain.CardConfiguration
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&cfg.ID, &cfg.UserID, &cfg.ImageSize, &cfg.BgColor,
		&cfg.TextAbove, &cfg.TextAboveColor, &cfg.AboveFontFamily, &cfg.AboveFontSize, &cfg.AboveFontWeight,
		&cfg.AboveLetterSpacing, &cfg.AboveTextTransform, &cfg.AboveTextTopOffset,
		&cfg.TextBelow, &cfg.TextBelowColor, &cfg.BelowFontFamily, &cfg.BelowFontSize, &cfg.BelowFontWeight,
		&cfg.BelowLetterSpacing, &cfg.BelowTextTransform, &cfg.CreatedAt, &cfg.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get card configuration: %w", err)
	}
	return &cfg, nil
}

func (r *cardConfigurationRepository) Update(ctx context.Context, cfg *domain.CardConfiguration) error {
	cfg.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE card_configurations
		SET image_size = $2, bg_color = $3,
		    text_above = $4, text_above_color = $5, above_font_family = $6, above_font_size = $7,
		    above_font_weight = $8, above_letter_spacing = $9, above_text_transform = $10,
		    above_text_top_offset = $11,
		    text_below = $12, text_below_color = $13, below_font_family = $14, below_font_size = $15,
		    below_font_weight = $16, below_letter_spacing = $17, below_text_transform = $18,
		    updated_at = $19
		WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query,
		cfg.ID, cfg.ImageSize, cfg.BgColor,
		cfg.TextAbove, cfg.TextAboveColor, cfg.AboveFontFamily, cfg.AboveFontSize,
		cfg.AboveFontWeight, cfg.AboveLetterSpacing, cfg.AboveTextTransform,
		cfg.AboveTextTopOffset,
		cfg.TextBelow, cfg.TextBelowColor, cfg.BelowFontFamily, cfg.BelowFontSize,
		cfg.BelowFontWeight, cfg.BelowLetterSpacing, cfg.BelowTextTransform,
		cfg.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update card configuration: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *cardConfigurationRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM card_configurations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete card configuration: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
