package domain

import (
	"context"
	"time"

	"kodeksa-backend/pkg/apperror"
)

// CardConfiguration styles the presentation card rendered for a user on
// the landing page. Exactly one row per user.
type CardConfiguration struct {
	ID                 string    `json:"id"`
	UserID             string    `json:"userId"`
	ImageSize          int       `json:"imageSize"`
	BgColor            string    `json:"bgColor"`
	TextAbove          string    `json:"textAbove"`
	TextAboveColor     string    `json:"textAboveColor"`
	AboveFontFamily    string    `json:"aboveFontFamily"`
	AboveFontSize      string    `json:"aboveFontSize"`
	AboveFontWeight    string    `json:"aboveFontWeight"`
	AboveLetterSpacing string    `json:"aboveLetterSpacing"`
	AboveTextTransform string    `json:"aboveTextTransform"`
	AboveTextTopOffset string    `json:"aboveTextTopOffset"`
	TextBelow          string    `json:"textBelow"`
	TextBelowColor     string    `json:"textBelowColor"`
	BelowFontFamily    string    `json:"belowFontFamily"`
	BelowFontSize      string    `json:"belowFontSize"`
	BelowFontWeight    string    `json:"belowFontWeight"`
	BelowLetterSpacing string    `json:"belowLetterSpacing"`
	BelowTextTransform string    `json:"belowTextTransform"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// DefaultCardConfiguration returns the values applied when a user is
// bootstrapped. TextAbove/TextBelow stay empty until the user edits them.
func DefaultCardConfiguration(userID string) *CardConfiguration {
	return &CardConfiguration{
		UserID:             userID,
		ImageSize:          90,
		BgColor:            "#FFFFFF",
		TextAbove:          "",
		TextAboveColor:     "#000000",
		AboveFontFamily:    "Clash Display",
		AboveFontSize:      "3.5rem",
		AboveFontWeight:    "700",
		AboveLetterSpacing: "0.23em",
		AboveTextTransform: "uppercase",
		AboveTextTopOffset: "0",
		TextBelow:          "",
		TextBelowColor:     "#000000",
		BelowFontFamily:    "Clash Display",
		BelowFontSize:      "1.5rem",
		BelowFontWeight:    "700",
		BelowLetterSpacing: "0.35em",
		BelowTextTransform: "uppercase",
	}
}

// ResetCardConfiguration returns the neutral values used by the reset
// operation, distinct from the bootstrap defaults.
func ResetCardConfiguration(userID string) *CardConfiguration {
	return &CardConfiguration{
		UserID:             userID,
		ImageSize:          90,
		BgColor:            "#FFFFFF",
		TextAbove:          "",
		TextAboveColor:     "#000000",
		AboveFontFamily:    "Arial",
		AboveFontSize:      "16px",
		AboveFontWeight:    "normal",
		AboveLetterSpacing: "normal",
		AboveTextTransform: "none",
		AboveTextTopOffset: "0",
		TextBelow:          "",
		TextBelowColor:     "#000000",
		BelowFontFamily:    "Arial",
		BelowFontSize:      "16px",
		BelowFontWeight:    "normal",
		BelowLetterSpacing: "normal",
		BelowTextTransform: "none",
	}
}

type UpdateCardConfigurationInput struct {
	ImageSize          *int
	BgColor            *string
	TextAbove          *string
	TextAboveColor     *string
	AboveFontFamily    *string
	AboveFontSize      *string
	AboveFontWeight    *string
	AboveLetterSpacing *string
	AboveTextTransform *string
	AboveTextTopOffset *string
	TextBelow          *string
	TextBelowColor     *string
	BelowFontFamily    *string
	BelowFontSize      *string
	BelowFontWeight    *string
	BelowLetterSpacing *string
	BelowTextTransform *string
}

type CardConfigurationRepository interface {
	Create(ctx context.Context, cfg *CardConfiguration) error
	GetByID(ctx context.Context, id string) (*CardConfiguration, error)
	GetByUserID(ctx context.Context, userID string) (*CardConfiguration, error)
	Update(ctx context.Context, cfg *CardConfiguration) error
	Delete(ctx context.Context, id string) error
}

type CardConfigurationUsecase interface {
	GetByID(ctx context.Context, id string) (*CardConfiguration, error)
	GetByUserID(ctx context.Context, userID string, checkUserExists bool) (*CardConfiguration, error)
	Create(ctx context.Context, userID string, input UpdateCardConfigurationInput, skipUserCheck bool) (*CardConfiguration, error)
	CreateDefault(ctx context.Context, userID string, skipUserCheck bool) (*CardConfiguration, error)
	Update(ctx context.Context, id string, input UpdateCardConfigurationInput) (*CardConfiguration, error)
	Reset(ctx context.Context, id string) (*CardConfiguration, error)
	Delete(ctx context.Context, id string) error
}

// CardConfiguration error catalog
var (
	ErrCardConfigNotFound = apperror.NotFound("CARD_CONFIG_NOT_FOUND", "Configuración de tarjeta no encontrada")
	ErrCardConfigExists   = apperror.Conflict("CARD_CONFIG_ALREADY_EXISTS", "El usuario ya tiene una configuración de tarjeta")
	ErrCardConfigUser     = apperror.NotFound("CARD_CONFIG_USER_NOT_FOUND", "Usuario no encontrado para la configuración de tarjeta")
)

func CardConfigDatabaseError(err error) *apperror.AppError {
	return apperror.Database("CARD_CONFIG_DATABASE_ERROR", err)
}
