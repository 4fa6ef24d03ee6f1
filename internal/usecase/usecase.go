package usecase

import (
	"errors"

	"kodeksa-backend/pkg/apperror"
)

// classify keeps already-classified errors intact and funnels everything
// else through the module's database-error constructor.
func classify(err error, fallback func(error) *apperror.AppError) error {
	if err == nil {
		return nil
	}
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return fallback(err)
}
