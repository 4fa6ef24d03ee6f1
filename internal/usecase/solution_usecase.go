package usecase

import (
	"context"
	"errors"

	"kodeksa-backend/internal/domain"
)

type solutionUsecase struct {
	solutionRepo domain.SolutionRepository
}

// NewSolutionUsecase creates a new solution usecase
func NewSolutionUsecase(solutionRepo domain.SolutionRepository) domain.SolutionUsecase {
	return &solutionUsecase{solutionRepo: solutionRepo}
}

func (uc *solutionUsecase) List(ctx context.Context, opts domain.SolutionListOptions) (domain.Page[domain.Solution], error) {
	opts.Normalize()

	filter := domain.SolutionFilter{
		Limit:    opts.Limit,
		Offset:   opts.Offset(),
		IsActive: opts.IsActive,
	}

	solutions, total, err := uc.solutionRepo.Fetch(ctx, filter)
	if err != nil {
		return domain.Page[domain.Solution]{}, classify(err, domain.SolutionDatabaseError)
	}

	if opts.IncludeFeatures {
		for i := range solutions {
			features, err := uc.solutionRepo.FetchFeatures(ctx, solutions[i].ID)
			if err != nil {
				return domain.Page[domain.Solution]{}, classify(err, domain.SolutionDatabaseError)
			}
			solutions[i].Features = features
		}
	}
	return domain.NewPage(solutions, opts.Page, opts.Limit, total), nil
}

func (uc *solutionUsecase) GetByID(ctx context.Context, id string) (*domain.Solution, error) {
	solution, err := uc.solutionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrSolutionNotFound
		}
		return nil, classify(err, domain.SolutionDatabaseError)
	}

	features, err := uc.solutionRepo.FetchFeatures(ctx, solution.ID)
	if err != nil {
		return nil, classify(err, domain.SolutionDatabaseError)
	}
	solution.Features = features
	return solution, nil
}

func (uc *solutionUsecase) Create(ctx context.Context, input domain.CreateSolutionInput) (*domain.Solution, error) {
	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}
	order := 0
	if input.Order != nil {
		order = *input.Order
	}

	solution := &domain.Solution{
		Title:       input.Title,
		Icon:        input.Icon,
		Description: input.Description,
		IsActive:    isActive,
		Order:       order,
	}
	for _, desc := range input.Features {
		solution.Features = append(solution.Features, domain.Feature{
			FeatureDescription: desc,
			IsActive:           true,
		})
	}

	if err := uc.solutionRepo.Create(ctx, solution); err != nil {
		return nil, classify(err, domain.SolutionDatabaseError)
	}
	return solution, nil
}

func (uc *solutionUsecase) Update(ctx context.Context, id string, input domain.UpdateSolutionInput) (*domain.Solution, error) {
	solution, err := uc.solutionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrSolutionNotFound
		}
		return nil, classify(err, domain.SolutionDatabaseError)
	}

	if input.Title != nil {
		solution.Title = *input.Title
	}
	if input.Icon != nil {
		solution.Icon = *input.Icon
	}
	if input.Description != nil {
		solution.Description = *input.Description
	}
	if input.IsActive != nil {
		solution.IsActive = *input.IsActive
	}
	if input.Order != nil {
		solution.Order = *input.Order
	}

	if err := uc.solutionRepo.Update(ctx, solution); err != nil {
		return nil, classify(err, domain.SolutionDatabaseError)
	}
	return solution, nil
}

func (uc *solutionUsecase) Delete(ctx context.Context, id string, physical bool) error {
	if physical {
		if err := uc.solutionRepo.Delete(ctx, id); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.ErrSolutionNotFound
			}
			return classify(err, domain.SolutionDatabaseError)
		}
		return nil
	}

	solution, err := uc.solutionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrSolutionNotFound
		}
		return classify(err, domain.SolutionDatabaseError)
	}

	solution.IsActive = false
	if err := uc.solutionRepo.Update(ctx, solution); err != nil {
		return classify(err, domain.SolutionDatabaseError)
	}
	return nil
}

func (uc *solutionUsecase) AddFeature(ctx context.Context, solutionID string, input domain.CreateFeatureInput) (*domain.Feature, error) {
	if _, err := uc.solutionRepo.GetByID(ctx, solutionID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrSolutionNotFound
		}
		return nil, classify(err, domain.SolutionDatabaseError)
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	feature := &domain.Feature{
		SolutionID:         solutionID,
		FeatureDescription: input.FeatureDescription,
		IsActive:           isActive,
	}
	if err := uc.solutionRepo.CreateFeature(ctx, feature); err != nil {
		return nil, classify(err, domain.SolutionDatabaseError)
	}
	return feature, nil
}

func (uc *solutionUsecase) ListFeatures(ctx context.Context, solutionID string) ([]domain.Feature, error) {
	if _, err := uc.solutionRepo.GetByID(ctx, solutionID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrSolutionNotFound
		}
		return nil, classify(err, domain.SolutionDatabaseError)
	}

	features, err := uc.solutionRepo.FetchFeatures(ctx, solutionID)
	if err != nil {
		return nil, classify(err, domain.SolutionDatabaseError)
	}
	return features, nil
}

func (uc *solutionUsecase) getOwnedFeature(ctx context.Context, solutionID, featureID string) (*domain.Feature, error) {
	feature, err := uc.solutionRepo.GetFeature(ctx, featureID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrFeatureNotFound
		}
		return nil, classify(err, domain.SolutionDatabaseError)
	}
	if feature.SolutionID != solutionID {
		return nil, domain.ErrFeatureNotFound
	}
	return feature, nil
}

func (uc *solutionUsecase) UpdateFeature(ctx context.Context, solutionID, featureID string, input domain.UpdateFeatureInput) (*domain.Feature, error) {
	feature, err := uc.getOwnedFeature(ctx, solutionID, featureID)
	if err != nil {
		return nil, err
	}

	if input.FeatureDescription != nil {
		feature.FeatureDescription = *input.FeatureDescription
	}
	if input.IsActive != nil {
		feature.IsActive = *input.IsActive
	}

	if err := uc.solutionRepo.UpdateFeature(ctx, feature); err != nil {
		return nil, classify(err, domain.SolutionDatabaseError)
	}
	return feature, nil
}

func (uc *solutionUsecase) DeleteFeature(ctx context.Context, solutionID, featureID string) error {
	if _, err := uc.getOwnedFeature(ctx, solutionID, featureID); err != nil {
		return err
	}

	if err := uc.solutionRepo.DeleteFeature(ctx, featureID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrFeatureNotFound
		}
		return classify(err, domain.SolutionDatabaseError)
	}
	return nil
}
