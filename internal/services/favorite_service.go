package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/MathLeoYa/inmobiliaria/internal/models"
	"github.com/MathLeoYa/inmobiliaria/internal/repositories"
	"github.com/MathLeoYa/inmobiliaria/internal/utils"
)

type FavoriteService struct {
	favoriteRepo repositories.FavoriteRepository
	propertyRepo repositories.PropertyRepository
}

func NewFavoriteService(
	favoriteRepo repositories.FavoriteRepository,
	propertyRepo repositories.PropertyRepository,
) *FavoriteService {
	return &FavoriteService{
		favoriteRepo: favoriteRepo,
		propertyRepo: propertyRepo,
	}
}

// Toggle flips the favorite state for (account, property) and reports the
// resulting state: true when the property is now favorited.
func (s *FavoriteService) Toggle(ctx context.Context, accountID, propertyID uuid.UUID) (bool, error) {
	property, err := s.propertyRepo.GetByID(ctx, propertyID)
	if err != nil {
		return false, err
	}
	if property == nil {
		return false, utils.ErrNotFound
	}

	exists, err := s.favoriteRepo.Exists(ctx, accountID, propertyID)
	if err != nil {
		return false, err
	}
	if exists {
		if err := s.favoriteRepo.Delete(ctx, accountID, propertyID); err != nil {
			return false, err
		}
		return false, nil
	}
	if err := s.favoriteRepo.Insert(ctx, accountID, propertyID); err != nil {
		return false, err
	}
	return true, nil
}

func (s *FavoriteService) ListMine(ctx context.Context, accountID uuid.UUID) ([]*models.PropertySummary, error) {
	return s.favoriteRepo.ListByAccount(ctx, accountID)
}
