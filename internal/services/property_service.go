package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/MathLeoYa/inmobiliaria/internal/dtos"
	"github.com/MathLeoYa/inmobiliaria/internal/models"
	"github.com/MathLeoYa/inmobiliaria/internal/repositories"
	"github.com/MathLeoYa/inmobiliaria/internal/utils"
)

type PropertyService struct {
	propertyRepo     repositories.PropertyRepository
	subscriptionRepo repositories.SubscriptionRepository
}

func NewPropertyService(
	propertyRepo repositories.PropertyRepository,
	subscriptionRepo repositories.SubscriptionRepository,
) *PropertyService {
	return &PropertyService{
		propertyRepo:     propertyRepo,
		subscriptionRepo: subscriptionRepo,
	}
}

// Create publishes a listing. Only approved agents and admins may publish;
// agents are additionally held to their plan's listing and photo caps,
// evaluated against live counts at the moment of creation. Admins bypass
// plan checks entirely.
func (s *PropertyService) Create(ctx context.Context, actor *models.Account, req dtos.CreatePropertyRequest) (*models.Property, error) {
	standing, err := actor.Standing()
	if err != nil {
		return nil, err
	}
	if !standing.CanPublish() {
		return nil, utils.ErrForbidden
	}

	if len(req.Photos) == 0 {
		return nil, utils.ErrNoPhotosProvided
	}

	category := models.Category(req.Category)
	if err := validateListingFields(category, req.Bedrooms, req.Bathrooms, req.Latitude, req.Longitude); err != nil {
		return nil, err
	}

	if !standing.IsAdmin() {
		sub, err := s.subscriptionRepo.GetActiveWithPlan(ctx, actor.ID)
		if err != nil {
			return nil, err
		}
		if sub == nil {
			return nil, utils.ErrNoActivePlan
		}

		count, err := s.propertyRepo.CountByOwner(ctx, actor.ID)
		if err != nil {
			return nil, err
		}
		if count >= sub.MaxListings {
			return nil, &utils.QuotaExceededError{Limit: sub.MaxListings}
		}
		if len(req.Photos) > sub.MaxPhotos {
			return nil, &utils.PhotoLimitError{Limit: sub.MaxPhotos}
		}
	}

	operation := models.Operation(req.Operation)
	if operation == "" {
		operation = models.OperationSale
	}

	property := &models.Property{
		ID:          uuid.New(),
		OwnerID:     actor.ID,
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Category:    category,
		Operation:   operation,
		Bedrooms:    req.Bedrooms,
		Bathrooms:   req.Bathrooms,
		AreaM2:      req.AreaM2,
		Latitude:    *req.Latitude,
		Longitude:   *req.Longitude,
		Address:     req.Address,
		Province:    req.Province,
		City:        req.City,
		Amenities:   req.Amenities,
	}

	if err := s.propertyRepo.CreateWithPhotos(ctx, property, req.Photos); err != nil {
		return nil, err
	}

	photos, err := s.propertyRepo.GetPhotos(ctx, property.ID)
	if err != nil {
		return nil, err
	}
	property.Photos = photos

	utils.Logger.WithFields(map[string]interface{}{
		"property_id": property.ID,
		"owner_id":    actor.ID,
	}).Info("Listing published")
	return property, nil
}

// validateListingFields enforces the category-dependent room requirement and
// the map placement. Land, camping and commercial listings have no rooms;
// everything else must state both counts. Every listing must carry its
// coordinates, otherwise it would silently land at (0,0) on the map.
func validateListingFields(category models.Category, bedrooms, bathrooms *int, latitude, longitude *float64) error {
	var missing []string
	switch category {
	case models.CategoryHouse, models.CategoryApartment, models.CategoryLand,
		models.CategoryCommercial, models.CategoryCamping, models.CategoryFarm,
		models.CategoryOffice:
	default:
		missing = append(missing, "category")
	}
	if category.RequiresRooms() {
		if bedrooms == nil {
			missing = append(missing, "bedrooms")
		}
		if bathrooms == nil {
			missing = append(missing, "bathrooms")
		}
	}
	if latitude == nil {
		missing = append(missing, "latitude")
	}
	if longitude == nil {
		missing = append(missing, "longitude")
	}
	if len(missing) > 0 {
		return &utils.MissingFieldsError{Fields: missing}
	}
	return nil
}

// Catalog is the public browse surface; viewerID is nil for anonymous
// visitors.
func (s *PropertyService) Catalog(ctx context.Context, f repositories.CatalogFilter, viewerID *uuid.UUID) ([]*models.PropertySummary, error) {
	return s.propertyRepo.Catalog(ctx, f, viewerID)
}

func (s *PropertyService) Detail(ctx context.Context, id uuid.UUID, viewerID *uuid.UUID) (*models.PropertyDetail, error) {
	detail, err := s.propertyRepo.Detail(ctx, id, viewerID)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, utils.ErrNotFound
	}

	photos, err := s.propertyRepo.GetPhotos(ctx, id)
	if err != nil {
		return nil, err
	}
	detail.Photos = photos
	return detail, nil
}

// MyListings returns the actor's own listings regardless of standing, so a
// suspended agent's dashboard still shows what they have.
func (s *PropertyService) MyListings(ctx context.Context, ownerID uuid.UUID) ([]*models.PropertySummary, error) {
	return s.propertyRepo.ListByOwner(ctx, ownerID)
}

// ListByOwner is the admin view of any account's listings.
func (s *PropertyService) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*models.PropertySummary, error) {
	return s.propertyRepo.ListByOwner(ctx, ownerID)
}

// Update replaces a listing's attributes. Only the owner or an admin may
// update; photo sets are immutable after creation.
func (s *PropertyService) Update(ctx context.Context, actor *models.Account, id uuid.UUID, req dtos.UpdatePropertyRequest) (*models.Property, error) {
	property, err := s.propertyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, utils.ErrNotFound
	}

	if err := s.authorizeOwner(actor, property.OwnerID); err != nil {
		return nil, err
	}

	category := models.Category(req.Category)
	if err := validateListingFields(category, req.Bedrooms, req.Bathrooms, req.Latitude, req.Longitude); err != nil {
		return nil, err
	}

	property.Title = req.Title
	property.Description = req.Description
	property.Price = req.Price
	property.Category = category
	property.Operation = models.Operation(req.Operation)
	property.Bedrooms = req.Bedrooms
	property.Bathrooms = req.Bathrooms
	property.AreaM2 = req.AreaM2
	property.Latitude = *req.Latitude
	property.Longitude = *req.Longitude
	property.Address = req.Address
	property.Province = req.Province
	property.City = req.City
	property.Amenities = req.Amenities

	if err := s.propertyRepo.Update(ctx, property); err != nil {
		return nil, err
	}
	return property, nil
}

// Delete removes a listing; photos and favorites cascade in storage.
func (s *PropertyService) Delete(ctx context.Context, actor *models.Account, id uuid.UUID) error {
	property, err := s.propertyRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if property == nil {
		return utils.ErrNotFound
	}

	if err := s.authorizeOwner(actor, property.OwnerID); err != nil {
		return err
	}

	if err := s.propertyRepo.Delete(ctx, id); err != nil {
		return err
	}
	utils.Logger.WithField("property_id", id).Info("Listing deleted")
	return nil
}

func (s *PropertyService) authorizeOwner(actor *models.Account, ownerID uuid.UUID) error {
	standing, err := actor.Standing()
	if err != nil {
		return err
	}
	if actor.ID != ownerID && !standing.IsAdmin() {
		return utils.ErrForbidden
	}
	return nil
}
