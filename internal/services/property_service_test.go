package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MathLeoYa/inmobiliaria/internal/dtos"
	"github.com/MathLeoYa/inmobiliaria/internal/models"
	"github.com/MathLeoYa/inmobiliaria/internal/utils"
)

func validCreateRequest() dtos.CreatePropertyRequest {
	return dtos.CreatePropertyRequest{
		Title:     "Sunny apartment downtown",
		Price:     85000,
		Category:  string(models.CategoryApartment),
		Operation: string(models.OperationSale),
		Bedrooms:  intPtr(2),
		Bathrooms: intPtr(1),
		Latitude:  floatPtr(-0.1807),
		Longitude: floatPtr(-78.4678),
		Province:  "Pichincha",
		City:      "Quito",
		Photos:    []string{"https://cdn.example.com/a.jpg", "https://cdn.example.com/b.jpg"},
	}
}

func newPropertyServiceForTest() (*PropertyService, *fakePropertyRepo, *fakePlanRepo, *fakeSubscriptionRepo) {
	props := newFakePropertyRepo()
	plans := newFakePlanRepo()
	subs := newFakeSubscriptionRepo(plans)
	return NewPropertyService(props, subs), props, plans, subs
}

func TestCreateListingRequiresPublisherStanding(t *testing.T) {
	svc, _, _, _ := newPropertyServiceForTest()

	_, err := svc.Create(context.Background(), plainClient(), validCreateRequest())
	require.ErrorIs(t, err, utils.ErrForbidden)

	suspended := approvedAgent()
	suspended.AgentStatus = models.AgentSuspended
	_, err = svc.Create(context.Background(), suspended, validCreateRequest())
	require.ErrorIs(t, err, utils.ErrForbidden)
}

func TestCreateListingRequiresActivePlan(t *testing.T) {
	svc, _, _, _ := newPropertyServiceForTest()

	_, err := svc.Create(context.Background(), approvedAgent(), validCreateRequest())
	require.ErrorIs(t, err, utils.ErrNoActivePlan)
}

func TestCreateListingQuota(t *testing.T) {
	svc, props, plans, subs := newPropertyServiceForTest()
	agent := approvedAgent()
	activePlanFor(plans, subs, agent.ID, 3, 10)

	// Two existing listings against a cap of three: one more is allowed.
	for i := 0; i < 2; i++ {
		_, err := svc.Create(context.Background(), agent, validCreateRequest())
		require.NoError(t, err)
	}
	count, err := props.CountByOwner(context.Background(), agent.ID)
	require.NoError(t, err)
	require.Equal(t, 2, count)

	_, err = svc.Create(context.Background(), agent, validCreateRequest())
	require.NoError(t, err)

	// At the cap the next attempt is refused, and the error carries the limit.
	_, err = svc.Create(context.Background(), agent, validCreateRequest())
	var quotaErr *utils.QuotaExceededError
	require.True(t, errors.As(err, &quotaErr))
	require.Equal(t, 3, quotaErr.Limit)
}

func TestCreateListingPhotoLimit(t *testing.T) {
	svc, _, plans, subs := newPropertyServiceForTest()
	agent := approvedAgent()
	activePlanFor(plans, subs, agent.ID, 10, 2)

	req := validCreateRequest()
	req.Photos = []string{"https://cdn.example.com/a.jpg", "https://cdn.example.com/b.jpg", "https://cdn.example.com/c.jpg"}

	_, err := svc.Create(context.Background(), agent, req)
	var photoErr *utils.PhotoLimitError
	require.True(t, errors.As(err, &photoErr))
	require.Equal(t, 2, photoErr.Limit)
}

func TestCreateListingAdminBypassesPlan(t *testing.T) {
	svc, _, _, _ := newPropertyServiceForTest()

	property, err := svc.Create(context.Background(), adminAccount(), validCreateRequest())
	require.NoError(t, err)
	require.Len(t, property.Photos, 2)
	require.Equal(t, 0, property.Photos[0].Position)
}

func TestCreateListingNoPhotos(t *testing.T) {
	svc, _, _, _ := newPropertyServiceForTest()

	req := validCreateRequest()
	req.Photos = nil
	_, err := svc.Create(context.Background(), adminAccount(), req)
	require.ErrorIs(t, err, utils.ErrNoPhotosProvided)
}

func TestCreateListingRoomRequirements(t *testing.T) {
	svc, _, _, _ := newPropertyServiceForTest()

	t.Run("HouseWithoutRoomsRejected", func(t *testing.T) {
		req := validCreateRequest()
		req.Category = string(models.CategoryHouse)
		req.Bedrooms = nil
		req.Bathrooms = nil

		_, err := svc.Create(context.Background(), adminAccount(), req)
		var missingErr *utils.MissingFieldsError
		require.True(t, errors.As(err, &missingErr))
		require.ElementsMatch(t, []string{"bedrooms", "bathrooms"}, missingErr.Fields)
	})

	t.Run("LandWithoutRoomsAccepted", func(t *testing.T) {
		req := validCreateRequest()
		req.Category = string(models.CategoryLand)
		req.Bedrooms = nil
		req.Bathrooms = nil

		_, err := svc.Create(context.Background(), adminAccount(), req)
		require.NoError(t, err)
	})

	t.Run("MissingCoordinatesRejected", func(t *testing.T) {
		req := validCreateRequest()
		req.Latitude = nil
		req.Longitude = nil

		_, err := svc.Create(context.Background(), adminAccount(), req)
		var missingErr *utils.MissingFieldsError
		require.True(t, errors.As(err, &missingErr))
		require.ElementsMatch(t, []string{"latitude", "longitude"}, missingErr.Fields)
	})

	t.Run("UnknownCategoryRejected", func(t *testing.T) {
		req := validCreateRequest()
		req.Category = "Castle"

		_, err := svc.Create(context.Background(), adminAccount(), req)
		var missingErr *utils.MissingFieldsError
		require.True(t, errors.As(err, &missingErr))
		require.Contains(t, missingErr.Fields, "category")
	})
}

func TestUpdateListingOwnership(t *testing.T) {
	svc, _, _, _ := newPropertyServiceForTest()
	agent := adminAccount()

	created, err := svc.Create(context.Background(), agent, validCreateRequest())
	require.NoError(t, err)

	update := dtos.UpdatePropertyRequest{
		Title:     "Renovated apartment",
		Price:     90000,
		Category:  string(models.CategoryApartment),
		Operation: string(models.OperationSale),
		Bedrooms:  intPtr(3),
		Bathrooms: intPtr(2),
		Latitude:  floatPtr(-0.1807),
		Longitude: floatPtr(-78.4678),
		Province:  "Pichincha",
		City:      "Quito",
	}

	t.Run("StrangerForbidden", func(t *testing.T) {
		stranger := approvedAgent()
		_, err := svc.Update(context.Background(), stranger, created.ID, update)
		require.ErrorIs(t, err, utils.ErrForbidden)
	})

	t.Run("OwnerUpdates", func(t *testing.T) {
		updated, err := svc.Update(context.Background(), agent, created.ID, update)
		require.NoError(t, err)
		require.Equal(t, "Renovated apartment", updated.Title)
		require.Equal(t, 3, *updated.Bedrooms)
	})

	t.Run("DeleteByStrangerForbidden", func(t *testing.T) {
		err := svc.Delete(context.Background(), approvedAgent(), created.ID)
		require.ErrorIs(t, err, utils.ErrForbidden)
	})

	t.Run("DeleteByOwner", func(t *testing.T) {
		require.NoError(t, svc.Delete(context.Background(), agent, created.ID))
		_, err := svc.Detail(context.Background(), created.ID, nil)
		require.ErrorIs(t, err, utils.ErrNotFound)
	})
}
