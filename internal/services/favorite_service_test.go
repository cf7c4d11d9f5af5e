package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/MathLeoYa/inmobiliaria/internal/models"
	"github.com/MathLeoYa/inmobiliaria/internal/utils"
)

func TestFavoriteToggle(t *testing.T) {
	props := newFakePropertyRepo()
	svc := NewFavoriteService(newFakeFavoriteRepo(), props)

	property := &models.Property{ID: uuid.New(), OwnerID: uuid.New()}
	props.properties[property.ID] = property
	accountID := uuid.New()

	favorited, err := svc.Toggle(context.Background(), accountID, property.ID)
	require.NoError(t, err)
	require.True(t, favorited)

	favorited, err = svc.Toggle(context.Background(), accountID, property.ID)
	require.NoError(t, err)
	require.False(t, favorited)

	// Back where we started; toggling is an involution.
	favorited, err = svc.Toggle(context.Background(), accountID, property.ID)
	require.NoError(t, err)
	require.True(t, favorited)
}

func TestFavoriteToggleUnknownProperty(t *testing.T) {
	svc := NewFavoriteService(newFakeFavoriteRepo(), newFakePropertyRepo())

	_, err := svc.Toggle(context.Background(), uuid.New(), uuid.New())
	require.ErrorIs(t, err, utils.ErrNotFound)
}
