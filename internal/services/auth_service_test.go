package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MathLeoYa/inmobiliaria/internal/middleware"
	"github.com/MathLeoYa/inmobiliaria/internal/models"
	"github.com/MathLeoYa/inmobiliaria/internal/utils"
)

var testSecret = []byte("test-secret-not-for-production")

func TestRegisterAndLogin(t *testing.T) {
	accounts := newFakeAccountRepo()
	svc := NewAuthService(accounts, testSecret)

	account, err := svc.Register(context.Background(), "Maria", "maria@example.com", "s3cret-password")
	require.NoError(t, err)
	require.Equal(t, models.RoleClient, account.Role)
	require.Equal(t, models.AgentNotRequested, account.AgentStatus)
	require.NotEqual(t, "s3cret-password", account.PasswordHash)

	token, logged, err := svc.Login(context.Background(), "maria@example.com", "s3cret-password")
	require.NoError(t, err)
	require.Equal(t, account.ID, logged.ID)

	// The token parses back to the same subject.
	id, err := middleware.ParseToken(token, testSecret)
	require.NoError(t, err)
	require.Equal(t, account.ID, id)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	accounts := newFakeAccountRepo()
	svc := NewAuthService(accounts, testSecret)

	_, err := svc.Register(context.Background(), "Maria", "maria@example.com", "s3cret-password")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "Other", "maria@example.com", "another-password")
	require.ErrorIs(t, err, utils.ErrEmailExists)
}

func TestLoginFailures(t *testing.T) {
	accounts := newFakeAccountRepo()
	svc := NewAuthService(accounts, testSecret)

	_, err := svc.Register(context.Background(), "Maria", "maria@example.com", "s3cret-password")
	require.NoError(t, err)

	t.Run("WrongPassword", func(t *testing.T) {
		_, _, err := svc.Login(context.Background(), "maria@example.com", "wrong")
		require.ErrorIs(t, err, utils.ErrInvalidCredentials)
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		_, _, err := svc.Login(context.Background(), "nobody@example.com", "whatever")
		require.ErrorIs(t, err, utils.ErrInvalidCredentials)
	})

	t.Run("SuspendedAgent", func(t *testing.T) {
		hash, err := utils.HashPassword("agent-password")
		require.NoError(t, err)
		accounts.add(&models.Account{
			Name: "Suspended", Email: "suspended@example.com", PasswordHash: hash,
			Role: models.RoleAgent, AgentStatus: models.AgentSuspended,
		})

		_, _, err = svc.Login(context.Background(), "suspended@example.com", "agent-password")
		require.ErrorIs(t, err, utils.ErrAccountSuspended)
	})
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	accounts := newFakeAccountRepo()
	svc := NewAuthService(accounts, testSecret)

	_, err := svc.Register(context.Background(), "Maria", "maria@example.com", "s3cret-password")
	require.NoError(t, err)
	token, _, err := svc.Login(context.Background(), "maria@example.com", "s3cret-password")
	require.NoError(t, err)

	_, err = middleware.ParseToken(token, []byte("a-different-secret"))
	require.Error(t, err)
}
