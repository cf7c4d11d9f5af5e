package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/MathLeoYa/inmobiliaria/internal/models"
	"github.com/MathLeoYa/inmobiliaria/internal/utils"
)

type contextKey string

const (
	ContextKeyAccountID = contextKey("accountID")
	ContextKeyAccount   = contextKey("account")
)

// AccountReader is the slice of the account repository the identity layer
// needs for its live status re-check.
type AccountReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Account, error)
}

// Auth – for protected endpoints. The JWT is read from Authorization:
// Bearer. A valid signature is not enough: the account's current role and
// agent status are re-read from storage on every request, so a suspension
// takes effect immediately no matter how fresh the token is.
func Auth(accounts AccountReader, secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr, err := extractAccessToken(r)
			if err != nil {
				utils.RespondErrorWithCode(
					w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, err.Error(), nil,
				)
				return
			}

			accountID, vErr := ParseToken(tokenStr, secret)
			if vErr != nil {
				if errors.Is(vErr, jwt.ErrTokenExpired) {
					utils.RespondErrorWithCode(
						w, http.StatusUnauthorized, utils.ErrCodeTokenExpired, "Token expired", nil, vErr,
					)
					return
				}
				utils.RespondErrorWithCode(
					w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Invalid token", nil, vErr,
				)
				return
			}

			account, aErr := accounts.GetByID(r.Context(), accountID)
			if aErr != nil {
				utils.RespondErrorWithCode(
					w, http.StatusInternalServerError, utils.ErrCodeInternal, "Could not verify account", nil, aErr,
				)
				return
			}
			if account == nil {
				utils.RespondErrorWithCode(
					w, http.StatusUnauthorized, utils.ErrCodeAccountNotFound, "Account no longer exists", nil,
				)
				return
			}

			standing, sErr := account.Standing()
			if sErr != nil {
				utils.RespondErrorWithCode(
					w, http.StatusInternalServerError, utils.ErrCodeInternal, "Could not verify account", nil, sErr,
				)
				return
			}
			if standing.Suspended() {
				utils.RespondErrorWithCode(
					w, http.StatusForbidden, utils.ErrCodeAccountSuspended,
					"Your account has been suspended. Contact the administrator.", nil,
				)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyAccountID, accountID)
			ctx = context.WithValue(ctx, ContextKeyAccount, account)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuth lets the request through anonymously when no usable token is
// present; a decodable token only contributes the caller identity used to
// annotate catalog rows with is_favorited.
func OptionalAuth(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr, _ := extractAccessToken(r)
			if tokenStr == "" {
				next.ServeHTTP(w, r)
				return
			}

			accountID, err := ParseToken(tokenStr, secret)
			if err != nil {
				// Degrade to anonymous rather than rejecting.
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyAccountID, accountID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin must be layered after Auth. The decision uses the live
// account stored by Auth, never the token payload.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		account := AccountFromContext(r.Context())
		if account == nil {
			utils.RespondErrorWithCode(
				w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "No account in context", nil,
			)
			return
		}
		standing, err := account.Standing()
		if err != nil || !standing.IsAdmin() {
			utils.RespondErrorWithCode(
				w, http.StatusForbidden, utils.ErrCodeForbidden, "Administrator role required", nil,
			)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// AccountIDFromContext returns the authenticated caller id, or nil for
// anonymous requests that passed through OptionalAuth.
func AccountIDFromContext(ctx context.Context) *uuid.UUID {
	if v, ok := ctx.Value(ContextKeyAccountID).(uuid.UUID); ok {
		return &v
	}
	return nil
}

// AccountFromContext returns the live account stored by Auth.
func AccountFromContext(ctx context.Context) *models.Account {
	if v, ok := ctx.Value(ContextKeyAccount).(*models.Account); ok {
		return v
	}
	return nil
}

// helper: read the bearer token from the Authorization header
func extractAccessToken(r *http.Request) (string, error) {
	h := r.Header.Get("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return "", errors.New("missing Authorization header")
	}
	return strings.TrimPrefix(h, "Bearer "), nil
}
