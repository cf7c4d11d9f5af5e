package services

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/MathLeoYa/inmobiliaria/internal/middleware"
	"github.com/MathLeoYa/inmobiliaria/internal/models"
	"github.com/MathLeoYa/inmobiliaria/internal/repositories"
	"github.com/MathLeoYa/inmobiliaria/internal/utils"
)

const accessTokenTTL = 7 * 24 * time.Hour

type AuthService struct {
	accountRepo repositories.AccountRepository
	jwtSecret   []byte
}

func NewAuthService(accountRepo repositories.AccountRepository, jwtSecret []byte) *AuthService {
	return &AuthService{
		accountRepo: accountRepo,
		jwtSecret:   jwtSecret,
	}
}

// Register creates a fresh CLIENT account. Every account starts as a plain
// client; agent privileges are only ever granted through the request +
// approval flow.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*models.Account, error) {
	existing, err := s.accountRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, utils.ErrEmailExists
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	account := &models.Account{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleClient,
		AgentStatus:  models.AgentNotRequested,
	}
	if err := s.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	utils.Logger.WithField("account_id", account.ID).Info("Account registered")
	return account, nil
}

// Login verifies the credentials and issues an access token. Unknown email
// and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.Account, error) {
	account, err := s.accountRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if account == nil {
		return "", nil, utils.ErrInvalidCredentials
	}
	if !utils.CheckPasswordHash(password, account.PasswordHash) {
		return "", nil, utils.ErrInvalidCredentials
	}

	standing, err := account.Standing()
	if err != nil {
		return "", nil, err
	}
	if standing.Suspended() {
		return "", nil, utils.ErrAccountSuspended
	}

	token, err := s.issueToken(account)
	if err != nil {
		return "", nil, err
	}
	return token, account, nil
}

// issueToken signs a short-claims HS256 token. The embedded role is a
// display hint for the client; authorization always re-reads the account.
func (s *AuthService) issueToken(account *models.Account) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"iss":  middleware.TokenIssuer,
		"sub":  account.ID.String(),
		"role": string(account.Role),
		"iat":  now.Unix(),
		"exp":  now.Add(accessTokenTTL).Unix(),
		"jti":  uuid.NewString(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}
