package middleware

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenIssuer identifies the service in every access token it signs.
const TokenIssuer = "Inmobiliaria"

// ParseToken checks the token's HS256 signature and standard claims and
// returns the subject account id. The role claim is deliberately ignored:
// role and agent status are re-read from storage on every request.
func ParseToken(tokenString string, secret []byte) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return uuid.Nil, errors.New("invalid token claims")
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		return uuid.Nil, errors.New("missing expiration claim")
	}
	if time.Unix(int64(exp), 0).Before(time.Now()) {
		return uuid.Nil, jwt.ErrTokenExpired
	}

	iss, ok := claims["iss"].(string)
	if !ok || iss != TokenIssuer {
		return uuid.Nil, errors.New("invalid token issuer")
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return uuid.Nil, errors.New("missing subject claim")
	}
	id, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, errors.New("malformed subject claim")
	}
	return id, nil
}
