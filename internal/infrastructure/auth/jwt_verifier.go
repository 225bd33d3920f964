package auth

import (
	"errors"
	"fmt"

	"woorkins_payments/internal/domain/entities"
	"woorkins_payments/internal/usecase/interfaces"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidJWT    = errors.New("invalid JWT token")
	ErrExpiredJWT    = errors.New("JWT token expired")
	ErrMissingSecret = errors.New("missing AUTH_JWT_SECRET")
)

// Claims are the claims of an access token issued by the auth provider. The
// subject is the auth user id.
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// JWTVerifier validates HS256 access tokens signed with the project secret.
type JWTVerifier struct {
	secret []byte
}

var _ interfaces.ITokenVerifier = (*JWTVerifier)(nil)

func NewJWTVerifier(secret string) (*JWTVerifier, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	return &JWTVerifier{secret: []byte(secret)}, nil
}

func (v *JWTVerifier) Verify(tokenString string) (entities.Identity, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return entities.Identity{}, ErrExpiredJWT
		}
		return entities.Identity{}, ErrInvalidJWT
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return entities.Identity{}, ErrInvalidJWT
	}
	return entities.Identity{UserID: claims.Subject, Email: claims.Email}, nil
}
