package usecase

import (
	"context"
	"strings"

	"woorkins_payments/internal/domain/entities"
	"woorkins_payments/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

// IAuthUseCase resolves the caller of a request.
type IAuthUseCase interface {
	Authenticate(ctx context.Context, authorizationHeader string) (entities.Account, error)
}

type AuthUseCase struct {
	verifier interfaces.ITokenVerifier
	profiles interfaces.IProfileRepository
	logger   *logrus.Logger
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(verifier interfaces.ITokenVerifier, profiles interfaces.IProfileRepository, logger *logrus.Logger) *AuthUseCase {
	return &AuthUseCase{verifier: verifier, profiles: profiles, logger: logger}
}

func (u *AuthUseCase) Authenticate(ctx context.Context, authorizationHeader string) (entities.Account, error) {
	token, ok := bearerToken(authorizationHeader)
	if !ok {
		return entities.Account{}, ErrUnauthenticated
	}

	identity, err := u.verifier.Verify(token)
	if err != nil || identity.UserID == "" {
		u.logger.WithError(err).Debug("[auth][usecase] token rejected")
		return entities.Account{}, ErrUnauthenticated
	}

	profile, err := u.profiles.GetByUserID(ctx, identity.UserID)
	if err != nil {
		u.logger.WithError(err).WithField("user_id", identity.UserID).Error("[auth][usecase] profile lookup failed")
		return entities.Account{}, err
	}
	if profile.ID == "" {
		u.logger.WithField("user_id", identity.UserID).Warn("[auth][usecase] profile not found")
		return entities.Account{}, ErrProfileNotFound
	}

	email := profile.Email
	if email == "" {
		email = identity.Email
	}
	return entities.Account{
		UserID:    identity.UserID,
		ProfileID: profile.ID,
		Email:     email,
		FullName:  profile.FullName,
	}, nil
}

func bearerToken(header string) (string, bool) {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}
