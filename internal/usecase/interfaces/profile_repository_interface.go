package interfaces

import (
	"context"

	"woorkins_payments/internal/domain/entities"
)

// IProfileRepository resolves auth users to internal profiles.
// A zero Profile means no row exists.
type IProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (entities.Profile, error)
}

// ITokenVerifier validates bearer credentials issued by the auth provider.
type ITokenVerifier interface {
	Verify(token string) (entities.Identity, error)
}
