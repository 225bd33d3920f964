package usecase

import (
	"context"
	"errors"
	"testing"

	"woorkins_payments/internal/domain/entities"
	mock_interfaces "woorkins_payments/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestAuthUseCase_Authenticate(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves profile", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		verifier := mock_interfaces.NewMockITokenVerifier(ctrl)
		profiles := mock_interfaces.NewMockIProfileRepository(ctrl)
		verifier.EXPECT().Verify("abc").Return(entities.Identity{UserID: "u1", Email: "token@woorkins.test"}, nil)
		profiles.EXPECT().GetByUserID(gomock.Any(), "u1").Return(entities.Profile{ID: "p1", UserID: "u1", FullName: "Ana"}, nil)

		acc, err := NewAuthUseCase(verifier, profiles, quietLogger()).Authenticate(ctx, "Bearer abc")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if acc.ProfileID != "p1" || acc.Email != "token@woorkins.test" || acc.FullName != "Ana" {
			t.Fatalf("unexpected account: %+v", acc)
		}
	})

	t.Run("malformed header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := NewAuthUseCase(mock_interfaces.NewMockITokenVerifier(ctrl), mock_interfaces.NewMockIProfileRepository(ctrl), quietLogger())

		for _, h := range []string{"", "abc", "Basic abc", "Bearer"} {
			if _, err := uc.Authenticate(ctx, h); !errors.Is(err, ErrUnauthenticated) {
				t.Fatalf("header %q: expected ErrUnauthenticated, got %v", h, err)
			}
		}
	})

	t.Run("invalid token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		verifier := mock_interfaces.NewMockITokenVerifier(ctrl)
		verifier.EXPECT().Verify("bad").Return(entities.Identity{}, errors.New("signature is invalid"))

		_, err := NewAuthUseCase(verifier, mock_interfaces.NewMockIProfileRepository(ctrl), quietLogger()).Authenticate(ctx, "bearer bad")
		if !errors.Is(err, ErrUnauthenticated) {
			t.Fatalf("expected ErrUnauthenticated, got %v", err)
		}
	})

	t.Run("profile missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		verifier := mock_interfaces.NewMockITokenVerifier(ctrl)
		profiles := mock_interfaces.NewMockIProfileRepository(ctrl)
		verifier.EXPECT().Verify("abc").Return(entities.Identity{UserID: "u2"}, nil)
		profiles.EXPECT().GetByUserID(gomock.Any(), "u2").Return(entities.Profile{}, nil)

		_, err := NewAuthUseCase(verifier, profiles, quietLogger()).Authenticate(ctx, "Bearer abc")
		if !errors.Is(err, ErrProfileNotFound) {
			t.Fatalf("expected ErrProfileNotFound, got %v", err)
		}
	})
}
