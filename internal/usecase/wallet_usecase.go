package usecase

import (
	"context"
	"strings"

	"woorkins_payments/internal/domain/entities"
	"woorkins_payments/internal/usecase/interfaces"
)

const defaultTransactionsLimit = 50

// IWalletUseCase exposes the caller's balances.
type IWalletUseCase interface {
	GetWallet(ctx context.Context, profileID string) (entities.FreelancerWallet, error)
	GetWoorkoinBalance(ctx context.Context, profileID string) (entities.WoorkoinBalance, error)
	ListWoorkoinTransactions(ctx context.Context, profileID string, limit int) ([]entities.WoorkoinTransaction, error)
}

type WalletUseCase struct {
	wallets   interfaces.IFreelancerWalletRepository
	woorkoins interfaces.IWoorkoinLedgerRepository
}

var _ IWalletUseCase = (*WalletUseCase)(nil)

func NewWalletUseCase(wallets interfaces.IFreelancerWalletRepository, woorkoins interfaces.IWoorkoinLedgerRepository) *WalletUseCase {
	return &WalletUseCase{wallets: wallets, woorkoins: woorkoins}
}

// GetWallet returns an all-zero wallet when the profile was never credited.
func (u *WalletUseCase) GetWallet(ctx context.Context, profileID string) (entities.FreelancerWallet, error) {
	profileID = strings.TrimSpace(profileID)
	if profileID == "" {
		return entities.FreelancerWallet{}, ErrProfileNotFound
	}
	w, err := u.wallets.GetByProfileID(ctx, profileID)
	if err != nil {
		return entities.FreelancerWallet{}, err
	}
	if w.ProfileID == "" {
		return entities.EmptyWallet(profileID), nil
	}
	return w, nil
}

func (u *WalletUseCase) GetWoorkoinBalance(ctx context.Context, profileID string) (entities.WoorkoinBalance, error) {
	profileID = strings.TrimSpace(profileID)
	if profileID == "" {
		return entities.WoorkoinBalance{}, ErrProfileNotFound
	}
	b, err := u.woorkoins.GetBalance(ctx, profileID)
	if err != nil {
		return entities.WoorkoinBalance{}, err
	}
	if b.ProfileID == "" {
		return entities.WoorkoinBalance{ProfileID: profileID}, nil
	}
	return b, nil
}

func (u *WalletUseCase) ListWoorkoinTransactions(ctx context.Context, profileID string, limit int) ([]entities.WoorkoinTransaction, error) {
	profileID = strings.TrimSpace(profileID)
	if profileID == "" {
		return nil, ErrProfileNotFound
	}
	if limit <= 0 || limit > 200 {
		limit = defaultTransactionsLimit
	}
	return u.woorkoins.ListTransactions(ctx, profileID, int32(limit))
}
