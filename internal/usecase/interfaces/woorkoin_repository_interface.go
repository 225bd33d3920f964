package interfaces

import (
	"context"

	"woorkins_payments/internal/domain/entities"
)

// IWoorkoinPurchaseRepository persists purchase payment records keyed by the
// processor payment id. Upsert follows the same rules as
// IProposalPaymentRepository.Upsert.
type IWoorkoinPurchaseRepository interface {
	Upsert(ctx context.Context, p entities.WoorkoinPurchase) (entities.WoorkoinPurchase, error)
	GetByID(ctx context.Context, id string) (entities.WoorkoinPurchase, error)
}

// IWoorkoinLedgerRepository owns balances and the transaction log.
//
// CreditPurchase marks the purchase as credited, increments the balance and
// appends entry as one unit. It returns false, nil when the purchase was
// already credited or is not paid.
type IWoorkoinLedgerRepository interface {
	CreditPurchase(ctx context.Context, purchase entities.WoorkoinPurchase, entry entities.WoorkoinTransaction) (bool, error)
	GetBalance(ctx context.Context, profileID string) (entities.WoorkoinBalance, error)
	ListTransactions(ctx context.Context, profileID string, limit int32) ([]entities.WoorkoinTransaction, error)
}
