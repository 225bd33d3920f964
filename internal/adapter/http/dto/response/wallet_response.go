package response

import (
	"time"

	"woorkins_payments/internal/domain/entities"
)

type WalletResponse struct {
	ProfileID        string     `json:"profile_id"`
	PendingBalance   float64    `json:"pending_balance"`
	AvailableBalance float64    `json:"available_balance"`
	TotalEarned      float64    `json:"total_earned"`
	TotalWithdrawn   float64    `json:"total_withdrawn"`
	UpdatedAt        *time.Time `json:"updated_at,omitempty"`
}

func FromWallet(w entities.FreelancerWallet) WalletResponse {
	return WalletResponse{
		ProfileID:        w.ProfileID,
		PendingBalance:   w.PendingBalance.InexactFloat64(),
		AvailableBalance: w.AvailableBalance.InexactFloat64(),
		TotalEarned:      w.TotalEarned.InexactFloat64(),
		TotalWithdrawn:   w.TotalWithdrawn.InexactFloat64(),
		UpdatedAt:        optionalTime(w.UpdatedAt),
	}
}

type WoorkoinBalanceResponse struct {
	ProfileID string     `json:"profile_id"`
	Balance   int64      `json:"balance"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

func FromWoorkoinBalance(b entities.WoorkoinBalance) WoorkoinBalanceResponse {
	return WoorkoinBalanceResponse{ProfileID: b.ProfileID, Balance: b.Balance, UpdatedAt: optionalTime(b.UpdatedAt)}
}

type WoorkoinTransactionResponse struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Amount      int64     `json:"amount"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

type WoorkoinTransactionsResponse struct {
	Transactions []WoorkoinTransactionResponse `json:"transactions"`
}

func FromWoorkoinTransactions(txs []entities.WoorkoinTransaction) WoorkoinTransactionsResponse {
	out := WoorkoinTransactionsResponse{Transactions: make([]WoorkoinTransactionResponse, 0, len(txs))}
	for _, t := range txs {
		out.Transactions = append(out.Transactions, WoorkoinTransactionResponse{
			ID:          t.ID,
			Type:        t.Type,
			Amount:      t.Amount,
			Description: t.Description,
			CreatedAt:   t.CreatedAt,
		})
	}
	return out
}

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
