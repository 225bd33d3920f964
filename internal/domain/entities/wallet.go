package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// FreelancerWallet holds a payee's marketplace earnings.
//
// Payments credit PendingBalance only; moving funds to AvailableBalance is
// done by the release flow, which lives elsewhere.
type FreelancerWallet struct {
	ProfileID        string
	PendingBalance   decimal.Decimal
	AvailableBalance decimal.Decimal
	TotalEarned      decimal.Decimal
	TotalWithdrawn   decimal.Decimal
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func EmptyWallet(profileID string) FreelancerWallet {
	return FreelancerWallet{
		ProfileID:        profileID,
		PendingBalance:   decimal.Zero,
		AvailableBalance: decimal.Zero,
		TotalEarned:      decimal.Zero,
		TotalWithdrawn:   decimal.Zero,
	}
}
