package domain

import (
	"context"
	"time"
)

// Single supported asset/network pair. Opaque constants; no on-chain logic.
const (
	CurrencyUSDT = "USDT"
	NetworkTRC20 = "TRC20"
)

const (
	TxStatusPending    = "pending"
	TxStatusConfirming = "confirming"
)

// Transaction records a client-declared crypto payment intent. The tx hash,
// when present, is an unverified claim; no blockchain watcher exists.
type Transaction struct {
	ID              string    `json:"id"`
	ClientID        string    `json:"client_id"`
	ProfessionalID  string    `json:"professional_id"`
	Amount          float64   `json:"amount"`
	Currency        string    `json:"currency"`
	Network         string    `json:"network"`
	RecipientWallet string    `json:"recipient_wallet"`
	TxHash          *string   `json:"tx_hash"`
	Description     *string   `json:"description"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

type TransactionRepository interface {
	Create(ctx context.Context, tx *Transaction) error
	// FetchByUser returns transactions where the user is either side, newest first.
	FetchByUser(ctx context.Context, userID string) ([]Transaction, error)
}

type PaymentUsecase interface {
	CreatePaymentIntent(ctx context.Context, professionalID string, amount float64, txHash, description string) (*Transaction, error)
	ListMyTransactions(ctx context.Context) ([]Transaction, error)
}
