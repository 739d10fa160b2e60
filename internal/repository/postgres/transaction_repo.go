package postgres

import (
	"context"

	"go-gladiator-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type transactionRepo struct {
	db *pgxpool.Pool
}

func NewTransactionRepository(db *pgxpool.Pool) domain.TransactionRepository {
	return &transactionRepo{db: db}
}

func (r *transactionRepo) Create(ctx context.Context, tx *domain.Transaction) error {
	query := `INSERT INTO transactions
              (client_id, professional_id, amount, currency, network, recipient_wallet, tx_hash, description, status, created_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
              RETURNING id, created_at`
	return r.db.QueryRow(ctx, query,
		tx.ClientID, tx.ProfessionalID, tx.Amount, tx.Currency, tx.Network,
		tx.RecipientWallet, tx.TxHash, tx.Description, tx.Status,
	).Scan(&tx.ID, &tx.CreatedAt)
}

func (r *transactionRepo) FetchByUser(ctx context.Context, userID string) ([]domain.Transaction, error) {
	query := `SELECT id, client_id, professional_id, amount, currency, network, recipient_wallet,
                     tx_hash, description, status, created_at
              FROM transactions
              WHERE client_id = $1 OR professional_id = $1
              ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txs []domain.Transaction
	for rows.Next() {
		var tx domain.Transaction
		if err := rows.Scan(
			&tx.ID, &tx.ClientID, &tx.ProfessionalID, &tx.Amount, &tx.Currency, &tx.Network,
			&tx.RecipientWallet, &tx.TxHash, &tx.Description, &tx.Status, &tx.CreatedAt,
		); err != nil {
			return nil, err
		}
		txs = append(txs, tx)
	}
	return txs, rows.Err()
}
