package usecase

import (
	"context"
	"errors"
	"strings"

	"go-gladiator-backend/internal/domain"
	"go-gladiator-backend/pkg/apperror"
)

type paymentUsecase struct {
	transactionRepo  domain.TransactionRepository
	professionalRepo domain.ProfessionalRepository
}

func NewPaymentUsecase(transactionRepo domain.TransactionRepository, professionalRepo domain.ProfessionalRepository) domain.PaymentUsecase {
	return &paymentUsecase{
		transactionRepo:  transactionRepo,
		professionalRepo: professionalRepo,
	}
}

// CreatePaymentIntent records a client-declared USDT/TRC20 transfer. The
// recipient wallet is copied from the professional's profile at creation
// time; the tx hash is stored as an unverified claim.
func (u *paymentUsecase) CreatePaymentIntent(ctx context.Context, professionalID string, amount float64, txHash, description string) (*domain.Transaction, error) {
	clientID, _, err := identityFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if amount <= 0 {
		return nil, apperror.BadRequest("Amount must be greater than zero")
	}

	pro, err := u.professionalRepo.GetByID(ctx, professionalID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Professional not found")
		}
		return nil, err
	}
	if !pro.AcceptsCrypto || pro.CryptoWalletTRC20 == nil || strings.TrimSpace(*pro.CryptoWalletTRC20) == "" {
		return nil, apperror.BadRequest("This professional does not accept crypto payments")
	}

	hash := strings.TrimSpace(txHash)
	status := domain.TxStatusPending
	if hash != "" {
		status = domain.TxStatusConfirming
	}

	tx := &domain.Transaction{
		ClientID:        clientID,
		ProfessionalID:  professionalID,
		Amount:          amount,
		Currency:        domain.CurrencyUSDT,
		Network:         domain.NetworkTRC20,
		RecipientWallet: *pro.CryptoWalletTRC20,
		Status:          status,
	}
	if hash != "" {
		tx.TxHash = &hash
	}
	if desc := strings.TrimSpace(description); desc != "" {
		tx.Description = &desc
	}

	if err := u.transactionRepo.Create(ctx, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

func (u *paymentUsecase) ListMyTransactions(ctx context.Context) ([]domain.Transaction, error) {
	userID, _, err := identityFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return u.transactionRepo.FetchByUser(ctx, userID)
}
