package service

import (
	"context"
	"fmt"

	"scef-chapters-backend/internal/domain"
	"scef-chapters-backend/internal/repository"
)

type walletService struct {
	walletRepo repository.WalletRepository
}

func NewWalletService(walletRepo repository.WalletRepository) WalletService {
	return &walletService{walletRepo: walletRepo}
}

func (s *walletService) GetWallet(ctx context.Context, userID string) (*domain.Wallet, error) {
	return s.walletRepo.GetByUser(ctx, userID)
}

func (s *walletService) DebitAGC(ctx context.Context, userID string, kind domain.TransactionType, target string) (*domain.Transaction, error) {
	var amount int64
	switch kind {
	case domain.TransactionTypeVote:
		amount = domain.VoteCostAGC
	case domain.TransactionTypeDownload:
		amount = domain.DownloadCostAGC
	default:
		return nil, fmt.Errorf("unknown debit type %q: %w", kind, domain.ErrValidation)
	}

	w, err := s.walletRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	txn := &domain.Transaction{
		ID:       domain.NewID("tx"),
		UserID:   userID,
		WalletID: w.ID,
		Type:     kind,
		Amount:   amount,
		Currency: "AGC",
		Status:   "COMPLETED",
	}
	if target != "" {
		txn.Target = &target
	}
	if err := s.walletRepo.DebitAGC(ctx, w.ID, amount, txn); err != nil {
		return nil, fmt.Errorf("failed to debit wallet: %w", err)
	}
	return txn, nil
}

func (s *walletService) ListTransactions(ctx context.Context, userID string) ([]domain.Transaction, error) {
	return s.walletRepo.ListTransactions(ctx, userID)
}
