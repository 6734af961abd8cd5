package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"scef-chapters-backend/internal/domain"
	"scef-chapters-backend/internal/service"
)

func TestDebitAGC_Vote(t *testing.T) {
	walletRepo := new(MockWalletRepo)
	svc := service.NewWalletService(walletRepo)

	walletRepo.On("GetByUser", mock.Anything, "u_1").Return(&domain.Wallet{ID: "w_1", UserID: "u_1", BalanceAGC: 10000}, nil)
	walletRepo.On("DebitAGC", mock.Anything, "w_1", int64(domain.VoteCostAGC), mock.MatchedBy(func(txn *domain.Transaction) bool {
		return txn.Type == domain.TransactionTypeVote &&
			txn.Amount == domain.VoteCostAGC &&
			txn.Currency == "AGC" &&
			txn.Target != nil && *txn.Target == "idea_42"
	})).Return(nil)

	txn, err := svc.DebitAGC(context.Background(), "u_1", domain.TransactionTypeVote, "idea_42")
	assert.NoError(t, err)
	assert.Equal(t, int64(domain.VoteCostAGC), txn.Amount)
	walletRepo.AssertExpectations(t)
}

func TestDebitAGC_Download(t *testing.T) {
	walletRepo := new(MockWalletRepo)
	svc := service.NewWalletService(walletRepo)

	walletRepo.On("GetByUser", mock.Anything, "u_1").Return(&domain.Wallet{ID: "w_1", UserID: "u_1"}, nil)
	walletRepo.On("DebitAGC", mock.Anything, "w_1", int64(domain.DownloadCostAGC), mock.MatchedBy(func(txn *domain.Transaction) bool {
		return txn.Type == domain.TransactionTypeDownload && txn.Target == nil
	})).Return(nil)

	txn, err := svc.DebitAGC(context.Background(), "u_1", domain.TransactionTypeDownload, "")
	assert.NoError(t, err)
	assert.Equal(t, int64(domain.DownloadCostAGC), txn.Amount)
}

func TestDebitAGC_UnknownType(t *testing.T) {
	walletRepo := new(MockWalletRepo)
	svc := service.NewWalletService(walletRepo)

	_, err := svc.DebitAGC(context.Background(), "u_1", domain.TransactionType("TIP"), "")
	assert.ErrorIs(t, err, domain.ErrValidation)
	walletRepo.AssertNotCalled(t, "GetByUser")
}

func TestDebitAGC_InsufficientBalance(t *testing.T) {
	walletRepo := new(MockWalletRepo)
	svc := service.NewWalletService(walletRepo)

	walletRepo.On("GetByUser", mock.Anything, "u_1").Return(&domain.Wallet{ID: "w_1", UserID: "u_1", BalanceAGC: 10}, nil)
	walletRepo.On("DebitAGC", mock.Anything, "w_1", int64(domain.VoteCostAGC), mock.Anything).Return(domain.ErrInsufficientBalance)

	_, err := svc.DebitAGC(context.Background(), "u_1", domain.TransactionTypeVote, "idea_42")
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
}
