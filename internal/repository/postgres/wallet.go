package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"scef-chapters-backend/internal/domain"
	"scef-chapters-backend/internal/repository"
)

type walletRepository struct {
	db *sql.DB
}

func NewWalletRepository(db *sql.DB) repository.WalletRepository {
	return &walletRepository{db: db}
}

func (r *walletRepository) Create(ctx context.Context, w *domain.Wallet) error {
	query := `INSERT INTO wallets (id, user_id, balance_ngn, balance_usd, balance_agc, kyc_status, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, query, w.ID, w.UserID, w.BalanceNGN, w.BalanceUSD, w.BalanceAGC, w.KYCStatus, now)
	if err != nil {
		return err
	}
	w.CreatedOn = now.Format(time.RFC3339)
	return nil
}

func (r *walletRepository) GetByUser(ctx context.Context, userID string) (*domain.Wallet, error) {
	w := &domain.Wallet{}
	var createdOn time.Time
	query := `SELECT id, user_id, balance_ngn, balance_usd, balance_agc, kyc_status, created_on
	          FROM wallets WHERE user_id = $1`
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&w.ID, &w.UserID, &w.BalanceNGN, &w.BalanceUSD, &w.BalanceAGC, &w.KYCStatus, &createdOn)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("wallet for user %s: %w", userID, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	w.CreatedOn = createdOn.Format(time.RFC3339)
	return w, nil
}

func (r *walletRepository) DebitAGC(ctx context.Context, walletID string, amount int64, txn *domain.Transaction) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// Guarded update: the balance check and the decrement are one
	// statement, so concurrent debits cannot overdraw.
	res, err := tx.ExecContext(ctx,
		`UPDATE wallets SET balance_agc = balance_agc - $1 WHERE id = $2 AND balance_agc >= $1`,
		amount, walletID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("wallet %s cannot cover %d: %w", walletID, amount, domain.ErrInsufficientBalance)
	}

	now := time.Now().UTC()
	_, err = tx.ExecContext(ctx,
		`INSERT INTO transactions (id, user_id, wallet_id, type, amount, currency, target, status, created_on)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		txn.ID, txn.UserID, txn.WalletID, txn.Type, txn.Amount, txn.Currency, txn.Target, txn.Status, now)
	if err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	txn.CreatedOn = now.Format(time.RFC3339)
	return nil
}

func (r *walletRepository) ListTransactions(ctx context.Context, userID string) ([]domain.Transaction, error) {
	query := `SELECT id, user_id, wallet_id, type, amount, currency, target, status, created_on
	          FROM transactions WHERE user_id = $1 ORDER BY created_on DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		var t domain.Transaction
		var createdOn time.Time
		if err := rows.Scan(&t.ID, &t.UserID, &t.WalletID, &t.Type, &t.Amount, &t.Currency, &t.Target, &t.Status, &createdOn); err != nil {
			return nil, err
		}
		t.CreatedOn = createdOn.Format(time.RFC3339)
		txns = append(txns, t)
	}
	return txns, rows.Err()
}
