package domain

// Balances are stored in minor units (kobo, cents, hundredths of an
// AGC) to keep arithmetic integral.
type Wallet struct {
	ID         string `json:"id"`
	UserID     string `json:"user_id"`
	BalanceNGN int64  `json:"balance_ngn"`
	BalanceUSD int64  `json:"balance_usd"`
	BalanceAGC int64  `json:"balance_agc"`
	KYCStatus  string `json:"kyc_status"`
	CreatedOn  string `json:"created_on"`
}

type TransactionType string

const (
	TransactionTypeVote     TransactionType = "VOTE"
	TransactionTypeDownload TransactionType = "DOWNLOAD"
)

// AGC debit amounts, in hundredths.
const (
	VoteCostAGC     int64 = 100
	DownloadCostAGC int64 = 50
)

type Transaction struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	WalletID  string          `json:"wallet_id"`
	Type      TransactionType `json:"type"`
	Amount    int64           `json:"amount"`
	Currency  string          `json:"currency"`
	Target    *string         `json:"target,omitempty"` // award or resource being charged for
	Status    string          `json:"status"`
	CreatedOn string          `json:"created_on"`
}
