package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Backend transaction vocabulary.
const (
	TxDeposit      = "DEPOSIT"
	TxWithdraw     = "WITHDRAW"
	TxGameStake    = "GAME_STAKE"
	TxGameWinnings = "GAME_WINNINGS"

	TxPending   = "PENDING"
	TxCompleted = "COMPLETED"
	TxFailed    = "FAILED"
)

// Client-side buckets every backend type collapses into.
const (
	KindDeposit    = "deposit"
	KindWithdrawal = "withdrawal"
)

type Transaction struct {
	ID               string          `json:"_id"`
	Type             string          `json:"type"`
	Status           string          `json:"status"`
	Amount           decimal.Decimal `json:"amount"`
	User             UserRef         `json:"user"`
	Description      string          `json:"description,omitempty"`
	Notes            string          `json:"notes,omitempty"`
	Method           string          `json:"method,omitempty"`
	Reference        string          `json:"reference,omitempty"`
	TransactionFee   decimal.Decimal `json:"transactionFee"`
	Balance          decimal.Decimal `json:"balance"`
	AccountDetails   string          `json:"accountDetails,omitempty"`
	WithdrawalMethod string          `json:"withdrawalMethod,omitempty"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

// Is reports whether the raw type and status match, ignoring case.
func (t Transaction) Is(txType, status string) bool {
	return strings.EqualFold(t.Type, txType) && strings.EqualFold(t.Status, status)
}

type TransactionListResponse struct {
	Transactions []Transaction `json:"transactions"`
}

type PendingWithdrawalResponse struct {
	PendingWithdrawals []Transaction `json:"pendingWithdrawals"`
}

type TransactionStatusRequest struct {
	Status string `json:"status"`
}

type RejectWithdrawalRequest struct {
	Reason string `json:"reason"`
}

// NormalizedTransaction is the single shape every listing in the console
// renders, whatever screen it appears on.
type NormalizedTransaction struct {
	ID             string          `json:"_id"`
	OriginalType   string          `json:"originalType"`
	Type           string          `json:"type"`
	Status         string          `json:"status"`
	Amount         decimal.Decimal `json:"amount"`
	UserID         string          `json:"userId"`
	Username       string          `json:"username"`
	TransactionFee decimal.Decimal `json:"transactionFee"`
	Balance        decimal.Decimal `json:"balance"`
	Reference      string          `json:"reference"`
	Notes          string          `json:"notes"`
	Method         string          `json:"method"`
	AccountDetails string          `json:"accountDetails,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// ClientKind maps a backend transaction type onto deposit or withdrawal.
// Every input maps to exactly one bucket; unknown types count as deposits.
func ClientKind(backendType string) string {
	switch strings.ToLower(strings.TrimSpace(backendType)) {
	case "withdraw", "withdrawal", "game_stake":
		return KindWithdrawal
	default:
		return KindDeposit
	}
}

// Normalize translates a backend transaction into the console vocabulary.
func (t Transaction) Normalize(now time.Time) NormalizedTransaction {
	n := NormalizedTransaction{
		ID:             t.ID,
		OriginalType:   t.Type,
		Type:           ClientKind(t.Type),
		Status:         strings.ToLower(t.Status),
		Amount:         t.Amount,
		UserID:         t.User.ID,
		Username:       t.User.Username,
		TransactionFee: t.TransactionFee,
		Balance:        t.Balance,
		Reference:      t.Reference,
		Notes:          t.Description,
		Method:         t.Method,
		AccountDetails: t.AccountDetails,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
	if n.Status == "" {
		n.Status = "pending"
	}
	if n.Username == "" {
		n.Username = "Unknown User"
	}
	if n.Reference == "" {
		n.Reference = t.ID
	}
	if n.Notes == "" {
		n.Notes = t.Notes
	}
	if n.Method == "" {
		n.Method = "N/A"
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = now
	}
	if n.UpdatedAt.IsZero() {
		n.UpdatedAt = now
	}
	return n
}

// NormalizeWithdrawal is Normalize for records from the pending-withdrawal
// endpoint, which are withdrawals awaiting review by construction.
func (t Transaction) NormalizeWithdrawal(now time.Time) NormalizedTransaction {
	n := t.Normalize(now)
	n.Type = KindWithdrawal
	n.Status = "pending"
	n.Reference = t.ID
	n.Notes = t.Description
	n.Method = t.WithdrawalMethod
	if n.Method == "" {
		n.Method = "N/A"
	}
	return n
}

// IsPendingWithdrawal reports type WITHDRAW with status PENDING, case-insensitively.
func (t Transaction) IsPendingWithdrawal() bool {
	return t.Is(TxWithdraw, TxPending)
}
