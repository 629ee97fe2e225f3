package metrics

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"ludoadmin/models"
)

type TransactionStats struct {
	Total       int             `json:"total"`
	Pending     int             `json:"pending"`
	Completed   int             `json:"completed"`
	Failed      int             `json:"failed"`
	Deposits    int             `json:"deposits"`
	Withdrawals int             `json:"withdrawals"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	TotalFees   decimal.Decimal `json:"totalFees"`
}

func SummarizeTransactions(txs []models.NormalizedTransaction) TransactionStats {
	s := TransactionStats{Total: len(txs)}
	for _, t := range txs {
		switch t.Status {
		case "pending":
			s.Pending++
		case "completed":
			s.Completed++
		case "failed":
			s.Failed++
		}
		if t.Type == models.KindWithdrawal {
			s.Withdrawals++
		} else {
			s.Deposits++
		}
		s.TotalAmount = s.TotalAmount.Add(t.Amount)
		s.TotalFees = s.TotalFees.Add(t.TransactionFee)
	}
	return s
}

// FilterPendingWithdrawals keeps exactly the transactions of type WITHDRAW
// with status PENDING, ignoring case.
func FilterPendingWithdrawals(txs []models.Transaction) []models.Transaction {
	out := make([]models.Transaction, 0)
	for _, t := range txs {
		if t.IsPendingWithdrawal() {
			out = append(out, t)
		}
	}
	return out
}

func NormalizeAll(txs []models.Transaction, now time.Time) []models.NormalizedTransaction {
	out := make([]models.NormalizedTransaction, 0, len(txs))
	for _, t := range txs {
		out = append(out, t.Normalize(now))
	}
	return out
}

// TransactionFilter narrows a normalized listing. Empty fields match everything.
type TransactionFilter struct {
	Type         string
	OriginalType string
	Status       string
	UserID       string
	Search       string
	From         time.Time
	To           time.Time
}

func FilterTransactions(txs []models.NormalizedTransaction, f TransactionFilter) []models.NormalizedTransaction {
	search := strings.ToLower(strings.TrimSpace(f.Search))
	out := make([]models.NormalizedTransaction, 0)
	for _, t := range txs {
		if f.Type != "" && t.Type != f.Type {
			continue
		}
		if f.OriginalType != "" && !strings.EqualFold(t.OriginalType, f.OriginalType) {
			continue
		}
		if f.Status != "" && !strings.EqualFold(t.Status, f.Status) {
			continue
		}
		if f.UserID != "" && t.UserID != f.UserID {
			continue
		}
		if !f.From.IsZero() && t.CreatedAt.Before(f.From) {
			continue
		}
		if !f.To.IsZero() && t.CreatedAt.After(f.To) {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(t.Username), search) &&
			!strings.Contains(strings.ToLower(t.Reference), search) &&
			!strings.Contains(strings.ToLower(t.ID), search) {
			continue
		}
		out = append(out, t)
	}
	return out
}
