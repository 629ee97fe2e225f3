package stores

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"ludoadmin/metrics"
	"ludoadmin/models"
	"ludoadmin/notify"
	"ludoadmin/services"
)

const (
	KeyTransactions       = "transactions"
	KeyPendingWithdrawals = "pendingWithdrawals"
	KeyWithdrawalAction   = "withdrawalAction"
	KeyTransactionAction  = "transactionAction"
)

var ErrTransactionNotFound = errors.New("transaction not found")

var transactionStatuses = map[string]bool{
	models.TxPending:   true,
	models.TxCompleted: true,
	models.TxFailed:    true,
}

// TransactionStore holds the normalized transaction listing and the
// pending-withdrawal queue. Both views go through the same normalization.
type TransactionStore struct {
	*base

	transactions       []models.NormalizedTransaction
	pendingWithdrawals []models.NormalizedTransaction
}

func NewTransactionStore(api *services.Client, notifier *notify.Notifier, now func() time.Time) *TransactionStore {
	return &TransactionStore{
		base: newBase("Transactions", api, notifier, now,
			KeyTransactions, KeyPendingWithdrawals, KeyWithdrawalAction, KeyTransactionAction),
	}
}

func (s *TransactionStore) FetchTransactions(ctx context.Context) error {
	var resp models.TransactionListResponse
	return s.run(ctx, KeyTransactions, func(ctx context.Context) error {
		return s.api.Get(ctx, "/admin/transactions", &resp)
	}, func() {
		s.transactions = metrics.NormalizeAll(resp.Transactions, s.now())
	})
}

func (s *TransactionStore) FetchPendingWithdrawals(ctx context.Context) error {
	var resp models.PendingWithdrawalResponse
	return s.run(ctx, KeyPendingWithdrawals, func(ctx context.Context) error {
		return s.api.Get(ctx, "/wallet/admin/pending-withdrawals", &resp)
	}, func() {
		now := s.now()
		out := make([]models.NormalizedTransaction, 0, len(resp.PendingWithdrawals))
		for _, t := range resp.PendingWithdrawals {
			out = append(out, t.NormalizeWithdrawal(now))
		}
		s.pendingWithdrawals = out
	})
}

// UpdateTransactionStatus sends the backend status (PENDING, COMPLETED or
// FAILED) and reloads the listing.
func (s *TransactionStore) UpdateTransactionStatus(ctx context.Context, id, status string) error {
	status = strings.ToUpper(strings.TrimSpace(status))
	if !transactionStatuses[status] {
		return s.reject(KeyTransactionAction, services.Validationf("status", "unknown transaction status %q", status))
	}
	err := s.mutate(ctx, KeyTransactionAction, func(ctx context.Context) error {
		return s.api.Send(ctx, http.MethodPatch, "/admin/transactions/"+id+"/status", models.TransactionStatusRequest{Status: status}, nil)
	}, nil)
	if err != nil {
		return err
	}
	s.success("Transaction status updated")
	return s.FetchTransactions(ctx)
}

func (s *TransactionStore) ApproveWithdrawal(ctx context.Context, id string) error {
	return s.resolveWithdrawal(ctx, id, "approve", nil, "Withdrawal approved")
}

// RejectWithdrawal sends the optional reason along with the rejection.
func (s *TransactionStore) RejectWithdrawal(ctx context.Context, id, reason string) error {
	return s.resolveWithdrawal(ctx, id, "reject", models.RejectWithdrawalRequest{Reason: reason}, "Withdrawal rejected")
}

// resolveWithdrawal issues the single PUT and then reloads both lists, since
// approval changes fields the console does not try to predict.
func (s *TransactionStore) resolveWithdrawal(ctx context.Context, id, action string, body any, done string) error {
	err := s.mutate(ctx, KeyWithdrawalAction, func(ctx context.Context) error {
		return s.api.Send(ctx, http.MethodPut, "/wallet/admin/withdrawals/"+id+"/"+action, body, nil)
	}, nil)
	if err != nil {
		return err
	}
	s.success(done)
	return errors.Join(s.FetchPendingWithdrawals(ctx), s.FetchTransactions(ctx))
}

func (s *TransactionStore) Transactions() []models.NormalizedTransaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.NormalizedTransaction(nil), s.transactions...)
}

func (s *TransactionStore) PendingWithdrawals() []models.NormalizedTransaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.NormalizedTransaction(nil), s.pendingWithdrawals...)
}

func (s *TransactionStore) TransactionByID(id string) (models.NormalizedTransaction, error) {
	for _, t := range s.Transactions() {
		if t.ID == id {
			return t, nil
		}
	}
	return models.NormalizedTransaction{}, ErrTransactionNotFound
}

// TransactionsByUser matches userID against the user id or the username.
func (s *TransactionStore) TransactionsByUser(userID string) []models.NormalizedTransaction {
	out := make([]models.NormalizedTransaction, 0)
	if userID == "" {
		return out
	}
	for _, t := range s.Transactions() {
		if t.UserID == userID || t.Username == userID {
			out = append(out, t)
		}
	}
	return out
}

// TransactionsBetween is inclusive at both ends.
func (s *TransactionStore) TransactionsBetween(from, to time.Time) []models.NormalizedTransaction {
	return metrics.FilterTransactions(s.Transactions(), metrics.TransactionFilter{From: from, To: to})
}

func (s *TransactionStore) Filter(f metrics.TransactionFilter) []models.NormalizedTransaction {
	return metrics.FilterTransactions(s.Transactions(), f)
}

func (s *TransactionStore) Stats() metrics.TransactionStats {
	return metrics.SummarizeTransactions(s.Transactions())
}
