package stores

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"ludoadmin/models"
	"ludoadmin/notify"
	"ludoadmin/services"
)

const (
	KeyBanks      = "banks"
	KeyBankAction = "bankAction"
)

var (
	ErrBankNotFound = errors.New("bank not found")
	ErrNotEditing   = errors.New("no bank is being edited")
)

// BankStore holds the payout bank accounts and the single in-progress edit.
// Starting an edit on another bank drops the unsaved form of the first.
type BankStore struct {
	*base

	banks   []models.Bank
	editing string
	form    models.BankForm
}

func NewBankStore(api *services.Client, notifier *notify.Notifier, now func() time.Time) *BankStore {
	return &BankStore{
		base: newBase("Banks", api, notifier, now, KeyBanks, KeyBankAction),
	}
}

func (s *BankStore) FetchBanks(ctx context.Context) error {
	var resp models.BankListResponse
	return s.run(ctx, KeyBanks, func(ctx context.Context) error {
		if err := s.api.Get(ctx, "/banks/", &resp); err != nil {
			return err
		}
		if !resp.Success {
			return &services.HTTPError{Status: http.StatusOK, Message: fallback(resp.Message, "Failed to fetch banks")}
		}
		return nil
	}, func() {
		s.banks = resp.Banks
		if s.banks == nil {
			s.banks = []models.Bank{}
		}
	})
}

// Edit puts bankID into the editing state with the form filled from its
// current values.
func (s *BankStore) Edit(bankID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.banks {
		if b.ID == bankID {
			s.editing = bankID
			s.form = models.BankForm{Number: b.Number, AccountFullName: b.AccountFullName}
			return nil
		}
	}
	return ErrBankNotFound
}

func (s *BankStore) SetForm(form models.BankForm) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.editing == "" {
		return ErrNotEditing
	}
	s.form = form
	return nil
}

// Cancel discards the form and its save error and returns to idle.
func (s *BankStore) Cancel() {
	s.mu.Lock()
	s.editing = ""
	s.form = models.BankForm{}
	s.mu.Unlock()
	s.ClearError(KeyBankAction)
}

// Editing returns the bank being edited and its form, if any.
func (s *BankStore) Editing() (string, models.BankForm, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.editing, s.form, s.editing != ""
}

// Save sends the form of the bank being edited. On success the local copy is
// patched and the store returns to idle; on failure the edit stays open.
func (s *BankStore) Save(ctx context.Context) error {
	id, form, ok := s.Editing()
	if !ok {
		return ErrNotEditing
	}
	if err := s.UpdateBankDetails(ctx, id, form); err != nil {
		return err
	}
	s.mu.Lock()
	if s.editing == id {
		s.editing = ""
		s.form = models.BankForm{}
	}
	s.mu.Unlock()
	return nil
}

func (s *BankStore) UpdateBankDetails(ctx context.Context, id string, form models.BankForm) error {
	form.Number = strings.TrimSpace(form.Number)
	form.AccountFullName = strings.TrimSpace(form.AccountFullName)
	if form.Number == "" || form.AccountFullName == "" {
		return s.reject(KeyBankAction, services.Validationf("bank", "account number and account holder name are required"))
	}

	var resp models.BankUpdateResponse
	err := s.mutate(ctx, KeyBankAction, func(ctx context.Context) error {
		if err := s.api.Send(ctx, http.MethodPatch, "/banks/"+id+"/details", form, &resp); err != nil {
			return err
		}
		if !resp.Success {
			return &services.HTTPError{Status: http.StatusOK, Message: fallback(resp.Message, "Failed to update bank details")}
		}
		return nil
	}, func() {
		for i := range s.banks {
			if s.banks[i].ID != id {
				continue
			}
			if resp.Bank.ID != "" {
				s.banks[i] = resp.Bank
			} else {
				s.banks[i].Number = form.Number
				s.banks[i].AccountFullName = form.AccountFullName
			}
		}
	})
	if err != nil {
		return err
	}
	s.success(fallback(resp.Message, "Bank details updated successfully"))
	return nil
}

func (s *BankStore) Banks() []models.Bank {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Bank(nil), s.banks...)
}

func (s *BankStore) BankByID(id string) (models.Bank, error) {
	for _, b := range s.Banks() {
		if b.ID == id {
			return b, nil
		}
	}
	return models.Bank{}, ErrBankNotFound
}

func fallback(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
