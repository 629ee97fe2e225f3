package stores

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"ludoadmin/notify"
	"ludoadmin/services"
)

type Options struct {
	// Now overrides the clock; tests pin it.
	Now func() time.Time
	// ChartMonths is the length of the rolling chart window.
	ChartMonths int
	// BotStatsClient points at the messaging bot service when it is not the
	// main backend.
	BotStatsClient *services.Client
}

// Registry owns one instance of every store for the lifetime of the app.
type Registry struct {
	Client   *services.Client
	Notifier *notify.Notifier

	Admin        *AdminStore
	Users        *UserStore
	Games        *GameStore
	Transactions *TransactionStore
	Banks        *BankStore
	BotSettings  *BotSettingsStore
	GameSettings *GameSettingsStore
	Ads          *AdsStore
	Messaging    *MessagingStore
}

func NewRegistry(client *services.Client, notifier *notify.Notifier, opts Options) *Registry {
	if notifier == nil {
		notifier = notify.New(0)
	}
	now := opts.Now
	return &Registry{
		Client:       client,
		Notifier:     notifier,
		Admin:        NewAdminStore(client, notifier, now, opts.ChartMonths),
		Users:        NewUserStore(client, notifier, now),
		Games:        NewGameStore(client, notifier, now),
		Transactions: NewTransactionStore(client, notifier, now),
		Banks:        NewBankStore(client, notifier, now),
		BotSettings:  NewBotSettingsStore(client, notifier, now),
		GameSettings: NewGameSettingsStore(client, notifier, now),
		Ads:          NewAdsStore(client, notifier, now),
		Messaging:    NewMessagingStore(client, opts.BotStatsClient, notifier, now),
	}
}

// LoadCollections fetches users, games and transactions side by side. A
// failure in one only marks that store's error slot.
func (r *Registry) LoadCollections(ctx context.Context) error {
	var g errgroup.Group
	g.Go(func() error { return r.Users.FetchUsers(ctx) })
	g.Go(func() error { return r.Games.FetchGames(ctx) })
	g.Go(func() error { return r.Transactions.FetchTransactions(ctx) })
	return g.Wait()
}

// Dispose cancels every in-flight call; late results are ignored.
func (r *Registry) Dispose() {
	r.Admin.Dispose()
	r.Users.Dispose()
	r.Games.Dispose()
	r.Transactions.Dispose()
	r.Banks.Dispose()
	r.BotSettings.Dispose()
	r.GameSettings.Dispose()
	r.Ads.Dispose()
	r.Messaging.Dispose()
}

// ClearErrors empties every store's error slots.
func (r *Registry) ClearErrors() {
	r.Admin.ClearErrors()
	r.Users.ClearErrors()
	r.Games.ClearErrors()
	r.Transactions.ClearErrors()
	r.Banks.ClearErrors()
	r.BotSettings.ClearErrors()
	r.GameSettings.ClearErrors()
	r.Ads.ClearErrors()
	r.Messaging.ClearErrors()
}
