package stores

import (
	"context"
	"net/http"
	"time"

	"ludoadmin/models"
	"ludoadmin/notify"
	"ludoadmin/services"
)

const (
	KeyBotSettings = "botSettings"
	KeyBotSaving   = "botSaving"
)

const botsEnabledDescription = "Enable or disable bot players in games"

// BotSettingsStore holds the BOTS_ENABLED switch.
type BotSettingsStore struct {
	*base

	enabled bool
}

func NewBotSettingsStore(api *services.Client, notifier *notify.Notifier, now func() time.Time) *BotSettingsStore {
	return &BotSettingsStore{
		base: newBase("BotSettings", api, notifier, now, KeyBotSettings, KeyBotSaving),
	}
}

// FetchBotSettings reads the switch. A missing setting means bots are off.
func (s *BotSettingsStore) FetchBotSettings(ctx context.Context) (bool, error) {
	var resp models.KeyedSettingResponse
	var enabled bool
	err := s.run(ctx, KeyBotSettings, func(ctx context.Context) error {
		err := s.api.Get(ctx, "/admin/settings/"+models.SettingBotsEnabled, &resp)
		if services.IsNotFound(err) {
			return nil
		}
		if err != nil {
			return err
		}
		enabled = resp.Success && resp.Data.Bool()
		return nil
	}, func() {
		s.enabled = enabled
	})
	return enabled, err
}

// SetBotsEnabled writes the switch. It needs a stored credential.
func (s *BotSettingsStore) SetBotsEnabled(ctx context.Context, enabled bool) error {
	if !s.api.HasCredential(ctx) {
		return s.reject(KeyBotSaving, services.ErrNoCredential)
	}
	err := s.mutate(ctx, KeyBotSaving, func(ctx context.Context) error {
		body := models.KeyedSettingRequest{Value: enabled, Description: botsEnabledDescription}
		return s.api.Send(ctx, http.MethodPut, "/admin/settings/"+models.SettingBotsEnabled, body, nil)
	}, func() {
		s.enabled = enabled
	})
	if err != nil {
		return err
	}
	if enabled {
		s.success("Bots enabled successfully!")
	} else {
		s.success("Bots disabled successfully!")
	}
	return nil
}

// Toggle flips the switch and returns the new value.
func (s *BotSettingsStore) Toggle(ctx context.Context) (bool, error) {
	next := !s.Enabled()
	if err := s.SetBotsEnabled(ctx, next); err != nil {
		return !next, err
	}
	return next, nil
}

func (s *BotSettingsStore) Enabled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.enabled
}
