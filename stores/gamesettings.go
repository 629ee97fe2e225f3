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
	KeySettings       = "settings"
	KeySettingsSave   = "settingsSave"
	KeyCutPercentage  = "cutPercentage"
	cutPercentageDesc = "Platform cut percentage taken from each game pot"
)

var ErrNoSettings = errors.New("settings not loaded")

// Range is an inclusive bound for a numeric setting.
type Range struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

func (r Range) Contains(v int) bool {
	return v >= r.Min && v <= r.Max
}

// SettingRanges bounds every numeric field of the settings form.
var SettingRanges = map[string]Range{
	models.FieldBotJoinDelay:          {Min: 1000, Max: 300000},
	models.FieldBotImmediateJoinDelay: {Min: 1000, Max: 300000},
	models.FieldBotMoveDelay:          {Min: 500, Max: 10000},
	models.FieldBotDiceRollDelay:      {Min: 500, Max: 10000},
	models.FieldMaxBotsPerGame:        {Min: 0, Max: 3},
	models.FieldMaxNameAttempts:       {Min: 1, Max: 100},
	models.FieldGameCutPercentage:     {Min: 0, Max: 50},
}

// GameSettingsStore holds the flat settings record. Edits patch the local
// copy only; SaveSettings sends the whole record back.
type GameSettingsStore struct {
	*base

	settings      models.GameSettings
	loaded        bool
	cutPercentage float64
}

func NewGameSettingsStore(api *services.Client, notifier *notify.Notifier, now func() time.Time) *GameSettingsStore {
	return &GameSettingsStore{
		base:          newBase("GameSettings", api, notifier, now, KeySettings, KeySettingsSave, KeyCutPercentage),
		cutPercentage: metrics.DefaultCutPercentage,
	}
}

// FetchSettings reads the public settings record; no credential is sent.
func (s *GameSettingsStore) FetchSettings(ctx context.Context) error {
	var resp models.GameSettings
	return s.run(ctx, KeySettings, func(ctx context.Context) error {
		return s.api.GetPublic(ctx, "/settings", &resp)
	}, func() {
		if resp.BotNames == nil {
			resp.BotNames = []string{}
		}
		s.settings = resp
		s.loaded = true
	})
}

// Reset discards local edits by reloading the record.
func (s *GameSettingsStore) Reset(ctx context.Context) error {
	return s.FetchSettings(ctx)
}

// SetNumber patches one numeric field. A value outside the field's range is
// refused and the record keeps its previous value.
func (s *GameSettingsStore) SetNumber(field string, value int) error {
	r, ok := SettingRanges[field]
	if !ok {
		return services.Validationf(field, "unknown numeric setting")
	}
	if !r.Contains(value) {
		return services.Validationf(field, "must be between %d and %d", r.Min, r.Max)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		return ErrNoSettings
	}
	ptr, _ := s.settings.NumberField(field)
	*ptr = value
	return nil
}

// SetText patches the only free text field.
func (s *GameSettingsStore) SetText(field, value string) error {
	if field != models.FieldBotNameSuffixSep {
		return services.Validationf(field, "unknown text setting")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		return ErrNoSettings
	}
	s.settings.BotNameSuffixSeparator = value
	return nil
}

// AddBotName appends a trimmed name unless it is empty or already listed.
func (s *GameSettingsStore) AddBotName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return services.Validationf("BOT_NAMES", "name is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		return ErrNoSettings
	}
	for _, n := range s.settings.BotNames {
		if n == name {
			return services.Validationf("BOT_NAMES", "%q is already listed", name)
		}
	}
	s.settings.BotNames = append(s.settings.BotNames, name)
	return nil
}

func (s *GameSettingsStore) RemoveBotName(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		return ErrNoSettings
	}
	if index < 0 || index >= len(s.settings.BotNames) {
		return services.Validationf("BOT_NAMES", "index %d out of range", index)
	}
	names := make([]string, 0, len(s.settings.BotNames)-1)
	names = append(names, s.settings.BotNames[:index]...)
	s.settings.BotNames = append(names, s.settings.BotNames[index+1:]...)
	return nil
}

// SaveSettings PUTs the whole record and adopts the record the server
// returns. The last writer wins.
func (s *GameSettingsStore) SaveSettings(ctx context.Context) error {
	current, ok := s.Settings()
	if !ok {
		return s.reject(KeySettingsSave, ErrNoSettings)
	}
	var saved models.GameSettings
	err := s.mutate(ctx, KeySettingsSave, func(ctx context.Context) error {
		return s.api.Send(ctx, http.MethodPut, "/settings", current, &saved)
	}, func() {
		// the server may normalise values; an empty body keeps what was sent
		if saved.IsZero() {
			saved = current
		}
		if saved.BotNames == nil {
			saved.BotNames = []string{}
		}
		s.settings = saved
	})
	if err != nil {
		return err
	}
	s.success("Settings saved successfully!")
	return nil
}

// FetchCutPercentage reads GAME_CUT_PERCENTAGE, keeping the default when the
// setting does not exist.
func (s *GameSettingsStore) FetchCutPercentage(ctx context.Context) (float64, error) {
	var resp models.KeyedSettingResponse
	value := metrics.DefaultCutPercentage
	err := s.run(ctx, KeyCutPercentage, func(ctx context.Context) error {
		err := s.api.Get(ctx, "/admin/settings/"+models.SettingGameCutPercentage, &resp)
		if services.IsNotFound(err) {
			return nil
		}
		if err != nil {
			return err
		}
		if v, ok := resp.Data.Float64(); ok {
			value = v
		}
		return nil
	}, func() {
		s.cutPercentage = value
	})
	return value, err
}

// SaveCutPercentage rejects values outside [0,100] before sending anything.
func (s *GameSettingsStore) SaveCutPercentage(ctx context.Context, pct float64) error {
	if pct < 0 || pct > 100 {
		return s.reject(KeyCutPercentage, services.Validationf(models.SettingGameCutPercentage, "must be between 0 and 100"))
	}
	err := s.mutate(ctx, KeyCutPercentage, func(ctx context.Context) error {
		body := models.KeyedSettingRequest{Value: pct, Description: cutPercentageDesc}
		return s.api.Send(ctx, http.MethodPut, "/admin/settings/"+models.SettingGameCutPercentage, body, nil)
	}, func() {
		s.cutPercentage = pct
	})
	if err != nil {
		return err
	}
	s.success("Cut percentage updated")
	return nil
}

// Settings returns a copy of the record and whether it has been loaded.
func (s *GameSettingsStore) Settings() (models.GameSettings, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings.Clone(), s.loaded
}

func (s *GameSettingsStore) CutPercentage() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cutPercentage
}
