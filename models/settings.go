package models

import (
	"encoding/json"
	"strconv"
)

// Setting keys understood by /admin/settings/:key.
const (
	SettingBotsEnabled       = "BOTS_ENABLED"
	SettingGameCutPercentage = "GAME_CUT_PERCENTAGE"
)

// Numeric fields of GameSettings.
const (
	FieldBotJoinDelay          = "BOT_JOIN_DELAY_MS"
	FieldBotImmediateJoinDelay = "BOT_IMMEDIATE_JOIN_DELAY_MS"
	FieldBotMoveDelay          = "BOT_MOVE_DELAY_MS"
	FieldBotDiceRollDelay      = "BOT_DICE_ROLL_DELAY_MS"
	FieldMaxBotsPerGame        = "MAX_BOTS_PER_GAME"
	FieldMaxNameAttempts       = "MAX_NAME_ATTEMPTS"
	FieldGameCutPercentage     = "GAME_CUT_PERCENTAGE"
	FieldBotNameSuffixSep      = "BOT_NAME_SUFFIX_SEPARATOR"
)

// GameSettings is the flat record served by the public /settings endpoint.
type GameSettings struct {
	BotJoinDelayMs          int      `json:"BOT_JOIN_DELAY_MS"`
	BotImmediateJoinDelayMs int      `json:"BOT_IMMEDIATE_JOIN_DELAY_MS"`
	BotMoveDelayMs          int      `json:"BOT_MOVE_DELAY_MS"`
	BotDiceRollDelayMs      int      `json:"BOT_DICE_ROLL_DELAY_MS"`
	MaxBotsPerGame          int      `json:"MAX_BOTS_PER_GAME"`
	MaxNameAttempts         int      `json:"MAX_NAME_ATTEMPTS"`
	GameCutPercentage       int      `json:"GAME_CUT_PERCENTAGE"`
	BotNameSuffixSeparator  string   `json:"BOT_NAME_SUFFIX_SEPARATOR"`
	BotNames                []string `json:"BOT_NAMES"`
}

// Clone returns a deep copy so callers never share the bot name slice.
func (s GameSettings) Clone() GameSettings {
	c := s
	c.BotNames = append([]string(nil), s.BotNames...)
	return c
}

// IsZero reports a record with no field set, such as a decoded empty body.
func (s GameSettings) IsZero() bool {
	return s.BotJoinDelayMs == 0 && s.BotImmediateJoinDelayMs == 0 &&
		s.BotMoveDelayMs == 0 && s.BotDiceRollDelayMs == 0 &&
		s.MaxBotsPerGame == 0 && s.MaxNameAttempts == 0 &&
		s.GameCutPercentage == 0 && s.BotNameSuffixSeparator == "" &&
		len(s.BotNames) == 0
}

// NumberField returns a pointer to the numeric field named by its JSON key.
func (s *GameSettings) NumberField(field string) (*int, bool) {
	switch field {
	case FieldBotJoinDelay:
		return &s.BotJoinDelayMs, true
	case FieldBotImmediateJoinDelay:
		return &s.BotImmediateJoinDelayMs, true
	case FieldBotMoveDelay:
		return &s.BotMoveDelayMs, true
	case FieldBotDiceRollDelay:
		return &s.BotDiceRollDelayMs, true
	case FieldMaxBotsPerGame:
		return &s.MaxBotsPerGame, true
	case FieldMaxNameAttempts:
		return &s.MaxNameAttempts, true
	case FieldGameCutPercentage:
		return &s.GameCutPercentage, true
	}
	return nil, false
}

// KeyedSetting is one row of /admin/settings.
type KeyedSetting struct {
	SettingKey   string          `json:"settingKey"`
	SettingValue json.RawMessage `json:"settingValue"`
	Description  string          `json:"description,omitempty"`
}

// Bool interprets the value the way the dashboard always has: any truthy JSON value.
func (k KeyedSetting) Bool() bool {
	var b bool
	if err := json.Unmarshal(k.SettingValue, &b); err == nil {
		return b
	}
	var f float64
	if err := json.Unmarshal(k.SettingValue, &f); err == nil {
		return f != 0
	}
	var s string
	if err := json.Unmarshal(k.SettingValue, &s); err == nil {
		v, err := strconv.ParseBool(s)
		if err == nil {
			return v
		}
		return s != ""
	}
	return false
}

// Float64 interprets the value as a number, accepting numeric strings.
func (k KeyedSetting) Float64() (float64, bool) {
	var f float64
	if err := json.Unmarshal(k.SettingValue, &f); err == nil {
		return f, true
	}
	var s string
	if err := json.Unmarshal(k.SettingValue, &s); err == nil {
		v, err := strconv.ParseFloat(s, 64)
		return v, err == nil
	}
	return 0, false
}

type KeyedSettingResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Data    KeyedSetting `json:"data"`
}

type KeyedSettingRequest struct {
	Value       any    `json:"value"`
	Description string `json:"description"`
}
