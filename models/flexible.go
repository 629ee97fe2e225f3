package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FlexibleString accepts a JSON string or number. The backend sends
// winRate as "50.0%" on some endpoints and as a bare number on others.
type FlexibleString string

func (fs *FlexibleString) UnmarshalJSON(data []byte) error {
	var s string
	var i int64
	var f float64

	if bytes.Equal(data, []byte("null")) {
		*fs = ""
		return nil
	}

	if err := json.Unmarshal(data, &s); err == nil {
		*fs = FlexibleString(s)
		return nil
	}

	if err := json.Unmarshal(data, &i); err == nil {
		*fs = FlexibleString(fmt.Sprintf("%d", i))
		return nil
	}

	if err := json.Unmarshal(data, &f); err == nil {
		*fs = FlexibleString(fmt.Sprintf("%g", f))
		return nil
	}

	return fmt.Errorf("unable to parse %s as FlexibleString", string(data))
}

// Float64 parses the value, ignoring a trailing percent sign.
func (fs FlexibleString) Float64() (float64, error) {
	return strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(string(fs)), "%"), 64)
}

// UserRef is a user reference that the backend either populates with the
// user document or leaves as a bare id.
type UserRef struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
	Phone    string `json:"phone,omitempty"`
}

func (r *UserRef) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*r = UserRef{}
		return nil
	}

	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		*r = UserRef{ID: id}
		return nil
	}

	type plain UserRef
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("unable to parse %s as UserRef", string(data))
	}
	*r = UserRef(p)
	return nil
}

// Populated reports whether the backend sent the user document rather than an id.
func (r UserRef) Populated() bool {
	return r.Username != ""
}

// GameList decodes either {"games":[...]} or a bare array of games.
type GameList []Game

func (gl *GameList) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var games []Game
		if err := json.Unmarshal(trimmed, &games); err != nil {
			return err
		}
		*gl = games
		return nil
	}

	var wrapped struct {
		Games []Game `json:"games"`
	}
	if err := json.Unmarshal(trimmed, &wrapped); err != nil {
		return fmt.Errorf("unable to parse games response: %w", err)
	}
	*gl = wrapped.Games
	return nil
}

// AdImage decodes either {"url": "..."} or a bare URL string.
type AdImage struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId,omitempty"`
}

func (a *AdImage) UnmarshalJSON(data []byte) error {
	var url string
	if err := json.Unmarshal(data, &url); err == nil {
		*a = AdImage{URL: url}
		return nil
	}

	type plain AdImage
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("unable to parse %s as AdImage", string(data))
	}
	*a = AdImage(p)
	return nil
}
