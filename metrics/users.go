package metrics

import (
	"strings"
	"time"

	"ludoadmin/models"
)

const newUserWindow = 7 * 24 * time.Hour

// SummarizeUsers counts users locally; new means created in the last 7 days.
func SummarizeUsers(users []models.User, now time.Time) models.UserStats {
	s := models.UserStats{TotalUsers: len(users)}
	cutoff := now.Add(-newUserWindow)
	for _, u := range users {
		if u.IsActive {
			s.ActiveUsers++
		} else {
			s.BannedUsers++
		}
		if !u.CreatedAt.IsZero() && u.CreatedAt.After(cutoff) {
			s.NewUsers++
		}
	}
	return s
}

// UserFilter narrows the users table. Status is "active", "banned" or empty.
type UserFilter struct {
	Search string
	Status string
}

func FilterUsers(users []models.User, f UserFilter) []models.User {
	search := strings.ToLower(strings.TrimSpace(f.Search))
	out := make([]models.User, 0)
	for _, u := range users {
		switch f.Status {
		case "active":
			if !u.IsActive {
				continue
			}
		case "banned":
			if u.IsActive {
				continue
			}
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(u.Username), search) &&
			!strings.Contains(u.Phone, search) {
			continue
		}
		out = append(out, u)
	}
	return out
}
