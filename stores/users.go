package stores

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"ludoadmin/metrics"
	"ludoadmin/models"
	"ludoadmin/notify"
	"ludoadmin/services"
)

const (
	KeyUsers      = "users"
	KeyUserStats  = "userStats"
	KeyUserAction = "userAction"
)

var ErrUserNotFound = errors.New("user not found")

type UserStore struct {
	*base

	users    []models.User
	total    int
	stats    models.UserStats
	filter   metrics.UserFilter
	page     int
	pageSize int
}

func NewUserStore(api *services.Client, notifier *notify.Notifier, now func() time.Time) *UserStore {
	return &UserStore{
		base:     newBase("Users", api, notifier, now, KeyUsers, KeyUserStats, KeyUserAction),
		page:     1,
		pageSize: 10,
	}
}

func (s *UserStore) FetchUsers(ctx context.Context) error {
	var resp models.UserListResponse
	return s.run(ctx, KeyUsers, func(ctx context.Context) error {
		return s.api.Get(ctx, "/admin/users", &resp)
	}, func() {
		s.users = resp.Users
		if s.users == nil {
			s.users = []models.User{}
		}
		s.total = resp.Total
		if s.total == 0 {
			s.total = len(s.users)
		}
	})
}

// FetchUserStats loads the stats listing and counts it locally; the endpoint
// returns users rather than totals.
func (s *UserStore) FetchUserStats(ctx context.Context) error {
	var resp models.UserListResponse
	return s.run(ctx, KeyUserStats, func(ctx context.Context) error {
		return s.api.Get(ctx, "/admin/users/stats", &resp)
	}, func() {
		s.stats = metrics.SummarizeUsers(resp.Users, s.now())
	})
}

// Initialize loads the listing and the stats concurrently.
func (s *UserStore) Initialize(ctx context.Context) error {
	var g errgroup.Group
	g.Go(func() error { return s.FetchUsers(ctx) })
	g.Go(func() error { return s.FetchUserStats(ctx) })
	return g.Wait()
}

// SetUserStatus activates or bans a user, patches the local copy and then
// refreshes the stats.
func (s *UserStore) SetUserStatus(ctx context.Context, id string, active bool) error {
	err := s.mutate(ctx, KeyUserAction, func(ctx context.Context) error {
		return s.api.Send(ctx, http.MethodPatch, fmt.Sprintf("/admin/users/%s/status", id), models.UserStatusRequest{IsActive: active}, nil)
	}, func() {
		for i := range s.users {
			if s.users[i].ID == id {
				s.users[i].IsActive = active
			}
		}
	})
	if err != nil {
		return err
	}
	if active {
		s.success("User unbanned")
	} else {
		s.success("User banned")
	}
	// a stats failure lands in errors[userStats]; the mutation itself succeeded
	_ = s.FetchUserStats(ctx)
	return nil
}

func (s *UserStore) BanUser(ctx context.Context, id string) error {
	return s.SetUserStatus(ctx, id, false)
}

func (s *UserStore) UnbanUser(ctx context.Context, id string) error {
	return s.SetUserStatus(ctx, id, true)
}

// DeleteUser removes the user remotely and from the local list.
func (s *UserStore) DeleteUser(ctx context.Context, id string) error {
	err := s.mutate(ctx, KeyUserAction, func(ctx context.Context) error {
		return s.api.Send(ctx, http.MethodDelete, "/admin/users/"+id, nil, nil)
	}, func() {
		kept := make([]models.User, 0, len(s.users))
		for _, u := range s.users {
			if u.ID != id {
				kept = append(kept, u)
			}
		}
		s.users = kept
		s.total = len(kept)
	})
	if err != nil {
		return err
	}
	s.success("User deleted")
	// a stats failure lands in errors[userStats]; the mutation itself succeeded
	_ = s.FetchUserStats(ctx)
	return nil
}

// RecalculateStats asks the backend to rebuild every user's game stats,
// then reloads the listing.
func (s *UserStore) RecalculateStats(ctx context.Context) error {
	var ack models.AckResponse
	err := s.mutate(ctx, KeyUserAction, func(ctx context.Context) error {
		return s.api.Send(ctx, http.MethodPost, "/admin/users/recalculate-stats", nil, &ack)
	}, nil)
	if err != nil {
		return err
	}
	msg := ack.Message
	if msg == "" {
		msg = "User stats recalculated"
	}
	s.success(msg)
	return s.FetchUsers(ctx)
}

// UserByID looks in the loaded list first and refetches once when missing.
func (s *UserStore) UserByID(ctx context.Context, id string) (models.User, error) {
	if u, ok := s.lookup(id); ok {
		return u, nil
	}
	if err := s.FetchUsers(ctx); err != nil {
		return models.User{}, err
	}
	if u, ok := s.lookup(id); ok {
		return u, nil
	}
	return models.User{}, ErrUserNotFound
}

func (s *UserStore) lookup(id string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

func (s *UserStore) Users() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.User(nil), s.users...)
}

func (s *UserStore) Total() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.total
}

func (s *UserStore) Stats() models.UserStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stats
}

func (s *UserStore) SetFilter(f metrics.UserFilter) {
	s.mu.Lock()
	s.filter = f
	s.page = 1
	s.mu.Unlock()
}

func (s *UserStore) SetPage(page, pageSize int) {
	s.mu.Lock()
	s.page = page
	if pageSize > 0 {
		s.pageSize = pageSize
	}
	s.mu.Unlock()
}

// Visible applies the current filter and page to the loaded users.
func (s *UserStore) Visible() ([]models.User, metrics.Page) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	filtered := metrics.FilterUsers(s.users, s.filter)
	return metrics.Paginate(filtered, s.page, s.pageSize)
}
