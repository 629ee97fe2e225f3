package stores

import (
	"context"
	"net/http"
	"strings"
	"time"

	"ludoadmin/models"
	"ludoadmin/notify"
	"ludoadmin/services"
)

const (
	KeyBroadcast = "broadcast"
	KeyBotUsage  = "botUsage"
)

// MessagingStore broadcasts to players and reads the messaging bot's usage.
// The bot runs as its own service, so it may have a separate client.
type MessagingStore struct {
	*base

	botAPI *services.Client
	usage  models.BotUsageStats
}

func NewMessagingStore(api, botAPI *services.Client, notifier *notify.Notifier, now func() time.Time) *MessagingStore {
	if botAPI == nil {
		botAPI = api
	}
	return &MessagingStore{
		base:   newBase("Messaging", api, notifier, now, KeyBroadcast, KeyBotUsage),
		botAPI: botAPI,
		usage:  models.BotUsageStats{},
	}
}

func (s *MessagingStore) SendNotification(ctx context.Context, title, message string) error {
	req := models.NotificationRequest{Title: strings.TrimSpace(title), Message: strings.TrimSpace(message)}
	if req.Message == "" {
		return s.reject(KeyBroadcast, services.Validationf("message", "message is required"))
	}
	var ack models.AckResponse
	err := s.mutate(ctx, KeyBroadcast, func(ctx context.Context) error {
		return s.api.Send(ctx, http.MethodPost, "/admin/send-notification", req, &ack)
	}, nil)
	if err != nil {
		return err
	}
	s.success(fallback(ack.Message, "Notification sent"))
	return nil
}

func (s *MessagingStore) FetchBotUsage(ctx context.Context) error {
	var resp models.BotUsageStats
	return s.run(ctx, KeyBotUsage, func(ctx context.Context) error {
		return s.botAPI.Get(ctx, "/api/stats", &resp)
	}, func() {
		if resp == nil {
			resp = models.BotUsageStats{}
		}
		s.usage = resp
	})
}

func (s *MessagingStore) BotUsage() models.BotUsageStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(models.BotUsageStats, len(s.usage))
	for k, v := range s.usage {
		out[k] = v
	}
	return out
}
