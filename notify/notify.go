package notify

import (
	"sync"
	"time"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Notification is one message for the operator, success or failure.
type Notification struct {
	ID        uint64    `json:"id"`
	Level     Level     `json:"level"`
	Source    string    `json:"source"`
	Key       string    `json:"key,omitempty"`
	Kind      string    `json:"kind,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// Notifier is the one channel every store reports through. It keeps a
// bounded backlog that clients poll with Since.
type Notifier struct {
	mu       sync.RWMutex
	seq      uint64
	capacity int
	recent   []Notification
}

func New(capacity int) *Notifier {
	if capacity <= 0 {
		capacity = 100
	}
	return &Notifier{capacity: capacity}
}

func (n *Notifier) Publish(notif Notification) Notification {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.seq++
	notif.ID = n.seq
	if notif.CreatedAt.IsZero() {
		notif.CreatedAt = time.Now()
	}

	n.recent = append(n.recent, notif)
	if len(n.recent) > n.capacity {
		n.recent = n.recent[len(n.recent)-n.capacity:]
	}
	return notif
}

func (n *Notifier) Error(source, key, kind string, err error) {
	if err == nil {
		return
	}
	n.Publish(Notification{Level: LevelError, Source: source, Key: key, Kind: kind, Message: err.Error()})
}

func (n *Notifier) Success(source, message string) {
	n.Publish(Notification{Level: LevelSuccess, Source: source, Message: message})
}

// Since returns the backlog entries with an id greater than after.
func (n *Notifier) Since(after uint64) []Notification {
	n.mu.RLock()
	defer n.mu.RUnlock()

	out := make([]Notification, 0)
	for _, notif := range n.recent {
		if notif.ID > after {
			out = append(out, notif)
		}
	}
	return out
}
