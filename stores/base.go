package stores

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"ludoadmin/notify"
	"ludoadmin/services"
)

var ErrDisposed = errors.New("store disposed")

// base carries what every store shares: per-operation loading and error
// slots, a sequence number per operation so a slow stale response never
// overwrites a newer one, and a lifetime context cancelled by Dispose.
type base struct {
	name     string
	api      *services.Client
	notifier *notify.Notifier
	now      func() time.Time

	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.RWMutex
	loading map[string]bool
	errs    map[string]*string
	kinds   map[string]services.ErrorKind
	seq     map[string]uint64
}

func newBase(name string, api *services.Client, notifier *notify.Notifier, now func() time.Time, keys ...string) *base {
	if now == nil {
		now = time.Now
	}
	if notifier == nil {
		notifier = notify.New(0)
	}
	ctx, cancel := context.WithCancel(context.Background())
	b := &base{
		name:     name,
		api:      api,
		notifier: notifier,
		now:      now,
		ctx:      ctx,
		cancel:   cancel,
		loading:  make(map[string]bool, len(keys)),
		errs:     make(map[string]*string, len(keys)),
		kinds:    make(map[string]services.ErrorKind, len(keys)),
		seq:      make(map[string]uint64, len(keys)),
	}
	for _, k := range keys {
		b.loading[k] = false
		b.errs[k] = nil
	}
	return b
}

// Dispose cancels in-flight calls; results that arrive afterwards are dropped.
func (b *base) Dispose() {
	b.cancel()
}

func (b *base) Disposed() bool {
	return b.ctx.Err() != nil
}

func (b *base) Loading(key string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.loading[key]
}

// Error returns the message stored for key, or nil.
func (b *base) Error(key string) *string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if msg := b.errs[key]; msg != nil {
		m := *msg
		return &m
	}
	return nil
}

func (b *base) ErrorKind(key string) services.ErrorKind {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.kinds[key]
}

// Errors returns a copy of every error slot.
func (b *base) Errors() map[string]*string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make(map[string]*string, len(b.errs))
	for k, v := range b.errs {
		if v != nil {
			m := *v
			out[k] = &m
		} else {
			out[k] = nil
		}
	}
	return out
}

// LoadingAll returns a copy of every loading flag.
func (b *base) LoadingAll() map[string]bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make(map[string]bool, len(b.loading))
	for k, v := range b.loading {
		out[k] = v
	}
	return out
}

func (b *base) ClearError(key string) {
	b.mu.Lock()
	b.errs[key] = nil
	delete(b.kinds, key)
	b.mu.Unlock()
}

func (b *base) ClearErrors() {
	b.mu.Lock()
	for k := range b.errs {
		b.errs[k] = nil
	}
	b.kinds = make(map[string]services.ErrorKind)
	b.mu.Unlock()
}

// run performs one tracked fetch: it raises loading[key], clears
// errors[key], calls the backend and then, if this call is still the latest
// for key, either applies the result or records the failure. A superseded
// fetch is dropped entirely.
// apply runs with the store lock held.
func (b *base) run(ctx context.Context, key string, call func(ctx context.Context) error, apply func()) error {
	return b.track(ctx, key, call, apply, false)
}

// mutate is run for writes the backend may already have accepted. apply
// always runs on success, even when a newer call for key has started; only
// the loading and error slots follow the latest call.
func (b *base) mutate(ctx context.Context, key string, call func(ctx context.Context) error, apply func()) error {
	return b.track(ctx, key, call, apply, true)
}

func (b *base) track(ctx context.Context, key string, call func(ctx context.Context) error, apply func(), mutation bool) error {
	if b.Disposed() {
		return ErrDisposed
	}
	ticket := b.begin(key)

	callCtx, cancel := context.WithCancel(ctx)
	stop := context.AfterFunc(b.ctx, cancel)
	err := call(callCtx)
	stop()
	cancel()

	return b.finish(key, ticket, err, apply, mutation)
}

func (b *base) begin(key string) uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.seq[key]++
	b.loading[key] = true
	b.errs[key] = nil
	delete(b.kinds, key)
	return b.seq[key]
}

func (b *base) finish(key string, ticket uint64, err error, apply func(), mutation bool) error {
	if b.Disposed() {
		return ErrDisposed
	}

	b.mu.Lock()
	latest := b.seq[key] == ticket
	if !latest && !mutation {
		// a newer call for the same key owns the slots now
		b.mu.Unlock()
		return err
	}
	if latest {
		b.loading[key] = false
	}
	if err != nil {
		msg := err.Error()
		kind := services.KindOf(err)
		if latest {
			b.errs[key] = &msg
			b.kinds[key] = kind
		}
		b.mu.Unlock()

		log.Printf("❌ [%s] %s: %v", b.name, key, err)
		b.notifier.Error(b.name, key, kind.String(), err)
		return err
	}
	if apply != nil {
		apply()
	}
	b.mu.Unlock()
	return nil
}

// reject records a validation failure for key without touching the backend.
func (b *base) reject(key string, err error) error {
	return b.run(context.Background(), key, func(context.Context) error { return err }, nil)
}

func (b *base) success(message string) {
	log.Printf("✅ [%s] %s", b.name, message)
	b.notifier.Success(b.name, message)
}
