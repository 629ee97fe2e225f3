package stores

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"ludoadmin/notify"
	"ludoadmin/services"
)

var fixedNow = time.Date(2026, 2, 15, 10, 0, 0, 0, time.UTC)

// fakeBackend routes "METHOD /path" to handlers and counts the calls.
type fakeBackend struct {
	t      *testing.T
	srv    *httptest.Server
	mu     sync.Mutex
	routes map[string]http.HandlerFunc
	calls  map[string]int
	bodies map[string][]byte
}

func newFakeBackend(t *testing.T) *fakeBackend {
	b := &fakeBackend{
		t:      t,
		routes: make(map[string]http.HandlerFunc),
		calls:  make(map[string]int),
		bodies: make(map[string][]byte),
	}
	b.srv = httptest.NewServer(http.HandlerFunc(b.serve))
	t.Cleanup(b.srv.Close)
	return b
}

func (b *fakeBackend) serve(w http.ResponseWriter, r *http.Request) {
	key := r.Method + " " + r.URL.Path
	body, _ := io.ReadAll(r.Body)
	r.Body = io.NopCloser(bytes.NewReader(body))
	b.mu.Lock()
	b.calls[key]++
	b.bodies[key] = body
	h, ok := b.routes[key]
	b.mu.Unlock()
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Not found"}`))
		return
	}
	h(w, r)
}

func (b *fakeBackend) handle(method, path string, h http.HandlerFunc) {
	b.mu.Lock()
	b.routes[method+" "+path] = h
	b.mu.Unlock()
}

func (b *fakeBackend) json(method, path string, status int, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		b.t.Fatal(err)
	}
	b.handle(method, path, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write(raw)
	})
}

func (b *fakeBackend) count(method, path string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls[method+" "+path]
}

func (b *fakeBackend) body(method, path string) []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.bodies[method+" "+path]
}

func (b *fakeBackend) client(token string) *services.Client {
	return services.NewClient(b.srv.URL, services.NewMemoryCredentials(token), nil)
}

func (b *fakeBackend) registry(token string) *Registry {
	reg := NewRegistry(b.client(token), notify.New(50), Options{Now: func() time.Time { return fixedNow }})
	b.t.Cleanup(reg.Dispose)
	return reg
}

type obj = map[string]any
