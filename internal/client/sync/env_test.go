package sync

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	stdsync "sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/iudanet/lightnotes/internal/client/queue"
	"github.com/iudanet/lightnotes/internal/client/remote"
	"github.com/iudanet/lightnotes/internal/client/storage/memory"
	"github.com/iudanet/lightnotes/internal/models"
	"github.com/iudanet/lightnotes/internal/server"
	"github.com/iudanet/lightnotes/internal/server/handlers"
	servermemory "github.com/iudanet/lightnotes/internal/server/storage/memory"
	"github.com/iudanet/lightnotes/pkg/api"
)

var testJWT = handlers.JWTConfig{Secret: []byte("sync-test-secret-0123456789")}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// hook перехватывает запрос; true означает, что ответ уже записан
type hook func(w http.ResponseWriter, r *http.Request) bool

// endpoint оборачивает настоящий роутер: журнал запросов, отключение сети и перехватчики
type endpoint struct {
	next    http.Handler
	objects *servermemory.Storage
	hooks   map[string]hook
	log     []string
	down    atomic.Bool
	mu      stdsync.Mutex
}

func (e *endpoint) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if e.down.Load() {
		panic(http.ErrAbortHandler)
	}

	key := r.Method + " " + r.URL.Path
	e.mu.Lock()
	e.log = append(e.log, key)
	h := e.hooks[key]
	e.mu.Unlock()

	if h != nil && h(w, r) {
		return
	}
	e.next.ServeHTTP(w, r)
}

func (e *endpoint) on(key string, h hook) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.hooks[key] = h
}

func (e *endpoint) requests() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]string(nil), e.log...)
}

func (e *endpoint) resetLog() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.log = nil
}

func (e *endpoint) count(key string) int {
	n := 0
	for _, r := range e.requests() {
		if r == key {
			n++
		}
	}
	return n
}

// clock управляемое время для ограничителя focus
type clock struct {
	now time.Time
	mu  stdsync.Mutex
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type env struct {
	endpoint   *endpoint
	store      *memory.NoteStore
	queueStore *memory.KV[[]queue.Op]
	remote     *remote.Client
	clock      *clock
	svc        Service
	wakes      atomic.Int32
}

type envOption func(*envConfig)

type envConfig struct {
	unconfigured bool
}

func unconfigured() envOption {
	return func(c *envConfig) { c.unconfigured = true }
}

func newEnv(t *testing.T, opts ...envOption) *env {
	t.Helper()

	var cfg envConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	objects := servermemory.New()
	router, stop := server.NewRouter(testLogger(), objects, server.Options{JWT: testJWT})
	ep := &endpoint{next: router, objects: objects, hooks: make(map[string]hook)}
	srv := httptest.NewServer(ep)
	t.Cleanup(func() {
		srv.Close()
		stop()
	})

	token, _, err := handlers.GenerateToken(testJWT, "sync-test")
	require.NoError(t, err)

	remoteCfg := remote.Config{BaseURL: srv.URL, Token: token}
	if cfg.unconfigured {
		remoteCfg = remote.Config{}
	}

	e := &env{
		endpoint:   ep,
		store:      memory.NewNoteStore(),
		queueStore: memory.NewKV[[]queue.Op](),
		clock:      &clock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)},
	}
	e.remote = remote.NewClient(remoteCfg, remote.NewETagCache(memory.NewKV[map[string]string]()), testLogger())
	e.svc = NewService(e.remote, e.store, e.queueStore, Options{
		Wake: func() { e.wakes.Add(1) },
		Now:  e.clock.Now,
	}, testLogger())

	return e
}

// remotePut записывает объект напрямую в хранилище сервера, как другое устройство
func (e *env) remotePut(t *testing.T, key, body string) string {
	t.Helper()
	info, err := e.endpoint.objects.Put(context.Background(), key, []byte(body), api.ContentTypeFor(key))
	require.NoError(t, err)
	return info.ETag
}

func (e *env) remotePutJSON(t *testing.T, key string, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return e.remotePut(t, key, string(data))
}

// remoteGet возвращает тело объекта на сервере; found=false если объекта нет
func (e *env) remoteGet(t *testing.T, key string) (string, bool) {
	t.Helper()
	obj, err := e.endpoint.objects.Get(context.Background(), key)
	if err != nil {
		return "", false
	}
	return string(obj.Body), true
}

func (e *env) remoteIndex(t *testing.T) models.Index {
	t.Helper()
	body, ok := e.remoteGet(t, api.IndexPath)
	require.True(t, ok, "remote index must exist")
	var idx models.Index
	require.NoError(t, json.Unmarshal([]byte(body), &idx))
	return idx
}

func (e *env) remoteNoteKeys(t *testing.T) []string {
	t.Helper()
	page, err := e.endpoint.objects.List(context.Background(), api.NotesPrefix, "", 0)
	require.NoError(t, err)
	return page.Keys
}

// localNote создает локальную заметку; clean=true означает, что она уже подтверждена удаленно
func (e *env) localNote(t *testing.T, entry models.NoteEntry, body string, dirty bool) {
	t.Helper()
	ctx := context.Background()

	idx, err := e.store.ListEntries(ctx)
	require.NoError(t, err)
	if pos := idx.Find(entry.ID); pos >= 0 {
		idx[pos] = entry
	} else {
		idx = append(idx, entry)
	}
	require.NoError(t, e.store.SaveIndex(ctx, idx))
	require.NoError(t, e.store.WriteBody(ctx, entry.ID, body))
	require.NoError(t, e.store.SetMeta(ctx, entry.ID, models.NoteMeta{Dirty: dirty}))
}

func (e *env) localBody(t *testing.T, id string) string {
	t.Helper()
	body, err := e.store.ReadBody(context.Background(), id)
	require.NoError(t, err)
	return body
}

func (e *env) isDirty(t *testing.T, id string) bool {
	t.Helper()
	meta, err := e.store.GetMeta(context.Background(), id)
	require.NoError(t, err)
	return meta.Dirty
}

func (e *env) pending(t *testing.T) []queue.Op {
	t.Helper()
	ops, err := e.svc.PendingOps(context.Background())
	require.NoError(t, err)
	return ops
}

func kinds(ops []queue.Op) []string {
	out := make([]string, len(ops))
	for i, op := range ops {
		out[i] = string(op.Kind) + ":" + op.Target()
	}
	return out
}

func entry(id, title string, modified int64) models.NoteEntry {
	return models.NoteEntry{ID: id, Title: title, Created: 1, Modified: modified}
}
