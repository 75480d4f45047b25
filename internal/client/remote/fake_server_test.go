package remote

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/iudanet/lightnotes/internal/client/storage/memory"
	"github.com/iudanet/lightnotes/pkg/api"
)

const testToken = "test-token"

type fakeObject struct {
	body []byte
	tag  string
}

// fakeStore минимальное хранилище объектов с условными запросами
type fakeStore struct {
	objects  map[string]fakeObject
	requests []string
	// beforePut вызывается перед проверкой предусловия PUT
	beforePut func(key string)
	seq       int
	mu        sync.Mutex
}

func newFakeStore() *fakeStore {
	return &fakeStore{objects: make(map[string]fakeObject)}
}

// set кладет объект напрямую, как другой клиент
func (f *fakeStore) set(key string, body []byte) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.setLocked(key, body)
}

func (f *fakeStore) setLocked(key string, body []byte) string {
	f.seq++
	tag := fmt.Sprintf("v%d", f.seq)
	f.objects[key] = fakeObject{body: body, tag: tag}
	return tag
}

func (f *fakeStore) get(key string) (fakeObject, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.objects[key]
	return o, ok
}

func (f *fakeStore) log() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.requests...)
}

func (f *fakeStore) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get(api.HeaderAuth) != "Bearer "+testToken {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	key := strings.TrimPrefix(r.URL.Path, "/")

	if key == api.ListPath {
		f.mu.Lock()
		keys := []string{}
		prefix := r.URL.Query().Get("prefix")
		for k := range f.objects {
			if strings.HasPrefix(k, prefix) {
				keys = append(keys, k)
			}
		}
		f.mu.Unlock()
		sort.Strings(keys)
		_ = json.NewEncoder(w).Encode(api.ListResponse{Keys: keys})
		return
	}

	if r.Method == http.MethodPut && f.beforePut != nil {
		f.beforePut(key)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.requests = append(f.requests, r.Method+" "+key+" "+preconditionOf(r))

	obj, exists := f.objects[key]

	switch r.Method {
	case http.MethodHead:
		if !exists {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set(api.HeaderETag, `"`+obj.tag+`"`)
		w.WriteHeader(http.StatusOK)
	case http.MethodGet:
		if !exists {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if api.NormalizeETag(r.Header.Get(api.HeaderIfNoneMatch)) == obj.tag {
			w.WriteHeader(http.StatusNotModified)
			return
		}
		w.Header().Set(api.HeaderETag, `W/"`+obj.tag+`"`)
		_, _ = w.Write(obj.body)
	case http.MethodPut:
		if m := r.Header.Get(api.HeaderIfMatch); m != "" && (!exists || api.NormalizeETag(m) != obj.tag) {
			w.WriteHeader(http.StatusPreconditionFailed)
			return
		}
		if r.Header.Get(api.HeaderIfNoneMatch) == "*" && exists {
			w.WriteHeader(http.StatusPreconditionFailed)
			return
		}
		body, _ := io.ReadAll(r.Body)
		tag := f.setLocked(key, body)
		w.Header().Set(api.HeaderETag, `"`+tag+`"`)
		w.WriteHeader(http.StatusNoContent)
	case http.MethodDelete:
		delete(f.objects, key)
		w.WriteHeader(http.StatusNoContent)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func preconditionOf(r *http.Request) string {
	if m := r.Header.Get(api.HeaderIfMatch); m != "" {
		return "if-match"
	}
	if r.Method == http.MethodPut && r.Header.Get(api.HeaderIfNoneMatch) == "*" {
		return "create-only"
	}
	if r.Method == http.MethodGet && r.Header.Get(api.HeaderIfNoneMatch) != "" {
		return "if-none-match"
	}
	return "-"
}

func setupTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

// newTestClient поднимает фейковое хранилище и клиент к нему
func newTestClient(t *testing.T) (*Client, *fakeStore) {
	t.Helper()

	fake := newFakeStore()
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	cache := NewETagCache(memory.NewKV[map[string]string]())
	return NewClient(Config{BaseURL: srv.URL, Token: testToken}, cache, setupTestLogger()), fake
}
