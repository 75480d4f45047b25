package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/iudanet/lightnotes/internal/server/storage"
	"github.com/iudanet/lightnotes/pkg/api"
)

// DefaultMaxBodySize максимальный размер тела PUT по умолчанию
const DefaultMaxBodySize int64 = 8 << 20

// maxListPages ограничение числа страниц хранилища на один запрос листинга
const maxListPages = 10

// reservedKeys пути, занятые служебными эндпоинтами
var reservedKeys = map[string]bool{
	api.ListPath:   true,
	api.HealthPath: true,
}

// ObjectHandler обслуживает объекты бакета: HEAD/GET/PUT/DELETE по ключу и листинг
type ObjectHandler struct {
	logger      *slog.Logger
	storage     storage.ObjectStorage
	locks       *keyLocks
	maxBodySize int64
}

// NewObjectHandler создает handler объектов поверх хранилища
func NewObjectHandler(logger *slog.Logger, s storage.ObjectStorage, maxBodySize int64) *ObjectHandler {
	if maxBodySize <= 0 {
		maxBodySize = DefaultMaxBodySize
	}
	return &ObjectHandler{
		logger:      logger,
		storage:     s,
		locks:       newKeyLocks(),
		maxBodySize: maxBodySize,
	}
}

// Head обрабатывает HEAD /<key>
func (h *ObjectHandler) Head(w http.ResponseWriter, r *http.Request) {
	key, ok := h.key(w, r)
	if !ok {
		return
	}

	info, err := h.storage.Head(r.Context(), key)
	if err != nil {
		h.storageError(w, r, key, err)
		return
	}

	setObjectHeaders(w, info)
	w.WriteHeader(http.StatusOK)
}

// Get обрабатывает GET /<key>
// При совпадении If-None-Match отвечает 304 без тела
func (h *ObjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	key, ok := h.key(w, r)
	if !ok {
		return
	}

	if inm := r.Header.Get(api.HeaderIfNoneMatch); inm != "" {
		info, err := h.storage.Head(r.Context(), key)
		if err != nil {
			h.storageError(w, r, key, err)
			return
		}
		if etagListMatches(inm, info.ETag) {
			w.Header().Set(api.HeaderETag, api.QuoteETag(info.ETag))
			w.WriteHeader(http.StatusNotModified)
			return
		}
	}

	obj, err := h.storage.Get(r.Context(), key)
	if err != nil {
		h.storageError(w, r, key, err)
		return
	}

	setObjectHeaders(w, &obj.ObjectInfo)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(obj.Body); err != nil {
		h.logger.Warn("failed to write object body", "key", key, "error", err)
	}
}

// Put обрабатывает PUT /<key>
// If-Match: запись только поверх указанной версии; If-None-Match: * только создание.
// Проверка предусловия и запись выполняются под блокировкой ключа.
func (h *ObjectHandler) Put(w http.ResponseWriter, r *http.Request) {
	key, ok := h.key(w, r)
	if !ok {
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBodySize))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, http.StatusRequestEntityTooLarge, "payload_too_large", "")
			return
		}
		writeError(w, http.StatusBadRequest, "bad_request", "failed to read body")
		return
	}

	ifMatch := r.Header.Get(api.HeaderIfMatch)
	ifNoneMatch := r.Header.Get(api.HeaderIfNoneMatch)

	unlock := h.locks.lock(key)
	defer unlock()

	if ifMatch != "" || ifNoneMatch != "" {
		current, err := h.storage.Head(r.Context(), key)
		if err != nil && !errors.Is(err, storage.ErrObjectNotFound) {
			h.storageError(w, r, key, err)
			return
		}

		if ifMatch != "" && (current == nil || !etagListMatches(ifMatch, current.ETag)) {
			h.logger.Debug("precondition failed", "key", key, "if_match", ifMatch)
			writeError(w, http.StatusPreconditionFailed, "precondition_failed", "object version mismatch")
			return
		}
		if ifNoneMatch != "" && current != nil && etagListMatches(ifNoneMatch, current.ETag) {
			h.logger.Debug("precondition failed", "key", key, "if_none_match", ifNoneMatch)
			writeError(w, http.StatusPreconditionFailed, "precondition_failed", "object already exists")
			return
		}
	}

	info, err := h.storage.Put(r.Context(), key, body, api.ContentTypeFor(key))
	if err != nil {
		h.storageError(w, r, key, err)
		return
	}

	h.logger.Debug("object stored", "key", key, "etag", info.ETag, "size", info.Size)

	w.Header().Set(api.HeaderETag, api.QuoteETag(info.ETag))
	w.WriteHeader(http.StatusNoContent)
}

// Delete обрабатывает DELETE /<key>; удаление отсутствующего объекта не ошибка
func (h *ObjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	key, ok := h.key(w, r)
	if !ok {
		return
	}

	unlock := h.locks.lock(key)
	defer unlock()

	if err := h.storage.Delete(r.Context(), key); err != nil {
		h.storageError(w, r, key, err)
		return
	}

	h.logger.Debug("object deleted", "key", key)
	w.WriteHeader(http.StatusNoContent)
}

// List обрабатывает GET /list?prefix=<p>
// Страницы хранилища собираются в один ответ, не более maxListPages страниц.
func (h *ObjectHandler) List(w http.ResponseWriter, r *http.Request) {
	prefix := r.URL.Query().Get("prefix")

	keys := make([]string, 0)
	cursor := ""
	for range maxListPages {
		page, err := h.storage.List(r.Context(), prefix, cursor, storage.DefaultListLimit)
		if err != nil {
			h.logger.Error("failed to list objects", "prefix", prefix, "error", err)
			writeError(w, http.StatusInternalServerError, "internal_error", "")
			return
		}
		keys = append(keys, page.Keys...)
		if page.NextCursor == "" {
			break
		}
		cursor = page.NextCursor
	}

	w.Header().Set(api.HeaderContentType, api.ContentTypeJSON)
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(api.ListResponse{Keys: keys}); err != nil {
		h.logger.Error("failed to encode list response", "error", err)
	}
}

// key извлекает и проверяет ключ объекта из пути запроса
func (h *ObjectHandler) key(w http.ResponseWriter, r *http.Request) (string, bool) {
	key := chi.URLParam(r, "*")
	if key == "" {
		key = strings.TrimPrefix(r.URL.Path, "/")
	}

	if err := storage.ValidateKey(key); err != nil || reservedKeys[key] {
		h.logger.Warn("invalid object key", "key", key)
		writeError(w, http.StatusBadRequest, "invalid_key", "")
		return "", false
	}
	return key, true
}

// storageError переводит ошибку хранилища в HTTP ответ
func (h *ObjectHandler) storageError(w http.ResponseWriter, r *http.Request, key string, err error) {
	switch {
	case errors.Is(err, storage.ErrObjectNotFound):
		if r.Method == http.MethodHead {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		writeError(w, http.StatusNotFound, "not_found", "")
	case errors.Is(err, storage.ErrInvalidKey):
		writeError(w, http.StatusBadRequest, "invalid_key", "")
	default:
		h.logger.Error("storage failure", "method", r.Method, "key", key, "error", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "")
	}
}

func setObjectHeaders(w http.ResponseWriter, info *storage.ObjectInfo) {
	w.Header().Set(api.HeaderETag, api.QuoteETag(info.ETag))
	contentType := info.ContentType
	if contentType == "" {
		contentType = api.ContentTypeFor(info.Key)
	}
	w.Header().Set(api.HeaderContentType, contentType)
	w.Header().Set("Content-Length", strconv.FormatInt(info.Size, 10))
	w.Header().Set("Cache-Control", "no-cache")
	if !info.UpdatedAt.IsZero() {
		w.Header().Set("Last-Modified", info.UpdatedAt.UTC().Format(http.TimeFormat))
	}
}

// etagListMatches сравнивает значение If-Match/If-None-Match (список тегов или *) с тегом объекта
func etagListMatches(header, etag string) bool {
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" {
			return true
		}
		if candidate != "" && api.NormalizeETag(candidate) == api.NormalizeETag(etag) {
			return true
		}
	}
	return false
}

// writeError пишет JSON ответ с ошибкой
func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set(api.HeaderContentType, api.ContentTypeJSON)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(api.ErrorResponse{Error: code, Message: message})
}

// keyLocks выдает мьютекс на ключ; запись удаляется когда ключ больше никто не держит
type keyLocks struct {
	locks map[string]*keyLock
	mu    sync.Mutex
}

type keyLock struct {
	refs int
	mu   sync.Mutex
}

func newKeyLocks() *keyLocks {
	return &keyLocks{locks: make(map[string]*keyLock)}
}

func (k *keyLocks) lock(key string) func() {
	k.mu.Lock()
	l, ok := k.locks[key]
	if !ok {
		l = &keyLock{}
		k.locks[key] = l
	}
	l.refs++
	k.mu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()
		k.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	}
}
