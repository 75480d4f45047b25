package api

import (
	"path"
	"strings"
)

// Пути ресурсов на удаленном хранилище
const (
	IndexPath   = "index.json" // индекс заметок
	TodosPath   = "todos.json" // список задач
	NotesPrefix = "notes/"     // префикс тел заметок: notes/<id>.html
	ListPath    = "list"       // служебный путь листинга ключей
	HealthPath  = "health"
)

// Заголовки условных запросов
const (
	HeaderETag        = "ETag"
	HeaderIfMatch     = "If-Match"
	HeaderIfNoneMatch = "If-None-Match"
	HeaderAuth        = "Authorization"
	HeaderContentType = "Content-Type"
)

// Content types, which the endpoint picks by key extension
const (
	ContentTypeJSON   = "application/json"
	ContentTypeHTML   = "text/html; charset=utf-8"
	ContentTypeBinary = "application/octet-stream"
)

// NotePath возвращает путь тела заметки по её идентификатору
func NotePath(id string) string {
	return NotesPrefix + id + ".html"
}

// ListResponse представляет ответ GET /list?prefix=<p>
type ListResponse struct {
	Keys []string `json:"keys"` // все ключи под префиксом
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // описание ошибки
	Message string `json:"message,omitempty"` // дополнительное сообщение
}

// HealthResponse представляет ответ health check
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

// NoteIDFromPath возвращает идентификатор заметки из пути notes/<id>.html
func NoteIDFromPath(p string) (string, bool) {
	if !strings.HasPrefix(p, NotesPrefix) || !strings.HasSuffix(p, ".html") {
		return "", false
	}
	id := strings.TrimSuffix(strings.TrimPrefix(p, NotesPrefix), ".html")
	if id == "" || strings.Contains(id, "/") {
		return "", false
	}
	return id, true
}

// ContentTypeFor выбирает content type по расширению ключа
func ContentTypeFor(key string) string {
	switch path.Ext(key) {
	case ".json":
		return ContentTypeJSON
	case ".html":
		return ContentTypeHTML
	default:
		return ContentTypeBinary
	}
}

// NormalizeETag убирает префикс слабого валидатора W/ и кавычки.
// Хранилище и транспорт могут представлять один и тот же тег по-разному.
func NormalizeETag(tag string) string {
	tag = strings.TrimSpace(tag)
	tag = strings.TrimPrefix(tag, "W/")
	return strings.Trim(tag, `"`)
}

// QuoteETag возвращает тег в виде, пригодном для заголовков ETag/If-Match
func QuoteETag(tag string) string {
	return `"` + NormalizeETag(tag) + `"`
}
