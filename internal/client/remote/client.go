package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/iudanet/lightnotes/pkg/api"
)

// Client выполняет условные GET/HEAD/PUT/DELETE к удаленному хранилищу объектов
type Client struct {
	httpClient *http.Client
	cache      *ETagCache
	logger     *slog.Logger
	cfg        Config
}

// NewClient создает новый клиент удаленного хранилища
func NewClient(cfg Config, cache *ETagCache, logger *slog.Logger) *Client {
	return &Client{
		cfg:    cfg,
		cache:  cache,
		logger: logger,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			// Настройка обработки редиректов
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовки Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get(api.HeaderAuth) != "" {
					req.Header.Set(api.HeaderAuth, via[0].Header.Get(api.HeaderAuth))
				}
				return nil
			},
		},
	}
}

// Configured сообщает, задана ли конфигурация удаленного хранилища
func (c *Client) Configured() bool {
	return c.cfg.Configured()
}

// Cache возвращает ETag кеш клиента
func (c *Client) Cache() *ETagCache {
	return c.cache
}

// ReadResult результат чтения ресурса
type ReadResult struct {
	Tag       string // текущий тег ресурса
	Data      []byte // тело; nil если Unchanged
	Unchanged bool   // сервер ответил 304 на закешированный тег
}

// Read выполняет условный GET с закешированным тегом.
// Unchanged=true не означает, что локальных действий не нужно:
// вызывающий обязан сверяться с отслеживанием изменений.
func (c *Client) Read(ctx context.Context, p string) (*ReadResult, error) {
	cached, err := c.cache.Get(ctx, p)
	if err != nil {
		c.logger.Warn("ETag cache unavailable, reading unconditionally", "path", p, "error", err)
		cached = ""
	}
	return c.read(ctx, p, cached)
}

// ReadFresh выполняет безусловный GET, например для загрузки отсутствующего локально тела
func (c *Client) ReadFresh(ctx context.Context, p string) (*ReadResult, error) {
	return c.read(ctx, p, "")
}

func (c *Client) read(ctx context.Context, p, cached string) (*ReadResult, error) {
	header := http.Header{}
	if cached != "" {
		header.Set(api.HeaderIfNoneMatch, api.QuoteETag(cached))
	}

	resp, body, err := c.do(ctx, http.MethodGet, c.cfg.endpoint(p), nil, header)
	if err != nil {
		return nil, err
	}

	switch {
	case resp.StatusCode == http.StatusNotModified:
		c.logger.Debug("Remote resource unchanged", "path", p)
		return &ReadResult{Unchanged: true, Tag: cached}, nil
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		tag := api.NormalizeETag(resp.Header.Get(api.HeaderETag))
		if tag != "" {
			c.remember(ctx, p, tag)
		}
		return &ReadResult{Data: body, Tag: tag}, nil
	default:
		return nil, statusError(resp.StatusCode, body)
	}
}

// Probe выполняет HEAD и возвращает текущий тег ресурса или found=false
func (c *Client) Probe(ctx context.Context, p string) (tag string, found bool, err error) {
	resp, body, err := c.do(ctx, http.MethodHead, c.cfg.endpoint(p), nil, nil)
	if err != nil {
		return "", false, err
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return "", false, nil
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return api.NormalizeETag(resp.Header.Get(api.HeaderETag)), true, nil
	default:
		return "", false, statusError(resp.StatusCode, body)
	}
}

// Write выполняет PUT с заданным предусловием и возвращает новый тег
func (c *Client) Write(ctx context.Context, p string, body []byte, pre Precondition) (string, error) {
	header := http.Header{}
	header.Set(api.HeaderContentType, api.ContentTypeFor(p))
	pre.apply(header)

	resp, respBody, err := c.do(ctx, http.MethodPut, c.cfg.endpoint(p), body, header)
	if err != nil {
		return "", err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// 412 становится KindConflict
		return "", statusError(resp.StatusCode, respBody)
	}

	tag := api.NormalizeETag(resp.Header.Get(api.HeaderETag))
	if tag != "" {
		c.remember(ctx, p, tag)
	}
	return tag, nil
}

// Remove выполняет безусловный DELETE. Отсутствующий объект не ошибка.
func (c *Client) Remove(ctx context.Context, p string) error {
	resp, body, err := c.do(ctx, http.MethodDelete, c.cfg.endpoint(p), nil, nil)
	if err != nil {
		return err
	}

	if resp.StatusCode == http.StatusNotFound || (resp.StatusCode >= 200 && resp.StatusCode < 300) {
		if err := c.cache.Evict(ctx, p); err != nil {
			c.logger.Warn("Failed to evict etag", "path", p, "error", err)
		}
		return nil
	}

	return statusError(resp.StatusCode, body)
}

// ListKeys возвращает все ключи под префиксом
func (c *Client) ListKeys(ctx context.Context, prefix string) ([]string, error) {
	u := c.cfg.endpoint(api.ListPath) + "?prefix=" + url.QueryEscape(prefix)

	resp, body, err := c.do(ctx, http.MethodGet, u, nil, nil)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, statusError(resp.StatusCode, body)
	}

	var list api.ListResponse
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, &Error{Kind: KindCorrupt, Err: fmt.Errorf("failed to decode key list: %w", err)}
	}
	if list.Keys == nil {
		list.Keys = []string{}
	}
	return list.Keys, nil
}

func (c *Client) remember(ctx context.Context, p, tag string) {
	if err := c.cache.Set(ctx, p, tag); err != nil {
		c.logger.Warn("Failed to cache etag", "path", p, "error", err)
	}
}

// do выполняет HTTP запрос и читает тело ответа
func (c *Client) do(ctx context.Context, method, u string, body []byte, header http.Header) (*http.Response, []byte, error) {
	if !c.cfg.Configured() {
		return nil, nil, ErrNotConfigured
	}

	var bodyReader io.Reader
	if body != nil {
		bodyReader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, bodyReader)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create request: %w", err)
	}
	for k, v := range header {
		req.Header[k] = v
	}
	req.Header.Set(api.HeaderAuth, "Bearer "+c.cfg.Token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, &Error{Kind: KindNetwork, Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, &Error{Kind: KindNetwork, Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	c.logger.Debug("Remote request", "method", method, "url", u, "status", resp.StatusCode)

	return resp, respBody, nil
}

// statusError переводит не-2xx ответ в *Error
func statusError(status int, body []byte) error {
	var errResp api.ErrorResponse
	msg := string(body)
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		msg = errResp.Error
	}
	if msg == "" {
		msg = http.StatusText(status)
	}

	kind := KindHTTP
	if status == http.StatusPreconditionFailed {
		kind = KindConflict
	}
	return &Error{Kind: kind, Status: status, Err: errors.New(msg)}
}
