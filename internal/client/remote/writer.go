package remote

import (
	"context"
)

// PutWithMatch записывает body по пути p с проверкой свежести:
//
//  1. HEAD дает текущий удаленный тег (кешу не доверяем);
//  2. PUT с If-Match этим тегом;
//  3. при конфликте один безусловный PUT, побеждает локальная запись;
//  4. если объекта нет, PUT с If-None-Match: *; конфликт здесь возвращается вызывающему.
//
// Успешная запись обновляет ETag кеш.
func (c *Client) PutWithMatch(ctx context.Context, p string, body []byte) (string, error) {
	current, found, err := c.Probe(ctx, p)
	if err != nil {
		return "", err
	}

	if !found {
		return c.Write(ctx, p, body, CreateOnly())
	}

	tag, err := c.Write(ctx, p, body, Match(current))
	if IsConflict(err) {
		// Объект изменился между HEAD и PUT
		c.logger.Warn("Remote changed between probe and write, overwriting", "path", p, "probe_etag", current)
		return c.Write(ctx, p, body, Unconditional())
	}
	return tag, err
}
