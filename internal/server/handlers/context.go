package handlers

import "context"

// contextKey тип для ключей контекста
type contextKey string

// ClientKey ключ для хранения имени клиента в контексте
const ClientKey contextKey = "client"

// WithClient возвращает контекст с именем аутентифицированного клиента
func WithClient(ctx context.Context, client string) context.Context {
	return context.WithValue(ctx, ClientKey, client)
}

// GetClient извлекает имя клиента из контекста запроса
func GetClient(ctx context.Context) (string, bool) {
	client, ok := ctx.Value(ClientKey).(string)
	return client, ok
}
