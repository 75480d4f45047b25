package remote

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Config адрес удаленного хранилища и bearer токен.
// Хранится в локальной базе и передается клиенту при создании.
type Config struct {
	BaseURL string `json:"baseUrl"`
	Token   string `json:"token"`
}

// Configured сообщает, заданы ли и адрес, и токен
func (c Config) Configured() bool {
	return strings.TrimSpace(c.BaseURL) != "" && strings.TrimSpace(c.Token) != ""
}

// Validate проверяет конфигурацию перед сохранением
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.BaseURL, validation.Required, is.URL),
		validation.Field(&c.Token, validation.Required),
	)
}

func (c Config) endpoint(p string) string {
	return strings.TrimRight(c.BaseURL, "/") + "/" + strings.TrimLeft(p, "/")
}
