package remote

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind класс ошибки обращения к удаленному хранилищу
type Kind string

const (
	KindNotConfigured Kind = "not_configured"  // нет адреса или токена, сеть не трогали
	KindConflict      Kind = "conflict"        // 412, предусловие не выполнено
	KindHTTP          Kind = "http"            // прочие не-2xx ответы
	KindNetwork       Kind = "network"         // транспортная ошибка, ответа нет
	KindCorrupt       Kind = "corrupt_payload" // удаленный документ не разбирается
)

// ErrNotConfigured возвращается до любого сетевого вызова
var ErrNotConfigured = &Error{Kind: KindNotConfigured, Err: errors.New("remote storage is not configured")}

// Error ошибка удаленного вызова
type Error struct {
	Err    error
	Kind   Kind
	Status int // HTTP статус для KindHTTP и KindConflict
}

func (e *Error) Error() string {
	switch {
	case e.Err != nil && e.Status != 0:
		return fmt.Sprintf("%s: %v", e.Code(), e.Err)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	default:
		return e.Code()
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Code возвращает код ошибки: http_<status> для KindHTTP, иначе имя класса
func (e *Error) Code() string {
	if e.Kind == KindHTTP {
		return fmt.Sprintf("http_%d", e.Status)
	}
	return string(e.Kind)
}

// KindOf возвращает класс ошибки; для посторонних ошибок пустую строку
func KindOf(err error) Kind {
	var re *Error
	if errors.As(err, &re) {
		return re.Kind
	}
	return ""
}

// StatusOf возвращает HTTP статус ошибки или 0
func StatusOf(err error) int {
	var re *Error
	if errors.As(err, &re) {
		return re.Status
	}
	return 0
}

func IsConflict(err error) bool {
	return KindOf(err) == KindConflict
}

func IsNotConfigured(err error) bool {
	return KindOf(err) == KindNotConfigured
}

func IsNotFound(err error) bool {
	return KindOf(err) == KindHTTP && StatusOf(err) == http.StatusNotFound
}

func IsCorrupt(err error) bool {
	return KindOf(err) == KindCorrupt
}

// IsClientError сообщает о 4xx (кроме 412), повтор которых не поможет.
// 401, 403, 408 и 429 сюда не входят: они проходят после смены токена или паузы.
func IsClientError(err error) bool {
	if KindOf(err) != KindHTTP {
		return false
	}
	switch status := StatusOf(err); status {
	case http.StatusUnauthorized, http.StatusForbidden, http.StatusRequestTimeout, http.StatusTooManyRequests:
		return false
	default:
		return status >= 400 && status < 500
	}
}

// IsRetryable сообщает, имеет ли смысл повторить операцию позже
func IsRetryable(err error) bool {
	switch KindOf(err) {
	case KindNetwork:
		return true
	case KindHTTP:
		return !IsClientError(err)
	default:
		return false
	}
}
