package api

import (
	"errors"
	"fmt"
)

// Kind — класс ошибки API. Презентеры выбирают текст для пользователя
// по классу, а не по коду статуса.
type Kind string

const (
	KindNetwork    Kind = "network"    // транспортная ошибка, ответа нет
	KindValidation Kind = "validation" // 4xx, кроме авторизационных
	KindAuth       Kind = "auth"       // 401/403
	KindServer     Kind = "server"     // 5xx
)

// Error — типизированная ошибка API-клиента.
type Error struct {
	Kind    Kind
	Status  int    // 0 для транспортных ошибок
	Op      string // get_products | submit_order
	Message string
}

func (e *Error) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("api %s: %s: %s", e.Op, e.Kind, e.Message)
	}
	return fmt.Sprintf("api %s: %s (status=%d): %s", e.Op, e.Kind, e.Status, e.Message)
}

// IsKind — err является *Error данного класса.
func IsKind(err error, kind Kind) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == kind
}

// kindForStatus — классификация по HTTP-статусу.
func kindForStatus(status int) Kind {
	switch {
	case status == 401 || status == 403:
		return KindAuth
	case status >= 400 && status < 500:
		return KindValidation
	default:
		return KindServer
	}
}
