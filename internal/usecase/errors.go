package usecase

import (
	"errors"
	"fmt"
)

// 失敗の種別。HTTPステータスへの変換はhandler側が持つ。
type ErrorKind string

const (
	KindValidation        ErrorKind = "VALIDATION"
	KindUnauthorized      ErrorKind = "UNAUTHORIZED"
	KindNotFound          ErrorKind = "NOT_FOUND"
	KindConflict          ErrorKind = "CONFLICT"
	KindInsufficientStock ErrorKind = "INSUFFICIENT_STOCK"
	KindStorage           ErrorKind = "STORAGE"
)

type AppError struct {
	Kind    ErrorKind
	Message string
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func NewAppError(kind ErrorKind, message string) error {
	return &AppError{
		Kind:    kind,
		Message: message,
	}
}

func AsAppError(err error) (*AppError, bool) {
	var ae *AppError
	ok := errors.As(err, &ae)
	return ae, ok
}
