package usecase

import (
	"errors"
	"fmt"
)

// エラー種別。HTTPステータスへの変換はhandler層の仕事で、ここでは種別だけ持つ。
type ErrorKind string

const (
	KindNotFound     ErrorKind = "NOT_FOUND"
	KindBusinessRule ErrorKind = "BUSINESS_RULE"
	KindUnauthorized ErrorKind = "UNAUTHORIZED"
	KindConflict     ErrorKind = "CONFLICT"
)

type AppError struct {
	Kind    ErrorKind
	Message string
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func NewNotFound(message string) error {
	return &AppError{Kind: KindNotFound, Message: message}
}

func NewBusinessRule(message string) error {
	return &AppError{Kind: KindBusinessRule, Message: message}
}

func NewUnauthorized(message string) error {
	return &AppError{Kind: KindUnauthorized, Message: message}
}

func NewConflict(message string) error {
	return &AppError{Kind: KindConflict, Message: message}
}

func AsAppError(err error) (*AppError, bool) {
	var ae *AppError
	ok := errors.As(err, &ae)
	return ae, ok
}
