package domain

import (
	"errors"
	"fmt"
)

// ErrorKind — класс ошибки слоя данных.
type ErrorKind int

const (
	KindConnection  ErrorKind = iota + 1 // хранилище недоступно (сеть, таймаут, пул)
	KindQuery                            // запрос чтения/агрегации упал
	KindTransaction                      // сбой фазы записи; транзакция откатена
)

// Базовые ошибки для errors.Is.
var (
	ErrConnection  = errors.New("data store connection failed")
	ErrQuery       = errors.New("data store query failed")
	ErrTransaction = errors.New("data store transaction failed")
)

func (k ErrorKind) String() string {
	switch k {
	case KindConnection:
		return "connection"
	case KindQuery:
		return "query"
	case KindTransaction:
		return "transaction"
	default:
		return "unknown"
	}
}

func (k ErrorKind) sentinel() error {
	switch k {
	case KindConnection:
		return ErrConnection
	case KindQuery:
		return ErrQuery
	case KindTransaction:
		return ErrTransaction
	default:
		return nil
	}
}

// StoreError — ошибка слоя данных с классом и операцией.
type StoreError struct {
	Kind ErrorKind
	Op   string
	Err  error
}

// NewStoreError — конструктор; nil-ошибка остаётся nil.
func NewStoreError(kind ErrorKind, op string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Kind: kind, Op: op, Err: err}
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s (%s): %v", e.Op, e.Kind, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// Is — сопоставление с базовыми ошибками по классу.
func (e *StoreError) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}

// IsStoreError — ошибка пришла из слоя данных (любого класса).
func IsStoreError(err error) bool {
	var se *StoreError
	return errors.As(err, &se)
}
