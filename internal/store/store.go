// Package store provides durable key-value storage for the ledger,
// budgets and settings.
package store

import (
	"context"
	"errors"
	"fmt"
)

// Keys under which the app persists its state.
const (
	KeyTransactions = "tracker_transactions"
	KeyBudgets      = "tracker_budgets"
	KeyLanguage     = "tracker_lang"
	KeyTheme        = "tracker_theme"
	KeyCurrency     = "tracker_currency"
	KeyPIN          = "tracker_pin"
)

// Store is the load/save contract. Load reports ok=false for an absent key,
// which callers treat as "use the default". Save replaces the whole value.
type Store interface {
	Load(ctx context.Context, key string) (value []byte, ok bool, err error)
	Save(ctx context.Context, key string, value []byte) error
}

// ErrStorage matches every *Error via errors.Is.
var ErrStorage = errors.New("storage failure")

// Error is a failed read or write against a Store.
type Error struct {
	Op  string // "load" or "save"
	Key string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Key, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrStorage) true for any Error.
func (e *Error) Is(target error) bool {
	return target == ErrStorage
}
