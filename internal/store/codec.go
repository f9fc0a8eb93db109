package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/theirongolddev/taka/internal/model"
)

// LoadTransactions reads the transaction snapshot. A missing key yields an
// empty list.
func LoadTransactions(ctx context.Context, s Store) ([]model.Transaction, error) {
	var txs []model.Transaction
	if err := loadJSON(ctx, s, KeyTransactions, &txs); err != nil {
		return nil, err
	}
	return txs, nil
}

// SaveTransactions writes the complete transaction snapshot.
func SaveTransactions(ctx context.Context, s Store, txs []model.Transaction) error {
	if txs == nil {
		txs = []model.Transaction{}
	}
	return saveJSON(ctx, s, KeyTransactions, txs)
}

// LoadBudgets reads the budget snapshot. A missing key yields an empty list.
func LoadBudgets(ctx context.Context, s Store) ([]model.CategoryBudget, error) {
	var budgets []model.CategoryBudget
	if err := loadJSON(ctx, s, KeyBudgets, &budgets); err != nil {
		return nil, err
	}
	return budgets, nil
}

// SaveBudgets writes the complete budget snapshot.
func SaveBudgets(ctx context.Context, s Store, budgets []model.CategoryBudget) error {
	if budgets == nil {
		budgets = []model.CategoryBudget{}
	}
	return saveJSON(ctx, s, KeyBudgets, budgets)
}

// LoadString reads a plain string value, returning def when absent.
func LoadString(ctx context.Context, s Store, key, def string) (string, error) {
	v, ok, err := s.Load(ctx, key)
	if err != nil {
		return def, err
	}
	if !ok {
		return def, nil
	}
	return string(v), nil
}

// SaveString writes a plain string value.
func SaveString(ctx context.Context, s Store, key, value string) error {
	return s.Save(ctx, key, []byte(value))
}

func loadJSON(ctx context.Context, s Store, key string, dst any) error {
	raw, ok, err := s.Load(ctx, key)
	if err != nil || !ok {
		return err
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return &Error{Op: "load", Key: key, Err: fmt.Errorf("decoding: %w", err)}
	}
	return nil
}

func saveJSON(ctx context.Context, s Store, key string, v any) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return &Error{Op: "save", Key: key, Err: fmt.Errorf("encoding: %w", err)}
	}
	return s.Save(ctx, key, raw)
}
