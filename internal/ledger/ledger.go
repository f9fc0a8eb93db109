// Package ledger owns the in-memory transaction collection.
package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/taka/internal/model"
	"github.com/theirongolddev/taka/internal/pipeline"
)

// Ledger is the authoritative transaction list. Storage order is most
// recently added first. It is not safe for concurrent use.
type Ledger struct {
	txs  []model.Transaction
	ids  IDGenerator
	used map[string]struct{}
}

// New returns a ledger seeded with txs (kept in the given order).
// A nil generator defaults to UUIDs.
func New(ids IDGenerator, txs []model.Transaction) *Ledger {
	if ids == nil {
		ids = UUIDGenerator{}
	}
	l := &Ledger{
		txs:  make([]model.Transaction, len(txs)),
		ids:  ids,
		used: make(map[string]struct{}, len(txs)),
	}
	copy(l.txs, txs)
	for _, tx := range txs {
		l.used[tx.ID] = struct{}{}
	}
	return l
}

// Add validates tx, assigns it a fresh id and inserts it at the head.
// The stored transaction is returned.
func (l *Ledger) Add(tx model.Transaction) (model.Transaction, error) {
	if err := tx.Validate(); err != nil {
		return model.Transaction{}, err
	}
	tx.ID = l.nextID()
	l.txs = append([]model.Transaction{tx}, l.txs...)
	return tx, nil
}

// nextID never hands out an id that is or was present in this ledger.
func (l *Ledger) nextID() string {
	for {
		id := l.ids.NewID()
		if _, taken := l.used[id]; !taken {
			l.used[id] = struct{}{}
			return id
		}
	}
}

// Update replaces the transaction with the given id in place, keeping its
// position and id. It reports false when no transaction matches.
func (l *Ledger) Update(id string, tx model.Transaction) (bool, error) {
	if err := tx.Validate(); err != nil {
		return false, err
	}
	for i := range l.txs {
		if l.txs[i].ID == id {
			tx.ID = id
			l.txs[i] = tx
			return true, nil
		}
	}
	return false, nil
}

// Remove deletes the transaction with the given id. It reports whether
// anything was removed; removing an unknown id is a no-op.
func (l *Ledger) Remove(id string) bool {
	for i := range l.txs {
		if l.txs[i].ID == id {
			l.txs = append(l.txs[:i], l.txs[i+1:]...)
			return true
		}
	}
	return false
}

// Get returns the transaction with the given id.
func (l *Ledger) Get(id string) (model.Transaction, bool) {
	for _, tx := range l.txs {
		if tx.ID == id {
			return tx, true
		}
	}
	return model.Transaction{}, false
}

// Len returns the number of transactions.
func (l *Ledger) Len() int {
	return len(l.txs)
}

// All returns a copy of every transaction in storage order.
func (l *Ledger) All() []model.Transaction {
	out := make([]model.Transaction, len(l.txs))
	copy(out, l.txs)
	return out
}

// Balance is income minus expense over every transaction, from a full scan.
func (l *Ledger) Balance() decimal.Decimal {
	return pipeline.Balance(l.txs)
}

// FilterByPeriod returns the transactions in the period containing ref.
func (l *Ledger) FilterByPeriod(p model.Period, ref time.Time) model.PeriodResult {
	return pipeline.FilterByPeriod(l.txs, p, ref)
}

// FilterByCriteria returns the history view for c, most recent first.
func (l *Ledger) FilterByCriteria(c model.Criteria) []model.Transaction {
	return pipeline.FilterByCriteria(l.txs, c)
}
