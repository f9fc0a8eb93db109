// Package app is the command surface used by the CLI and TUI. It wires the
// access gate, ledger, budget tracker and settings to a Store and persists
// every mutation.
//
// An App is meant to be driven by one caller at a time.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/shopspring/decimal"

	"github.com/theirongolddev/taka/internal/budget"
	"github.com/theirongolddev/taka/internal/export"
	"github.com/theirongolddev/taka/internal/gate"
	"github.com/theirongolddev/taka/internal/ledger"
	"github.com/theirongolddev/taka/internal/model"
	"github.com/theirongolddev/taka/internal/pipeline"
	"github.com/theirongolddev/taka/internal/store"
	"github.com/theirongolddev/taka/internal/vocab"
)

// ErrLocked is returned by every command except unlocking while the gate
// is closed.
var ErrLocked = errors.New("app is locked")

// RecentLimit is how many transactions the dashboard previews.
const RecentLimit = 5

// Options configures New. Zero values pick production defaults.
type Options struct {
	Logger   *log.Logger
	Now      func() time.Time
	IDs      ledger.IDGenerator
	Defaults model.Settings
	Gate     []gate.Option
}

// App holds the session state.
type App struct {
	store store.Store
	log   *log.Logger
	now   func() time.Time

	gate     *gate.Gate
	ledger   *ledger.Ledger
	budgets  *budget.Tracker
	settings model.Settings

	period   model.Period
	criteria model.Criteria

	dirtyTxs      bool
	dirtyBudgets  bool
	dirtySettings map[string]string
}

// New loads settings, transactions, budgets and the PIN from s. The app
// always starts locked.
func New(ctx context.Context, s store.Store, opts Options) (*App, error) {
	a := &App{
		store:         s,
		log:           opts.Logger,
		now:           opts.Now,
		period:        model.Monthly,
		criteria:      model.Criteria{Category: model.AllCategories},
		dirtySettings: make(map[string]string),
	}
	if a.log == nil {
		a.log = log.New(io.Discard)
	}
	if a.now == nil {
		a.now = time.Now
	}

	var err error
	if a.settings, err = loadSettings(ctx, s, withDefaults(opts.Defaults)); err != nil {
		return nil, err
	}

	txs, err := store.LoadTransactions(ctx, s)
	if err != nil {
		return nil, fmt.Errorf("loading transactions: %w", err)
	}
	a.ledger = ledger.New(opts.IDs, a.validTransactions(txs))

	budgets, err := store.LoadBudgets(ctx, s)
	if err != nil {
		return nil, fmt.Errorf("loading budgets: %w", err)
	}
	a.budgets = budget.NewTracker(a.validBudgets(budgets))

	if a.gate, err = gate.New(ctx, s, opts.Gate...); err != nil {
		return nil, err
	}

	a.log.Debug("loaded", "transactions", a.ledger.Len(), "budgets", len(budgets),
		"lang", a.settings.Language, "theme", a.settings.Theme)
	return a, nil
}

// validTransactions drops stored records that would not pass Add, such as
// non-positive amounts written by hand or by an older build.
func (a *App) validTransactions(txs []model.Transaction) []model.Transaction {
	kept := txs[:0]
	for _, tx := range txs {
		if err := tx.Validate(); err != nil {
			a.log.Warn("dropping stored transaction", "id", tx.ID, "err", err)
			continue
		}
		kept = append(kept, tx)
	}
	return kept
}

func (a *App) validBudgets(budgets []model.CategoryBudget) []model.CategoryBudget {
	kept := budgets[:0]
	for _, b := range budgets {
		if err := b.Validate(); err != nil {
			a.log.Warn("dropping stored budget", "category", b.Category, "err", err)
			continue
		}
		kept = append(kept, b)
	}
	return kept
}

// Close cancels the gate timer and writes anything still unsaved.
func (a *App) Close(ctx context.Context) error {
	a.gate.Close()
	return a.Flush(ctx)
}

// Flush re-writes every collection whose last save failed.
func (a *App) Flush(ctx context.Context) error {
	var errs []error
	if a.dirtyTxs {
		if err := store.SaveTransactions(ctx, a.store, a.ledger.All()); err != nil {
			errs = append(errs, a.storageFailed(store.KeyTransactions, err))
		} else {
			a.dirtyTxs = false
		}
	}
	if a.dirtyBudgets {
		if err := store.SaveBudgets(ctx, a.store, a.budgets.All()); err != nil {
			errs = append(errs, a.storageFailed(store.KeyBudgets, err))
		} else {
			a.dirtyBudgets = false
		}
	}
	for key, value := range a.dirtySettings {
		if err := store.SaveString(ctx, a.store, key, value); err != nil {
			errs = append(errs, a.storageFailed(key, err))
		} else {
			delete(a.dirtySettings, key)
		}
	}
	return errors.Join(errs...)
}

// Dirty reports whether some state has not reached the store.
func (a *App) Dirty() bool {
	return a.dirtyTxs || a.dirtyBudgets || len(a.dirtySettings) > 0
}

func (a *App) storageFailed(key string, err error) error {
	a.log.Error("storage write failed", "key", key, "err", err)
	return err
}

func (a *App) guard() error {
	if !a.gate.Unlocked() {
		return ErrLocked
	}
	return nil
}

// --- Access gate ---

// UnlockWithPin feeds digits to the gate. A mismatch is reported through
// the returned status, not as an error.
func (a *App) UnlockWithPin(ctx context.Context, digits string) (gate.Status, error) {
	first := !a.gate.HasPIN()
	st, err := a.gate.Enter(ctx, digits)
	return a.afterGate(st, first, err)
}

// PressKey feeds one key to the gate.
func (a *App) PressKey(ctx context.Context, r rune) (gate.Status, error) {
	first := !a.gate.HasPIN()
	st, err := a.gate.Press(ctx, r)
	return a.afterGate(st, first, err)
}

// Backspace removes the last PIN digit.
func (a *App) Backspace() gate.Status {
	return a.gate.Backspace()
}

func (a *App) afterGate(st gate.Status, first bool, err error) (gate.Status, error) {
	if err != nil {
		return st, a.storageFailed(store.KeyPIN, err)
	}
	switch st.Phase {
	case gate.Unlocked:
		if first {
			a.log.Info("pin set")
		}
		a.log.Debug("unlocked")
	case gate.Mismatch:
		a.log.Warn("pin mismatch")
	}
	return st, nil
}

// GateStatus returns the lock state for display.
func (a *App) GateStatus() gate.Status {
	return a.gate.Status()
}

// Locked reports whether the gate is closed.
func (a *App) Locked() bool {
	return !a.gate.Unlocked()
}

// LockNow closes the gate.
func (a *App) LockNow() gate.Status {
	a.log.Debug("locked")
	return a.gate.Lock()
}

// --- Transactions ---

// AddTransaction validates tx, assigns an id and stores it. The returned
// transaction carries the new id. A storage error leaves the transaction
// in the ledger.
func (a *App) AddTransaction(ctx context.Context, tx model.Transaction) (model.Transaction, error) {
	if err := a.guard(); err != nil {
		return model.Transaction{}, err
	}
	added, err := a.ledger.Add(tx)
	if err != nil {
		return model.Transaction{}, err
	}
	a.log.Debug("added transaction", "id", added.ID, "type", added.Type, "category", added.Category)
	a.dirtyTxs = true
	return added, a.Flush(ctx)
}

// EditTransaction replaces the transaction with id. It returns false with
// no error when id is unknown.
func (a *App) EditTransaction(ctx context.Context, id string, tx model.Transaction) (bool, error) {
	if err := a.guard(); err != nil {
		return false, err
	}
	ok, err := a.ledger.Update(id, tx)
	if err != nil || !ok {
		return ok, err
	}
	a.log.Debug("edited transaction", "id", id)
	a.dirtyTxs = true
	return true, a.Flush(ctx)
}

// DeleteTransaction removes the transaction with id, if present.
func (a *App) DeleteTransaction(ctx context.Context, id string) (bool, error) {
	if err := a.guard(); err != nil {
		return false, err
	}
	if !a.ledger.Remove(id) {
		return false, nil
	}
	a.log.Debug("deleted transaction", "id", id)
	a.dirtyTxs = true
	return true, a.Flush(ctx)
}

// Transaction looks up one transaction by id.
func (a *App) Transaction(id string) (model.Transaction, bool, error) {
	if err := a.guard(); err != nil {
		return model.Transaction{}, false, err
	}
	tx, ok := a.ledger.Get(id)
	return tx, ok, nil
}

// --- Budgets ---

// AddOrReplaceBudget sets the monthly limit for category.
func (a *App) AddOrReplaceBudget(ctx context.Context, category string, limit decimal.Decimal) error {
	if err := a.guard(); err != nil {
		return err
	}
	if err := a.budgets.Upsert(category, limit); err != nil {
		return err
	}
	if !vocab.IsKnownCategory(model.Expense, category) {
		a.log.Warn("budget category is not an expense category", "category", category)
	}
	a.log.Debug("set budget", "category", category, "limit", limit)
	a.dirtyBudgets = true
	return a.Flush(ctx)
}

// DeleteBudget removes the budget for category, if present.
func (a *App) DeleteBudget(ctx context.Context, category string) (bool, error) {
	if err := a.guard(); err != nil {
		return false, err
	}
	if !a.budgets.Remove(category) {
		return false, nil
	}
	a.log.Debug("deleted budget", "category", category)
	a.dirtyBudgets = true
	return true, a.Flush(ctx)
}

// BudgetProgress returns this month's progress for category. ok is false
// when no budget exists for it.
func (a *App) BudgetProgress(category string) (model.BudgetProgress, bool, error) {
	if err := a.guard(); err != nil {
		return model.BudgetProgress{}, false, err
	}
	progress, ok := a.budgets.Progress(category, a.ledger, a.now(), a.settings.Language)
	return progress, ok, nil
}

// Budgets returns every budget with its progress, in creation order.
func (a *App) Budgets() ([]model.BudgetProgress, error) {
	if err := a.guard(); err != nil {
		return nil, err
	}
	return a.budgets.Report(a.ledger, a.now(), a.settings.Language), nil
}

// --- Views ---

// SetFilter replaces the history criteria. An empty category means all.
func (a *App) SetFilter(c model.Criteria) error {
	if err := a.guard(); err != nil {
		return err
	}
	if c.Category == "" {
		c.Category = model.AllCategories
	}
	if err := checkDate("start date", c.StartDate); err != nil {
		return err
	}
	if err := checkDate("end date", c.EndDate); err != nil {
		return err
	}
	a.criteria = c
	return nil
}

func checkDate(field, d string) error {
	if d == "" {
		return nil
	}
	if _, err := time.Parse(model.DateLayout, d); err != nil {
		return &model.ValidationError{Field: field, Reason: fmt.Sprintf("%q is not YYYY-MM-DD", d)}
	}
	return nil
}

// ClearFilter resets the history criteria to all categories and dates.
func (a *App) ClearFilter() error {
	return a.SetFilter(model.Criteria{})
}

// Filter returns the current history criteria.
func (a *App) Filter() model.Criteria {
	return a.criteria
}

// SetPeriodTab selects the dashboard period.
func (a *App) SetPeriodTab(p model.Period) error {
	if err := a.guard(); err != nil {
		return err
	}
	if _, err := model.ParsePeriod(string(p)); err != nil {
		return err
	}
	a.period = p
	return nil
}

// PeriodTab returns the selected dashboard period.
func (a *App) PeriodTab() model.Period {
	return a.period
}

// Balance returns income minus expense over every transaction.
func (a *App) Balance() (decimal.Decimal, error) {
	if err := a.guard(); err != nil {
		return decimal.Zero, err
	}
	return a.ledger.Balance(), nil
}

// PeriodStats returns the transactions and totals of period p around now.
func (a *App) PeriodStats(p model.Period) (model.PeriodResult, error) {
	if err := a.guard(); err != nil {
		return model.PeriodResult{}, err
	}
	return a.ledger.FilterByPeriod(p, a.now()), nil
}

// RecentInPeriod returns up to n transactions of the selected period.
func (a *App) RecentInPeriod(n int) ([]model.Transaction, error) {
	res, err := a.PeriodStats(a.period)
	if err != nil {
		return nil, err
	}
	if n >= 0 && len(res.Transactions) > n {
		return res.Transactions[:n], nil
	}
	return res.Transactions, nil
}

// FilteredHistory returns transactions matching the current criteria,
// most recent date first.
func (a *App) FilteredHistory() ([]model.Transaction, error) {
	if err := a.guard(); err != nil {
		return nil, err
	}
	return a.ledger.FilterByCriteria(a.criteria), nil
}

// ExpenseDistribution returns the category breakdown of period p.
func (a *App) ExpenseDistribution(p model.Period) (model.Distribution, error) {
	res, err := a.PeriodStats(p)
	if err != nil {
		return model.Distribution{}, err
	}
	return pipeline.ExpenseDistribution(res.Transactions, a.settings.Language), nil
}

// --- Export ---

// ExportRows returns every transaction in storage order as labelled rows.
func (a *App) ExportRows() ([]export.Row, error) {
	if err := a.guard(); err != nil {
		return nil, err
	}
	if a.ledger.Len() == 0 {
		return nil, export.ErrNothingToExport
	}
	return export.Rows(a.ledger.All(), a.settings.Language), nil
}

// Export writes the CSV export to w.
func (a *App) Export(w io.Writer) error {
	rows, err := a.ExportRows()
	if err != nil {
		return err
	}
	if err := export.WriteCSV(w, rows); err != nil {
		return err
	}
	a.log.Debug("exported", "rows", len(rows))
	return nil
}
