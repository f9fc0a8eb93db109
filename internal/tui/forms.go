package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/taka/internal/model"
	"github.com/theirongolddev/taka/internal/tui/theme"
	"github.com/theirongolddev/taka/internal/vocab"
)

type formKind int

const (
	formAddTx formKind = iota
	formEditTx
	formBudget
	formFilter
	formCurrency
)

// formValues is the binding target of the active form. It lives behind a
// pointer so the huh fields stay bound across Bubble Tea model copies.
type formValues struct {
	EditID   string
	Type     string
	Amount   string
	Category string
	Payment  string
	Date     string
	Note     string

	StartDate string
	EndDate   string
	Currency  string
}

func (v *formValues) transaction() (model.Transaction, error) {
	amount, err := model.ParseAmount(v.Amount)
	if err != nil {
		return model.Transaction{}, err
	}
	return model.Transaction{
		Amount:        amount,
		Type:          model.TransactionType(v.Type),
		Category:      v.Category,
		PaymentMethod: v.Payment,
		Date:          v.Date,
		Note:          strings.TrimSpace(v.Note),
	}, nil
}

func validAmount(s string) error {
	_, err := model.ParseAmount(s)
	return err
}

func validDate(s string) error {
	if _, err := time.Parse(model.DateLayout, s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD")
	}
	return nil
}

func validOptionalDate(s string) error {
	if s == "" {
		return nil
	}
	return validDate(s)
}

func categoryOptions(lang model.Language, t model.TransactionType) []huh.Option[string] {
	keys := vocab.CategoriesFor(t)
	opts := make([]huh.Option[string], 0, len(keys))
	for _, k := range keys {
		opts = append(opts, huh.NewOption(vocab.CategoryLabel(lang, k), k))
	}
	return opts
}

func paymentOptions(lang model.Language) []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(vocab.PaymentMethods))
	for _, k := range vocab.PaymentMethods {
		opts = append(opts, huh.NewOption(vocab.PaymentLabel(lang, k), k))
	}
	return opts
}

func newTransactionForm(lang model.Language, v *formValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Type").
				Options(
					huh.NewOption(vocab.Text(lang, vocab.TextExpense), string(model.Expense)),
					huh.NewOption(vocab.Text(lang, vocab.TextIncome), string(model.Income)),
				).
				Value(&v.Type),
			huh.NewInput().
				Title("Amount").
				Placeholder("0.00").
				Validate(validAmount).
				Value(&v.Amount),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Category").
				OptionsFunc(func() []huh.Option[string] {
					return categoryOptions(lang, model.TransactionType(v.Type))
				}, &v.Type).
				Value(&v.Category),
			huh.NewSelect[string]().
				Title("Payment").
				Options(paymentOptions(lang)...).
				Value(&v.Payment),
			huh.NewInput().
				Title("Date").
				Placeholder(model.DateLayout).
				Validate(validDate).
				Value(&v.Date),
			huh.NewInput().
				Title("Note").
				CharLimit(200).
				Value(&v.Note),
		),
	).WithShowHelp(true)
}

func newBudgetForm(lang model.Language, v *formValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Category").
				Options(categoryOptions(lang, model.Expense)...).
				Value(&v.Category),
			huh.NewInput().
				Title("Monthly limit").
				Placeholder("0.00").
				Validate(validAmount).
				Value(&v.Amount),
		),
	).WithShowHelp(true)
}

func newFilterForm(lang model.Language, v *formValues) *huh.Form {
	opts := []huh.Option[string]{huh.NewOption(vocab.Text(lang, vocab.TextAllCategory), model.AllCategories)}
	opts = append(opts, categoryOptions(lang, model.Expense)...)
	opts = append(opts, categoryOptions(lang, model.Income)...)

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Category").
				Options(opts...).
				Value(&v.Category),
			huh.NewInput().
				Title("From").
				Placeholder(model.DateLayout).
				Validate(validOptionalDate).
				Value(&v.StartDate),
			huh.NewInput().
				Title("To").
				Placeholder(model.DateLayout).
				Validate(validOptionalDate).
				Value(&v.EndDate),
		),
	).WithShowHelp(true)
}

func newCurrencyForm(lang model.Language, v *formValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(vocab.Text(lang, vocab.TextCurrency)).
				CharLimit(8).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("required")
					}
					return nil
				}).
				Value(&v.Currency),
		),
	).WithShowHelp(true)
}

// openForm activates f and returns its init command.
func (a App) openForm(kind formKind, v *formValues, f *huh.Form) (App, tea.Cmd) {
	a.form = f.WithWidth(a.formWidth())
	a.formKind = kind
	a.vals = v
	a.clearFlash()
	return a, a.form.Init()
}

func (a App) openAddTransaction() (App, tea.Cmd) {
	v := &formValues{
		Type:    string(model.Expense),
		Payment: vocab.PaymentMethods[0],
		Date:    a.opts.Now().Format(model.DateLayout),
	}
	return a.openForm(formAddTx, v, newTransactionForm(a.lang(), v))
}

func (a App) openEditTransaction(tx model.Transaction) (App, tea.Cmd) {
	v := &formValues{
		EditID:   tx.ID,
		Type:     string(tx.Type),
		Amount:   tx.Amount.String(),
		Category: tx.Category,
		Payment:  tx.PaymentMethod,
		Date:     tx.Date,
		Note:     tx.Note,
	}
	return a.openForm(formEditTx, v, newTransactionForm(a.lang(), v))
}

func (a App) openBudgetForm(category string) (App, tea.Cmd) {
	v := &formValues{Category: category}
	return a.openForm(formBudget, v, newBudgetForm(a.lang(), v))
}

func (a App) openFilterForm() (App, tea.Cmd) {
	c := a.core.Filter()
	v := &formValues{Category: c.Category, StartDate: c.StartDate, EndDate: c.EndDate}
	return a.openForm(formFilter, v, newFilterForm(a.lang(), v))
}

func (a App) openCurrencyForm() (App, tea.Cmd) {
	v := &formValues{Currency: a.core.Settings().Currency}
	return a.openForm(formCurrency, v, newCurrencyForm(a.lang(), v))
}

func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.String() == "esc" {
		a.closeForm()
		return a, nil
	}

	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	switch a.form.State {
	case huh.StateCompleted:
		if err := a.submitForm(); err != nil {
			a.setError(err)
		}
		a.closeForm()
		return a, nil
	case huh.StateAborted:
		a.closeForm()
		return a, nil
	}
	return a, cmd
}

func (a *App) closeForm() {
	a.form = nil
	a.vals = nil
}

// submitForm applies the completed form through the core app.
func (a *App) submitForm() error {
	v := a.vals
	switch a.formKind {
	case formAddTx:
		tx, err := v.transaction()
		if err != nil {
			return err
		}
		if _, err := a.core.AddTransaction(a.ctx, tx); err != nil {
			return err
		}
	case formEditTx:
		tx, err := v.transaction()
		if err != nil {
			return err
		}
		if _, err := a.core.EditTransaction(a.ctx, v.EditID, tx); err != nil {
			return err
		}
	case formBudget:
		limit, err := model.ParseAmount(v.Amount)
		if err != nil {
			return err
		}
		if err := a.core.AddOrReplaceBudget(a.ctx, v.Category, limit); err != nil {
			return err
		}
	case formFilter:
		if err := a.core.SetFilter(model.Criteria{
			Category:  v.Category,
			StartDate: v.StartDate,
			EndDate:   v.EndDate,
		}); err != nil {
			return err
		}
		a.hist.reset()
		return nil
	case formCurrency:
		if err := a.core.SetCurrency(a.ctx, strings.TrimSpace(v.Currency)); err != nil {
			return err
		}
	}
	a.setFlash(a.text(vocab.TextSaved))
	return nil
}

func (a App) formWidth() int {
	w := a.contentWidth() - 8
	if w > 70 {
		w = 70
	}
	if w < 30 {
		w = 30
	}
	return w
}

func (a App) viewForm() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 2)

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center,
		cardStyle.Render(a.form.View()),
		lipgloss.WithWhitespaceBackground(t.Background))
}
