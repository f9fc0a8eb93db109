// Package export turns ledger transactions into flat rows and CSV.
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/theirongolddev/taka/internal/model"
	"github.com/theirongolddev/taka/internal/vocab"
)

// AppName prefixes export file names.
const AppName = "taka_tracker"

// Header is the first CSV record.
var Header = []string{"Date", "Type", "Category", "Amount", "Payment", "Note"}

// ErrNothingToExport is returned when there are no transactions.
var ErrNothingToExport = errors.New("no transactions to export")

// Row is one exported transaction with display labels resolved.
type Row struct {
	Date     string
	Type     string
	Category string
	Amount   string
	Payment  string
	Note     string
}

// Record returns the row's fields in Header order.
func (r Row) Record() []string {
	return []string{r.Date, r.Type, r.Category, r.Amount, r.Payment, r.Note}
}

// Rows converts transactions to rows, preserving their order.
func Rows(txs []model.Transaction, lang model.Language) []Row {
	rows := make([]Row, 0, len(txs))
	for _, tx := range txs {
		rows = append(rows, Row{
			Date:     tx.Date,
			Type:     vocab.TypeLabel(tx.Type),
			Category: vocab.CategoryLabel(lang, tx.Category),
			Amount:   tx.Amount.String(),
			Payment:  vocab.PaymentLabel(lang, tx.PaymentMethod),
			Note:     tx.Note,
		})
	}
	return rows
}

// WriteCSV writes the header and rows. Fields containing a comma, quote,
// CR or LF are quoted with inner quotes doubled.
func WriteCSV(w io.Writer, rows []Row) error {
	if len(rows) == 0 {
		return ErrNothingToExport
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, r := range rows {
		if err := cw.Write(r.Record()); err != nil {
			return fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}
	return nil
}

// FileName returns "<app>_export_<YYYY-MM-DD>.csv" for the given day.
func FileName(app string, now time.Time) string {
	return fmt.Sprintf("%s_export_%s.csv", app, now.Format(model.DateLayout))
}
