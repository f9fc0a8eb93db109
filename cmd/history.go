package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/taka/internal/cli"
	"github.com/theirongolddev/taka/internal/model"
	"github.com/theirongolddev/taka/internal/vocab"
)

var (
	flagHistCategory string
	flagHistFrom     string
	flagHistTo       string
	flagHistLimit    int
)

var historyCmd = &cobra.Command{
	Use:     "history",
	Aliases: []string{"list", "ls"},
	Short:   "Transaction history, newest first",
	RunE:    runHistory,
}

func init() {
	historyCmd.Flags().StringVarP(&flagHistCategory, "category", "c", model.AllCategories, "Category key, or all")
	historyCmd.Flags().StringVar(&flagHistFrom, "from", "", "Earliest date, inclusive (YYYY-MM-DD)")
	historyCmd.Flags().StringVar(&flagHistTo, "to", "", "Latest date, inclusive (YYYY-MM-DD)")
	historyCmd.Flags().IntVarP(&flagHistLimit, "limit", "n", 0, "Show at most n rows (0 = all)")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	s, err := openUnlocked(ctx)
	if err != nil {
		return err
	}
	defer s.Close(ctx)

	if err := s.SetFilter(model.Criteria{
		Category:  flagHistCategory,
		StartDate: flagHistFrom,
		EndDate:   flagHistTo,
	}); err != nil {
		return err
	}
	txs, err := s.FilteredHistory()
	if err != nil {
		return err
	}

	lang := s.Settings().Language
	if len(txs) == 0 {
		fmt.Printf("\n  %s\n", vocab.Text(lang, vocab.TextNoData))
		return nil
	}
	if flagHistLimit > 0 && len(txs) > flagHistLimit {
		txs = txs[:flagHistLimit]
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(vocab.Text(lang, vocab.TextHistory)))
	fmt.Println()

	cur := s.Settings().Currency
	rows := make([][]string, 0, len(txs))
	for _, tx := range txs {
		rows = append(rows, []string{
			tx.Date,
			tx.ID,
			vocab.CategoryLabel(lang, tx.Category),
			vocab.PaymentLabel(lang, tx.PaymentMethod),
			cli.FormatSigned(tx, cur),
			tx.Note,
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers:    []string{"Date", "ID", "Category", "Payment", "Amount", "Note"},
		Rows:       rows,
		RightAlign: []int{4},
	}))
	return nil
}
