package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/taka/internal/app"
	"github.com/theirongolddev/taka/internal/cli"
	"github.com/theirongolddev/taka/internal/model"
	"github.com/theirongolddev/taka/internal/tui/theme"
	"github.com/theirongolddev/taka/internal/vocab"
)

var flagPeriod string

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Balance, period totals and expense breakdown",
	RunE:  runStats,
}

func init() {
	for _, c := range []*cobra.Command{rootCmd, statsCmd} {
		c.Flags().StringVarP(&flagPeriod, "period", "p", string(model.Monthly), "daily, monthly or yearly")
	}
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, _ []string) error {
	period, err := model.ParsePeriod(flagPeriod)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	s, err := openUnlocked(ctx)
	if err != nil {
		return err
	}
	defer s.Close(ctx)

	if err := s.SetPeriodTab(period); err != nil {
		return err
	}
	balance, err := s.Balance()
	if err != nil {
		return err
	}
	stats, err := s.PeriodStats(period)
	if err != nil {
		return err
	}
	dist, err := s.ExpenseDistribution(period)
	if err != nil {
		return err
	}
	recent, err := s.RecentInPeriod(app.RecentLimit)
	if err != nil {
		return err
	}

	lang := s.Settings().Language
	cur := s.Settings().Currency
	text := func(key string) string { return vocab.Text(lang, key) }

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("%s  %s", text(vocab.TextAppName), vocab.PeriodLabel(lang, period))))
	fmt.Println()

	balanceStr := cli.RenderIncome(cli.FormatAmount(balance, cur))
	if balance.IsNegative() {
		balanceStr = cli.RenderExpense(cli.FormatAmount(balance, cur))
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{text(vocab.TextBalance), balanceStr},
		Rows: [][]string{
			{text(vocab.TextIncome), cli.RenderIncome(cli.FormatAmount(stats.Income, cur))},
			{text(vocab.TextExpense), cli.RenderExpense(cli.FormatAmount(stats.Expense, cur))},
		},
		RightAlign: []int{1},
	}))

	fmt.Println()
	fmt.Printf("  %s\n", text(vocab.TextBreakdown))
	if dist.Empty() {
		fmt.Printf("  %s\n", cli.RenderMuted(text(vocab.TextNoData)))
	} else {
		rows := make([][]string, 0, len(dist.Slices))
		for _, sl := range dist.Slices {
			rows = append(rows, []string{
				sl.Label,
				cli.FormatAmount(sl.Value, cur),
				cli.FormatPercent(sl.SweepFraction),
				cli.RenderHorizontalBar(sl.SweepFraction, 24, theme.SliceColor(sl.ColorIndex)),
			})
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Headers:    []string{"Category", "Amount", "Share", ""},
			Rows:       rows,
			RightAlign: []int{1, 2},
		}))
	}

	if len(recent) > 0 {
		fmt.Println()
		fmt.Printf("  %s\n", text(vocab.TextRecent))
		rows := make([][]string, 0, len(recent))
		for _, tx := range recent {
			rows = append(rows, []string{tx.Date, vocab.CategoryLabel(lang, tx.Category), cli.FormatSigned(tx, cur)})
		}
		fmt.Print(cli.RenderTable(cli.Table{Rows: rows, RightAlign: []int{2}}))
	}
	return nil
}
