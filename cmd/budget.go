package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/taka/internal/cli"
	"github.com/theirongolddev/taka/internal/model"
	"github.com/theirongolddev/taka/internal/vocab"
)

var budgetCmd = &cobra.Command{
	Use:     "budget",
	Aliases: []string{"budgets"},
	Short:   "Monthly category budgets and this month's progress",
	Args:    cobra.NoArgs,
	RunE:    runBudgetList,
}

var budgetSetCmd = &cobra.Command{
	Use:   "set <category> <limit>",
	Short: "Add or replace the monthly limit for an expense category",
	Args:  cobra.ExactArgs(2),
	RunE:  runBudgetSet,
}

var budgetDeleteCmd = &cobra.Command{
	Use:     "delete <category>",
	Aliases: []string{"rm"},
	Short:   "Remove a category budget",
	Args:    cobra.ExactArgs(1),
	RunE:    runBudgetDelete,
}

func init() {
	budgetCmd.AddCommand(budgetSetCmd, budgetDeleteCmd)
	rootCmd.AddCommand(budgetCmd)
}

func runBudgetList(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	s, err := openUnlocked(ctx)
	if err != nil {
		return err
	}
	defer s.Close(ctx)

	report, err := s.Budgets()
	if err != nil {
		return err
	}
	lang := s.Settings().Language
	cur := s.Settings().Currency

	if len(report) == 0 {
		fmt.Printf("\n  %s\n", vocab.Text(lang, vocab.TextNoBudgets))
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(vocab.Text(lang, vocab.TextBudgets)))
	fmt.Println()

	rows := make([][]string, 0, len(report))
	for _, p := range report {
		status := ""
		if p.Over {
			status = cli.RenderExpense(vocab.Text(lang, vocab.TextOverBudget))
		}
		rows = append(rows, []string{
			p.Label,
			cli.FormatAmount(p.Spent, cur),
			cli.FormatAmount(p.Limit, cur),
			cli.RenderProgressBar(p.Percent, p.Over, 20),
			status,
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers:    []string{"Category", "Spent", "Limit", "Progress", ""},
		Rows:       rows,
		RightAlign: []int{1, 2},
	}))
	return nil
}

func runBudgetSet(cmd *cobra.Command, args []string) error {
	limit, err := model.ParseAmount(args[1])
	if err != nil {
		return err
	}
	if !vocab.IsKnownCategory(model.Expense, args[0]) {
		logger.Warn("category is not in the expense vocabulary", "category", args[0])
	}

	ctx := cmd.Context()
	s, err := openUnlocked(ctx)
	if err != nil {
		return err
	}
	defer s.Close(ctx)

	if err := s.AddOrReplaceBudget(ctx, args[0], limit); err != nil {
		return err
	}
	progress, _, err := s.BudgetProgress(args[0])
	if err != nil {
		return err
	}
	cur := s.Settings().Currency
	fmt.Printf("  %s  %s / %s\n", progress.Label,
		cli.FormatAmount(progress.Spent, cur), cli.FormatAmount(progress.Limit, cur))
	return nil
}

func runBudgetDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	s, err := openUnlocked(ctx)
	if err != nil {
		return err
	}
	defer s.Close(ctx)

	ok, err := s.DeleteBudget(ctx, args[0])
	if err != nil {
		return err
	}
	if !ok {
		fmt.Printf("  No budget for %q.\n", args[0])
		return nil
	}
	fmt.Printf("  %s\n", vocab.Text(s.Settings().Language, vocab.TextSaved))
	return nil
}
