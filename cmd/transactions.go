package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/taka/internal/cli"
	"github.com/theirongolddev/taka/internal/model"
	"github.com/theirongolddev/taka/internal/vocab"
)

var (
	flagTxIncome  bool
	flagTxPayment string
	flagTxDate    string
	flagTxNote    string
	flagTxAmount  string
	flagTxCat     string
)

var addCmd = &cobra.Command{
	Use:   "add <amount> <category>",
	Short: "Record an expense (or income with --income)",
	Args:  cobra.ExactArgs(2),
	RunE:  runAdd,
}

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Change fields of a transaction",
	Args:  cobra.ExactArgs(1),
	RunE:  runEdit,
}

var deleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a transaction",
	Args:    cobra.ExactArgs(1),
	RunE:    runDelete,
}

func init() {
	for _, c := range []*cobra.Command{addCmd, editCmd} {
		c.Flags().BoolVarP(&flagTxIncome, "income", "i", false, "Record as income")
		c.Flags().StringVarP(&flagTxPayment, "payment", "m", "cash", "Payment method ("+strings.Join(vocab.PaymentMethods, ", ")+")")
		c.Flags().StringVarP(&flagTxDate, "date", "d", "", "Date as YYYY-MM-DD (default today)")
		c.Flags().StringVar(&flagTxNote, "note", "", "Free-text note")
	}
	editCmd.Flags().StringVar(&flagTxAmount, "amount", "", "New amount")
	editCmd.Flags().StringVar(&flagTxCat, "category", "", "New category")

	rootCmd.AddCommand(addCmd, editCmd, deleteCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	amount, err := model.ParseAmount(args[0])
	if err != nil {
		return err
	}
	tx := model.Transaction{
		Amount:        amount,
		Type:          model.Expense,
		Category:      args[1],
		PaymentMethod: flagTxPayment,
		Date:          flagTxDate,
		Note:          flagTxNote,
	}
	if flagTxIncome {
		tx.Type = model.Income
	}
	if tx.Date == "" {
		tx.Date = time.Now().Format(model.DateLayout)
	}
	warnUnknownCategory(tx)

	s, err := openUnlocked(ctx)
	if err != nil {
		return err
	}
	defer s.Close(ctx)

	added, err := s.AddTransaction(ctx, tx)
	if err != nil {
		return err
	}
	fmt.Printf("  Added %s  %s  %s\n", added.ID,
		vocab.CategoryLabel(s.Settings().Language, added.Category),
		cli.FormatSigned(added, s.Settings().Currency))
	return nil
}

func runEdit(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	s, err := openUnlocked(ctx)
	if err != nil {
		return err
	}
	defer s.Close(ctx)

	id := args[0]
	tx, ok, err := s.Transaction(id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("no transaction with id %q", id)
	}

	flags := cmd.Flags()
	if flags.Changed("amount") {
		if tx.Amount, err = model.ParseAmount(flagTxAmount); err != nil {
			return err
		}
	}
	if flags.Changed("category") {
		tx.Category = flagTxCat
	}
	if flags.Changed("income") {
		tx.Type = model.Expense
		if flagTxIncome {
			tx.Type = model.Income
		}
	}
	if flags.Changed("payment") {
		tx.PaymentMethod = flagTxPayment
	}
	if flags.Changed("date") {
		tx.Date = flagTxDate
	}
	if flags.Changed("note") {
		tx.Note = flagTxNote
	}
	warnUnknownCategory(tx)

	if _, err := s.EditTransaction(ctx, id, tx); err != nil {
		return err
	}
	fmt.Printf("  %s\n", vocab.Text(s.Settings().Language, vocab.TextSaved))
	return nil
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	s, err := openUnlocked(ctx)
	if err != nil {
		return err
	}
	defer s.Close(ctx)

	ok, err := s.DeleteTransaction(ctx, args[0])
	if err != nil {
		return err
	}
	if !ok {
		fmt.Printf("  No transaction with id %q.\n", args[0])
		return nil
	}
	fmt.Printf("  %s\n", vocab.Text(s.Settings().Language, vocab.TextEntryDeleted))
	return nil
}

func warnUnknownCategory(tx model.Transaction) {
	if tx.Type.Valid() && !vocab.IsKnownCategory(tx.Type, tx.Category) {
		logger.Warn("category is not in the vocabulary", "category", tx.Category, "type", tx.Type)
	}
}
