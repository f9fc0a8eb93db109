package cmd

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/taka/internal/model"
	"github.com/theirongolddev/taka/internal/store"
	"github.com/theirongolddev/taka/internal/vocab"
)

func TestValidPIN(t *testing.T) {
	assert.True(t, validPIN("0042"))
	assert.False(t, validPIN("042"))
	assert.False(t, validPIN("12345"))
	assert.False(t, validPIN("12a4"))
	assert.False(t, validPIN("১২৩৪"))
}

func run(t *testing.T, args ...string) error {
	t.Helper()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(context.Background())
}

func TestCommandsPersistToDatabase(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("TAKA_PIN", "")
	db := filepath.Join(dir, "taka.db")
	out := filepath.Join(dir, "out.csv")
	common := []string{"--db", db, "--pin", "2468"}

	require.NoError(t, run(t, append([]string{"add", "250", "food", "--date", "2024-03-18", "--note", "lunch"}, common...)...))
	require.NoError(t, run(t, append([]string{"add", "1000", "salary", "--income", "--payment", "bank", "--date", "2024-03-01"}, common...)...))
	require.NoError(t, run(t, append([]string{"budget", "set", "food", "3000"}, common...)...))
	require.NoError(t, run(t, append([]string{"export", "-o", out}, common...)...))

	err := run(t, "history", "--db", db, "--pin", "1357")
	require.Error(t, err, "wrong pin must not unlock")

	s, err := store.Open(db)
	require.NoError(t, err)
	defer s.Close()
	ctx := context.Background()

	txs, err := store.LoadTransactions(ctx, s)
	require.NoError(t, err)
	require.Len(t, txs, 2)
	// Newest first.
	assert.Equal(t, "salary", txs[0].Category)
	assert.Equal(t, "food", txs[1].Category)
	assert.Equal(t, "lunch", txs[1].Note)

	budgets, err := store.LoadBudgets(ctx, s)
	require.NoError(t, err)
	require.Len(t, budgets, 1)
	assert.Equal(t, "3000", budgets[0].Limit.String())

	raw, err := os.ReadFile(out)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Date,Type,Category,Amount,Payment,Note", lines[0])
}

func TestAddRejectsThousandsSeparator(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("TAKA_PIN", "")
	db := filepath.Join(dir, "taka.db")

	err := run(t, "add", "1,000", "food", "--db", db, "--pin", "2468")
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrValidation)
}

func TestStoredKeys(t *testing.T) {
	ctx := context.Background()
	db := filepath.Join(t.TempDir(), "taka.db")

	keys, err := storedKeys(ctx, db)
	require.NoError(t, err)
	assert.Empty(t, keys)
	_, err = os.Stat(db)
	assert.True(t, os.IsNotExist(err), "listing must not create the database")

	s, err := store.Open(db)
	require.NoError(t, err)
	require.NoError(t, store.SaveString(ctx, s, store.KeyTheme, "dark"))
	require.NoError(t, store.SaveString(ctx, s, store.KeyCurrency, "$"))
	require.NoError(t, s.Close())

	keys, err = storedKeys(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, []string{store.KeyCurrency, store.KeyTheme}, keys)
}

func TestPaymentFlagListsMethods(t *testing.T) {
	usage := addCmd.Flags().Lookup("payment").Usage
	assert.Contains(t, usage, "("+strings.Join(vocab.PaymentMethods, ", ")+")")
}
