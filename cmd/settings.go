package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/taka/internal/model"
	"github.com/theirongolddev/taka/internal/vocab"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show in-app settings",
	Args:  cobra.NoArgs,
	RunE:  runSettings,
}

var settingsSetCmd = &cobra.Command{
	Use:       "set <language|theme|currency> <value>",
	Short:     "Change an in-app setting",
	Args:      cobra.ExactArgs(2),
	ValidArgs: []string{"language", "theme", "currency"},
	RunE:      runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettings(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	s, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer s.Close(ctx)

	// Settings are readable while locked.
	st := s.Settings()
	fmt.Println()
	fmt.Printf("  %-10s %s\n", vocab.Text(st.Language, vocab.TextLanguage)+":", st.Language)
	fmt.Printf("  %-10s %s\n", "Theme:", st.Theme)
	fmt.Printf("  %-10s %s\n", vocab.Text(st.Language, vocab.TextCurrency)+":", st.Currency)
	fmt.Println()
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	s, err := openUnlocked(ctx)
	if err != nil {
		return err
	}
	defer s.Close(ctx)

	switch args[0] {
	case "language", "lang":
		err = s.SetLanguage(ctx, model.Language(args[1]))
	case "theme":
		err = s.SetTheme(ctx, model.Theme(args[1]))
	case "currency":
		err = s.SetCurrency(ctx, args[1])
	default:
		return fmt.Errorf("unknown setting %q (language, theme or currency)", args[0])
	}
	if err != nil {
		return err
	}
	fmt.Printf("  %s\n", vocab.Text(s.Settings().Language, vocab.TextSaved))
	return nil
}
