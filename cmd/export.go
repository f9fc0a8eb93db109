package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/taka/internal/export"
	"github.com/theirongolddev/taka/internal/vocab"
)

var flagExportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export every transaction as CSV",
	Long:  "Write all transactions as CSV. The default file is taka_tracker_export_<date>.csv in the current directory; use -o - for stdout.",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagExportOut, "output", "o", "", "Output file, or - for stdout")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	s, err := openUnlocked(ctx)
	if err != nil {
		return err
	}
	defer s.Close(ctx)

	if flagExportOut == "-" {
		return s.Export(os.Stdout)
	}

	path := flagExportOut
	if path == "" {
		path = export.FileName(export.AppName, time.Now())
	}
	// Nothing is created when there is nothing to export.
	if _, err := s.ExportRows(); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	if err := s.Export(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing export file: %w", err)
	}
	fmt.Printf("  %s: %s\n", vocab.Text(s.Settings().Language, vocab.TextExportDone), path)
	return nil
}
