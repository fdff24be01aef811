package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history [doc-id]",
	Short: "Show recorded conversion runs",
	Long: `Lists the run catalog. With a doc-id argument, shows the most recent
run for that document only.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	catalog, err := openCatalog()
	if err != nil {
		return fmt.Errorf("opening run catalog: %w", err)
	}
	defer catalog.Close()

	ctx := context.Background()

	if len(args) == 1 {
		docID := args[0]
		rec, err := catalog.Latest(ctx, docID)
		if err != nil {
			return fmt.Errorf("reading run for %s: %w", docID, err)
		}
		if rec == nil {
			cmd.Printf("No recorded runs for %s.\n", docID)
			return nil
		}

		cmd.Printf("Document: %s\n\n", rec.DocID)
		cmd.Printf("  Converted:    %s\n", rec.ConvertedAt.Format("2006-01-02 15:04:05"))
		cmd.Printf("  Pages:        %d\n", rec.PageCount)
		cmd.Printf("  Coverage:     %.3f\n", rec.CharacterCoverage)
		cmd.Printf("  Leak rate:    %.3f\n", rec.LeakRate)
		cmd.Printf("  Fingerprint:  %s\n", rec.Fingerprint)
		cmd.Printf("  Markdown:     %s\n", rec.MarkdownPath)
		cmd.Printf("  Metadata:     %s\n", rec.MetaPath)
		return nil
	}

	records, err := catalog.List(ctx)
	if err != nil {
		return fmt.Errorf("listing runs: %w", err)
	}
	if len(records) == 0 {
		cmd.Println("No recorded runs yet. Run `perundang convert` first.")
		return nil
	}

	cmd.Printf("Recorded runs:\n\n")
	for i := range records {
		rec := &records[i]
		cmd.Printf("  %s\n", rec.DocID)
		cmd.Printf("    Converted:  %s\n", rec.ConvertedAt.Format("2006-01-02 15:04:05"))
		cmd.Printf("    Pages:      %d, coverage %.3f, leak %.3f\n",
			rec.PageCount, rec.CharacterCoverage, rec.LeakRate)
		cmd.Println()
	}
	cmd.Printf("Total: %d document(s)\n", len(records))
	return nil
}
