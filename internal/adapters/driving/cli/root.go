// Package cli wires the cobra command tree for the perundang binary.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/lexindo/perundang-cli/internal/logger"
)

// version is set via SetVersion from the build's main package.
var version = "dev"

var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "perundang",
	Short: "Convert Indonesian statutory PDFs to Markdown",
	Long: `perundang converts undang-undang, peraturan pemerintah and peraturan
menteri PDFs into clean Markdown with a structured metadata sidecar,
compensating for the noisy text extraction typical of gazette scans.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose logging")
}

// SetVersion sets the version string shown by the version command.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
