package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"reshape/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "reshape",
	Short: "Selection-driven source refactoring tool",
	Long:  `Reshape applies refactoring actions gated by per-rule requirements: a selection, required options, optional options.`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(applyCmd)
	rootCmd.AddCommand(actionsCmd)
	rootCmd.AddCommand(undoCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")

	cobra.OnInitialize(func() {
		setupColor(rootCmd)
	})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setupColor applies the --color flag; "auto" follows stdout being a tty.
func setupColor(cmd *cobra.Command) {
	mode, err := cmd.PersistentFlags().GetString("color")
	if err != nil {
		mode = "auto"
	}
	switch mode {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	default:
		color.NoColor = !isTerminal(os.Stdout)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "reshape %s\n", version.Version)
		if version.GitCommit != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "commit: %s\n", version.GitCommit)
		}
		if version.BuildDate != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "built:  %s\n", version.BuildDate)
		}
	},
}
