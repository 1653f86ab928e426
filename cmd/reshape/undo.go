package main

import (
	"github.com/spf13/cobra"

	"reshape/internal/diag"
	"reshape/internal/journal"
)

var undoCmd = &cobra.Command{
	Use:   "undo",
	Short: "Revert the most recent apply",
	Long:  "Restore the files changed by the last apply, refusing when they were modified since.",
	Args:  cobra.NoArgs,
	RunE:  runUndo,
}

func runUndo(cmd *cobra.Command, _ []string) error {
	render := diag.NewRenderer(cmd.OutOrStdout())

	restored, err := journal.New(journalDir).Restore()
	for _, path := range restored {
		render.Restored(path)
	}
	return err
}
