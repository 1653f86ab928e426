package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"reshape/internal/resolve"
	"reshape/internal/rules"
)

var actionsCmd = &cobra.Command{
	Use:   "actions",
	Short: "List registered refactoring actions and their options",
	Run:   runActions,
}

func runActions(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	for _, action := range rules.Builtin() {
		fmt.Fprintf(out, "%s\n    %s\n", action.Name(), action.Description())
		for _, opt := range action.Options() {
			requiredness := "optional"
			if opt.Required() {
				requiredness = "required"
			}
			fmt.Fprintf(out, "    --opt %s=<%s>  (%s) %s\n",
				opt.Name(), resolve.TypeName(opt), requiredness, opt.Description())
		}
	}
}
