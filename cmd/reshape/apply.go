package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"reshape/internal/diag"
	"reshape/internal/edit"
	"reshape/internal/journal"
	"reshape/internal/refactor"
	"reshape/internal/resolve"
	"reshape/internal/rules"
	"reshape/internal/source"
)

const journalDir = ".reshape"

var applyCmd = &cobra.Command{
	Use:   "apply [flags] <action> <file>",
	Short: "Run a refactoring action against a file",
	Long: `Evaluate the action's requirements against the selection and the resolved
options; when they all hold, construct the rule and apply its edits.`,
	Args: cobra.ExactArgs(2),
	RunE: runApply,
}

func init() {
	applyCmd.Flags().String("selection", "", "selected byte range, start:end")
	applyCmd.Flags().StringArray("opt", nil, "action option as key=value (repeatable)")
	applyCmd.Flags().String("config", resolve.DefaultConfigPath, "TOML file with option defaults")
	applyCmd.Flags().Bool("dry-run", false, "report edits without writing the file")
}

func runApply(cmd *cobra.Command, args []string) error {
	actionName, targetPath := args[0], args[1]
	render := diag.NewRenderer(cmd.OutOrStdout())

	selectionFlag, err := cmd.Flags().GetString("selection")
	if err != nil {
		return err
	}
	optPairs, err := cmd.Flags().GetStringArray("opt")
	if err != nil {
		return err
	}
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}
	dryRun, err := cmd.Flags().GetBool("dry-run")
	if err != nil {
		return err
	}

	action, err := rules.Lookup(actionName)
	if err != nil {
		return err
	}

	fileSet := source.NewFileSet()
	fileID, err := fileSet.Load(targetPath)
	if err != nil {
		return fmt.Errorf("load %s: %w", targetPath, err)
	}

	// Setup phase: fill the context, then resolve the full option set the
	// action may need. Evaluation below only reads.
	ctx := refactor.NewContext(fileSet)
	if selectionFlag != "" {
		span, err := source.ParseSelection(selectionFlag, fileID)
		if err != nil {
			return err
		}
		ctx.SetSelection(span)
	}

	cfg, err := resolve.LoadConfig(configPath)
	if err != nil {
		return err
	}
	cli, err := parseOptPairs(optPairs)
	if err != nil {
		return err
	}
	if err := resolve.Resolve(action.Options(), cfg, cli); err != nil {
		return err
	}

	rule, err := action.Invoke(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", actionName, err)
	}

	edits, err := rule.Perform(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", actionName, err)
	}

	file := fileSet.Get(fileID)
	updated, err := edit.Apply(file.Content, edits)
	if err != nil {
		return fmt.Errorf("%s: %w", actionName, err)
	}

	// anchor the report at the covering range of the produced edits
	cover := edits[0].Span
	for _, e := range edits[1:] {
		cover = cover.Cover(e.Span)
	}
	at, _ := fileSet.Resolve(cover)

	if dryRun {
		render.Preview(actionName, file.FormatPath(fileSet.BaseDir()), at, len(edits))
		return nil
	}

	mode := os.FileMode(0o644)
	if info, statErr := os.Stat(targetPath); statErr == nil {
		mode = info.Mode()
	}
	if err := os.WriteFile(targetPath, updated, mode); err != nil {
		return fmt.Errorf("write %s: %w", targetPath, err)
	}

	entry := journal.NewEntry(targetPath, file.Content, updated)
	if err := journal.New(journalDir).Record(actionName, []journal.Entry{entry}); err != nil {
		render.Warning(fmt.Sprintf("undo unavailable: %v", err))
	}

	render.Applied(actionName, file.FormatPath(fileSet.BaseDir()), at, len(edits))
	return nil
}

// parseOptPairs turns repeated --opt key=value flags into a map.
func parseOptPairs(pairs []string) (map[string]string, error) {
	out := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("--opt %q: expected key=value", pair)
		}
		out[key] = value
	}
	return out, nil
}
