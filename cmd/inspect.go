package cmd

import (
	"errors"
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	m "fixturegen.dev/pkg/fixturegen/internal/model"
	"fixturegen.dev/pkg/fixturegen/pkg/snapshot"
	"fixturegen.dev/pkg/fixturegen/pkg/syntax"
)

var inspectRawFlag bool

// inspectCmd represents the inspect command.
var inspectCmd = newInspectCmd()

func newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Print the snapshot or diagnostics for a single sample",
		Long: `Parse one file with the configured parser and print the canonical snapshot
it would get. Files that do not parse print their diagnostics instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, m.Path(args[0]))
		},
	}

	cmd.Flags().BoolVar(&inspectRawFlag, rawFlagName, false, "dump the parsed tree structure instead of JSON")

	return cmd
}

func runInspect(cmd *cobra.Command, path m.Path) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	parser, err := syntax.Lookup(viper.GetString(parserFlagName))
	if err != nil {
		return err
	}

	src, err := fsAdapter.ReadFile(ctx, path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	tree, err := parserAdapter.Parse(ctx, parser, path, src)
	if err != nil {
		var diagnostics *syntax.DiagnosticError
		if errors.As(err, &diagnostics) {
			fmt.Fprintf(out, "%s: does not parse as %s\n", path, parser.Name())
			for _, d := range diagnostics.Diagnostics {
				fmt.Fprintf(out, "  %s\n", d)
			}

			return nil
		}

		if syntax.IsInvalidInput(err) {
			fmt.Fprintf(out, "%s: does not parse as %s\n  %v\n", path, parser.Name(), err)
			return nil
		}

		return fmt.Errorf("parse %s: %w", path, err)
	}

	if inspectRawFlag {
		spew.Fdump(out, tree)
		return nil
	}

	data, err := snapshot.Marshal(tree)
	if err != nil {
		return fmt.Errorf("serialize %s: %w", path, err)
	}

	_, err = out.Write(data)

	return err
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
