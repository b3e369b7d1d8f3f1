package cmd

import (
	"github.com/spf13/cobra"
)

// generateCmd represents the generate command.
var generateCmd = newGenerateCmd()

func newGenerateCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen"},
		Short:   "Write snapshots and the generated test file",
		Long:    generateLongDescription,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := workflow.Generate(cmd.Context(), generateArgs())
			return err
		},
	}
}

func init() {
	rootCmd.AddCommand(generateCmd)
}
