package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "v0.1.0-dev"

// NewRootCommand creates the root command for the strided CLI.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "strided",
		Short: "Strided - tensor views and accessors for Go",
		Long:  "Utilities for inspecting strided tensor views and the compute backends that execute them.",
	}

	cmd.AddCommand(newVersionCommand())
	cmd.AddCommand(newProbeCommand())
	cmd.AddCommand(newDumpCommand())

	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "strided %s\n", version)
		},
	}
}
