package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "stacube version: %s\n", Version)
			fmt.Fprintf(out, "Git commit:      %s\n", GitCommit)
			fmt.Fprintf(out, "Build date:      %s\n", BuildDate)
			fmt.Fprintf(out, "Go version:      %s\n", runtime.Version())
		},
	}
}
