package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/simonhull/krc"
)

func (a *app) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			info := krc.GetVersionInfo()
			fmt.Fprintf(a.out, "krc %s\n", info.Version)
			fmt.Fprintf(a.out, "  commit: %s\n", info.GitCommit)
			fmt.Fprintf(a.out, "  built:  %s\n", info.BuildTime)
			fmt.Fprintf(a.out, "  go:     %s\n", info.GoVersion)
		},
	}
}
