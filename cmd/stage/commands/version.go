package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/stage/internal/build"
)

func (c *CLI) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version and build information",
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "stage %s (%s, built %s)\n", build.Version, build.Commit, build.Date)
		},
	}
}
