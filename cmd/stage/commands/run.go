package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/stage/internal/app"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [scenario]",
		Short: "Run a scene scenario file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}
			outputMode, _ := cmd.Flags().GetString("output-mode")
			ci, _ := cmd.Flags().GetBool("ci")
			watch, _ := cmd.Flags().GetBool("watch")

			// If --ci is set, override output-mode to "plain"
			if ci {
				outputMode = "plain"
			}

			return c.app.Run(cmd.Context(), args[0], app.RunOptions{
				OutputMode: outputMode,
				Watch:      watch,
			})
		},
	}
	cmd.Flags().StringP("output-mode", "o", "auto", "Output mode: auto, color, or plain")
	cmd.Flags().Bool("ci", false, "Use plain output mode (shorthand for --output-mode=plain)")
	cmd.Flags().BoolP("watch", "w", false, "Invalidate preloaded scenes when their files change")
	return cmd
}
