// Package commands wires the stage CLI: scenario execution and version
// reporting on top of the scene manager application layer.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/stage/internal/app"
	"go.trai.ch/stage/internal/build"
)

// CLI bundles the cobra command tree with the application it drives.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application is the surface the commands need from the app layer.
type Application interface {
	Run(ctx context.Context, scenarioPath string, opts app.RunOptions) error
}

// New builds the command tree around the given application.
func New(a Application) *CLI {
	c := &CLI{app: a, rootCmd: newRootCmd()}
	c.rootCmd.AddCommand(c.newRunCmd())
	c.rootCmd.AddCommand(c.newVersionCmd())
	return c
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "stage",
		Short:         "Scene lifecycle manager with preloading and caching",
		Long:          "stage drives scripted scene switches: preloading, instance caching,\nand loading screens, reported as a live event stream.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	cmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} {{.Version}} (%s, built %s)\n", build.Commit, build.Date))
	cmd.InitDefaultVersionFlag()
	cmd.Flags().Lookup("version").Usage = "Show version and build information"

	cmd.InitDefaultHelpFlag()
	cmd.Flags().Lookup("help").Usage = "Show help for command"

	return cmd
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
