package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// browseCommand opens an interactive terminal browser over a parsed graph.
func (c *CLI) browseCommand() *cobra.Command {
	var noCache bool

	cmd := &cobra.Command{
		Use:   "browse <file>",
		Short: "Browse an ontology's nodes interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBrowse(cmd.Context(), args[0], noCache)
		},
	}
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the parse cache")

	return cmd
}

func (c *CLI) runBrowse(ctx context.Context, path string, noCache bool) error {
	if path == "-" {
		return fmt.Errorf("browse needs a file: stdin is used by the terminal UI")
	}

	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	res, err := load(ctx, runner, path, false)
	if err != nil {
		return err
	}
	if res.Graph.NodeCount() == 0 {
		printInfo("%s has no nodes", res.Source)
		return nil
	}

	_, err = tea.NewProgram(NewBrowseModel(res.Graph), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
