package cli

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/matzehuels/ontograph/pkg/graph"
	"github.com/matzehuels/ontograph/pkg/ontology"
)

// statsCommand creates the stats command.
func (c *CLI) statsCommand() *cobra.Command {
	var noCache bool

	cmd := &cobra.Command{
		Use:   "stats <file|->",
		Short: "Show node and edge counts for an ontology",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runStats(cmd.Context(), args[0], noCache)
		},
	}
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the parse cache")

	return cmd
}

func (c *CLI) runStats(ctx context.Context, path string, noCache bool) error {
	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	res, err := load(ctx, runner, path, false)
	if err != nil {
		return err
	}
	stats := res.Graph.ComputeStats()

	fmt.Println(StyleTitle.Render(res.Source))
	printKeyValue("Nodes", StyleNumber.Render(fmt.Sprint(stats.TotalNodes)))
	printKeyValue("Edges", StyleNumber.Render(fmt.Sprint(stats.TotalEdges)))
	if len(res.Duplicates) > 0 {
		printWarning("%d duplicate node ids", len(res.Duplicates))
	}
	printNewline()

	fmt.Println(renderTable([]string{"", "Category", "Nodes"}, categoryRows(stats), 2))
	fmt.Println(renderTable([]string{"Edge type", "Edges"}, countRows(stats.EdgeTypes), 1))
	return nil
}

// categoryRows lists node counts per category, most frequent first, with a
// color swatch.
func categoryRows(stats graph.Stats) [][]string {
	rows := countRows(stats.Categories)
	for i, r := range rows {
		rows[i] = append([]string{swatch(ontology.ColorOf(r[0]))}, r...)
	}
	return rows
}

// countRows sorts counts descending, then by key.
func countRows(counts map[string]int) [][]string {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		return keys[i] < keys[j]
	})

	rows := make([][]string, len(keys))
	for i, k := range keys {
		rows[i] = []string{k, fmt.Sprint(counts[k])}
	}
	return rows
}
