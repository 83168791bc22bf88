package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/ontograph/pkg/ontology"
)

// categoriesCommand lists the known node categories and their colors.
func (c *CLI) categoriesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List node categories and their colors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cats := ontology.Categories()
			rows := make([][]string, len(cats))
			for i, cat := range cats {
				rows[i] = []string{swatch(cat.Color), cat.Key, cat.Label, cat.Color}
			}
			fmt.Println(renderTable([]string{"", "Key", "Label", "Color"}, rows, -1))
			return nil
		},
	}
}
