package cli

import (
	"fmt"

	"github.com/alexanderramin/rosalab/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newCatalogCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List the specimens on the bench",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			md := formatter.CatalogMarkdown(app.Catalog.Specimens())
			out, err := formatter.RenderMarkdown(md, app.Config.GlamourStyle, formatter.ReportWidth)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
}
