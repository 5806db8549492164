package cli

import (
	"fmt"
	"os"

	"github.com/alexanderramin/rosalab/internal/decor"
	"github.com/spf13/cobra"
)

// defaultRoseSize is the side of the square SVG viewport, in pixels.
const defaultRoseSize = 100

func newRoseCmd(app *App) *cobra.Command {
	var (
		color      string
		size       int
		specimenID string
		out        string
	)

	cmd := &cobra.Command{
		Use:   "rose",
		Short: "Draw a watercolor rose as SVG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if specimenID != "" {
				s, ok := app.Catalog.Specimen(specimenID)
				if !ok {
					return fmt.Errorf("unknown specimen %q", specimenID)
				}
				color = s.Color
			}

			svg, err := decor.RoseSVG(color, size)
			if err != nil {
				return err
			}

			if out == "" {
				fmt.Fprintln(cmd.OutOrStdout(), svg)
				return nil
			}
			if err := os.WriteFile(out, []byte(svg+"\n"), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", out, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", out)
			return nil
		},
	}

	red, _ := app.Catalog.Specimen(app.Catalog.DefaultID())
	cmd.Flags().StringVar(&color, "color", red.Color, "Petal color as #rrggbb")
	cmd.Flags().IntVar(&size, "size", defaultRoseSize, "Width and height in pixels")
	cmd.Flags().StringVar(&specimenID, "specimen", "", "Use this specimen's color")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Write to file instead of stdout")

	return cmd
}
