package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/rosalab/internal/cli/formatter"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// ErrNoSpecimen is returned when diagnose has no id and cannot ask for one.
var ErrNoSpecimen = errors.New("specimen id required when not running in a terminal")

func newDiagnoseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "diagnose [specimen-id]",
		Short: "Print the diagnosis for a specimen",
		Long: "Print the diagnosis for a specimen.\n\n" +
			"Unknown ids get the default diagnosis. Without an id, an interactive\n" +
			"terminal is asked to pick a specimen.",
		Args: cobra.MaximumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return app.Catalog.IDs(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			var id string
			if len(args) == 1 {
				id = args[0]
			} else {
				picked, err := pickSpecimen(app)
				if err != nil {
					return err
				}
				id = picked
			}

			if !app.Catalog.HasDiagnosis(id) {
				app.Log.Info("diagnosis fallback",
					zap.String("requested", id),
					zap.String("default", app.Catalog.DefaultID()))
				fmt.Fprintf(cmd.ErrOrStderr(), "No record for %q, showing the default diagnosis.\n", id)
			}

			var name string
			if s, ok := app.Catalog.Specimen(id); ok {
				name = s.Name
			}

			md := formatter.DiagnosisMarkdown(name, app.Catalog.Diagnose(id))
			out, err := formatter.RenderMarkdown(md, app.Config.GlamourStyle, formatter.ReportWidth)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

// pickSpecimen asks for a specimen with a huh select, defaulting to the
// first bench entry.
func pickSpecimen(app *App) (string, error) {
	if app.IsInteractive == nil || !app.IsInteractive() {
		return "", ErrNoSpecimen
	}

	specimens := app.Catalog.Specimens()
	options := make([]huh.Option[string], 0, len(specimens))
	for _, s := range specimens {
		options = append(options, huh.NewOption(s.Name+" ("+s.ScientificName+")", s.ID))
	}

	id := specimens[0].ID
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which specimen did you test?").
				Options(options...).
				Value(&id),
		),
	).WithTheme(labHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return "", fmt.Errorf("picking specimen: %w", err)
	}
	return id, nil
}
