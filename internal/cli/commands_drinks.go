package cli

import (
	"fmt"
	"strings"

	"github.com/mekedron/pint-cli/internal/domain"
	"github.com/mekedron/pint-cli/internal/pipeline"
	"github.com/mekedron/pint-cli/internal/service/output"
	"github.com/spf13/cobra"
)

func newDrinksCommand(deps Dependencies) *cobra.Command {
	var flags globalFlags
	var inputPath string
	var source string
	var venueName string
	var town string

	cmd := &cobra.Command{
		Use:   "drinks",
		Short: "Show a venue's qualifying drinks, cheapest first.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := parseOutputFormat(flags.Format)
			if err != nil {
				return err
			}
			if strings.TrimSpace(venueName) == "" {
				return fmt.Errorf("--venue is required")
			}

			resolvedInput, err := resolveInputPath(cmd.Context(), deps, inputPath)
			if err != nil {
				return err
			}
			resolvedSource := resolveSource(cmd.Context(), deps, source)

			opts := pipeline.DefaultOptions()
			opts.Source = resolvedSource
			report, err := buildReport(cmd.Context(), deps, resolvedInput, opts)
			if err != nil {
				return emitError(cmd, format, resolvedSource, flags.Output, "PINT_PIPELINE_ERROR", err.Error())
			}

			venue, found := findVenueSummary(report.Pubs, venueName, town)
			if !found {
				return emitError(cmd, format, resolvedSource, flags.Output, "PINT_VENUE_NOT_FOUND",
					fmt.Sprintf("no reduced venue matches %q", venueName))
			}

			if format == output.FormatTable {
				rows := make([][]string, 0, len(venue.Drinks))
				for _, drink := range venue.Drinks {
					rows = append(rows, []string{
						drink.Name,
						domain.FormatPrice(drink.Price),
						domain.FormatABV(drink.ABV),
					})
				}
				title := fmt.Sprintf("%s, %s: %s", venue.Name, venue.FormatLocation(), venue.FormatPriceRange())
				table := output.RenderTable(title, []string{"DRINK", "PRICE", "ABV"}, rows)
				return writeTable(cmd, table, flags.Output)
			}

			env := output.BuildEnvelope(resolvedSource, map[string]any{"venue": venue}, nil, nil)
			return writeMachinePayload(cmd, env, format, flags.Output)
		},
	}

	cmd.Flags().StringVar(&inputPath, "input", "", "Path to the raw snapshot file.")
	cmd.Flags().StringVar(&source, "source", "", "Source label stored in output metadata.")
	cmd.Flags().StringVar(&venueName, "venue", "", "Venue name to inspect.")
	cmd.Flags().StringVar(&town, "town", "", "Disambiguate venues that share a name.")
	addGlobalFlags(cmd, &flags)
	return cmd
}

func findVenueSummary(venues []domain.VenueSummary, name string, town string) (domain.VenueSummary, bool) {
	wantName := strings.ToLower(strings.TrimSpace(name))
	wantTown := strings.ToLower(strings.TrimSpace(town))
	for _, venue := range venues {
		if strings.ToLower(strings.TrimSpace(venue.Name)) != wantName {
			continue
		}
		if wantTown != "" && strings.ToLower(strings.TrimSpace(venue.Town)) != wantTown {
			continue
		}
		return venue, true
	}
	return domain.VenueSummary{}, false
}
