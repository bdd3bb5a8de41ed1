package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mekedron/pint-cli/internal/domain"
	"github.com/mekedron/pint-cli/internal/pipeline"
	"github.com/mekedron/pint-cli/internal/service/output"
	"github.com/spf13/cobra"
)

func newVenuesCommand(deps Dependencies) *cobra.Command {
	var flags globalFlags
	var inputPath string
	var source string
	var region string
	var town string
	var limit int

	cmd := &cobra.Command{
		Use:   "venues",
		Short: "List reduced venues, cheapest average first.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := parseOutputFormat(flags.Format)
			if err != nil {
				return err
			}
			if limit < 0 {
				return fmt.Errorf("--limit must be >= 0")
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

			filtered := filterVenueSummaries(report.Pubs, region, town)
			total := len(filtered)
			filtered = limitRows(filtered, limit)

			if format == output.FormatTable {
				rows := make([][]string, 0, len(filtered))
				for _, venue := range filtered {
					rows = append(rows, []string{
						venue.Name,
						venue.Town,
						venue.County,
						venue.Postcode,
						domain.FormatPrice(venue.AvgPrice),
						domain.FormatPrice(venue.MinPrice),
						domain.FormatPrice(venue.MaxPrice),
						strconv.Itoa(venue.DrinkCount),
					})
				}
				table := output.RenderTable(
					fmt.Sprintf("Venues (%d of %d)", len(filtered), total),
					[]string{"NAME", "TOWN", "COUNTY", "POSTCODE", "AVG", "MIN", "MAX", "BEERS"},
					rows,
				)
				return writeTable(cmd, table, flags.Output)
			}

			env := output.BuildEnvelope(resolvedSource, map[string]any{
				"total":  total,
				"venues": filtered,
			}, nil, nil)
			return writeMachinePayload(cmd, env, format, flags.Output)
		},
	}

	cmd.Flags().StringVar(&inputPath, "input", "", "Path to the raw snapshot file.")
	cmd.Flags().StringVar(&source, "source", "", "Source label stored in output metadata.")
	cmd.Flags().StringVar(&region, "region", "", "Only show venues whose county resolves to this region.")
	cmd.Flags().StringVar(&town, "town", "", "Only show venues in this town.")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum venues to show (0 shows all).")
	addGlobalFlags(cmd, &flags)
	return cmd
}

func filterVenueSummaries(venues []domain.VenueSummary, region string, town string) []domain.VenueSummary {
	wantRegion := strings.ToLower(strings.TrimSpace(region))
	wantTown := strings.ToLower(strings.TrimSpace(town))
	if wantRegion == "" && wantTown == "" {
		return venues
	}
	filtered := make([]domain.VenueSummary, 0, len(venues))
	for _, venue := range venues {
		if wantRegion != "" && strings.ToLower(pipeline.ResolveRegion(venue.County)) != wantRegion {
			continue
		}
		if wantTown != "" && strings.ToLower(strings.TrimSpace(venue.Town)) != wantTown {
			continue
		}
		filtered = append(filtered, venue)
	}
	return filtered
}
