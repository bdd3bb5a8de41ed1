package cli

import (
	"fmt"
	"strconv"

	"github.com/mekedron/pint-cli/internal/domain"
	"github.com/mekedron/pint-cli/internal/pipeline"
	"github.com/mekedron/pint-cli/internal/service/output"
	"github.com/spf13/cobra"
)

func newRegionsCommand(deps Dependencies) *cobra.Command {
	var flags globalFlags
	var inputPath string
	var source string
	var limit int

	cmd := &cobra.Command{
		Use:   "regions",
		Short: "Show regional price rollups, priciest first.",
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

			regions := limitRows(report.Regional, limit)
			if format == output.FormatTable {
				rows := make([][]string, 0, len(regions))
				for _, region := range regions {
					rows = append(rows, []string{
						region.Name,
						domain.FormatPrice(region.AvgPrice),
						strconv.Itoa(region.VenueCount),
						region.FormatPriceRange(),
					})
				}
				table := output.RenderTable(
					"Regional pint averages",
					[]string{"REGION", "AVG", "PUBS", "RANGE"},
					rows,
				)
				return writeTable(cmd, table, flags.Output)
			}

			env := output.BuildEnvelope(resolvedSource, map[string]any{
				"total":   len(report.Regional),
				"regions": regions,
			}, nil, nil)
			return writeMachinePayload(cmd, env, format, flags.Output)
		},
	}

	cmd.Flags().StringVar(&inputPath, "input", "", "Path to the raw snapshot file.")
	cmd.Flags().StringVar(&source, "source", "", "Source label stored in output metadata.")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum regions to show (0 shows all).")
	addGlobalFlags(cmd, &flags)
	return cmd
}
