package cli

import (
	"fmt"
	"strings"

	"github.com/mekedron/pint-cli/internal/domain"
	"github.com/mekedron/pint-cli/internal/pipeline"
	"github.com/mekedron/pint-cli/internal/service/output"
	"github.com/spf13/cobra"
)

const regionalSummaryLimit = 10

func newProcessCommand(deps Dependencies) *cobra.Command {
	var flags globalFlags
	var inputPath string
	var outputPath string
	var source string
	var minRegionPubs int
	var top int

	cmd := &cobra.Command{
		Use:   "process",
		Short: "Run the full pipeline and write the report file.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := parseOutputFormat(flags.Format)
			if err != nil {
				return err
			}

			resolvedInput, err := resolveInputPath(cmd.Context(), deps, inputPath)
			if err != nil {
				return err
			}
			resolvedOutput := strings.TrimSpace(outputPath)
			if resolvedOutput == "" {
				resolvedOutput = strings.TrimSpace(loadConfigDefaults(cmd.Context(), deps).DefaultOutput)
			}
			if resolvedOutput == "" {
				return fmt.Errorf("report path is required: pass --output or set a default with 'pint configure --output'")
			}
			resolvedSource := resolveSource(cmd.Context(), deps, source)

			opts := pipeline.DefaultOptions()
			opts.Source = resolvedSource
			if minRegionPubs > 0 {
				opts.MinRegionSample = minRegionPubs
			}
			if top > 0 {
				opts.LeaderboardSize = top
			}

			report, err := buildReport(cmd.Context(), deps, resolvedInput, opts)
			if err != nil {
				return emitError(cmd, format, resolvedSource, flags.Output, "PINT_PIPELINE_ERROR", err.Error())
			}
			if err := output.WriteReport(resolvedOutput, report); err != nil {
				return emitError(cmd, format, resolvedSource, flags.Output, "PINT_REPORT_WRITE_ERROR", err.Error())
			}

			if format == output.FormatTable {
				return writeTable(cmd, renderProcessSummary(report, resolvedOutput), flags.Output)
			}
			env := output.BuildEnvelope(resolvedSource, map[string]any{
				"report_path": resolvedOutput,
				"meta":        report.Meta,
				"regional":    limitRows(report.Regional, regionalSummaryLimit),
			}, nil, nil)
			return writeMachinePayload(cmd, env, format, flags.Output)
		},
	}

	cmd.Flags().StringVar(&inputPath, "input", "", "Path to the raw snapshot file.")
	cmd.Flags().StringVar(&outputPath, "output", "", "Path the report file is written to.")
	cmd.Flags().StringVar(&source, "source", "", "Source label stored in report metadata.")
	cmd.Flags().IntVar(&minRegionPubs, "min-region-pubs", 0, "Minimum venues a region needs to be reported (default 2).")
	cmd.Flags().IntVar(&top, "top", 0, "Leaderboard length (default 20).")
	addGlobalFlags(cmd, &flags)
	return cmd
}

func renderProcessSummary(report domain.Report, reportPath string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Processed %d pubs (%d beers)\n", report.Meta.TotalPubs, report.Meta.TotalBeers)
	fmt.Fprintf(&b, "National avg pint: %s\n", domain.FormatPrice(report.Meta.AvgPint))
	if len(report.Cheapest) > 0 {
		entry := report.Cheapest[0]
		fmt.Fprintf(&b, "Cheapest: %s at %s (%s)\n", domain.FormatPrice(entry.MinPrice), entry.Name, entry.Town)
	}
	if len(report.Priciest) > 0 {
		entry := report.Priciest[0]
		fmt.Fprintf(&b, "Most expensive avg: %s at %s (%s)\n", domain.FormatPrice(entry.AvgPrice), entry.Name, entry.Town)
	}
	fmt.Fprintf(&b, "Report written to %s\n", reportPath)

	if len(report.Regional) > 0 {
		b.WriteString("\nRegional averages:\n")
		for _, region := range limitRows(report.Regional, regionalSummaryLimit) {
			fmt.Fprintf(&b, "  %s: %s (%d pubs)\n", region.Name, domain.FormatPrice(region.AvgPrice), region.VenueCount)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
