package cli

import (
	"fmt"

	"github.com/mekedron/pint-cli/internal/domain"
	"github.com/mekedron/pint-cli/internal/pipeline"
	"github.com/mekedron/pint-cli/internal/service/output"
	"github.com/spf13/cobra"
)

func newCheapestCommand(deps Dependencies) *cobra.Command {
	return newLeaderboardCommand(
		deps,
		"cheapest",
		"Show the venues with the lowest average pint price.",
		func(report domain.Report, limit int) (string, any) {
			entries := limitRows(report.Cheapest, limit)
			rows := make([][]string, 0, len(entries))
			for i, entry := range entries {
				rows = append(rows, []string{
					fmt.Sprintf("%d", i+1),
					entry.Name,
					entry.Town,
					entry.Postcode,
					domain.FormatPrice(entry.AvgPrice),
					domain.FormatPrice(entry.MinPrice),
					entry.CheapestDrink,
				})
			}
			table := output.RenderTable(
				"Cheapest pints",
				[]string{"RANK", "NAME", "TOWN", "POSTCODE", "AVG", "MIN", "CHEAPEST"},
				rows,
			)
			return table, map[string]any{"venues": entries}
		},
	)
}

func newPriciestCommand(deps Dependencies) *cobra.Command {
	return newLeaderboardCommand(
		deps,
		"priciest",
		"Show the venues with the highest average pint price.",
		func(report domain.Report, limit int) (string, any) {
			entries := limitRows(report.Priciest, limit)
			rows := make([][]string, 0, len(entries))
			for i, entry := range entries {
				rows = append(rows, []string{
					fmt.Sprintf("%d", i+1),
					entry.Name,
					entry.Town,
					entry.Postcode,
					domain.FormatPrice(entry.AvgPrice),
					domain.FormatPrice(entry.MaxPrice),
				})
			}
			table := output.RenderTable(
				"Priciest pints",
				[]string{"RANK", "NAME", "TOWN", "POSTCODE", "AVG", "MAX"},
				rows,
			)
			return table, map[string]any{"venues": entries}
		},
	)
}

func newLeaderboardCommand(
	deps Dependencies,
	name string,
	short string,
	build func(report domain.Report, limit int) (string, any),
) *cobra.Command {
	var flags globalFlags
	var inputPath string
	var source string
	var limit int

	cmd := &cobra.Command{
		Use:   name,
		Short: short,
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

			table, data := build(report, limit)
			if format == output.FormatTable {
				return writeTable(cmd, table, flags.Output)
			}
			env := output.BuildEnvelope(resolvedSource, data, nil, nil)
			return writeMachinePayload(cmd, env, format, flags.Output)
		},
	}

	cmd.Flags().StringVar(&inputPath, "input", "", "Path to the raw snapshot file.")
	cmd.Flags().StringVar(&source, "source", "", "Source label stored in output metadata.")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum venues to show (0 shows the full leaderboard).")
	addGlobalFlags(cmd, &flags)
	return cmd
}
