package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mekedron/pint-cli/internal/domain"
	"github.com/mekedron/pint-cli/internal/pipeline"
	"github.com/mekedron/pint-cli/internal/service/output"
	"github.com/spf13/cobra"
)

type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return ""
}

type globalFlags struct {
	Format string
	Output string
}

const sharedGlobalFlagAnnotation = "pint_cli_shared_global"

func addGlobalFlags(cmd *cobra.Command, flags *globalFlags) {
	addSharedGlobalFlag(cmd, "format", func() {
		cmd.Flags().StringVar(&flags.Format, "format", "table", "Output format: table, json, or yaml.")
	})
	addSharedGlobalFlag(cmd, "out", func() {
		cmd.Flags().StringVar(&flags.Output, "out", "", "Also write the rendered output to this file.")
	})
}

func addSharedGlobalFlag(cmd *cobra.Command, name string, register func()) {
	if cmd.Flags().Lookup(name) != nil {
		return
	}
	register()
	flag := cmd.Flags().Lookup(name)
	if flag == nil {
		return
	}
	if flag.Annotations == nil {
		flag.Annotations = map[string][]string{}
	}
	flag.Annotations[sharedGlobalFlagAnnotation] = []string{"true"}
}

func parseOutputFormat(format string) (output.Format, error) {
	return output.ParseFormat(format)
}

func writeTable(cmd *cobra.Command, text string, outputPath string) error {
	return output.WriteOutput(cmd.OutOrStdout(), text, outputPath)
}

func writeMachinePayload(cmd *cobra.Command, env output.Envelope, format output.Format, outputPath string) error {
	rendered, err := output.RenderPayload(env, format)
	if err != nil {
		return err
	}
	return output.WriteOutput(cmd.OutOrStdout(), rendered, outputPath)
}

func emitError(
	cmd *cobra.Command,
	format output.Format,
	source string,
	outputPath string,
	code string,
	message string,
) error {
	if format == output.FormatTable {
		if err := output.WriteOutput(cmd.OutOrStdout(), message, outputPath); err != nil {
			return err
		}
		return &exitError{code: 1}
	}
	env := output.BuildEnvelope(source, nil, []string{}, map[string]any{
		"code":    code,
		"message": message,
	})
	if err := writeMachinePayload(cmd, env, format, outputPath); err != nil {
		return err
	}
	return &exitError{code: 1}
}

// loadConfigDefaults reads stored defaults, treating a missing config
// file as empty defaults.
func loadConfigDefaults(ctx context.Context, deps Dependencies) domain.Config {
	if deps.Config == nil {
		return domain.Config{}
	}
	cfg, err := deps.Config.Load(ctx)
	if err != nil {
		return domain.Config{}
	}
	return cfg
}

func resolveInputPath(ctx context.Context, deps Dependencies, flagValue string) (string, error) {
	if path := strings.TrimSpace(flagValue); path != "" {
		return path, nil
	}
	if path := strings.TrimSpace(loadConfigDefaults(ctx, deps).DefaultInput); path != "" {
		return path, nil
	}
	return "", errors.New("snapshot path is required: pass --input or set a default with 'pint configure --input'")
}

func resolveSource(ctx context.Context, deps Dependencies, flagValue string) string {
	if source := strings.TrimSpace(flagValue); source != "" {
		return source
	}
	if source := strings.TrimSpace(loadConfigDefaults(ctx, deps).Source); source != "" {
		return source
	}
	return pipeline.DefaultSource
}

// buildReport loads the snapshot and runs the pipeline over it.
func buildReport(
	ctx context.Context,
	deps Dependencies,
	inputPath string,
	opts pipeline.Options,
) (domain.Report, error) {
	snap, err := deps.Snapshots.Load(ctx, inputPath)
	if err != nil {
		return domain.Report{}, fmt.Errorf("load snapshot: %w", err)
	}
	return pipeline.Run(snap, opts)
}

func limitRows[T any](rows []T, limit int) []T {
	if limit <= 0 || limit >= len(rows) {
		return rows
	}
	return rows[:limit]
}
