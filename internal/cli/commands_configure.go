package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newConfigureCommand(deps Dependencies) *cobra.Command {
	var inputPath string
	var outputPath string
	var source string
	var show bool

	cmd := &cobra.Command{
		Use:   "configure",
		Short: "Store default snapshot/report paths and source label.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := loadConfigDefaults(cmd.Context(), deps)

			if show {
				var b strings.Builder
				fmt.Fprintf(&b, "config path: %s\n", deps.Config.Path())
				fmt.Fprintf(&b, "input: %s\n", orUnset(cfg.DefaultInput))
				fmt.Fprintf(&b, "output: %s\n", orUnset(cfg.DefaultOutput))
				fmt.Fprintf(&b, "source: %s", orUnset(cfg.Source))
				return writeTable(cmd, b.String(), "")
			}

			if strings.TrimSpace(inputPath) == "" &&
				strings.TrimSpace(outputPath) == "" &&
				strings.TrimSpace(source) == "" {
				return fmt.Errorf("provide --input, --output, or --source to update defaults (or --show to inspect)")
			}

			if v := strings.TrimSpace(inputPath); v != "" {
				cfg.DefaultInput = v
			}
			if v := strings.TrimSpace(outputPath); v != "" {
				cfg.DefaultOutput = v
			}
			if v := strings.TrimSpace(source); v != "" {
				cfg.Source = v
			}
			if err := deps.Config.Save(cmd.Context(), cfg); err != nil {
				return err
			}
			return writeTable(cmd, "Defaults saved.", "")
		},
	}

	cmd.Flags().StringVar(&inputPath, "input", "", "Default snapshot path used when --input is omitted.")
	cmd.Flags().StringVar(&outputPath, "output", "", "Default report path used when --output is omitted.")
	cmd.Flags().StringVar(&source, "source", "", "Default source label for report metadata.")
	cmd.Flags().BoolVar(&show, "show", false, "Print current defaults and exit.")
	return cmd
}

func orUnset(v string) string {
	if strings.TrimSpace(v) == "" {
		return "(unset)"
	}
	return v
}
