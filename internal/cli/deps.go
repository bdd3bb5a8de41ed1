package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"

	"github.com/mekedron/pint-cli/internal/domain"
)

var unknownCommandPattern = regexp.MustCompile(`unknown command "([^"]+)"`)

// SnapshotLoader loads raw price snapshots.
type SnapshotLoader interface {
	Load(ctx context.Context, path string) (domain.Snapshot, error)
}

// ConfigManager stores persisted CLI defaults.
type ConfigManager interface {
	Path() string
	Load(ctx context.Context) (domain.Config, error)
	Save(ctx context.Context, cfg domain.Config) error
}

// Dependencies wires runtime services.
type Dependencies struct {
	Snapshots SnapshotLoader
	Config    ConfigManager
	Version   string
}

var errVersionShown = fmt.Errorf("version shown")

// Execute runs the CLI with injected dependencies.
func Execute(ctx context.Context, args []string, deps Dependencies, stdout io.Writer, stderr io.Writer) int {
	cmd := NewRootCommand(deps)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	if err == nil || err == errVersionShown {
		return 0
	}
	var controlled *exitError
	if errors.As(err, &controlled) {
		return controlled.code
	}

	if matches := unknownCommandPattern.FindStringSubmatch(err.Error()); len(matches) > 1 {
		_, _ = fmt.Fprintf(stderr, "No such command '%s'\n", matches[1])
		return 2
	}

	if msg := err.Error(); msg != "" {
		_, _ = fmt.Fprintln(stderr, msg)
	}
	return 1
}
