package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/mekedron/pint-cli/internal/domain"
)

// ErrSnapshotNotFound is returned when the snapshot file does not exist.
var ErrSnapshotNotFound = errors.New("snapshot file not found")

// Client loads raw price snapshots. Fetching the snapshot from the
// upstream API is a separate concern; this client only decodes the
// known on-disk shape.
type Client struct{}

// NewClient creates a snapshot client.
func NewClient() *Client {
	return &Client{}
}

// Load reads and decodes a snapshot file.
func (c *Client) Load(_ context.Context, path string) (domain.Snapshot, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.Snapshot{}, fmt.Errorf("%w: %s", ErrSnapshotNotFound, path)
		}
		return domain.Snapshot{}, fmt.Errorf("read snapshot: %w", err)
	}

	var snap domain.Snapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		return domain.Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	return snap, nil
}
