package domain

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/huixin2022/allure-analysis-mcp/internal/adapter"
	m "github.com/huixin2022/allure-analysis-mcp/internal/model"
)

// decoded is one slot of readJSONFiles output. ok is false when the file
// could not be read or decoded.
type decoded[T any] struct {
	value T
	ok    bool
}

// readJSONFiles decodes every path with at most workers concurrent reads.
// Slot i always corresponds to paths[i], so callers see the input order no
// matter which read finishes first. Unreadable or malformed files are logged
// and left empty; only context cancellation fails the whole call.
func readJSONFiles[T any](ctx context.Context, fsAdapter adapter.SourceFSAdapter, paths []m.Path, workers int) ([]decoded[T], error) {
	out := make([]decoded[T], len(paths))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(workers)

	for i, path := range paths {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			data, err := fsAdapter.ReadFile(path)
			if err != nil {
				slog.Warn("Skipping unreadable record", "path", path, "error", err)
				return nil
			}

			var value T
			if err := decodeRecord(data, &value); err != nil {
				slog.Warn("Skipping malformed record", "path", path, "error", err)
				return nil
			}

			out[i] = decoded[T]{value: value, ok: true}

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
