package hash

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/storacha/go-hashfn/core/failure"
	"github.com/storacha/go-hashfn/core/value"
	"github.com/storacha/go-hashfn/core/view"
)

type loggingHasher struct {
	Hasher
	logger *slog.Logger
}

// WithLogger wraps h so every computation is logged to logger. Completed
// computations are logged at debug level, cancellations as warnings and any
// other failure as an error.
func WithLogger(h Hasher, logger *slog.Logger) Hasher {
	if logger == nil {
		return h
	}
	return loggingHasher{h, logger.With("algorithm", h.Name())}
}

func (lh loggingHasher) ComputeHash(ctx context.Context, data view.View) (value.HashValue, error) {
	start := time.Now()
	v, err := lh.Hasher.ComputeHash(ctx, data)
	elapsed := time.Since(start)
	switch {
	case err == nil:
		lh.logger.DebugContext(ctx, "hash computed",
			"length", data.Len(),
			"bits", v.BitLength(),
			"duration", elapsed,
		)
	case errors.Is(err, failure.ErrCancelled):
		lh.logger.WarnContext(ctx, "hash cancelled",
			"length", data.Len(),
			"duration", elapsed,
			"error", err,
		)
	default:
		lh.logger.ErrorContext(ctx, "hash failed",
			"length", data.Len(),
			"error", err,
		)
	}
	return v, err
}
