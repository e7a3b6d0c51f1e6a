// Package paginate walks a paginated list endpoint to exhaustion. The holders,
// account-addresses and UTXO listings share the same mechanics: 1-based page
// index, empty page means end of data, and a polite pause between requests.
package paginate

import (
	"context"
	"time"

	"github.com/kostaspanagias/cardano-lens/pkg/common/logger"
)

// PageFunc fetches one page of elements. Pages are 1-based.
type PageFunc[T any] func(ctx context.Context, page int) ([]T, error)

// Result is the tagged outcome of walking an endpoint. Complete is false when
// pagination stopped on a failed request instead of a genuine empty page, so
// callers can tell a partial table from a fully fetched one.
type Result[T any] struct {
	Items    []T
	Pages    int
	Complete bool
}

// All fetches pages starting at 1 until a page comes back empty, concatenating
// elements in page order. A failed page logs the condition and returns what
// has been accumulated so far with Complete=false. delay is the minimum pause
// between successive requests.
func All[T any](ctx context.Context, fetch PageFunc[T], delay time.Duration) Result[T] {
	var items []T

	for page := 1; ; page++ {
		if page > 1 && delay > 0 {
			if !sleep(ctx, delay) {
				logger.Warn("pagination cancelled", "page", page, "error", ctx.Err())
				return Result[T]{Items: items, Pages: page - 1, Complete: false}
			}
		}

		elems, err := fetch(ctx, page)
		if err != nil {
			logger.Warn("pagination stopped early", "page", page, "error", err)
			return Result[T]{Items: items, Pages: page - 1, Complete: false}
		}
		if len(elems) == 0 {
			return Result[T]{Items: items, Pages: page, Complete: true}
		}

		items = append(items, elems...)
		logger.Debug("fetched page", "page", page, "elements", len(elems))
	}
}

func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
