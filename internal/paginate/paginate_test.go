package paginate

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAll_ConcatenatesPagesInOrder(t *testing.T) {
	pages := [][]string{
		{"a", "b"},
		{"c"},
		{"d", "e", "f"},
		{}, // end of data
	}
	var calls int

	res := All(context.Background(), func(ctx context.Context, page int) ([]string, error) {
		calls++
		require.Equal(t, calls, page, "pages must be requested in order starting at 1")
		return pages[page-1], nil
	}, 0)

	assert.Equal(t, []string{"a", "b", "c", "d", "e", "f"}, res.Items)
	assert.Equal(t, 4, calls, "must issue exactly N+1 requests")
	assert.Equal(t, 4, res.Pages)
	assert.True(t, res.Complete)
}

func TestAll_StopsEarlyOnError(t *testing.T) {
	res := All(context.Background(), func(ctx context.Context, page int) ([]int, error) {
		if page == 2 {
			return nil, fmt.Errorf("HTTP 429")
		}
		return []int{10, 20}, nil
	}, 0)

	assert.Equal(t, []int{10, 20}, res.Items, "page 1 elements must be kept")
	assert.Equal(t, 1, res.Pages)
	assert.False(t, res.Complete, "a failed page must be distinguishable from end of data")
}

func TestAll_ErrorOnFirstPage(t *testing.T) {
	res := All(context.Background(), func(ctx context.Context, page int) ([]int, error) {
		return nil, fmt.Errorf("HTTP 500")
	}, 0)

	assert.Empty(t, res.Items)
	assert.False(t, res.Complete)
}

func TestAll_EmptyFirstPage(t *testing.T) {
	res := All(context.Background(), func(ctx context.Context, page int) ([]int, error) {
		return nil, nil
	}, 0)

	assert.Empty(t, res.Items)
	assert.True(t, res.Complete)
	assert.Equal(t, 1, res.Pages)
}

func TestAll_DelaysBetweenPages(t *testing.T) {
	start := time.Now()
	res := All(context.Background(), func(ctx context.Context, page int) ([]int, error) {
		if page > 3 {
			return nil, nil
		}
		return []int{page}, nil
	}, 30*time.Millisecond)

	require.True(t, res.Complete)
	// 3 non-empty pages + 1 empty page = 3 inter-page delays
	assert.GreaterOrEqual(t, time.Since(start), 90*time.Millisecond)
}

func TestAll_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	res := All(ctx, func(ctx context.Context, page int) ([]int, error) {
		cancel() // cancel during the first fetch; the inter-page wait must notice
		return []int{1}, nil
	}, 10*time.Millisecond)

	assert.Equal(t, []int{1}, res.Items)
	assert.False(t, res.Complete)
}
