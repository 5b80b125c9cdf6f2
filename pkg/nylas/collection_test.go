package nylas_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/nylas/pkg/nylas"
)

type testItem struct {
	ID string
}

// pagedFetch simulates a collection of total items and records the
// offset/limit of every request it serves.
func pagedFetch(total int, calls *[]string) nylas.PageFunc[testItem] {
	return func(ctx context.Context, params *nylas.QueryParams) ([]testItem, error) {
		offset := 0
		if params.Offset != nil {
			offset = *params.Offset
		}

		*calls = append(*calls, fmt.Sprintf("offset=%d limit=%d", offset, params.Limit))

		var page []testItem
		for i := offset; i < total && i < offset+params.Limit; i++ {
			page = append(page, testItem{ID: fmt.Sprintf("item-%d", i)})
		}

		return page, nil
	}
}

func TestIterator_DrainsAllPages(t *testing.T) {
	t.Parallel()

	var calls []string

	it := nylas.NewIterator(context.Background(), pagedFetch(72, &calls), nil)

	items, err := it.All()
	require.NoError(t, err)
	require.Len(t, items, 72)
	assert.Equal(t, "item-0", items[0].ID)
	assert.Equal(t, "item-71", items[71].ID)

	// 50 then 22: the short second page ends iteration without another call
	assert.Equal(t, []string{"offset=0 limit=50", "offset=50 limit=50"}, calls)
}

func TestIterator_ExactMultipleNeedsOneMoreRequest(t *testing.T) {
	t.Parallel()

	var calls []string

	it := nylas.NewIterator(context.Background(), pagedFetch(100, &calls), nil)

	items, err := it.All()
	require.NoError(t, err)
	require.Len(t, items, 100)

	// The second page is full, so exhaustion is only proven by the empty third
	assert.Equal(t, []string{
		"offset=0 limit=50",
		"offset=50 limit=50",
		"offset=100 limit=50",
	}, calls)
}

func TestIterator_EmptyCollection(t *testing.T) {
	t.Parallel()

	var calls []string

	it := nylas.NewIterator(context.Background(), pagedFetch(0, &calls), nil)

	assert.False(t, it.HasNext())

	items, err := it.All()
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Equal(t, []string{"offset=0 limit=50"}, calls)
}

func TestIterator_ExplicitOffsetSeedsCursor(t *testing.T) {
	t.Parallel()

	var calls []string

	params := nylas.NewQueryParams().WithOffset(60)
	it := nylas.NewIterator(context.Background(), pagedFetch(72, &calls), params)

	items, err := it.All()
	require.NoError(t, err)
	require.Len(t, items, 12)
	assert.Equal(t, "item-60", items[0].ID)
	assert.Equal(t, []string{"offset=60 limit=50"}, calls)
}

func TestIterator_LimitOverridesPageSize(t *testing.T) {
	t.Parallel()

	var calls []string

	params := nylas.NewQueryParams().WithLimit(10)
	it := nylas.NewIterator(context.Background(), pagedFetch(25, &calls), params)

	items, err := it.All()
	require.NoError(t, err)
	require.Len(t, items, 25)
	assert.Equal(t, []string{
		"offset=0 limit=10",
		"offset=10 limit=10",
		"offset=20 limit=10",
	}, calls)
}

func TestIterator_DoesNotMutateCallerParams(t *testing.T) {
	t.Parallel()

	var calls []string

	params := nylas.NewQueryParams().WithFilter("unread", "true")
	it := nylas.NewIterator(context.Background(), pagedFetch(5, &calls), params)

	_, err := it.All()
	require.NoError(t, err)

	assert.Nil(t, params.Offset)
	assert.Zero(t, params.Limit)
}

func TestIterator_PropagatesFetchError(t *testing.T) {
	t.Parallel()

	fetchErr := errors.New("boom")
	fetch := func(ctx context.Context, params *nylas.QueryParams) ([]testItem, error) {
		return nil, fetchErr
	}

	it := nylas.NewIterator(context.Background(), fetch, nil)

	assert.False(t, it.HasNext())

	_, err := it.Next()
	require.ErrorIs(t, err, fetchErr)

	_, err = it.All()
	require.ErrorIs(t, err, fetchErr)
}

func TestIterator_ContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls []string

	it := nylas.NewIterator(ctx, pagedFetch(10, &calls), nil)

	assert.False(t, it.HasNext())

	_, err := it.All()
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, calls)
}

func TestIterator_ForEach(t *testing.T) {
	t.Parallel()

	t.Run("visits every item", func(t *testing.T) {
		t.Parallel()

		var calls []string

		it := nylas.NewIterator(context.Background(), pagedFetch(7, &calls), nil)

		var seen []string
		err := it.ForEach(func(item testItem) error {
			seen = append(seen, item.ID)

			return nil
		})
		require.NoError(t, err)
		assert.Len(t, seen, 7)
	})

	t.Run("stops on callback error", func(t *testing.T) {
		t.Parallel()

		var calls []string

		it := nylas.NewIterator(context.Background(), pagedFetch(7, &calls), nil)

		stop := errors.New("stop")
		count := 0
		err := it.ForEach(func(item testItem) error {
			count++
			if count == 3 {
				return stop
			}

			return nil
		})
		require.ErrorIs(t, err, stop)
		assert.Equal(t, 3, count)
	})
}

func TestStream(t *testing.T) {
	t.Parallel()

	t.Run("yields every page then closes", func(t *testing.T) {
		t.Parallel()

		var calls []string

		results := nylas.Stream(context.Background(), pagedFetch(72, &calls), nil)

		var items []testItem
		for result := range results {
			require.NoError(t, result.Err)
			items = append(items, result.Items...)
		}

		assert.Len(t, items, 72)
	})

	t.Run("surfaces the fetch error last", func(t *testing.T) {
		t.Parallel()

		fetchErr := errors.New("boom")
		fetch := func(ctx context.Context, params *nylas.QueryParams) ([]testItem, error) {
			return nil, fetchErr
		}

		results := nylas.Stream(context.Background(), fetch, nil)

		var errs []error
		for result := range results {
			if result.Err != nil {
				errs = append(errs, result.Err)
			}
		}

		require.Len(t, errs, 1)
		assert.ErrorIs(t, errs[0], fetchErr)
	})
}
