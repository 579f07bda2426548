package gfapi_test

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baonguyenly/gfapi/pkg/gfapi"
)

var errPageFetch = errors.New("page fetch failed")

// pagedList simulates a cursor-paginated endpoint backed by fixed pages. The
// cursor carries the index of the next page, mimicking next_page URLs.
func pagedList(pages [][]string, calls *int) gfapi.ListPageFunc[string] {
	return func(_ context.Context, query *gfapi.Query) ([]string, error) {
		if calls != nil {
			*calls++
		}

		if query.Exhausted() {
			return nil, gfapi.ErrNoMoreItems
		}

		page := 0
		if next, ok := query.NextPage(); ok {
			page, _ = strconv.Atoi(next)
		}

		if page >= len(pages) {
			query.SetNextPage("")

			return nil, gfapi.ErrNoMoreItems
		}

		if page+1 < len(pages) {
			query.SetNextPage(strconv.Itoa(page + 1))
		} else {
			query.SetNextPage("")
		}

		return pages[page], nil
	}
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestCursorIterator(t *testing.T) {
	t.Parallel()
	t.Run("iterates across pages", func(t *testing.T) {
		t.Parallel()

		list := pagedList([][]string{{"a", "b"}, {"c"}, {"d", "e"}}, nil)
		iterator := gfapi.NewCursorIterator(context.Background(), list, nil)

		var items []string

		for iterator.HasNext() {
			item, err := iterator.Next()
			require.NoError(t, err)

			items = append(items, item)
		}

		assert.Equal(t, []string{"a", "b", "c", "d", "e"}, items)
	})

	t.Run("next after the end returns ErrNoMoreItems", func(t *testing.T) {
		t.Parallel()

		list := pagedList([][]string{{"a"}}, nil)
		iterator := gfapi.NewCursorIterator(context.Background(), list, nil)

		_, err := iterator.Next()
		require.NoError(t, err)

		_, err = iterator.Next()
		require.ErrorIs(t, err, gfapi.ErrNoMoreItems)
		assert.False(t, iterator.HasNext())
	})

	t.Run("empty list", func(t *testing.T) {
		t.Parallel()

		list := pagedList(nil, nil)
		iterator := gfapi.NewCursorIterator(context.Background(), list, nil)

		assert.False(t, iterator.HasNext())
	})

	t.Run("surfaces page fetch failures", func(t *testing.T) {
		t.Parallel()

		failing := func(_ context.Context, _ *gfapi.Query) ([]string, error) {
			return nil, errPageFetch
		}

		iterator := gfapi.NewCursorIterator(context.Background(), gfapi.ListPageFunc[string](failing), nil)

		require.True(t, iterator.HasNext())

		_, err := iterator.Next()
		require.ErrorIs(t, err, errPageFetch)
		assert.False(t, iterator.HasNext())
	})

	t.Run("all collects remaining items", func(t *testing.T) {
		t.Parallel()

		list := pagedList([][]string{{"a", "b"}, {"c"}}, nil)
		iterator := gfapi.NewCursorIterator(context.Background(), list, nil)

		all, err := iterator.All()
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "c"}, all)
	})

	t.Run("forEach stops at the first error", func(t *testing.T) {
		t.Parallel()

		list := pagedList([][]string{{"a", "b", "c"}}, nil)
		iterator := gfapi.NewCursorIterator(context.Background(), list, nil)

		seen := 0
		err := iterator.ForEach(func(item string) error {
			seen++
			if item == "b" {
				return errPageFetch
			}

			return nil
		})

		require.ErrorIs(t, err, errPageFetch)
		assert.Equal(t, 2, seen)
	})

	t.Run("shares the caller's query cursor", func(t *testing.T) {
		t.Parallel()

		calls := 0
		list := pagedList([][]string{{"a"}, {"b"}}, &calls)
		query := gfapi.NewQuery()

		iterator := gfapi.NewCursorIterator(context.Background(), list, query)

		all, err := iterator.All()
		require.NoError(t, err)
		assert.Len(t, all, 2)
		assert.True(t, query.Exhausted())
		// Two pages plus the terminal probe.
		assert.Equal(t, 3, calls)
	})
}

func TestStreamPages(t *testing.T) {
	t.Parallel()
	t.Run("delivers pages in order", func(t *testing.T) {
		t.Parallel()

		list := pagedList([][]string{{"a", "b"}, {"c"}}, nil)

		var pages [][]string

		for result := range gfapi.StreamPages(context.Background(), list, nil) {
			require.NoError(t, result.Err)

			pages = append(pages, result.Items)
		}

		require.Len(t, pages, 2)
		assert.Equal(t, []string{"a", "b"}, pages[0])
		assert.Equal(t, []string{"c"}, pages[1])
	})

	t.Run("delivers a failure as the final result", func(t *testing.T) {
		t.Parallel()

		failing := func(_ context.Context, _ *gfapi.Query) ([]string, error) {
			return nil, errPageFetch
		}

		var last gfapi.PageResult[string]

		for result := range gfapi.StreamPages(context.Background(), gfapi.ListPageFunc[string](failing), nil) {
			last = result
		}

		require.ErrorIs(t, last.Err, errPageFetch)
	})

	t.Run("stops on context cancellation", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())

		list := pagedList([][]string{{"a"}, {"b"}, {"c"}}, nil)
		results := gfapi.StreamPages(ctx, list, nil)

		first, ok := <-results
		require.True(t, ok)
		require.NoError(t, first.Err)

		cancel()

		// The channel closes once the goroutine observes cancellation.
		for range results { //nolint:revive // draining until close
		}
	})
}
