package rtb_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fivetwenty-io/rtb-client/pkg/rtb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBackend = errors.New("backend unavailable")

// MockPagedLister serves pages keyed by page token and records each request.
type MockPagedLister struct {
	pages    map[string]*rtb.ListResponse[string]
	errs     map[string]error
	requests []rtb.ListParams
	parents  []string
}

func (m *MockPagedLister) List(ctx context.Context, parent string, params *rtb.ListParams) (*rtb.ListResponse[string], error) {
	m.requests = append(m.requests, *params)
	m.parents = append(m.parents, parent)

	if err, ok := m.errs[params.PageToken]; ok {
		return nil, err
	}

	return m.pages[params.PageToken], nil
}

func newTwoPageLister() *MockPagedLister {
	return &MockPagedLister{
		pages: map[string]*rtb.ListResponse[string]{
			"":   {Resources: []string{"A", "B"}, NextPageToken: "t1"},
			"t1": {Resources: []string{"C"}},
		},
	}
}

func collect(t *testing.T, seq func(func(string, error) bool)) ([]string, error) {
	t.Helper()

	items := make([]string, 0)

	for item, err := range seq {
		if err != nil {
			return items, err
		}

		items = append(items, item)
	}

	return items, nil
}

func TestListAll_FollowsPageTokens(t *testing.T) {
	t.Parallel()

	lister := newTwoPageLister()
	params := rtb.NewListParams().WithPageSize(2)

	items, err := collect(t, rtb.ListAll[string](context.Background(), lister, "bidders/12345", params))
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C"}, items)
	require.Len(t, lister.requests, 2)
	assert.Empty(t, lister.requests[0].PageToken)
	assert.Equal(t, "t1", lister.requests[1].PageToken)
	assert.Equal(t, 2, lister.requests[0].PageSize)
	assert.Equal(t, 2, lister.requests[1].PageSize)
	assert.Equal(t, []string{"bidders/12345", "bidders/12345"}, lister.parents)
}

func TestListAll_SinglePage(t *testing.T) {
	t.Parallel()

	lister := &MockPagedLister{
		pages: map[string]*rtb.ListResponse[string]{
			"": {Resources: []string{"A"}},
		},
	}

	items, err := collect(t, rtb.ListAll[string](context.Background(), lister, "bidders/1", nil))
	require.NoError(t, err)

	assert.Equal(t, []string{"A"}, items)
	assert.Len(t, lister.requests, 1)
}

func TestListAll_MissingCollectionContinues(t *testing.T) {
	t.Parallel()

	lister := &MockPagedLister{
		pages: map[string]*rtb.ListResponse[string]{
			"":   {NextPageToken: "t1"},
			"t1": {Resources: []string{"A"}, NextPageToken: "t2"},
			"t2": nil,
		},
	}

	items, err := collect(t, rtb.ListAll[string](context.Background(), lister, "bidders/1", nil))
	require.NoError(t, err)

	assert.Equal(t, []string{"A"}, items)
	assert.Len(t, lister.requests, 3)
}

func TestListAll_EmptyCollection(t *testing.T) {
	t.Parallel()

	lister := &MockPagedLister{pages: map[string]*rtb.ListResponse[string]{"": {}}}

	items, err := collect(t, rtb.ListAll[string](context.Background(), lister, "bidders/1", nil))
	require.NoError(t, err)

	assert.Empty(t, items)
	assert.Len(t, lister.requests, 1)
}

func TestListAll_ErrorStopsEnumeration(t *testing.T) {
	t.Parallel()

	lister := newTwoPageLister()
	lister.errs = map[string]error{"t1": errBackend}

	items, err := collect(t, rtb.ListAll[string](context.Background(), lister, "bidders/1", nil))

	require.ErrorIs(t, err, errBackend)
	assert.Same(t, errBackend, err)
	assert.Equal(t, []string{"A", "B"}, items)
	assert.Len(t, lister.requests, 2)
}

func TestListAll_ErrorOnFirstPage(t *testing.T) {
	t.Parallel()

	lister := &MockPagedLister{errs: map[string]error{"": errBackend}}

	errCount := 0

	for _, err := range rtb.ListAll[string](context.Background(), lister, "bidders/1", nil) {
		require.ErrorIs(t, err, errBackend)

		errCount++
	}

	assert.Equal(t, 1, errCount)
	assert.Len(t, lister.requests, 1)
}

func TestListAll_EarlyBreakStopsRequests(t *testing.T) {
	t.Parallel()

	lister := newTwoPageLister()

	for item, err := range rtb.ListAll[string](context.Background(), lister, "bidders/1", nil) {
		require.NoError(t, err)
		assert.Equal(t, "A", item)

		break
	}

	assert.Len(t, lister.requests, 1)
}

func TestListAll_IgnoresCallerPageToken(t *testing.T) {
	t.Parallel()

	lister := newTwoPageLister()
	params := rtb.NewListParams().WithPageToken("t1").WithFilter("biddingState = PENDING")

	items, err := collect(t, rtb.ListAll[string](context.Background(), lister, "bidders/1", params))
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C"}, items)
	assert.Empty(t, lister.requests[0].PageToken)
	assert.Equal(t, "biddingState = PENDING", lister.requests[1].Filter)
	assert.Equal(t, "t1", params.PageToken, "caller params must not be modified")
}

func TestListAll_Restartable(t *testing.T) {
	t.Parallel()

	lister := newTwoPageLister()
	seq := rtb.ListAll[string](context.Background(), lister, "bidders/1", nil)

	first, err := collect(t, seq)
	require.NoError(t, err)

	second, err := collect(t, seq)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, lister.requests, 4)
}

func TestListerFunc(t *testing.T) {
	t.Parallel()

	calls := 0
	lister := rtb.ListerFunc[string](func(ctx context.Context, parent string, params *rtb.ListParams) (*rtb.ListResponse[string], error) {
		calls++

		return &rtb.ListResponse[string]{Resources: []string{parent}}, nil
	})

	items, err := collect(t, rtb.ListAll[string](context.Background(), lister, "bidders", nil))
	require.NoError(t, err)

	assert.Equal(t, []string{"bidders"}, items)
	assert.Equal(t, 1, calls)
}

func TestPaginationIterator(t *testing.T) {
	t.Parallel()

	lister := newTwoPageLister()
	iterator := rtb.NewPaginationIterator[string](context.Background(), lister, "bidders/1", nil)

	items := make([]string, 0)

	for iterator.HasNext() {
		item, err := iterator.Next()
		require.NoError(t, err)

		items = append(items, item)
	}

	assert.Equal(t, []string{"A", "B", "C"}, items)
	assert.False(t, iterator.HasNext())

	_, err := iterator.Next()
	require.ErrorIs(t, err, rtb.ErrNoMoreItems)
	assert.Len(t, lister.requests, 2)
}

func TestPaginationIterator_SkipsEmptyPages(t *testing.T) {
	t.Parallel()

	lister := &MockPagedLister{
		pages: map[string]*rtb.ListResponse[string]{
			"":   {NextPageToken: "t1"},
			"t1": {Resources: []string{"A"}},
		},
	}

	all, err := rtb.NewPaginationIterator[string](context.Background(), lister, "bidders/1", nil).All()
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, all)
}

func TestPaginationIterator_Error(t *testing.T) {
	t.Parallel()

	lister := newTwoPageLister()
	lister.errs = map[string]error{"t1": errBackend}

	all, err := rtb.NewPaginationIterator[string](context.Background(), lister, "bidders/1", nil).All()

	require.ErrorIs(t, err, errBackend)
	assert.Equal(t, []string{"A", "B"}, all)
}

func TestPaginationIterator_ForEachStopsOnCallbackError(t *testing.T) {
	t.Parallel()

	lister := newTwoPageLister()
	iterator := rtb.NewPaginationIterator[string](context.Background(), lister, "bidders/1", nil)

	seen := make([]string, 0)
	err := iterator.ForEach(func(item string) error {
		seen = append(seen, item)
		if item == "B" {
			return errBackend
		}

		return nil
	})

	require.ErrorIs(t, err, errBackend)
	assert.Equal(t, []string{"A", "B"}, seen)
	assert.Len(t, lister.requests, 1)
}

func TestFetchAllPages(t *testing.T) {
	t.Parallel()

	t.Run("all pages", func(t *testing.T) {
		t.Parallel()

		lister := newTwoPageLister()

		all, err := rtb.FetchAllPages[string](context.Background(), lister, "bidders/1", nil, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"A", "B", "C"}, all)
	})

	t.Run("page size override", func(t *testing.T) {
		t.Parallel()

		lister := newTwoPageLister()
		params := rtb.NewListParams().WithPageSize(10)

		_, err := rtb.FetchAllPages[string](context.Background(), lister, "bidders/1", params, rtb.DefaultPaginationOptions())
		require.NoError(t, err)
		assert.Equal(t, 50, lister.requests[0].PageSize)
		assert.Equal(t, 10, params.PageSize)
	})

	t.Run("max pages", func(t *testing.T) {
		t.Parallel()

		lister := newTwoPageLister()

		all, err := rtb.FetchAllPages[string](context.Background(), lister, "bidders/1", nil, &rtb.PaginationOptions{MaxPages: 1})
		require.NoError(t, err)
		assert.Equal(t, []string{"A", "B"}, all)
		assert.Len(t, lister.requests, 1)
	})

	t.Run("partial results on error", func(t *testing.T) {
		t.Parallel()

		lister := newTwoPageLister()
		lister.errs = map[string]error{"t1": errBackend}

		all, err := rtb.FetchAllPages[string](context.Background(), lister, "bidders/1", nil, nil)
		require.ErrorIs(t, err, errBackend)
		assert.Equal(t, []string{"A", "B"}, all)
	})
}
