package rtb

import (
	"context"
	"iter"

	"github.com/fivetwenty-io/rtb-client/internal/constants"
)

// Lister fetches a single page of resources owned by parent.
type Lister[T any] interface {
	List(ctx context.Context, parent string, params *ListParams) (*ListResponse[T], error)
}

// ListerFunc adapts an ordinary function to the Lister interface.
type ListerFunc[T any] func(ctx context.Context, parent string, params *ListParams) (*ListResponse[T], error)

// List calls f.
func (f ListerFunc[T]) List(ctx context.Context, parent string, params *ListParams) (*ListResponse[T], error) {
	return f(ctx, parent, params)
}

// PaginationOptions configures FetchAllPages.
type PaginationOptions struct {
	// PageSize overrides the page size of the list parameters when > 0.
	PageSize int
	// MaxPages stops after this many pages when > 0.
	MaxPages int
}

// DefaultPaginationOptions returns options that request the maximum page
// size and walk every page.
func DefaultPaginationOptions() *PaginationOptions {
	return &PaginationOptions{
		PageSize: constants.MaximumPageSize,
		MaxPages: constants.DefaultMaxPages,
	}
}

// pager walks the page-token chain of one list operation. Requests are
// strictly sequential: the next page is only requested once the previous
// page's token is known.
type pager[T any] struct {
	lister   Lister[T]
	parent   string
	params   *ListParams
	token    string
	maxPages int
	fetched  int
	done     bool
}

// newPager always starts from the first page, regardless of any token in
// params.
func newPager[T any](lister Lister[T], parent string, params *ListParams, maxPages int) *pager[T] {
	base := params.Clone()
	base.PageToken = ""

	return &pager[T]{
		lister:   lister,
		parent:   parent,
		params:   base,
		maxPages: maxPages,
	}
}

// next returns the following page, or nil once the collection is exhausted.
// An error ends the walk and is returned exactly as the lister produced it.
func (p *pager[T]) next(ctx context.Context) (*ListResponse[T], error) {
	if p.done {
		return nil, nil
	}

	request := p.params.Clone()
	request.PageToken = p.token

	page, err := p.lister.List(ctx, p.parent, request)
	if err != nil {
		p.done = true

		return nil, err
	}

	p.fetched++

	if page == nil {
		page = &ListResponse[T]{}
	}

	p.token = page.NextPageToken
	if !page.HasNextPage() || (p.maxPages > 0 && p.fetched >= p.maxPages) {
		p.done = true
	}

	return page, nil
}

// ListAll lazily enumerates every resource under parent, in the order the
// server returns them.
//
// Each range over the returned sequence issues fresh requests. A page without
// a collection contributes no items and the walk continues with its token.
// The first error from the lister is yielded once, unchanged, and ends the
// sequence; items yielded before it remain valid. Breaking out of the loop
// stops further requests.
func ListAll[T any](ctx context.Context, lister Lister[T], parent string, params *ListParams) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		pages := newPager(lister, parent, params, 0)

		for {
			page, err := pages.next(ctx)
			if err != nil {
				var zero T

				yield(zero, err)

				return
			}

			if page == nil {
				return
			}

			for _, item := range page.Resources {
				if !yield(item, nil) {
					return
				}
			}
		}
	}
}

// PaginationIterator walks a paginated collection one item at a time.
type PaginationIterator[T any] struct {
	ctx   context.Context
	pages *pager[T]
	items []T
	index int
	err   error
}

// NewPaginationIterator creates an iterator over every resource under parent.
func NewPaginationIterator[T any](ctx context.Context, lister Lister[T], parent string, params *ListParams) *PaginationIterator[T] {
	return &PaginationIterator[T]{
		ctx:   ctx,
		pages: newPager(lister, parent, params, 0),
	}
}

// HasNext reports whether Next will return an item or an error. It fetches
// pages on demand and skips pages that carry no items.
func (it *PaginationIterator[T]) HasNext() bool {
	for it.index >= len(it.items) {
		if it.err != nil {
			return true
		}

		page, err := it.pages.next(it.ctx)
		if err != nil {
			it.err = err

			return true
		}

		if page == nil {
			return false
		}

		it.items = page.Resources
		it.index = 0
	}

	return true
}

// Next returns the next resource. After the collection is exhausted it
// returns ErrNoMoreItems.
func (it *PaginationIterator[T]) Next() (T, error) {
	var zero T

	if !it.HasNext() {
		return zero, ErrNoMoreItems
	}

	if it.err != nil {
		err := it.err
		it.err = nil

		return zero, err
	}

	item := it.items[it.index]
	it.index++

	return item, nil
}

// ForEach calls fn for every remaining resource. It stops at the first error
// from either the lister or fn and returns it unchanged.
func (it *PaginationIterator[T]) ForEach(fn func(T) error) error {
	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			return err
		}

		err = fn(item)
		if err != nil {
			return err
		}
	}

	return nil
}

// All collects every remaining resource. On error it returns the resources
// collected so far together with the error.
func (it *PaginationIterator[T]) All() ([]T, error) {
	all := make([]T, 0)

	err := it.ForEach(func(item T) error {
		all = append(all, item)

		return nil
	})

	return all, err
}

// FetchAllPages collects every resource under parent. A nil options value
// walks every page with the page size from params. On error it returns the
// resources collected so far together with the error.
func FetchAllPages[T any](ctx context.Context, lister Lister[T], parent string, params *ListParams, options *PaginationOptions) ([]T, error) {
	params = params.Clone()
	maxPages := 0

	if options != nil {
		if options.PageSize > 0 {
			params.PageSize = options.PageSize
		}

		maxPages = options.MaxPages
	}

	pages := newPager(lister, parent, params, maxPages)
	all := make([]T, 0)

	for {
		page, err := pages.next(ctx)
		if err != nil {
			return all, err
		}

		if page == nil {
			return all, nil
		}

		all = append(all, page.Resources...)
	}
}
