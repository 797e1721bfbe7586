package rtb

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/go-playground/validator/v10"
)

//nolint:gochecknoglobals // validator caches struct metadata and is safe for concurrent use
var validate = validator.New(validator.WithRequiredStructEnabled())

// ListParams carries the query parameters of a list operation.
//
// PageSize is a hint: the server may return fewer items than requested and
// callers must not rely on it being honoured exactly. A zero PageSize lets
// the server pick its default.
type ListParams struct {
	PageSize  int    `validate:"gte=0"`
	PageToken string
	Filter    string
	OrderBy   string
}

// NewListParams creates empty list parameters.
func NewListParams() *ListParams {
	return &ListParams{}
}

// WithPageSize sets the requested page size.
func (p *ListParams) WithPageSize(size int) *ListParams {
	p.PageSize = size

	return p
}

// WithPageToken sets the continuation token.
func (p *ListParams) WithPageToken(token string) *ListParams {
	p.PageToken = token

	return p
}

// WithFilter sets a server-side filter expression.
func (p *ListParams) WithFilter(filter string) *ListParams {
	p.Filter = filter

	return p
}

// WithOrderBy sets the server-side ordering.
func (p *ListParams) WithOrderBy(orderBy string) *ListParams {
	p.OrderBy = orderBy

	return p
}

// Validate checks the parameters before a request is sent.
func (p *ListParams) Validate() error {
	if p == nil {
		return nil
	}

	err := validate.Struct(p)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidListParams, err)
	}

	return nil
}

// Clone returns a copy that can be modified without affecting p.
func (p *ListParams) Clone() *ListParams {
	if p == nil {
		return NewListParams()
	}

	clone := *p

	return &clone
}

// ToValues encodes the parameters as URL query values, omitting zero fields.
func (p *ListParams) ToValues() url.Values {
	values := url.Values{}
	if p == nil {
		return values
	}

	if p.PageSize > 0 {
		values.Set("pageSize", strconv.Itoa(p.PageSize))
	}

	if p.PageToken != "" {
		values.Set("pageToken", p.PageToken)
	}

	if p.Filter != "" {
		values.Set("filter", p.Filter)
	}

	if p.OrderBy != "" {
		values.Set("orderBy", p.OrderBy)
	}

	return values
}
