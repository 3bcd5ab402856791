package nemclient

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Order of a paginated listing
type Order string

const (
	OrderAsc  Order = "asc"
	OrderDesc Order = "desc"
)

// QueryParams pagination of a listing, zero values are left out of the query string
type QueryParams struct {
	PageSize int
	// ID the listing starts after
	ID    string
	Order Order
}

// NewQueryParams create a new QueryParams
func NewQueryParams(pageSize int, id string) *QueryParams {
	return &QueryParams{
		PageSize: pageSize,
		ID:       id,
	}
}

// Validate the query params
func (q *QueryParams) Validate() error {
	if q == nil {
		return nil
	}
	if q.PageSize < 0 {
		return fmt.Errorf("page size(%d) must not be negative", q.PageSize)
	}
	switch q.Order {
	case "", OrderAsc, OrderDesc:
	default:
		return fmt.Errorf("order(%s) must be %s or %s", q.Order, OrderAsc, OrderDesc)
	}
	return nil
}

// Encode returns the raw query, parameters come in the order pageSize, id, order
func (q *QueryParams) Encode() string {
	if q == nil {
		return ""
	}
	var parts []string
	if q.PageSize > 0 {
		parts = append(parts, "pageSize="+strconv.Itoa(q.PageSize))
	}
	if len(q.ID) > 0 {
		parts = append(parts, "id="+url.QueryEscape(q.ID))
	}
	if len(q.Order) > 0 {
		parts = append(parts, "order="+url.QueryEscape(string(q.Order)))
	}
	return strings.Join(parts, "&")
}

// ToURL returns the query string with its leading ?, or an empty string when nothing is set
func (q *QueryParams) ToURL() string {
	raw := q.Encode()
	if len(raw) == 0 {
		return ""
	}
	return "?" + raw
}
