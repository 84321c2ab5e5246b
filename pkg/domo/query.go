package domo

import (
	"context"
	"net/url"
	"strconv"
)

const (
	defaultPageSize = 50
	maxPageSize     = 50
)

// ListOptions controls offset-based pagination on list endpoints.
type ListOptions struct {
	// Limit is the page size. Values are clamped to the 1..50 range most
	// Domo list endpoints enforce. Zero means the default (50).
	Limit int
	// Offset is the number of items to skip.
	Offset int
	// Sort orders results on endpoints that support it (e.g. "name").
	Sort string
	// NameLike filters results by name on endpoints that support it.
	NameLike string
}

// PageSize returns the effective page size, clamped to 1..50.
func (o *ListOptions) PageSize() int {
	if o == nil || o.Limit <= 0 {
		return defaultPageSize
	}

	if o.Limit > maxPageSize {
		return maxPageSize
	}

	return o.Limit
}

// ToQuery renders the options as URL query parameters. The offset is
// always sent, including zero, matching what the Domo list endpoints
// expect on the first page.
func (o *ListOptions) ToQuery() url.Values {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(o.PageSize()))

	if o == nil {
		query.Set("offset", "0")

		return query
	}

	query.Set("offset", strconv.Itoa(o.Offset))

	if o.Sort != "" {
		query.Set("sort", o.Sort)
	}

	if o.NameLike != "" {
		query.Set("nameLike", o.NameLike)
	}

	return query
}

// FetchPage retrieves one page of results at the given offset.
type FetchPage[T any] func(ctx context.Context, limit, offset int) ([]T, error)

// CollectAll walks an offset-paginated endpoint until a short page signals
// the end, optionally stopping after maxItems results. pageSize is clamped
// to 1..50; maxItems <= 0 means unlimited.
func CollectAll[T any](ctx context.Context, fetch FetchPage[T], pageSize, maxItems int) ([]T, error) {
	if pageSize <= 0 || pageSize > maxPageSize {
		pageSize = defaultPageSize
	}

	var all []T

	offset := 0

	for {
		limit := pageSize
		if maxItems > 0 && maxItems-len(all) < limit {
			limit = maxItems - len(all)
		}

		page, err := fetch(ctx, limit, offset)
		if err != nil {
			return nil, err
		}

		all = append(all, page...)

		if maxItems > 0 && len(all) >= maxItems {
			return all[:maxItems], nil
		}

		if len(page) < limit {
			return all, nil
		}

		offset += len(page)
	}
}
