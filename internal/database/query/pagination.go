// Footystats - Historical Football Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/footystats

package query

import "fmt"

// Default page sizes.
const (
	DefaultLimit            = 50
	DefaultPlayerGoalsLimit = 100
	DefaultMaxLimit         = 1000
	TopCountriesLimit       = 10
	DistinctScorersLimit    = 5000
)

// Page is a LIMIT/OFFSET window. Limit is always >= 1.
type Page struct {
	Limit  int
	Offset int
}

// ParsePage reads limit and offset strings. A limit that is missing, not an
// integer or below 1 becomes defaultLimit. A client-sent limit above maxLimit
// is clamped (maxLimit <= 0 disables the clamp); defaultLimit never is. An
// offset that is missing, not an integer or negative becomes 0.
func ParsePage(limit, offset string, defaultLimit, maxLimit int) Page {
	if defaultLimit < 1 {
		defaultLimit = DefaultLimit
	}
	p := Page{Limit: defaultLimit}
	if n, ok := ParseInt(limit); ok && n >= 1 {
		p.Limit = n
		if maxLimit > 0 && p.Limit > maxLimit {
			p.Limit = maxLimit
		}
	}
	if n, ok := ParseInt(offset); ok && n >= 0 {
		p.Offset = n
	}
	return p
}

// Clause renders " LIMIT n OFFSET m". Both are integers produced by
// ParsePage, never request text.
func (p Page) Clause() string {
	return fmt.Sprintf(" LIMIT %d OFFSET %d", p.Limit, p.Offset)
}

// Pagination is the pagination block of a paginated response.
type Pagination struct {
	TotalItems int64 `json:"totalItems"`
	Limit      int   `json:"limit"`
	Offset     int   `json:"offset"`
	TotalPages int64 `json:"totalPages"`
}

// NewPagination computes totalPages = ceil(totalItems / limit); a zero limit
// yields zero pages.
func NewPagination(totalItems int64, p Page) Pagination {
	var pages int64
	if p.Limit > 0 {
		pages = (totalItems + int64(p.Limit) - 1) / int64(p.Limit)
	}
	return Pagination{
		TotalItems: totalItems,
		Limit:      p.Limit,
		Offset:     p.Offset,
		TotalPages: pages,
	}
}

// Row is one result row keyed by column name.
type Row map[string]interface{}

// ResultPage is a page of rows plus its pagination block.
type ResultPage struct {
	Data       []Row      `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// NewResultPage assembles a ResultPage. A nil rows slice becomes empty so it
// serializes as [].
func NewResultPage(rows []Row, totalItems int64, p Page) *ResultPage {
	if rows == nil {
		rows = []Row{}
	}
	return &ResultPage{
		Data:       rows,
		Pagination: NewPagination(totalItems, p),
	}
}
