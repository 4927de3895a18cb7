// Footystats - Historical Football Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/footystats

package query

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// Parameter names with fixed meaning across resources. They are never treated
// as column filters.
const (
	ParamStartYear = "startYear"
	ParamEndYear   = "endYear"
	ParamSort      = "sort"
	ParamLimit     = "limit"
	ParamOffset    = "offset"
)

// FilterParam is one URL-decoded query parameter.
type FilterParam struct {
	Name  string
	Value string
}

// FilterSpec is an ordered list of filter parameters.
type FilterSpec []FilterParam

// FilterSpecFromValues converts URL query values into a FilterSpec.
// Keys are sorted so placeholder numbering is stable for a given request,
// only the first value of a repeated key is used, empty values are dropped
// and sort/limit/offset are excluded.
func FilterSpecFromValues(values url.Values) FilterSpec {
	keys := make([]string, 0, len(values))
	for k := range values {
		switch k {
		case ParamSort, ParamLimit, ParamOffset:
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	spec := make(FilterSpec, 0, len(keys))
	for _, k := range keys {
		v := values.Get(k)
		if v == "" {
			continue
		}
		spec = append(spec, FilterParam{Name: k, Value: v})
	}
	return spec
}

// Get returns the value of the named parameter or "".
func (f FilterSpec) Get(name string) string {
	for _, p := range f {
		if p.Name == name {
			return p.Value
		}
	}
	return ""
}

// ParseInt parses the leading integer of s the way form inputs are usually
// read: surrounding spaces are ignored and trailing text after the number is
// not an error. The second result is false when no integer is present.
func ParseInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	var n int
	if _, err := fmt.Sscanf(s, "%d", &n); err != nil {
		return 0, false
	}
	return n, true
}

// YearRange is an optional inclusive year range.
type YearRange struct {
	Start *int
	End   *int
}

// ParseYearRange reads startYear and endYear; values that are not integers
// leave the corresponding bound unset.
func ParseYearRange(start, end string) YearRange {
	var yr YearRange
	if n, ok := ParseInt(start); ok {
		yr.Start = &n
	}
	if n, ok := ParseInt(end); ok {
		yr.End = &n
	}
	return yr
}

// BuildFilter turns request parameters into a WHERE predicate for a resource.
//
// Rules, applied per parameter:
//  1. startYear/endYear parsing as integers compare (>= / <=) against the
//     resource's remapped year columns, or the allow-list's generic year column.
//     Otherwise they are dropped.
//  2. Allow-listed columns compare by kind: text columns use ILIKE with the
//     value wrapped in wildcards; integer columns use equality when the value
//     parses; boolean columns use equality for "true"/"false".
//  3. Everything else is ignored.
//
// Column names are quoted and come from the allow-list; every value is bound.
func BuildFilter(spec FilterSpec, allowed AllowList, resource Resource) *WhereBuilder {
	wb := NewWhereBuilder()
	yearCols, hasYear := YearColumnsFor(resource, allowed)

	for _, p := range spec {
		switch p.Name {
		case ParamStartYear:
			if n, ok := ParseInt(p.Value); ok && hasYear {
				wb.AddComparison(yearCols.Start, ">=", n)
			}
			continue
		case ParamEndYear:
			if n, ok := ParseInt(p.Value); ok && hasYear {
				wb.AddComparison(yearCols.End, "<=", n)
			}
			continue
		}

		col, ok := allowed.FilterColumn(p.Name)
		if !ok {
			continue
		}
		switch col.Kind {
		case KindText:
			wb.AddILike(col.Name, p.Value)
		case KindInteger:
			if n, ok := ParseInt(p.Value); ok {
				wb.AddComparison(col.Name, "=", n)
			}
		case KindBoolean:
			switch p.Value {
			case "true":
				wb.AddComparison(col.Name, "=", true)
			case "false":
				wb.AddComparison(col.Name, "=", false)
			}
		}
	}
	return wb
}
