package domain

import (
	"bytes"
	"strconv"
)

// OptionalFloat is a numeric criterion that may be absent. It accepts JSON
// numbers and numeric strings; null, empty, or unparseable input leaves it
// unset rather than failing the request, so a bad value imposes no
// constraint instead of excluding everything.
type OptionalFloat struct {
	Value float64
	Set   bool
}

// UnmarshalJSON implements the lenient coercion policy. It never returns an
// error for scalar input.
func (o *OptionalFloat) UnmarshalJSON(data []byte) error {
	s := string(bytes.Trim(data, `"`))
	if s == "" || s == "null" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	o.Value, o.Set = v, true
	return nil
}

// OptionalInt is an integer criterion that may be absent, with the same
// coercion policy as OptionalFloat. Fractional input is truncated.
type OptionalInt struct {
	Value int
	Set   bool
}

// UnmarshalJSON implements the lenient coercion policy.
func (o *OptionalInt) UnmarshalJSON(data []byte) error {
	s := string(bytes.Trim(data, `"`))
	if s == "" || s == "null" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	o.Value, o.Set = int(v), true
	return nil
}

// FilterCriteria is a sparse set of optional search constraints. Absent
// fields impose no constraint; present fields are combined with AND.
type FilterCriteria struct {
	// Location is a case-insensitive substring match against the city.
	Location string `json:"location,omitempty"`
	// Type is an exact match.
	Type string `json:"type,omitempty"`
	// MinPrice and MaxPrice are inclusive bounds, independently optional.
	MinPrice OptionalFloat `json:"minPrice"`
	MaxPrice OptionalFloat `json:"maxPrice"`
	// Amenities is a subset test: every listed amenity must be present on
	// the candidate. Empty means no constraint.
	Amenities []string `json:"amenities,omitempty"`
	// Bedrooms and Bathrooms are inclusive lower bounds.
	Bedrooms  OptionalInt `json:"bedrooms"`
	Bathrooms OptionalInt `json:"bathrooms"`
}

// Defaults for page descriptors.
const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

// PageRequest is a 1-based page descriptor. Zero, negative, or unparseable
// values fall back to the defaults.
type PageRequest struct {
	Page     OptionalInt `json:"page"`
	PageSize OptionalInt `json:"pageSize"`
}

// Normalize returns the effective page and page size as positive integers.
func (p PageRequest) Normalize() (page, size int) {
	page, size = DefaultPage, DefaultPageSize
	if p.Page.Set && p.Page.Value > 0 {
		page = p.Page.Value
	}
	if p.PageSize.Set && p.PageSize.Value > 0 {
		size = p.PageSize.Value
	}
	return page, size
}

// Offset returns the number of records to skip for this page.
func (p PageRequest) Offset() int {
	page, size := p.Normalize()
	return (page - 1) * size
}

// PageResult is one page of matching properties. Total counts the full
// filtered set regardless of pagination; Items holds at most one page.
type PageResult struct {
	Total int         `json:"total"`
	Items []*Property `json:"properties"`
}
