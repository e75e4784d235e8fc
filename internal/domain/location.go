// Package domain contains the core data types for the freight rates API.
// This package has no dependencies on the repo, service, or handler layers
// and is imported by all of them.
package domain

// Port is a single shipping endpoint identified by a short code (e.g. "CNSGH").
// ParentSlug is empty when the port does not belong to any region.
type Port struct {
	Code       string
	Name       string
	ParentSlug string
}

// Region is a named grouping of ports and child regions.
// Regions form a forest: ParentSlug is empty for a root region.
type Region struct {
	Slug       string
	Name       string
	ParentSlug string
}

// LocationKind tells whether a location identifier names a port or a region.
type LocationKind string

const (
	LocationPort   LocationKind = "port"
	LocationRegion LocationKind = "region"
)
