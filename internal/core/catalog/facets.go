package catalog

import (
	"strings"

	perr "soda/internal/platform/errors"
)

// Version selects the discovery API version
type Version string

// V1 is the only published discovery API version
const V1 Version = "v1"

// Location selects the regional discovery API host
type Location int

const (
	// NorthAmerica is served from api.us.socrata.com
	NorthAmerica Location = iota
	// Europe is served from api.eu.socrata.com
	Europe
)

// Host returns the discovery API host for the region
func (l Location) Host() string {
	if l == Europe {
		return "api.eu.socrata.com"
	}
	return "api.us.socrata.com"
}

// String returns the region name
func (l Location) String() string {
	if l == Europe {
		return "europe"
	}
	return "north_america"
}

// ParseLocation accepts us/na/north_america and eu/europe
func ParseLocation(s string) (Location, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "us", "na", "north_america", "northamerica":
		return NorthAmerica, nil
	case "eu", "europe":
		return Europe, nil
	default:
		return NorthAmerica, perr.InvalidArgf("location %q must be us or eu", s)
	}
}

// Provenance filters by who published an asset
type Provenance string

// Provenance values
const (
	Official  Provenance = "official"
	Community Provenance = "community"
)

// Visibility filters by audience
type Visibility string

// Visibility values
const (
	Open     Visibility = "open"
	Internal Visibility = "internal"
)

// ApprovalStatus filters by the asset's routing and approval state
type ApprovalStatus string

// ApprovalStatus values
const (
	Approved ApprovalStatus = "approved"
	Pending  ApprovalStatus = "pending"
	Rejected ApprovalStatus = "rejected"
	NotReady ApprovalStatus = "not_ready"
)

// AssetType filters by asset kind (rendered as "only")
type AssetType string

// AssetType values
const (
	Apis           AssetType = "api"
	Calendars      AssetType = "calendar"
	Charts         AssetType = "chart"
	Datalenses     AssetType = "datalens"
	Datasets       AssetType = "dataset"
	Files          AssetType = "file"
	Filters        AssetType = "filter"
	Forms          AssetType = "form"
	Hrefs          AssetType = "href"
	Links          AssetType = "link"
	Maps           AssetType = "map"
	Measures       AssetType = "measure"
	Stories        AssetType = "story"
	Visualizations AssetType = "visualization"
)

// Flag is a tri-state filter; Unset leaves the facet out of the request
type Flag int

// Flag values
const (
	Unset Flag = iota
	Yes
	No
)

// param renders a set flag as true/false
func (f Flag) param() (string, bool) {
	switch f {
	case Yes:
		return "true", true
	case No:
		return "false", true
	default:
		return "", false
	}
}
