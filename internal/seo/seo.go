package seo

// Meta holds the head metadata rendered into the page shell.
type Meta struct {
	Title       string
	Description string
	Canonical   string
	OG          OpenGraph
}

// OpenGraph carries the subset of og: tags the layout emits.
type OpenGraph struct {
	Title       string
	Description string
	Image       string
	Type        string
	URL         string
}
