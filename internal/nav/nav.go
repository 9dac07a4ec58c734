package nav

import (
	"strings"

	"zielinski.dev/folio-web/internal/content"
)

// Section describes one anchor target on the single-page layout.
type Section struct {
	Anchor   string // e.g. "projects"
	LabelKey string // strings-document key for the visible label
}

// RenderedItem is a view model for templates.
type RenderedItem struct {
	Href  string
	Label string
}

// Sections is the primary navigation definition, in page order.
var Sections = []Section{
	{Anchor: "hero", LabelKey: "nav_home"},
	{Anchor: "skills", LabelKey: "nav_skills"},
	{Anchor: "experience", LabelKey: "nav_experience"},
	{Anchor: "education", LabelKey: "nav_education"},
	{Anchor: "projects", LabelKey: "nav_projects"},
	{Anchor: "contact", LabelKey: "nav_contact"},
}

// Build renders the anchor navigation with labels resolved from the bundle.
// A missing label falls back to a prettified anchor name so the nav never
// renders an empty link.
func Build(b *content.Bundle) []RenderedItem {
	items := make([]RenderedItem, 0, len(Sections))
	for _, s := range Sections {
		label := b.Text(s.LabelKey)
		if label == "" {
			label = prettify(s.Anchor)
		}
		items = append(items, RenderedItem{
			Href:  "#" + s.Anchor,
			Label: label,
		})
	}
	return items
}

func prettify(anchor string) string {
	if anchor == "" {
		return anchor
	}
	return strings.ToUpper(anchor[:1]) + anchor[1:]
}
