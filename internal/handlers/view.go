package handlers

import (
	"html/template"

	"zielinski.dev/folio-web/internal/nav"
	"zielinski.dev/folio-web/internal/seo"
	"zielinski.dev/folio-web/internal/showcase"
)

// PageData is the view model for the portfolio page. Every field is derived
// from the content bundle; templates render it without further lookups.
type PageData struct {
	Lang    string
	Theme   string
	Locales []LocaleOption

	Meta   seo.Meta
	JSONLD []template.JS
	Nav    []nav.RenderedItem

	Hero       HeroData
	Skills     []SkillItem
	Experience []TimelineItem
	Education  []TimelineItem
	Languages  []LanguageItem
	Contact    ContactData
	Projects   []ProjectCard
	Showcase   ShowcaseData
}

// LocaleOption is one entry of the language switcher.
type LocaleOption struct {
	Code   string
	Active bool
}

// HeroData renders the intro section.
type HeroData struct {
	Name     string
	Title    string
	Subtitle string
	Photo    string
	CVLabel  string
	CVHref   string
	GitHub   string
	Website  string
}

// SkillItem is one skill chip; Level is optional.
type SkillItem struct {
	Name  string
	Level string
}

// TimelineItem renders one experience or education entry.
type TimelineItem struct {
	Heading string
	Org     string
	Period  string
	Details []string
}

// LanguageItem is one spoken-language entry.
type LanguageItem struct {
	Name  string
	Level string
}

// ContactData renders the contact section from the profile.
type ContactData struct {
	Title string
	Text  string
	Email string
	Phone string
}

// ProjectCard is one entry of the project grid.
type ProjectCard struct {
	ID           string
	Title        string
	Description  string
	Image        string
	Role         string
	Technologies []string
	Active       bool
}

// ShowcaseData renders the showcase panel for the active project.
type ShowcaseData struct {
	ActiveID        string
	Title           string
	DescriptionHTML template.HTML
	DescriptionText string
	Summary         string

	Mode      string
	EmbedURL  string
	Image     string
	ShowDemo  bool
	DemoURL   string
	DemoLabel string

	Token  uint64
	Scroll bool
	Focus  showcase.FocusTarget

	// FallbackArmed tells the page to report the iframe load event so the
	// server can cancel the pending degrade.
	FallbackArmed bool
}
