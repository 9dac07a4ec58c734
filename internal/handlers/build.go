package handlers

import (
	"html/template"

	"zielinski.dev/folio-web/internal/content"
	"zielinski.dev/folio-web/internal/nav"
	"zielinski.dev/folio-web/internal/project"
	"zielinski.dev/folio-web/internal/seo"
	"zielinski.dev/folio-web/internal/showcase"
	"zielinski.dev/folio-web/internal/writeup"
)

// BuildPageData assembles the complete view model for one request.
func BuildPageData(b *content.Bundle, theme string, locales []string, siteURL string, v showcase.View, ws *writeup.Store) PageData {
	sc := BuildShowcaseData(b, v, ws)
	pd := PageData{
		Lang:       b.Locale,
		Theme:      theme,
		Locales:    localeOptions(locales, b.Locale),
		Nav:        nav.Build(b),
		Hero:       buildHero(b),
		Skills:     buildSkills(b),
		Experience: buildTimeline(b, "experience", []string{"role", "position", "title"}, []string{"company", "org"}),
		Education:  buildTimeline(b, "education", []string{"degree", "title"}, []string{"school", "institution"}),
		Languages:  buildLanguages(b),
		Contact:    buildContact(b),
		Projects:   BuildProjectCards(b, v.ActiveID),
		Showcase:   sc,
	}
	pd.Meta = buildMeta(b, sc, siteURL)
	pd.JSONLD = buildJSONLD(b, siteURL)
	return pd
}

// BuildProjectCards resolves titles and descriptions for the project grid.
// Every card keeps a non-empty title and a stable id.
func BuildProjectCards(b *content.Bundle, activeID string) []ProjectCard {
	cards := make([]ProjectCard, 0, len(b.Projects))
	for _, r := range b.Projects {
		cards = append(cards, ProjectCard{
			ID:           r.ID,
			Title:        projectTitle(b, r),
			Description:  projectDescription(b, r),
			Image:        r.Image,
			Role:         r.Role,
			Technologies: r.Technologies,
			Active:       r.ID == activeID,
		})
	}
	return cards
}

// BuildShowcaseData projects a showcase view onto the template model,
// preferring the markdown write-up over the inline long description.
func BuildShowcaseData(b *content.Bundle, v showcase.View, ws *writeup.Store) ShowcaseData {
	sc := ShowcaseData{
		ActiveID:      v.ActiveID,
		Title:         projectTitle(b, v.Project),
		Mode:          string(v.Plan.Mode),
		EmbedURL:      v.Plan.EmbedURL,
		Image:         v.Plan.Image,
		ShowDemo:      v.Plan.ShowDemo,
		DemoURL:       v.Plan.DemoURL,
		DemoLabel:     b.TextOr("open_demo", b.TextOr("view_demo", "Open demo")),
		Token:         v.Token,
		Scroll:        v.Scroll,
		Focus:         v.Focus,
		FallbackArmed: v.Plan.FallbackOnTimeout,
	}
	if v.ActiveID == "" {
		return sc
	}
	if ws != nil {
		// any failure falls through to the inline description
		if w, err := ws.Get(v.ActiveID, b.Locale); err == nil {
			sc.DescriptionHTML = template.HTML(w.HTML)
			sc.Summary = w.Summary
			if sc.Summary == "" {
				sc.Summary = writeup.Excerpt(w.HTML, 160)
			}
			return sc
		}
	}
	sc.DescriptionText = v.Project.LongDescription
	if sc.DescriptionText == "" {
		sc.DescriptionText = projectDescription(b, v.Project)
	}
	sc.Summary = sc.DescriptionText
	return sc
}

func projectTitle(b *content.Bundle, r project.Record) string {
	if r.TitleKey != "" {
		if t := b.Text(r.TitleKey); t != "" {
			return t
		}
	}
	if r.Title != "" {
		return r.Title
	}
	return "Project"
}

func projectDescription(b *content.Bundle, r project.Record) string {
	if r.DescKey != "" {
		if d := b.Text(r.DescKey); d != "" {
			return d
		}
	}
	return r.Description
}

func buildHero(b *content.Bundle) HeroData {
	h := HeroData{
		Name:     b.TextOr("name", b.Profile.FullName),
		Title:    b.Text("hero_title"),
		Subtitle: b.Text("hero_subtitle"),
		Photo:    b.TextOr("profile_photo", b.Profile.Photo),
		CVLabel:  b.Text("download_cv"),
		GitHub:   b.Profile.GitHub,
		Website:  b.Profile.Website,
	}
	// per-locale CV link wins over the profile's file reference
	if links := b.Section("download_cv_links"); links != nil {
		if href, ok := links[b.Locale].(string); ok && href != "" {
			h.CVHref = href
		}
	}
	if h.CVHref == "" {
		h.CVHref = b.Profile.CVFile
	}
	return h
}

func buildSkills(b *content.Bundle) []SkillItem {
	items := b.List("skills")
	out := make([]SkillItem, 0, len(items))
	for _, it := range items {
		switch v := it.(type) {
		case string:
			out = append(out, SkillItem{Name: v})
		case map[string]any:
			s := SkillItem{
				Name:  firstString(v, "name", "skill"),
				Level: firstString(v, "level"),
			}
			if s.Name != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

func buildTimeline(b *content.Bundle, key string, headingKeys, orgKeys []string) []TimelineItem {
	items := b.List(key)
	out := make([]TimelineItem, 0, len(items))
	for _, it := range items {
		obj, ok := it.(map[string]any)
		if !ok {
			continue
		}
		entry := TimelineItem{
			Heading: firstString(obj, headingKeys...),
			Org:     firstString(obj, orgKeys...),
			Period:  firstString(obj, "period", "dates", "years"),
			Details: stringItems(obj["details"]),
		}
		if entry.Heading == "" && entry.Org == "" {
			continue
		}
		out = append(out, entry)
	}
	return out
}

func buildLanguages(b *content.Bundle) []LanguageItem {
	items := b.List("languages")
	out := make([]LanguageItem, 0, len(items))
	for _, it := range items {
		switch v := it.(type) {
		case string:
			out = append(out, LanguageItem{Name: v})
		case map[string]any:
			l := LanguageItem{
				Name:  firstString(v, "name", "language"),
				Level: firstString(v, "level"),
			}
			if l.Name != "" {
				out = append(out, l)
			}
		}
	}
	return out
}

func buildContact(b *content.Bundle) ContactData {
	return ContactData{
		Title: b.Text("contact.contact_title"),
		Text:  b.Text("contact.contact_text"),
		Email: b.Profile.Email,
		Phone: b.Profile.Phone,
	}
}

func buildMeta(b *content.Bundle, sc ShowcaseData, siteURL string) seo.Meta {
	title := b.TextOr("name", b.Profile.FullName)
	if t := b.Text("hero_title"); t != "" && title != "" {
		title = title + " — " + t
	} else if t != "" {
		title = t
	}
	desc := b.Text("hero_subtitle")
	if desc == "" {
		desc = sc.Summary
	}
	return seo.Meta{
		Title:       title,
		Description: desc,
		Canonical:   siteURL,
		OG: seo.OpenGraph{
			Title:       title,
			Description: desc,
			Image:       b.TextOr("profile_photo", b.Profile.Photo),
			Type:        "website",
			URL:         siteURL,
		},
	}
}

// buildJSONLD returns marshaled schema.org payloads. template.JS is safe
// here: the content is json.Marshal output, never raw user input.
func buildJSONLD(b *content.Bundle, siteURL string) []template.JS {
	var out []template.JS
	if name := b.TextOr("name", b.Profile.FullName); name != "" {
		out = append(out, template.JS(seo.JSON(seo.Person(
			name,
			b.Profile.Website,
			b.Profile.Email,
			b.TextOr("profile_photo", b.Profile.Photo),
			[]string{b.Profile.GitHub},
		))))
		out = append(out, template.JS(seo.JSON(seo.WebSite(name, siteURL))))
	}
	return out
}

func localeOptions(locales []string, active string) []LocaleOption {
	seen := false
	out := make([]LocaleOption, 0, len(locales)+1)
	for _, code := range locales {
		out = append(out, LocaleOption{Code: code, Active: code == active})
		if code == active {
			seen = true
		}
	}
	// a locale chosen without a strings document still shows as active
	if !seen && active != "" {
		out = append(out, LocaleOption{Code: active, Active: true})
	}
	return out
}

func firstString(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if v, ok := m[k].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

func stringItems(v any) []string {
	arr, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(arr))
	for _, it := range arr {
		if s, ok := it.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
