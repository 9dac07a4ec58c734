package project

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"zielinski.dev/folio-web/internal/config"
)

// Mode describes how a project's media is presented.
type Mode string

const (
	ModeEmbed Mode = "embed"
	ModeImage Mode = "image"
	ModeNone  Mode = "none"
)

// MediaPlan is the resolved decision for a project's media surface: what to
// embed or show, and whether the external "open demo" affordance appears.
type MediaPlan struct {
	Mode     Mode
	EmbedURL string
	Image    string
	ShowDemo bool
	DemoURL  string

	// FallbackOnTimeout marks embeds from hosts outside the video-provider
	// allowlist; if such an embed never signals load, the showcase degrades
	// it after a fixed timeout.
	FallbackOnTimeout bool
}

// providerHosts is the fixed allowlist of hosts that are always safe to
// embed directly.
var providerHosts = map[string]struct{}{
	"youtube.com":              {},
	"www.youtube.com":          {},
	"youtu.be":                 {},
	"www.youtube-nocookie.com": {},
	"player.vimeo.com":         {},
}

// partnerHosts extends the embed allowlist for the one partner site that
// hosts a playable demo. Deliberately narrow; this is not a general
// external-link feature.
var partnerHosts = map[string]struct{}{
	"play.zielinski.dev": {},
}

// demoProjectID identifies the single project whose external demo gets the
// "open demo" affordance when its embed falls back.
const demoProjectID = "arcade"

const defaultEmbedPattern = "https://www.youtube.com/embed/%s?rel=0&autoplay=%d"

var schemePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.-]*://`)

// identityRules is the ordered accessor list for a project's raw media
// identity: explicit id fields first, then generic embed URLs, then the
// demo link.
var identityRules = []func(Record) string{
	func(r Record) string { return r.VideoID },
	func(r Record) string { return r.YouTubeID },
	func(r Record) string { return r.VideoURL },
	func(r Record) string { return r.EmbedURL },
	func(r Record) string { return r.DemoLink },
}

// Identity returns the first non-empty media identity for a record.
func Identity(r Record) (string, bool) {
	for _, rule := range identityRules {
		if v := strings.TrimSpace(rule(r)); v != "" {
			return v, true
		}
	}
	return "", false
}

// Classify computes the MediaPlan for a record. It is a pure function of the
// record, the settings, and the fixed allowlists; side effects belong to the
// showcase controller.
func Classify(r Record, s config.Settings) MediaPlan {
	identity, ok := Identity(r)
	if !ok {
		return stillPlan(r)
	}

	if !schemePattern.MatchString(identity) {
		// bare video id
		return MediaPlan{
			Mode:     ModeEmbed,
			EmbedURL: embedURLFor(identity, r, s),
			Image:    r.Image,
			DemoURL:  r.DemoLink,
		}
	}

	u, err := url.Parse(identity)
	if err != nil {
		return stillPlan(r)
	}
	host := strings.ToLower(u.Hostname())
	if _, ok := providerHosts[host]; ok {
		return MediaPlan{
			Mode:     ModeEmbed,
			EmbedURL: identity,
			Image:    r.Image,
			DemoURL:  r.DemoLink,
		}
	}
	if _, ok := partnerHosts[host]; ok {
		return MediaPlan{
			Mode:              ModeEmbed,
			EmbedURL:          identity,
			Image:             r.Image,
			DemoURL:           demoURLFor(r, identity),
			FallbackOnTimeout: true,
		}
	}
	// any other URL is not embeddable
	return stillPlan(r)
}

// Fallback is the degraded plan applied when an embed never signals load:
// the media surface clears, the still image shows when present, and the
// external affordance is revealed only for the designated demo project.
func Fallback(r Record) MediaPlan {
	plan := stillPlan(r)
	if IsDesignatedDemo(r) {
		plan.ShowDemo = true
		if plan.DemoURL == "" {
			if id, ok := Identity(r); ok && schemePattern.MatchString(id) {
				plan.DemoURL = id
			}
		}
	}
	return plan
}

// IsDesignatedDemo reports whether the record is the one project allowed to
// surface an external "open demo" control, matched by fixed id or by its
// identity URL pointing at the partner host.
func IsDesignatedDemo(r Record) bool {
	if r.ID == demoProjectID {
		return true
	}
	id, ok := Identity(r)
	if !ok || !schemePattern.MatchString(id) {
		return false
	}
	u, err := url.Parse(id)
	if err != nil {
		return false
	}
	_, ok = partnerHosts[strings.ToLower(u.Hostname())]
	return ok
}

func stillPlan(r Record) MediaPlan {
	plan := MediaPlan{Mode: ModeNone, Image: r.Image, DemoURL: r.DemoLink}
	if strings.TrimSpace(r.Image) != "" {
		plan.Mode = ModeImage
	}
	return plan
}

func embedURLFor(id string, r Record, s config.Settings) string {
	if tmpl := strings.TrimSpace(r.EmbedTemplate); tmpl != "" {
		return strings.ReplaceAll(tmpl, "{id}", id)
	}
	autoplay := 0
	if s.DefaultAutoplay {
		autoplay = 1
	}
	return fmt.Sprintf(defaultEmbedPattern, id, autoplay)
}

func demoURLFor(r Record, identity string) string {
	if strings.TrimSpace(r.DemoLink) != "" {
		return r.DemoLink
	}
	return identity
}
