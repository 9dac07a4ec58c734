package project

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zielinski.dev/folio-web/internal/config"
)

func testSettings(autoplay bool) config.Settings {
	s := config.DefaultSettings()
	s.DefaultAutoplay = autoplay
	return s
}

func TestIdentityPriorityOrder(t *testing.T) {
	r := Record{
		VideoID:   "vid",
		YouTubeID: "yt",
		VideoURL:  "https://www.youtube.com/watch?v=x",
		EmbedURL:  "https://example.com/embed",
		DemoLink:  "https://example.com/demo",
	}
	id, ok := Identity(r)
	require.True(t, ok)
	assert.Equal(t, "vid", id)

	r.VideoID = ""
	id, _ = Identity(r)
	assert.Equal(t, "yt", id)

	r.YouTubeID = ""
	id, _ = Identity(r)
	assert.Equal(t, "https://www.youtube.com/watch?v=x", id)

	r.VideoURL = ""
	id, _ = Identity(r)
	assert.Equal(t, "https://example.com/embed", id)

	r.EmbedURL = ""
	id, _ = Identity(r)
	assert.Equal(t, "https://example.com/demo", id)

	r.DemoLink = "  "
	_, ok = Identity(r)
	assert.False(t, ok)
}

func TestClassifyBareIDBuildsEmbedURL(t *testing.T) {
	plan := Classify(Record{ID: "a", VideoID: "abc123"}, testSettings(false))
	assert.Equal(t, ModeEmbed, plan.Mode)
	assert.Equal(t, "https://www.youtube.com/embed/abc123?rel=0&autoplay=0", plan.EmbedURL)
	assert.False(t, plan.FallbackOnTimeout)

	plan = Classify(Record{ID: "a", VideoID: "abc123"}, testSettings(true))
	assert.Equal(t, "https://www.youtube.com/embed/abc123?rel=0&autoplay=1", plan.EmbedURL)
}

func TestClassifyEmbedTemplateOverride(t *testing.T) {
	r := Record{
		ID:            "a",
		VideoID:       "abc123",
		EmbedTemplate: "https://www.youtube-nocookie.com/embed/{id}?rel=0",
	}
	plan := Classify(r, testSettings(false))
	assert.Equal(t, "https://www.youtube-nocookie.com/embed/abc123?rel=0", plan.EmbedURL)
}

func TestClassifyProviderURLEmbedsDirectly(t *testing.T) {
	for _, u := range []string{
		"https://www.youtube.com/embed/xyz",
		"https://youtu.be/xyz",
		"https://player.vimeo.com/video/123",
	} {
		plan := Classify(Record{ID: "a", EmbedURL: u}, testSettings(false))
		assert.Equal(t, ModeEmbed, plan.Mode, u)
		assert.Equal(t, u, plan.EmbedURL, u)
		assert.False(t, plan.FallbackOnTimeout, u)
	}
}

func TestClassifyPartnerHostArmsFallback(t *testing.T) {
	plan := Classify(Record{ID: "arcade", EmbedURL: "https://play.zielinski.dev/arcade/"}, testSettings(false))
	assert.Equal(t, ModeEmbed, plan.Mode)
	assert.True(t, plan.FallbackOnTimeout)
}

func TestClassifyUnknownHostDegrades(t *testing.T) {
	// URL outside every allowlist, no still image: nothing to show
	plan := Classify(Record{ID: "a", DemoLink: "https://example.com/thing"}, testSettings(false))
	assert.Equal(t, ModeNone, plan.Mode)
	assert.Empty(t, plan.EmbedURL)
	assert.False(t, plan.ShowDemo)

	// with a still image the card degrades to it
	plan = Classify(Record{ID: "a", DemoLink: "https://example.com/thing", Image: "a.png"}, testSettings(false))
	assert.Equal(t, ModeImage, plan.Mode)
	assert.Equal(t, "a.png", plan.Image)
	assert.False(t, plan.ShowDemo)
}

func TestClassifyNoMediaAtAll(t *testing.T) {
	plan := Classify(Record{ID: "bare"}, testSettings(false))
	assert.Equal(t, ModeNone, plan.Mode)

	plan = Classify(Record{ID: "pic", Image: "p.png"}, testSettings(false))
	assert.Equal(t, ModeImage, plan.Mode)
}

func TestFallbackRevealsDemoOnlyForDesignatedProject(t *testing.T) {
	// designated by fixed id
	plan := Fallback(Record{ID: "arcade", EmbedURL: "https://play.zielinski.dev/arcade/", Image: "a.png"})
	assert.Equal(t, ModeImage, plan.Mode)
	assert.True(t, plan.ShowDemo)
	assert.Equal(t, "https://play.zielinski.dev/arcade/", plan.DemoURL)

	// designated by partner host under another id
	plan = Fallback(Record{ID: "other", EmbedURL: "https://play.zielinski.dev/other/"})
	assert.True(t, plan.ShowDemo)

	// everything else stays hidden
	plan = Fallback(Record{ID: "misc", DemoLink: "https://example.com/x", Image: "m.png"})
	assert.Equal(t, ModeImage, plan.Mode)
	assert.False(t, plan.ShowDemo)
}

func TestNormalizeInvariants(t *testing.T) {
	got := Normalize([]Record{
		{},
		{ID: "named", Title: "Named"},
		{TitleKey: "some_key"},
	})
	require.Len(t, got, 3)
	assert.Equal(t, "p0", got[0].ID)
	assert.Equal(t, "Project", got[0].Title)
	assert.Equal(t, "named", got[1].ID)
	assert.Equal(t, "p2", got[2].ID)
	// a title key is a title source, no literal fallback needed
	assert.Empty(t, got[2].Title)
}

func TestFromDocument(t *testing.T) {
	doc := []any{
		map[string]any{"id": "a", "title": "A", "technologies": []any{"Go"}},
		"not an object",
		map[string]any{"id": "b", "videoId": "v"},
	}
	list, ok := FromDocument(doc)
	require.True(t, ok)
	require.Len(t, list, 2)
	assert.Equal(t, []string{"Go"}, list[0].Technologies)
	assert.Equal(t, "v", list[1].VideoID)

	_, ok = FromDocument(map[string]any{})
	assert.False(t, ok)
	_, ok = FromDocument(nil)
	assert.False(t, ok)
}
