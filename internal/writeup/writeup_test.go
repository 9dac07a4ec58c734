package writeup

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeMarkdown(t *testing.T, dir, lang, id, body string) {
	t.Helper()
	path := filepath.Join(dir, lang, id+".md")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestGetRendersFrontMatterAndBody(t *testing.T) {
	dir := t.TempDir()
	writeMarkdown(t, dir, "en", "arcade", `---
title: Arcade Cabinet
summary: A browser arcade machine.
tags: [games, wasm]
updated: 2026-02-14
---

The **cabinet** runs in the browser.
`)
	s := NewStore(dir, zap.NewNop())
	w, err := s.Get("arcade", "en")
	require.NoError(t, err)
	assert.Equal(t, "Arcade Cabinet", w.Title)
	assert.Equal(t, "A browser arcade machine.", w.Summary)
	assert.Equal(t, []string{"games", "wasm"}, w.Tags)
	assert.Equal(t, 2026, w.UpdatedAt.Year())
	assert.Contains(t, w.HTML, "<strong>cabinet</strong>")
}

func TestGetWithoutFrontMatter(t *testing.T) {
	dir := t.TempDir()
	writeMarkdown(t, dir, "en", "plain", "Just a paragraph.\n")
	s := NewStore(dir, zap.NewNop())
	w, err := s.Get("plain", "en")
	require.NoError(t, err)
	assert.Empty(t, w.Title)
	assert.Contains(t, w.HTML, "Just a paragraph.")
}

func TestGetSanitizesMarkup(t *testing.T) {
	dir := t.TempDir()
	writeMarkdown(t, dir, "en", "sneaky", `Hello <script>alert(1)</script> <a href="javascript:alert(1)">x</a>
`)
	s := NewStore(dir, zap.NewNop())
	w, err := s.Get("sneaky", "en")
	require.NoError(t, err)
	assert.NotContains(t, w.HTML, "<script>")
	assert.NotContains(t, w.HTML, "javascript:")
	assert.Contains(t, w.HTML, "Hello")
}

func TestGetLanguageFallback(t *testing.T) {
	dir := t.TempDir()
	writeMarkdown(t, dir, "en", "arcade", "English only.\n")
	writeMarkdown(t, dir, "pl", "folio", "Tylko po polsku.\n")
	s := NewStore(dir, zap.NewNop())

	w, err := s.Get("arcade", "pl")
	require.NoError(t, err)
	assert.Equal(t, "en", w.Lang)

	w, err = s.Get("folio", "pl")
	require.NoError(t, err)
	assert.Equal(t, "pl", w.Lang)
}

func TestGetNotFound(t *testing.T) {
	s := NewStore(t.TempDir(), zap.NewNop())
	_, err := s.Get("ghost", "en")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetRejectsTraversalIDs(t *testing.T) {
	s := NewStore(t.TempDir(), zap.NewNop())
	for _, id := range []string{"", "../etc/passwd", `a\b`, "a/b", ".."} {
		_, err := s.Get(id, "en")
		assert.ErrorIs(t, err, ErrNotFound, id)
	}
}

func TestCacheServesUntilInvalidated(t *testing.T) {
	dir := t.TempDir()
	writeMarkdown(t, dir, "en", "arcade", "Before.\n")
	s := NewStore(dir, zap.NewNop())
	s.SetCacheTTL(time.Hour)

	w, err := s.Get("arcade", "en")
	require.NoError(t, err)
	assert.Contains(t, w.HTML, "Before.")

	writeMarkdown(t, dir, "en", "arcade", "After.\n")
	w, err = s.Get("arcade", "en")
	require.NoError(t, err)
	assert.Contains(t, w.HTML, "Before.", "cache should still answer")

	s.Invalidate()
	w, err = s.Get("arcade", "en")
	require.NoError(t, err)
	assert.Contains(t, w.HTML, "After.")
}

func TestExcerpt(t *testing.T) {
	html := "<p>The <strong>cabinet</strong> runs entirely in the browser and needs no install.</p>"
	got := Excerpt(html, 30)
	assert.NotContains(t, got, "<")
	assert.True(t, len([]rune(got)) <= 31, "got %q", got)
	assert.Contains(t, got, "…")

	short := Excerpt("<p>Tiny.</p>", 100)
	assert.Equal(t, "Tiny.", short)
}
