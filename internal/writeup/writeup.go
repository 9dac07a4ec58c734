// Package writeup serves optional long-form project descriptions authored as
// markdown files with YAML front matter under content/writeups/<lang>/<id>.md.
// Rendered HTML is sanitized and cached; a missing file is not an error for
// the caller, the showcase just falls back to the project's inline text.
package writeup

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// ErrNotFound reports that no write-up exists for the project in any
// candidate language.
var ErrNotFound = errors.New("writeup: not found")

const defaultCacheTTL = 5 * time.Minute

// Writeup is a rendered project write-up.
type Writeup struct {
	ID        string
	Lang      string
	Title     string
	Summary   string
	HTML      string
	Tags      []string
	UpdatedAt time.Time
}

type frontMatter struct {
	Title   string   `yaml:"title"`
	Summary string   `yaml:"summary"`
	Lang    string   `yaml:"lang"`
	Tags    []string `yaml:"tags"`
	Updated string   `yaml:"updated"`
}

// Store renders and caches write-ups from a directory tree.
type Store struct {
	dir    string
	log    *zap.Logger
	md     goldmark.Markdown
	policy *bluemonday.Policy

	mu    sync.Mutex
	ttl   time.Duration
	cache map[string]cacheEntry
}

type cacheEntry struct {
	w       Writeup
	err     error
	expires time.Time
}

func NewStore(dir string, log *zap.Logger) *Store {
	return &Store{
		dir:    dir,
		log:    log,
		md:     goldmark.New(),
		policy: bluemonday.UGCPolicy(),
		ttl:    defaultCacheTTL,
		cache:  map[string]cacheEntry{},
	}
}

// SetCacheTTL overrides the cache duration, primarily for tests.
func (s *Store) SetCacheTTL(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if d <= 0 {
		d = time.Minute
	}
	s.ttl = d
}

// Invalidate drops every cached entry. Wired to the content watcher.
func (s *Store) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache = map[string]cacheEntry{}
}

// Get returns the write-up for a project, trying the requested language
// first and then "en". Returns ErrNotFound when no candidate file exists.
func (s *Store) Get(id, lang string) (Writeup, error) {
	id = sanitizeID(id)
	if id == "" {
		return Writeup{}, ErrNotFound
	}
	lang = strings.ToLower(strings.TrimSpace(lang))
	if lang == "" {
		lang = "en"
	}

	key := lang + "|" + id
	s.mu.Lock()
	if e, ok := s.cache[key]; ok && time.Now().Before(e.expires) {
		s.mu.Unlock()
		return e.w, e.err
	}
	s.mu.Unlock()

	w, err := s.load(id, lang)
	s.mu.Lock()
	s.cache[key] = cacheEntry{w: w, err: err, expires: time.Now().Add(s.ttl)}
	s.mu.Unlock()
	return w, err
}

func (s *Store) load(id, lang string) (Writeup, error) {
	candidates := []string{lang}
	if lang != "en" {
		candidates = append(candidates, "en")
	}
	for _, candidate := range candidates {
		w, err := s.read(id, candidate)
		if err == nil {
			return w, nil
		}
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, ErrNotFound) {
			continue
		}
		return Writeup{}, err
	}
	return Writeup{}, ErrNotFound
}

func (s *Store) read(id, lang string) (Writeup, error) {
	file := filepath.Join(s.dir, lang, id+".md")
	data, err := os.ReadFile(file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Writeup{}, ErrNotFound
		}
		return Writeup{}, err
	}

	fm, body := splitFrontMatter(string(data))
	front := frontMatter{}
	if strings.TrimSpace(fm) != "" {
		if err := yaml.Unmarshal([]byte(fm), &front); err != nil {
			s.log.Warn("writeup: bad front matter", zap.String("file", file), zap.Error(err))
		}
	}

	var buf bytes.Buffer
	if err := s.md.Convert([]byte(body), &buf); err != nil {
		return Writeup{}, err
	}
	html := string(s.policy.SanitizeBytes(buf.Bytes()))

	w := Writeup{
		ID:      id,
		Lang:    firstNonEmpty(strings.TrimSpace(front.Lang), lang),
		Title:   strings.TrimSpace(front.Title),
		Summary: strings.TrimSpace(front.Summary),
		HTML:    html,
		Tags:    front.Tags,
	}
	w.UpdatedAt = parseDate(front.Updated)
	if w.UpdatedAt.IsZero() {
		if info, err := os.Stat(file); err == nil {
			w.UpdatedAt = info.ModTime()
		}
	}
	return w, nil
}

func splitFrontMatter(input string) (string, string) {
	input = strings.TrimLeft(input, "\uFEFF")
	lines := strings.Split(input, "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != "---" {
		return "", input
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			fm := strings.Join(lines[1:i], "\n")
			body := strings.Join(lines[i+1:], "\n")
			return fm, strings.TrimLeft(body, "\n\r")
		}
	}
	return "", input
}

func parseDate(v string) time.Time {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02", "2006/01/02"} {
		if t, err := time.Parse(layout, v); err == nil {
			return t
		}
	}
	return time.Time{}
}

func sanitizeID(id string) string {
	id = strings.TrimSpace(strings.ToLower(id))
	if id == "" || strings.Contains(id, "..") || strings.ContainsAny(id, "/\\") {
		return ""
	}
	return id
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
