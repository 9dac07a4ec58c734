package project

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Record is a normalized project entry. Every media-related field is
// optional; the classifier evaluates them in a fixed priority order.
type Record struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	TitleKey        string   `json:"titleKey"`
	Description     string   `json:"description"`
	DescKey         string   `json:"descKey"`
	LongDescription string   `json:"longDescription"`
	Image           string   `json:"image"`
	Role            string   `json:"role"`
	Technologies    []string `json:"technologies"`

	VideoID       string `json:"videoId"`
	YouTubeID     string `json:"youtubeId"`
	VideoURL      string `json:"videoUrl"`
	EmbedURL      string `json:"embedUrl"`
	EmbedTemplate string `json:"youtubeEmbedTemplate"`
	DemoLink      string `json:"demoLink"`
}

// FromDocument normalizes a parsed JSON array into typed records. Entries
// that aren't objects are dropped; a nil or non-array document yields
// (nil, false) so callers can fall back.
func FromDocument(doc any) ([]Record, bool) {
	arr, ok := doc.([]any)
	if !ok {
		return nil, false
	}
	out := make([]Record, 0, len(arr))
	for _, item := range arr {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		raw, err := json.Marshal(obj)
		if err != nil {
			continue
		}
		var r Record
		if err := json.Unmarshal(raw, &r); err != nil {
			continue
		}
		out = append(out, r)
	}
	return out, true
}

// Normalize guarantees the rendering invariants: every record has a
// non-empty display title and a stable identity. Records without an id get
// a positional fallback ("p0", "p1", ...).
func Normalize(list []Record) []Record {
	out := make([]Record, len(list))
	for i, r := range list {
		if strings.TrimSpace(r.ID) == "" {
			r.ID = fmt.Sprintf("p%d", i)
		}
		if strings.TrimSpace(r.Title) == "" && strings.TrimSpace(r.TitleKey) == "" {
			r.Title = "Project"
		}
		out[i] = r
	}
	return out
}

// ByID returns the record with the given id, or false.
func ByID(list []Record, id string) (Record, bool) {
	for _, r := range list {
		if r.ID == id {
			return r, true
		}
	}
	return Record{}, false
}
