package content

import (
	"encoding/json"
	"os"

	"go.uber.org/zap"
)

// LoadDocument reads and parses a JSON document from disk. Any failure —
// missing file, unreadable, malformed body — is logged as a warning and
// reported as a miss; callers must fall back. A single attempt, no retries.
func LoadDocument(path string, log *zap.Logger) (any, bool) {
	raw, err := os.ReadFile(path)
	if err != nil {
		log.Warn("content: document unavailable", zap.String("path", path), zap.Error(err))
		return nil, false
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		log.Warn("content: document malformed", zap.String("path", path), zap.Error(err))
		return nil, false
	}
	return doc, true
}

// AsObject narrows a parsed document to an object, the only shape check the
// loader boundary performs for keyed documents.
func AsObject(doc any) (map[string]any, bool) {
	m, ok := doc.(map[string]any)
	return m, ok
}

// AsArray narrows a parsed document to an array.
func AsArray(doc any) ([]any, bool) {
	a, ok := doc.([]any)
	return a, ok
}
