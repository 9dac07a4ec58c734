package middleware

import (
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// AssetsWithCache serves static files with long-lived cache headers and weak
// ETags. ETags are computed lazily per file and memoized for the process
// lifetime; the asset pipeline fingerprints nothing, so a redeploy is the
// cache-busting event.
func AssetsWithCache(dir string) http.Handler {
	var etags sync.Map // url path -> etag
	fileServer := http.FileServer(http.Dir(dir))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Accept-Encoding")
		w.Header().Set("Cache-Control", "public, max-age=604800, stale-while-revalidate=86400")

		rel := strings.TrimPrefix(r.URL.Path, "/")
		if et := assetETag(&etags, dir, rel); et != "" {
			w.Header().Set("ETag", et)
			if inm := r.Header.Get("If-None-Match"); inm == et {
				w.WriteHeader(http.StatusNotModified)
				return
			}
		}
		fileServer.ServeHTTP(w, r)
	})
}

func assetETag(cache *sync.Map, dir, rel string) string {
	if v, ok := cache.Load(rel); ok {
		return v.(string)
	}
	if strings.Contains(rel, "..") {
		return ""
	}
	data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(rel)))
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(data)
	et := `W/"` + hex.EncodeToString(sum[:]) + `"`
	cache.Store(rel, et)
	return et
}
