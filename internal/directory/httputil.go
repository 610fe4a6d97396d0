package directory

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

const (
	cacheMaxAge = 300
	cacheSWR    = 3600
)

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(v)
}

func writeJSONStatus(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func addCacheHeaders(w http.ResponseWriter, maxAgeSeconds, swrSeconds int) {
	w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d, stale-while-revalidate=%d", maxAgeSeconds, swrSeconds))
	w.Header().Set("Vary", "Accept-Encoding")
}

// catalogETag tags 200 responses with the dataset fingerprint and answers 304
// to a matching If-None-Match. Responses only depend on the dataset and the
// URL. Error responses are marked no-store.
func (s *Service) catalogETag(next http.Handler) http.Handler {
	etag := `"` + s.cat.Fingerprint() + `"`
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if matchETag(r.Header.Get("If-None-Match"), etag) {
			w.Header().Set("ETag", etag)
			addCacheHeaders(w, cacheMaxAge, cacheSWR)
			w.WriteHeader(http.StatusNotModified)
			return
		}
		next.ServeHTTP(&cacheWriter{ResponseWriter: w, etag: etag}, r)
	})
}

// cacheWriter sets the cache headers once the status is known.
type cacheWriter struct {
	http.ResponseWriter
	etag        string
	wroteHeader bool
}

func (cw *cacheWriter) WriteHeader(status int) {
	if !cw.wroteHeader {
		cw.wroteHeader = true
		if status == http.StatusOK {
			cw.Header().Set("ETag", cw.etag)
			addCacheHeaders(cw, cacheMaxAge, cacheSWR)
		} else {
			cw.Header().Set("Cache-Control", "no-store")
		}
	}
	cw.ResponseWriter.WriteHeader(status)
}

func (cw *cacheWriter) Write(b []byte) (int, error) {
	if !cw.wroteHeader {
		cw.WriteHeader(http.StatusOK)
	}
	return cw.ResponseWriter.Write(b)
}

func matchETag(header, etag string) bool {
	for _, tag := range strings.Split(header, ",") {
		tag = strings.TrimSpace(tag)
		if tag == "*" || strings.TrimPrefix(tag, "W/") == etag {
			return true
		}
	}
	return false
}

// limitParam reads a positive ?limit=, falling back to def.
func limitParam(r *http.Request, def int) (int, error) {
	s := r.URL.Query().Get("limit")
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid limit %q", s)
	}
	return n, nil
}

func truncate[T any](s []T, n int) []T {
	if len(s) > n {
		return s[:n]
	}
	return s
}
