package cache

import (
	"bytes"
	"net/http"
)

// KeyFunc maps a request to the variant key its page is stored under.
type KeyFunc func(r *http.Request) string

// RequestURI keys pages by the raw request URI.
func RequestURI(r *http.Request) string {
	return r.URL.RequestURI()
}

type recorder struct {
	http.ResponseWriter
	status int
	body   bytes.Buffer
}

func (r *recorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *recorder) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

// Middleware serves GET requests from the cache and stores successful responses
// under key(r).
func (c *PageCache) Middleware(key KeyFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet {
				next.ServeHTTP(w, r)
				return
			}

			path, k := r.URL.Path, key(r)
			if page, ok := c.Get(path, k); ok {
				for name, v := range page.Header {
					w.Header()[name] = v
				}
				w.Header().Set("X-Cache", "HIT")
				w.WriteHeader(page.Status)
				_, _ = w.Write(page.Body)
				return
			}

			gen := c.Generation(path)
			rec := &recorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			if rec.status == http.StatusOK {
				header := w.Header().Clone()
				// encoding belongs to the outer writer, the recorded body is plain
				header.Del("Content-Encoding")
				c.Set(path, k, gen, Page{
					Status: rec.status,
					Header: header,
					Body:   rec.body.Bytes(),
				})
			}
		})
	}
}
