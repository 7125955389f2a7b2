package controller

import (
	"net/http"
	"net/http/pprof"
	"strings"
)

// PprofMux returns an http.ServeMux serving the net/http/pprof handlers under
// prefix, e.g. "/debug/pprof/". Named profiles (heap, goroutine, ...) are
// served by the index handler, which only understands the /debug/pprof/ path.
func PprofMux(prefix string) *http.ServeMux {
	prefix = "/" + strings.Trim(prefix, "/") + "/"
	mux := http.NewServeMux()

	mux.HandleFunc(prefix, func(w http.ResponseWriter, r *http.Request) {
		r2 := r.Clone(r.Context())
		r2.URL.Path = "/debug/pprof/" + strings.TrimPrefix(r.URL.Path, prefix)
		pprof.Index(w, r2)
	})
	mux.HandleFunc(prefix+"cmdline", pprof.Cmdline)
	mux.HandleFunc(prefix+"profile", pprof.Profile)
	mux.HandleFunc(prefix+"symbol", pprof.Symbol)
	mux.HandleFunc(prefix+"trace", pprof.Trace)

	return mux
}
