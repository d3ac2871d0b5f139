package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	router.Get("/", h.listGrids)
	router.Get("/grids/{grid}", h.showGrid)

	router.Get("/api/settings/", h.getSettings)
	router.Get("/api/version/", h.getServerVersion)

	if prefix, ok := h.staticPrefix(); ok {
		files := http.StripPrefix(prefix, http.FileServer(http.Dir(h.staticDir)))
		router.Handle(prefix+"*", files)
	}

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

// staticPrefix reports the local path static files are served under. Static
// URLs pointing at another host are not served.
func (h *Handler) staticPrefix() (string, bool) {
	if h.staticDir == "" || !strings.HasPrefix(h.staticURL, "/") || strings.HasPrefix(h.staticURL, "//") {
		return "", false
	}

	prefix := h.staticURL
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return prefix, true
}
