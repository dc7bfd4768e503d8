package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// pathID extracts a positive int64 URL parameter registered under name.
func pathID(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, errors.New("invalid " + name + " url parameter")
	}

	return id, nil
}

// pageParam reads the optional "page" query parameter. A missing or
// malformed value falls back to the first page.
func pageParam(r *http.Request) int {
	raw := r.URL.Query().Get("page")
	if raw == "" {
		return 0
	}

	page, err := strconv.Atoi(raw)
	if err != nil || page < 0 {
		return 0
	}

	return page
}
