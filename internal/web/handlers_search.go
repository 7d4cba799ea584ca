package web

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/cfs-ui/cfs-docs/internal/docs"
	"github.com/cfs-ui/cfs-docs/internal/search"
)

type searchResponse struct {
	Query       string          `json:"query"`
	Results     []search.Result `json:"results"`
	Suggestions []string        `json:"suggestions,omitempty"`
	Loading     bool            `json:"loading,omitempty"`
}

type quickFilterResponse struct {
	Query string         `json:"query"`
	Items []docs.NavItem `json:"items"`
}

type pageResponse struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	HTML    string `json:"html"`
	Indexed bool   `json:"indexed"`
}

// runSearch searches the current items. While the first load is in flight
// it searches titles only, like the browser does.
func (s *Server) runSearch(query string) searchResponse {
	items, loading := s.content.NavItems()
	results := search.Search(query, items)
	if results == nil {
		results = []search.Result{}
	}

	resp := searchResponse{
		Query:   query,
		Results: results,
		Loading: loading,
	}
	if len(results) == 0 {
		resp.Suggestions = search.Suggest(query, items, s.cfg.SuggestLimit)
	}
	return resp
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.runSearch(r.URL.Query().Get("q")))
}

func (s *Server) handleQuickFilter(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	items, _ := s.content.NavItems()

	matches := search.QuickFilter(query, items, s.cfg.QuickFilterLimit)
	if matches == nil {
		matches = []docs.NavItem{}
	}
	writeJSON(w, http.StatusOK, quickFilterResponse{Query: query, Items: matches})
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	url := strings.TrimSpace(r.URL.Query().Get("url"))
	if url == "" {
		writeAPIError(w, http.StatusBadRequest, "INVALID_REQUEST", "url is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.cfg.LoadTimeout)
	defer cancel()
	items, err := s.content.Wait(ctx)
	if err != nil {
		writeAPIError(w, http.StatusServiceUnavailable, "CONTENT_UNAVAILABLE", "content is still loading")
		return
	}

	item, ok := docs.FindByURL(items, url)
	if !ok {
		writeAPIError(w, http.StatusNotFound, "NOT_FOUND", "page not found")
		return
	}

	html, err := docs.RenderHTML(item.ContentString())
	if err != nil {
		webLog.Error("page_render_failed", slog.String("url", url), slog.String("error", err.Error()))
		writeAPIError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to render page")
		return
	}

	writeJSON(w, http.StatusOK, pageResponse{
		Title:   item.Title,
		URL:     item.URL,
		HTML:    html,
		Indexed: item.HasContent(),
	})
}
