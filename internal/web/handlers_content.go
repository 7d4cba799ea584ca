package web

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cfs-ui/cfs-docs/internal/content"
)

// loadFailedMessage is the fixed error body of the content endpoint.
const loadFailedMessage = "Failed to load search content"

// handleSearchContent returns the indexed navigation list. A degraded load
// still succeeds with the bare list; only a wait that never completes is
// a failure.
func (s *Server) handleSearchContent(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), s.cfg.LoadTimeout)
	defer cancel()

	items, err := s.content.Wait(ctx)
	if err != nil {
		webLog.Warn("search_content_failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, content.Response{
			Success: false,
			Error:   loadFailedMessage,
		})
		return
	}

	writeJSON(w, http.StatusOK, content.Response{
		NavItems: items,
		Success:  true,
	})
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiErrorResponse struct {
	Error apiError `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeAPIError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, apiErrorResponse{
		Error: apiError{
			Code:    code,
			Message: message,
		},
	})
}
