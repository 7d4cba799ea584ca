package content

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cfs-ui/cfs-docs/internal/docs"
)

// ContentPath is the endpoint serving the indexed navigation list.
const ContentPath = "/api/search-content"

// Response is the body of the content endpoint.
type Response struct {
	NavItems []docs.NavItem `json:"navItems,omitempty"`
	Success  bool           `json:"success"`
	Error    string         `json:"error,omitempty"`
}

// HTTPSource loads the navigation list from a running cfs-docs server.
type HTTPSource struct {
	BaseURL string
	Token   string
	Client  *http.Client
}

// NewHTTPSource returns a source for the server at baseURL.
func NewHTTPSource(baseURL, token string) *HTTPSource {
	return &HTTPSource{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Token:   token,
		Client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Load fetches the content endpoint. Transport errors, non-2xx statuses and
// unsuccessful bodies are all failures.
func (s *HTTPSource) Load(ctx context.Context) ([]docs.NavItem, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.BaseURL+ContentPath, nil)
	if err != nil {
		return nil, fmt.Errorf("build content request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if s.Token != "" {
		req.Header.Set("Authorization", "Bearer "+s.Token)
	}

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch content: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return nil, fmt.Errorf("read content response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch content: status %d", resp.StatusCode)
	}

	var payload Response
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode content response: %w", err)
	}
	if !payload.Success {
		msg := payload.Error
		if msg == "" {
			msg = "unsuccessful response"
		}
		return nil, fmt.Errorf("fetch content: %s", msg)
	}
	if err := docs.ValidateNav(payload.NavItems); err != nil {
		return nil, fmt.Errorf("fetch content: %w", err)
	}
	return payload.NavItems, nil
}
