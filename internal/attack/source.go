package attack

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	readability "github.com/go-shiori/go-readability"

	"github.com/frherrer/atomic-docgen/internal/domain"
)

// Source supplies the supplementary "Description from ATT&CK" text for a
// technique. A failing source is never fatal: the caller logs the error and
// renders the document without the description block.
type Source interface {
	Description(ctx context.Context, techniqueID string) (string, error)
}

// FileSource reads the description from a local text file.
type FileSource struct {
	Path string
}

func (s *FileSource) Description(_ context.Context, _ string) (string, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return "", domain.NewError("load", s.Path, "failed to read description file", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// MITRESource fetches the technique page from the MITRE ATT&CK site and
// extracts its readable text.
type MITRESource struct {
	BaseURL string // default https://attack.mitre.org/techniques
	Client  *http.Client
}

// NewMITRESource creates a MITRESource with the given request timeout.
func NewMITRESource(baseURL string, timeout time.Duration) *MITRESource {
	if baseURL == "" {
		baseURL = "https://attack.mitre.org/techniques"
	}
	return &MITRESource{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: timeout},
	}
}

func (s *MITRESource) Description(ctx context.Context, techniqueID string) (string, error) {
	pageURL := fmt.Sprintf("%s/%s/", strings.TrimRight(s.BaseURL, "/"), techniqueID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", domain.NewError("load", pageURL, "failed to build request", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := s.Client.Do(req)
	if err != nil {
		return "", domain.NewError("load", pageURL, "failed to fetch technique page", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", domain.NewError("load", pageURL,
			fmt.Sprintf("unexpected status %d fetching technique page", resp.StatusCode), nil)
	}

	parsed, err := url.Parse(pageURL)
	if err != nil {
		return "", domain.NewError("load", pageURL, "invalid page URL", err)
	}

	article, err := readability.FromReader(resp.Body, parsed)
	if err != nil {
		return "", domain.NewError("load", pageURL, "failed to extract page text", err)
	}
	return strings.TrimSpace(article.TextContent), nil
}
