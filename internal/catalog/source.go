package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// Source loads catalog snapshots for the engine. It is the storage
// collaborator of the matching pipeline: the engine only ever sees the
// entries it returns, never the transport.
type Source struct {
	httpClient *http.Client
}

// NewSource creates a Source with a sane request timeout.
func NewSource() *Source {
	return &Source{
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// NewSourceWithClient creates a Source with a custom HTTP client (for testing).
func NewSourceWithClient(client *http.Client) *Source {
	return &Source{httpClient: client}
}

// Load reads a catalog from location, which is either an http(s) URL or a
// local file path. The document must be a single JSON array of entries.
func (s *Source) Load(ctx context.Context, location string) ([]Entry, error) {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return s.loadURL(ctx, location)
	}
	return loadFile(location)
}

func (s *Source) loadURL(ctx context.Context, reqURL string) ([]Entry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching catalog: unexpected status %d from %s", resp.StatusCode, reqURL)
	}
	return decodeEntries(resp.Body)
}

func loadFile(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}
	defer f.Close()
	return decodeEntries(f)
}

// decodeEntries decodes exactly one JSON array of entries and rejects
// trailing content, so a truncated or concatenated document fails loudly.
func decodeEntries(r io.Reader) ([]Entry, error) {
	var entries []Entry
	dec := json.NewDecoder(r)
	if err := dec.Decode(&entries); err != nil {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}
	if err := dec.Decode(new(struct{})); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding catalog: trailing JSON content")
	}

	seen := make(map[string]string, len(entries))
	for i := range entries {
		if err := entries[i].Prepare(); err != nil {
			return nil, err
		}
		norm := entries[i].NormalizedName
		if other, dup := seen[norm]; dup {
			return nil, fmt.Errorf("decoding catalog: entries %q and %q share normalized name %q",
				other, entries[i].Name, norm)
		}
		seen[norm] = entries[i].Name
	}
	return entries, nil
}
