package source

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/prepdeck/prepdeck/internal/question"
)

// Cache persists the last successfully fetched question set so the app
// keeps working when the remote source is unreachable.
type Cache interface {
	SaveSet(ctx context.Context, set question.Set) error
	LoadSet(ctx context.Context) (question.Set, error)
}

// Loader resolves the question set from the configured sources:
// remote spreadsheet export, local cache, local file.
type Loader struct {
	// RemoteURL is the published CSV (or JSON) export URL. Empty means
	// no remote source is configured.
	RemoteURL string

	// LocalPath is the bundled questions file used as the final fallback.
	LocalPath string

	// Cache is optional; nil disables offline caching.
	Cache Cache

	// Client is the HTTP client for remote fetches. Defaults to a client
	// with a modest timeout.
	Client *http.Client
}

// Result carries the loaded set plus a user-visible, non-fatal notice
// explaining any fallback that happened along the way.
type Result struct {
	Set    question.Set
	Notice string
}

// Load resolves the question set, trying remote, then cache, then the local
// file. Only total failure of every source returns an error.
func (l *Loader) Load(ctx context.Context) (Result, error) {
	if l.RemoteURL == "" {
		set, err := l.LoadLocal(ctx, l.LocalPath)
		if err != nil {
			return l.loadFromCache(ctx, "No remote sheet is configured and the local questions file could not be loaded; using cached questions.")
		}
		return Result{Set: set}, nil
	}

	set, err := l.LoadRemote(ctx, l.RemoteURL)
	if err == nil {
		if l.Cache != nil {
			// Best effort; a cache write failure never blocks a session.
			_ = l.Cache.SaveSet(ctx, set)
		}
		return Result{Set: set}, nil
	}

	if res, cacheErr := l.loadFromCache(ctx, "Couldn't load questions from the remote sheet; using the cached copy from the last successful fetch."); cacheErr == nil {
		return res, nil
	}

	set, localErr := l.LoadLocal(ctx, l.LocalPath)
	if localErr != nil {
		return Result{}, fmt.Errorf("load questions: remote: %w; local: %v", err, localErr)
	}
	return Result{
		Set:    set,
		Notice: "Couldn't load questions from the remote sheet; using the built-in local questions instead.",
	}, nil
}

func (l *Loader) loadFromCache(ctx context.Context, notice string) (Result, error) {
	if l.Cache == nil {
		return Result{}, fmt.Errorf("%w: no cache configured", ErrUnavailable)
	}
	set, err := l.Cache.LoadSet(ctx)
	if err != nil {
		return Result{}, err
	}
	if len(set) == 0 {
		return Result{}, fmt.Errorf("%w: cache is empty", ErrInvalid)
	}
	return Result{Set: set, Notice: notice}, nil
}

// LoadLocal reads and parses a questions file. The format is chosen by file
// extension, falling back to content sniffing.
func (l *Loader) LoadLocal(_ context.Context, path string) (question.Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrUnavailable, path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return ParseCSV(data)
	case ".json":
		return ParseJSON(data)
	default:
		return parseSniffed(data)
	}
}

// LoadRemote fetches and parses the published export at url. Network errors
// and non-success statuses are ErrUnavailable; a response that parses to
// zero usable questions is ErrInvalid.
func (l *Loader) LoadRemote(ctx context.Context, url string) (question.Set, error) {
	client := l.Client
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: unexpected status %s", ErrUnavailable, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", ErrUnavailable, err)
	}
	return parseSniffed(data)
}

// parseSniffed picks the parser from the first non-space byte: JSON
// documents start with '{' or '[', anything else is treated as CSV.
func parseSniffed(data []byte) (question.Set, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		return ParseJSON(data)
	}
	return ParseCSV(data)
}
