package source

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prepdeck/prepdeck/internal/question"
)

// memCache is an in-memory Cache for loader tests.
type memCache struct {
	set     question.Set
	saveErr error
	loadErr error
	saves   int
}

func (m *memCache) SaveSet(_ context.Context, set question.Set) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.set = set
	m.saves++
	return nil
}

func (m *memCache) LoadSet(_ context.Context) (question.Set, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	if m.set == nil {
		return question.Set{}, nil
	}
	return m.set, nil
}

const remoteCSV = "topic,question,option1,option2,correct_idx\nNetworking,q1,a,b,0\n"

func writeLocal(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadRemoteSuccessPopulatesCache(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(remoteCSV))
	}))
	defer server.Close()

	cache := &memCache{}
	l := &Loader{RemoteURL: server.URL, Cache: cache}

	res, err := l.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, res.Notice)
	assert.Equal(t, 1, res.Set.Len())
	assert.Equal(t, 1, cache.saves, "fresh fetch should refresh the cache")
}

func TestLoadFallsBackToCache(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	cached := question.Set{}
	cached.Add(question.Question{Text: "cached", Topic: "T", Options: []string{"a"}})
	l := &Loader{RemoteURL: server.URL, Cache: &memCache{set: cached}}

	res, err := l.Load(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, res.Notice, "cache fallback must be surfaced")
	assert.Equal(t, "cached", res.Set["T"][0].Text)
}

func TestLoadFallsBackToLocalFile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	local := writeLocal(t, "questions.json",
		`{"T": [{"question": "local q", "options": ["a", "b"], "correct_index": 0}]}`)

	// Cache empty, so the chain ends at the local file.
	l := &Loader{RemoteURL: server.URL, LocalPath: local, Cache: &memCache{}}

	res, err := l.Load(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, res.Notice)
	assert.Equal(t, "local q", res.Set["T"][0].Text)
}

func TestLoadNoRemoteConfigured(t *testing.T) {
	local := writeLocal(t, "questions.json",
		`{"T": [{"question": "q", "options": ["a"]}]}`)

	l := &Loader{LocalPath: local}
	res, err := l.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, res.Notice)
	assert.Equal(t, 1, res.Set.Len())
}

func TestLoadEverythingFails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	l := &Loader{
		RemoteURL: server.URL,
		LocalPath: filepath.Join(t.TempDir(), "missing.json"),
		Cache:     &memCache{loadErr: errors.New("corrupt")},
	}

	_, err := l.Load(context.Background())
	require.Error(t, err)
}

func TestLoadLocalFormats(t *testing.T) {
	t.Run("csv by extension", func(t *testing.T) {
		path := writeLocal(t, "q.csv", remoteCSV)
		set, err := (&Loader{}).LoadLocal(context.Background(), path)
		require.NoError(t, err)
		assert.Equal(t, 1, set.Len())
	})

	t.Run("sniffed json", func(t *testing.T) {
		path := writeLocal(t, "q.dat",
			`[{"topic": "T", "question": "q", "options": ["a"]}]`)
		set, err := (&Loader{}).LoadLocal(context.Background(), path)
		require.NoError(t, err)
		assert.Equal(t, 1, set.Len())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := (&Loader{}).LoadLocal(context.Background(), "/no/such/file")
		assert.True(t, errors.Is(err, ErrUnavailable))
	})
}

func TestLoadRemoteStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	_, err := (&Loader{}).LoadRemote(context.Background(), server.URL)
	assert.True(t, errors.Is(err, ErrUnavailable))
}
