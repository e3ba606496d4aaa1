// Package speech renders response text to audio files via a Coqui-style TTS
// server and serves them from a local directory. Rendering is best-effort
// plumbing around the conversation: a TTS failure never fails the turn.
//
// The server contract is the standard Coqui TTS REST API: synthesis is one
// GET /api/tts call with the text as a URL query parameter, returning the
// encoded audio in the response body.
package speech

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/NishaManivannan/Bakery-chatbot/pkg/ports"
)

const (
	ttsEndpoint = "/api/tts"

	// DefaultRetention is how long rendered files are kept before the
	// janitor purges them.
	DefaultRetention = 3600 * time.Second

	defaultTimeout = 30 * time.Second
)

// Compile-time interface assertion.
var _ ports.SpeechRenderer = (*Renderer)(nil)

// Renderer synthesises speech through an external TTS server and writes the
// result under audioDir. Returned URLs are urlPrefix + "/" + filename.
type Renderer struct {
	baseURL   string
	audioDir  string
	urlPrefix string
	retention time.Duration
	client    *http.Client
	now       func() time.Time
}

// Option is a functional option for configuring a Renderer.
type Option func(*Renderer)

// WithTimeout sets the HTTP timeout for synthesis calls. Default: 30 s.
func WithTimeout(d time.Duration) Option {
	return func(r *Renderer) {
		r.client.Timeout = d
	}
}

// WithRetention sets how long rendered files are kept. Default: 3600 s.
func WithRetention(d time.Duration) Option {
	return func(r *Renderer) {
		r.retention = d
	}
}

// WithURLPrefix sets the public path prefix for rendered files.
// Default: "/audio".
func WithURLPrefix(prefix string) Option {
	return func(r *Renderer) {
		r.urlPrefix = strings.TrimSuffix(prefix, "/")
	}
}

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(r *Renderer) {
		r.now = now
	}
}

// New creates a Renderer targeting the TTS server at baseURL and writing
// audio files into audioDir (created if missing).
func New(baseURL, audioDir string, opts ...Option) (*Renderer, error) {
	if err := os.MkdirAll(audioDir, 0o755); err != nil {
		return nil, fmt.Errorf("speech: create audio dir: %w", err)
	}
	r := &Renderer{
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		audioDir:  audioDir,
		urlPrefix: "/audio",
		retention: DefaultRetention,
		client:    &http.Client{Timeout: defaultTimeout},
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Render synthesises text and returns the URL path of the written file.
// Empty or whitespace-only text renders nothing and returns "".
func (r *Renderer) Render(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}

	q := url.Values{}
	q.Set("text", text)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+ttsEndpoint+"?"+q.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("speech: build request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("speech: synthesis request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("speech: synthesis returned status %d", resp.StatusCode)
	}

	filename := fmt.Sprintf("response_%s.wav", uuid.NewString())
	path := filepath.Join(r.audioDir, filename)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("speech: create audio file: %w", err)
	}
	if _, err := io.Copy(f, resp.Body); err != nil {
		f.Close()
		_ = os.Remove(path)
		return "", fmt.Errorf("speech: write audio file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("speech: close audio file: %w", err)
	}

	return r.urlPrefix + "/" + filename, nil
}

// AudioDir returns the directory rendered files are written to.
func (r *Renderer) AudioDir() string { return r.audioDir }

// PurgeStale removes rendered files older than the retention window and
// reports how many were removed.
func (r *Renderer) PurgeStale() (int, error) {
	entries, err := os.ReadDir(r.audioDir)
	if err != nil {
		return 0, fmt.Errorf("speech: read audio dir: %w", err)
	}

	now := r.now()
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if now.Sub(info.ModTime()) > r.retention {
			if err := os.Remove(filepath.Join(r.audioDir, entry.Name())); err == nil {
				removed++
			}
		}
	}
	return removed, nil
}

// StartJanitor purges stale files every interval until ctx is cancelled.
func (r *Renderer) StartJanitor(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				_, _ = r.PurgeStale()
			}
		}
	}()
}
