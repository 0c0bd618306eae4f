package usecase

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"talento-joven/internal/domain/media"
)

// ProxiedMedia is an upstream video response ready to stream through.
type ProxiedMedia struct {
	Body          io.ReadCloser
	ContentType   string
	ContentLength int64
	StatusCode    int
}

type MediaUsecase interface {
	Fetch(ctx context.Context, rawURL string, rangeHeader string) (ProxiedMedia, error)
	NextSource(state media.SourceState, errCode int, directURL, fixedURL string) (media.SourceState, string)
	FixURL(rawURL string) (string, bool)
}

// Media implements the streaming proxy and the playback fallback chain.
// The proxy only fetches from an allow-list of storage hosts so it
// cannot be used to relay arbitrary URLs.
type Media struct {
	client       *http.Client
	allowedHosts map[string]bool
	resolver     media.Resolver
	logger       *log.Logger
}

func NewMediaUsecase(allowedHosts []string, timeout time.Duration, logger *log.Logger) *Media {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	allowed := make(map[string]bool, len(allowedHosts))
	for _, h := range allowedHosts {
		h = strings.ToLower(strings.TrimSpace(h))
		if h != "" {
			allowed[h] = true
		}
	}
	return &Media{
		client:       &http.Client{Timeout: timeout},
		allowedHosts: allowed,
		resolver:     media.Resolver{},
		logger:       logger,
	}
}

func (u *Media) Fetch(ctx context.Context, rawURL string, rangeHeader string) (ProxiedMedia, error) {
	target, err := u.parseAllowed(rawURL)
	if err != nil {
		return ProxiedMedia{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return ProxiedMedia{}, ErrInvalidInput
	}
	if rangeHeader != "" {
		req.Header.Set("Range", rangeHeader)
	}

	resp, err := u.client.Do(req)
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("[Media] upstream fetch failed | host=%s err=%v", target.Host, err)
		}
		return ProxiedMedia{}, ErrInternal
	}
	if resp.StatusCode >= 400 {
		resp.Body.Close()
		if resp.StatusCode == http.StatusNotFound {
			return ProxiedMedia{}, ErrNotFound
		}
		return ProxiedMedia{}, ErrInternal
	}

	ct := resp.Header.Get("Content-Type")
	if ct == "" {
		ct = "video/mp4"
	}
	return ProxiedMedia{
		Body:          resp.Body,
		ContentType:   ct,
		ContentLength: resp.ContentLength,
		StatusCode:    resp.StatusCode,
	}, nil
}

// NextSource advances the fallback chain after a reported playback
// error and returns the URL the client should try next, "" when the
// chain is exhausted.
func (u *Media) NextSource(state media.SourceState, errCode int, directURL, fixedURL string) (media.SourceState, string) {
	next := u.resolver.Transition(state, errCode)
	if next == media.StateServerFixed && strings.TrimSpace(fixedURL) == "" {
		if fixed, ok := u.FixURL(directURL); ok {
			fixedURL = fixed
		}
	}
	return next, u.resolver.SourceFor(next, directURL, fixedURL)
}

// FixURL attempts a server-side correction of a broken storage URL:
// upgrade the scheme, strip tracking queries and collapse duplicate
// slashes in the path. Reports whether the result differs.
func (u *Media) FixURL(rawURL string) (string, bool) {
	parsed, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || parsed.Host == "" {
		return rawURL, false
	}

	fixed := *parsed
	fixed.Scheme = "https"
	fixed.RawQuery = ""
	fixed.Fragment = ""
	for strings.Contains(fixed.Path, "//") {
		fixed.Path = strings.ReplaceAll(fixed.Path, "//", "/")
	}

	out := fixed.String()
	return out, out != rawURL
}

func (u *Media) parseAllowed(rawURL string) (*url.URL, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return nil, ErrInvalidInput
	}

	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return nil, ErrInvalidInput
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, ErrInvalidInput
	}
	if len(u.allowedHosts) > 0 && !u.allowedHosts[strings.ToLower(parsed.Hostname())] {
		return nil, ErrForbidden
	}
	return parsed, nil
}
