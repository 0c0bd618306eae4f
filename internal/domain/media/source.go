// Package media models video playback sources and the bounded fallback
// chain clients walk when a source fails to decode: direct storage URL,
// then the streaming proxy, then a server-corrected URL, then failure.
package media

import (
	"net/url"
	"strings"
)

type SourceState string

const (
	StateDirect      SourceState = "DIRECT"
	StateProxied     SourceState = "PROXIED"
	StateServerFixed SourceState = "SERVER_FIXED"
	StateFailed      SourceState = "FAILED"
)

// Playback error codes reported by clients, mirroring HTMLMediaElement
// MediaError.code.
const (
	ErrCodeAborted        = 1
	ErrCodeNetwork        = 2
	ErrCodeDecode         = 3
	ErrCodeSrcUnsupported = 4
)

// Resolver decides the next playback source after a reported error.
// The chain is bounded: at most two fallbacks, no cycles.
type Resolver struct {
	ProxyPath string
}

// Transition maps (current state, error code) to the next state. Only
// decode and unsupported-source errors trigger a fallback; aborts and
// plain network errors are left for the client to retry in place.
func (r Resolver) Transition(state SourceState, errCode int) SourceState {
	if errCode != ErrCodeDecode && errCode != ErrCodeSrcUnsupported {
		return state
	}
	switch state {
	case StateDirect:
		return StateProxied
	case StateProxied:
		return StateServerFixed
	case StateServerFixed:
		return StateFailed
	default:
		return StateFailed
	}
}

// ProxiedURL rewrites a direct storage URL into its proxied equivalent.
func (r Resolver) ProxiedURL(raw string) string {
	path := r.ProxyPath
	if path == "" {
		path = "/api/v1/video-proxy"
	}
	return path + "?url=" + url.QueryEscape(raw)
}

// SourceFor returns the URL a client should load for the given state,
// or "" when the chain is exhausted.
func (r Resolver) SourceFor(state SourceState, directURL, fixedURL string) string {
	switch state {
	case StateDirect:
		return directURL
	case StateProxied:
		return r.ProxiedURL(directURL)
	case StateServerFixed:
		if strings.TrimSpace(fixedURL) != "" {
			return fixedURL
		}
		return r.ProxiedURL(directURL)
	default:
		return ""
	}
}
