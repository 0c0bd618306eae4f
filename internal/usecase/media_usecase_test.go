package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"talento-joven/internal/domain/media"
)

func TestMedia_Fetch_RejectsDisallowedHost(t *testing.T) {
	uc := NewMediaUsecase([]string{"storage.talentojoven.bo"}, time.Second, nil)

	_, err := uc.Fetch(context.Background(), "https://evil.example.com/video.mp4", "")
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestMedia_Fetch_RejectsMalformedURL(t *testing.T) {
	uc := NewMediaUsecase(nil, time.Second, nil)

	for _, raw := range []string{"", "not-a-url", "ftp://host/video.mp4"} {
		if _, err := uc.Fetch(context.Background(), raw, ""); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for %q, got %v", raw, err)
		}
	}
}

func TestMedia_FixURL(t *testing.T) {
	uc := NewMediaUsecase(nil, time.Second, nil)

	fixed, changed := uc.FixURL("http://storage.example.com//videos//clip.mp4?tracking=1")
	if !changed {
		t.Fatalf("expected URL to change")
	}
	if fixed != "https://storage.example.com/videos/clip.mp4" {
		t.Fatalf("unexpected fixed URL: %q", fixed)
	}

	if _, changed := uc.FixURL("https://storage.example.com/clip.mp4"); changed {
		t.Fatalf("already-clean URL should not change")
	}
}

func TestMedia_NextSource_WalksFallbackChain(t *testing.T) {
	uc := NewMediaUsecase(nil, time.Second, nil)
	direct := "https://storage.example.com/clip.mp4"

	state, src := uc.NextSource(media.StateDirect, media.ErrCodeDecode, direct, "")
	if state != media.StateProxied {
		t.Fatalf("expected PROXIED, got %s", state)
	}
	if src == "" || src == direct {
		t.Fatalf("expected proxied URL, got %q", src)
	}

	state, src = uc.NextSource(state, media.ErrCodeSrcUnsupported, direct, "")
	if state != media.StateServerFixed {
		t.Fatalf("expected SERVER_FIXED, got %s", state)
	}
	if src == "" {
		t.Fatalf("expected a server-fixed URL")
	}

	state, src = uc.NextSource(state, media.ErrCodeDecode, direct, "")
	if state != media.StateFailed || src != "" {
		t.Fatalf("expected exhausted chain, got %s %q", state, src)
	}
}

func TestMedia_NextSource_IgnoresTransientErrors(t *testing.T) {
	uc := NewMediaUsecase(nil, time.Second, nil)
	direct := "https://storage.example.com/clip.mp4"

	state, src := uc.NextSource(media.StateDirect, media.ErrCodeNetwork, direct, "")
	if state != media.StateDirect || src != direct {
		t.Fatalf("network error should not advance the chain, got %s %q", state, src)
	}
}
