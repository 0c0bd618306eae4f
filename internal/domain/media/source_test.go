package media

import "testing"

func TestResolver_TransitionChainIsBounded(t *testing.T) {
	r := Resolver{}

	st := StateDirect
	st = r.Transition(st, ErrCodeDecode)
	if st != StateProxied {
		t.Fatalf("direct + decode error must fall back to proxy, got %s", st)
	}
	st = r.Transition(st, ErrCodeDecode)
	if st != StateServerFixed {
		t.Fatalf("proxied + decode error must ask for a server fix, got %s", st)
	}
	st = r.Transition(st, ErrCodeDecode)
	if st != StateFailed {
		t.Fatalf("server-fixed + decode error must terminate, got %s", st)
	}
	if r.Transition(st, ErrCodeDecode) != StateFailed {
		t.Fatalf("failed is terminal")
	}
}

func TestResolver_NonDecodeErrorsDoNotAdvance(t *testing.T) {
	r := Resolver{}
	for _, code := range []int{ErrCodeAborted, ErrCodeNetwork, 0, 99} {
		if got := r.Transition(StateDirect, code); got != StateDirect {
			t.Fatalf("code %d must not advance the chain, got %s", code, got)
		}
	}
}

func TestResolver_SourceFor(t *testing.T) {
	r := Resolver{ProxyPath: "/api/v1/video-proxy"}
	direct := "https://storage.example.com/videos/a.mp4"

	if got := r.SourceFor(StateDirect, direct, ""); got != direct {
		t.Fatalf("unexpected direct source %q", got)
	}

	proxied := r.SourceFor(StateProxied, direct, "")
	if proxied != "/api/v1/video-proxy?url=https%3A%2F%2Fstorage.example.com%2Fvideos%2Fa.mp4" {
		t.Fatalf("unexpected proxied source %q", proxied)
	}

	if got := r.SourceFor(StateServerFixed, direct, "https://cdn.example.com/fixed.mp4"); got != "https://cdn.example.com/fixed.mp4" {
		t.Fatalf("server-fixed must use the corrected URL, got %q", got)
	}
	if got := r.SourceFor(StateServerFixed, direct, ""); got != proxied {
		t.Fatalf("missing corrected URL must fall back to the proxy, got %q", got)
	}

	if got := r.SourceFor(StateFailed, direct, ""); got != "" {
		t.Fatalf("failed state has no source, got %q", got)
	}
}
