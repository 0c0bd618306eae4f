package usecase

import (
	"strings"
	"testing"
)

func TestListCacheKey_NormalizesInput(t *testing.T) {
	a := ListCacheKey("offers", "  Desarrollador   Backend ", "active", 1, 10)
	b := ListCacheKey("offers", "desarrollador backend", "ACTIVE", 1, 10)
	if a != b {
		t.Fatalf("expected normalized inputs to share a key: %q vs %q", a, b)
	}
	if !strings.HasPrefix(a, "offers:list:") {
		t.Fatalf("unexpected key prefix: %q", a)
	}
}

func TestListCacheKey_DistinguishesPages(t *testing.T) {
	a := ListCacheKey("offers", "", "", 1, 10)
	b := ListCacheKey("offers", "", "", 2, 10)
	if a == b {
		t.Fatalf("expected distinct keys per page")
	}
}

func TestListCachePattern(t *testing.T) {
	if got := ListCachePattern("companies"); got != "companies:list:*" {
		t.Fatalf("unexpected pattern: %q", got)
	}
}
