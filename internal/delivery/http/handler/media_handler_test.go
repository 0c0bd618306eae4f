package handler

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"talento-joven/internal/delivery/http/middleware"
	"talento-joven/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

func mediaPayload(size int) []byte {
	b := make([]byte, size)
	for i := range b {
		b[i] = byte(i % 251)
	}
	return b
}

func newMediaProxyFixture(t *testing.T, payload []byte) (*fiber.App, *httptest.Server) {
	t.Helper()

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "video/mp4")

		if rng := r.Header.Get("Range"); rng != "" {
			spec := strings.TrimPrefix(rng, "bytes=")
			parts := strings.SplitN(spec, "-", 2)
			start, _ := strconv.Atoi(parts[0])
			end, _ := strconv.Atoi(parts[1])
			if end >= len(payload) {
				end = len(payload) - 1
			}
			w.Header().Set("Content-Range", "bytes "+spec+"/"+strconv.Itoa(len(payload)))
			w.WriteHeader(http.StatusPartialContent)
			_, _ = w.Write(payload[start : end+1])
			return
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(payload)
	}))
	t.Cleanup(upstream.Close)

	host := strings.TrimPrefix(upstream.URL, "http://")
	uc := usecase.NewMediaUsecase([]string{host}, 5*time.Second, nil)

	app := fiber.New(fiber.Config{})
	app.Use(middleware.NewErrorMiddleware().Middleware())
	NewMediaHandler(uc).RegisterRoutes(app)
	return app, upstream
}

func TestMediaProxy_PipesFullBodyThrough(t *testing.T) {
	payload := mediaPayload(1 << 20)
	app, upstream := newMediaProxyFixture(t, payload)

	req := httptest.NewRequest("GET", "/video-proxy?url="+url.QueryEscape(upstream.URL+"/clip.mp4"), nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("proxy request error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "video/mp4" {
		t.Fatalf("expected upstream content type, got %q", ct)
	}
	if ar := resp.Header.Get("Accept-Ranges"); ar != "bytes" {
		t.Fatalf("expected Accept-Ranges bytes, got %q", ar)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if len(body) != len(payload) {
		t.Fatalf("expected %d bytes, got %d", len(payload), len(body))
	}
	if !bytes.Equal(body, payload) {
		t.Fatalf("proxied body does not match upstream payload")
	}
}

func TestMediaProxy_ForwardsRangeRequests(t *testing.T) {
	payload := mediaPayload(4096)
	app, upstream := newMediaProxyFixture(t, payload)

	req := httptest.NewRequest("GET", "/video-proxy?url="+url.QueryEscape(upstream.URL+"/clip.mp4"), nil)
	req.Header.Set("Range", "bytes=100-199")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("proxy request error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusPartialContent {
		t.Fatalf("expected 206, got %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if !bytes.Equal(body, payload[100:200]) {
		t.Fatalf("expected bytes 100-199 of the payload, got %d bytes", len(body))
	}
}

func TestMediaProxy_RejectsUnlistedHost(t *testing.T) {
	payload := mediaPayload(16)
	app, _ := newMediaProxyFixture(t, payload)

	req := httptest.NewRequest("GET", "/video-proxy?url="+url.QueryEscape("http://elsewhere.example.com/clip.mp4"), nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("proxy request error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403 for unlisted host, got %d", resp.StatusCode)
	}
}
