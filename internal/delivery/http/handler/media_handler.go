package handler

import (
	"talento-joven/internal/delivery/http/middleware"
	"talento-joven/internal/domain/media"
	"talento-joven/internal/pkg/response"
	"talento-joven/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type MediaHandler struct {
	uc usecase.MediaUsecase
}

func NewMediaHandler(uc usecase.MediaUsecase) *MediaHandler {
	return &MediaHandler{uc: uc}
}

func (h *MediaHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/video-proxy", h.Proxy)
	r.Post("/media/resolve", h.Resolve)
	r.Post("/media/validate", h.Validate)
}

// Proxy streams an allow-listed storage video through the server,
// forwarding Range requests so seeking keeps working. The upstream
// body is piped, never buffered; fasthttp closes it after the
// response is written.
func (h *MediaHandler) Proxy(c fiber.Ctx) error {
	out, err := h.uc.Fetch(c.Context(), c.Query("url"), c.Get("Range"))
	if err != nil {
		return mapUsecaseError(err)
	}

	c.Set(fiber.HeaderContentType, out.ContentType)
	c.Set("Accept-Ranges", "bytes")
	c.Status(out.StatusCode)

	if out.ContentLength > 0 {
		return c.SendStream(out.Body, int(out.ContentLength))
	}
	return c.SendStream(out.Body)
}

type resolveRequest struct {
	State     string `json:"state"`
	ErrorCode int    `json:"error_code"`
	DirectURL string `json:"direct_url"`
	FixedURL  string `json:"fixed_url"`
}

// Resolve tells a player which source to try after a playback error.
func (h *MediaHandler) Resolve(c fiber.Ctx) error {
	var req resolveRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	state := media.SourceState(req.State)
	if state == "" {
		state = media.StateDirect
	}

	next, src := h.uc.NextSource(state, req.ErrorCode, req.DirectURL, req.FixedURL)
	data := map[string]any{
		"state":     string(next),
		"source":    src,
		"exhausted": next == media.StateFailed,
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}

type validateRequest struct {
	URL string `json:"url"`
}

// Validate applies the server-side URL correction and reports whether
// anything changed.
func (h *MediaHandler) Validate(c fiber.Ctx) error {
	var req validateRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	fixed, changed := h.uc.FixURL(req.URL)
	data := map[string]any{
		"url":     fixed,
		"changed": changed,
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}
