package handler

import (
	"talento-joven/internal/delivery/http/middleware"
	"talento-joven/internal/pkg/response"
	"talento-joven/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type FilesHandler struct {
	uc          usecase.FilesUsecase
	maxUploadMB int
}

func NewFilesHandler(uc usecase.FilesUsecase, maxUploadMB int) *FilesHandler {
	if maxUploadMB <= 0 {
		maxUploadMB = 5
	}
	return &FilesHandler{uc: uc, maxUploadMB: maxUploadMB}
}

func (h *FilesHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/upload", h.Upload)
}

// Upload receives one multipart file under "file" plus a "kind" field
// naming which wizard document it is.
func (h *FilesHandler) Upload(c fiber.Ctx) error {
	userID := middleware.UserIDFromCtx(c)
	if userID == uuid.Nil {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Missing file", nil, err)
	}
	if fh.Size > int64(h.maxUploadMB)<<20 {
		return middleware.NewAppError(fiber.StatusRequestEntityTooLarge, "File too large", map[string]any{
			"max_mb": h.maxUploadMB,
		}, nil)
	}

	src, err := fh.Open()
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Unreadable file", nil, err)
	}
	defer src.Close()

	path, err := h.uc.Upload(c.Context(), userID, c.FormValue("kind"), fh.Filename, src)
	if err != nil {
		return mapUsecaseError(err)
	}

	data := map[string]any{
		"path": path,
		"kind": c.FormValue("kind"),
	}
	return response.Success(c, fiber.StatusCreated, "File uploaded", data)
}
