package handler

import (
	"time"

	"talento-joven/internal/delivery/http/dto"
	"talento-joven/internal/delivery/http/middleware"
	"talento-joven/internal/pkg/response"
	"talento-joven/internal/render"
	"talento-joven/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type CoverLetterHandler struct {
	letters usecase.CoverLetterUsecase
	cvs     usecase.CVUsecase
	export  usecase.ExportUsecase
}

func NewCoverLetterHandler(letters usecase.CoverLetterUsecase, cvs usecase.CVUsecase, export usecase.ExportUsecase) *CoverLetterHandler {
	return &CoverLetterHandler{letters: letters, cvs: cvs, export: export}
}

func (h *CoverLetterHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.Get)
	r.Put("/", h.Save)
	r.Get("/preview", h.Preview)
	r.Get("/export", h.Export)
}

func (h *CoverLetterHandler) Get(c fiber.Ctx) error {
	userID := middleware.UserIDFromCtx(c)

	letter, err := h.letters.GetLetter(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	doc, err := h.cvs.GetDocument(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCoverLetterResponse(letter, doc))
}

func (h *CoverLetterHandler) Save(c fiber.Ctx) error {
	var req dto.CoverLetterPayload
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	userID := middleware.UserIDFromCtx(c)
	letter, err := h.letters.SaveLetter(c.Context(), userID, usecase.CoverLetterInput{
		Subject:   req.Subject,
		Content:   req.Content,
		Recipient: req.Recipient,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	doc, err := h.cvs.GetDocument(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCoverLetterResponse(letter, doc))
}

func (h *CoverLetterHandler) Preview(c fiber.Ctx) error {
	id, err := render.ParseTemplateID(c.Query("template"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Unknown template", nil, err)
	}

	userID := middleware.UserIDFromCtx(c)
	letter, err := h.letters.GetLetter(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	doc, err := h.cvs.GetDocument(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}

	html, err := render.RenderCoverLetter(letter, doc, id, time.Now())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(html)
}

func (h *CoverLetterHandler) Export(c fiber.Ctx) error {
	out, filename, err := h.export.ExportCoverLetter(c.Context(), middleware.UserIDFromCtx(c), c.Query("template"))
	if err != nil {
		return mapUsecaseError(err)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(out)
}
