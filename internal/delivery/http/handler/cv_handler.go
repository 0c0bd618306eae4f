package handler

import (
	"talento-joven/internal/delivery/http/dto"
	"talento-joven/internal/delivery/http/middleware"
	"talento-joven/internal/domain/cv"
	"talento-joven/internal/pkg/response"
	"talento-joven/internal/render"
	"talento-joven/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type CVHandler struct {
	cvs    usecase.CVUsecase
	export usecase.ExportUsecase
}

func NewCVHandler(cvs usecase.CVUsecase, export usecase.ExportUsecase) *CVHandler {
	return &CVHandler{cvs: cvs, export: export}
}

func (h *CVHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.Get)
	r.Put("/", h.Save)
	r.Post("/skills", h.AddSkill)
	r.Delete("/skills/:name", h.RemoveSkill)
	r.Post("/interests", h.AddInterest)
	r.Delete("/interests/:name", h.RemoveInterest)
	r.Get("/preview", h.Preview)
	r.Get("/export", h.Export)
}

func (h *CVHandler) Get(c fiber.Ctx) error {
	doc, err := h.cvs.GetDocument(c.Context(), middleware.UserIDFromCtx(c))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewDocumentResponse(doc))
}

func (h *CVHandler) Save(c fiber.Ctx) error {
	var req dto.DocumentPayload
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	doc, err := h.cvs.SaveDocument(c.Context(), middleware.UserIDFromCtx(c), req.ToDomain())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewDocumentResponse(doc))
}

func (h *CVHandler) AddSkill(c fiber.Ctx) error {
	var req cv.Skill
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	doc, err := h.cvs.AddSkill(c.Context(), middleware.UserIDFromCtx(c), req)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewDocumentResponse(doc))
}

func (h *CVHandler) RemoveSkill(c fiber.Ctx) error {
	doc, err := h.cvs.RemoveSkill(c.Context(), middleware.UserIDFromCtx(c), c.Params("name"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewDocumentResponse(doc))
}

func (h *CVHandler) AddInterest(c fiber.Ctx) error {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	doc, err := h.cvs.AddInterest(c.Context(), middleware.UserIDFromCtx(c), req.Name)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewDocumentResponse(doc))
}

func (h *CVHandler) RemoveInterest(c fiber.Ctx) error {
	doc, err := h.cvs.RemoveInterest(c.Context(), middleware.UserIDFromCtx(c), c.Params("name"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewDocumentResponse(doc))
}

// Preview returns the rendered HTML for the requested template, the
// same markup the PDF export prints.
func (h *CVHandler) Preview(c fiber.Ctx) error {
	id, err := render.ParseTemplateID(c.Query("template"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Unknown template", nil, err)
	}

	doc, err := h.cvs.GetDocument(c.Context(), middleware.UserIDFromCtx(c))
	if err != nil {
		return mapUsecaseError(err)
	}

	html, err := render.RenderCV(doc, id)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(html)
}

func (h *CVHandler) Export(c fiber.Ctx) error {
	out, filename, err := h.export.ExportCV(c.Context(), middleware.UserIDFromCtx(c), c.Query("template"))
	if err != nil {
		return mapUsecaseError(err)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(out)
}
