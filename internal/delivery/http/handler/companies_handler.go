package handler

import (
	"strings"

	"talento-joven/internal/delivery/http/dto"
	"talento-joven/internal/delivery/http/middleware"
	"talento-joven/internal/domain/catalog"
	"talento-joven/internal/pkg/response"
	"talento-joven/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type CompaniesHandler struct {
	uc usecase.CompanyAdminUsecase
}

func NewCompaniesHandler(uc usecase.CompanyAdminUsecase) *CompaniesHandler {
	return &CompaniesHandler{uc: uc}
}

func (h *CompaniesHandler) RegisterPublicRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
	r.Get("/:id", h.GetPublic)
}

func (h *CompaniesHandler) RegisterAdminRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
	r.Get("/:id", h.GetAdmin)
	r.Post("/", h.Create)
	r.Put("/:id", h.Update)
	r.Delete("/:id", h.Delete)
}

func catalogFilterFromQuery(c fiber.Ctx) catalog.ListFilter {
	return catalog.ListFilter{
		Search:   c.Query("search"),
		Status:   catalog.Status(strings.ToUpper(strings.TrimSpace(c.Query("status")))),
		Page:     fiber.Query[int](c, "page", 1),
		PageSize: fiber.Query[int](c, "page_size", 10),
	}
}

func (h *CompaniesHandler) List(c fiber.Ctx) error {
	page, err := h.uc.List(c.Context(), catalogFilterFromQuery(c))
	if err != nil {
		return mapUsecaseError(err)
	}

	env := dto.NewListEnvelope(dto.NewCompanyResponses(page.Items), page.Total, page.Page, page.PageSize)
	return response.Success(c, fiber.StatusOK, response.MessageOK, env)
}

func (h *CompaniesHandler) GetPublic(c fiber.Ctx) error {
	return h.get(c, true)
}

func (h *CompaniesHandler) GetAdmin(c fiber.Ctx) error {
	return h.get(c, false)
}

func (h *CompaniesHandler) get(c fiber.Ctx, countView bool) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	company, err := h.uc.Get(c.Context(), id, countView)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCompanyResponse(company))
}

func (h *CompaniesHandler) Create(c fiber.Ctx) error {
	var req dto.CompanyRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	created, err := h.uc.Create(c.Context(), req.ToDomain())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, dto.NewCompanyResponse(created))
}

func (h *CompaniesHandler) Update(c fiber.Ctx) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req dto.CompanyRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	company := req.ToDomain()
	company.ID = id
	updated, err := h.uc.Update(c.Context(), company)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCompanyResponse(updated))
}

func (h *CompaniesHandler) Delete(c fiber.Ctx) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Context(), id, confirmFlag(c)); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}
