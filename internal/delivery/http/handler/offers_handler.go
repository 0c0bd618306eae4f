package handler

import (
	"strings"

	"talento-joven/internal/delivery/http/dto"
	"talento-joven/internal/delivery/http/middleware"
	"talento-joven/internal/domain/offer"
	"talento-joven/internal/pkg/response"
	"talento-joven/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type OffersHandler struct {
	uc usecase.OfferAdminUsecase
}

func NewOffersHandler(uc usecase.OfferAdminUsecase) *OffersHandler {
	return &OffersHandler{uc: uc}
}

// RegisterPublicRoutes exposes the read side shown to applicants.
// Detail reads bump the offer's view counter.
func (h *OffersHandler) RegisterPublicRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
	r.Get("/:id", h.GetPublic)
}

func (h *OffersHandler) RegisterAdminRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
	r.Get("/:id", h.GetAdmin)
	r.Post("/", h.Create)
	r.Put("/:id", h.Update)
	r.Delete("/:id", h.Delete)
}

func (h *OffersHandler) List(c fiber.Ctx) error {
	f := offer.ListFilter{
		Search:   c.Query("search"),
		Status:   offer.Status(strings.ToUpper(strings.TrimSpace(c.Query("status")))),
		Page:     fiber.Query[int](c, "page", 1),
		PageSize: fiber.Query[int](c, "page_size", 10),
	}

	page, err := h.uc.List(c.Context(), f)
	if err != nil {
		return mapUsecaseError(err)
	}

	env := dto.NewListEnvelope(dto.NewOfferResponses(page.Items), page.Total, page.Page, page.PageSize)
	return response.Success(c, fiber.StatusOK, response.MessageOK, env)
}

func (h *OffersHandler) GetPublic(c fiber.Ctx) error {
	return h.get(c, true)
}

func (h *OffersHandler) GetAdmin(c fiber.Ctx) error {
	return h.get(c, false)
}

func (h *OffersHandler) get(c fiber.Ctx, countView bool) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	o, err := h.uc.Get(c.Context(), id, countView)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewOfferResponse(o))
}

func (h *OffersHandler) Create(c fiber.Ctx) error {
	var req dto.OfferRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	created, err := h.uc.Create(c.Context(), req.ToDomain())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, dto.NewOfferResponse(created))
}

func (h *OffersHandler) Update(c fiber.Ctx) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req dto.OfferRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	o := req.ToDomain()
	o.ID = id
	updated, err := h.uc.Update(c.Context(), o)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewOfferResponse(updated))
}

func (h *OffersHandler) Delete(c fiber.Ctx) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Context(), id, confirmFlag(c)); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}
