package handler

import (
	"talento-joven/internal/delivery/http/dto"
	"talento-joven/internal/delivery/http/middleware"
	"talento-joven/internal/pkg/response"
	"talento-joven/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// YouthHandler serves the youth-content catalogs: institutions,
// mentors, networking contacts and resources.
type YouthHandler struct {
	uc usecase.YouthAdminUsecase
}

func NewYouthHandler(uc usecase.YouthAdminUsecase) *YouthHandler {
	return &YouthHandler{uc: uc}
}

func (h *YouthHandler) RegisterPublicRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/institutions", h.ListInstitutions)
	r.Get("/institutions/:id", h.GetInstitution)
	r.Get("/mentors", h.ListMentors)
	r.Get("/mentors/:id", h.GetMentor)
	r.Get("/contacts", h.ListContacts)
	r.Get("/contacts/:id", h.GetContact)
	r.Get("/resources", h.ListResources)
	r.Get("/resources/:id", h.GetResource)
}

func (h *YouthHandler) RegisterAdminRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	h.RegisterPublicRoutes(r)

	r.Post("/institutions", h.CreateInstitution)
	r.Put("/institutions/:id", h.UpdateInstitution)
	r.Delete("/institutions/:id", h.DeleteInstitution)
	r.Post("/mentors", h.CreateMentor)
	r.Put("/mentors/:id", h.UpdateMentor)
	r.Delete("/mentors/:id", h.DeleteMentor)
	r.Post("/contacts", h.CreateContact)
	r.Put("/contacts/:id", h.UpdateContact)
	r.Delete("/contacts/:id", h.DeleteContact)
	r.Post("/resources", h.CreateResource)
	r.Put("/resources/:id", h.UpdateResource)
	r.Delete("/resources/:id", h.DeleteResource)
}

func (h *YouthHandler) ListInstitutions(c fiber.Ctx) error {
	page, err := h.uc.ListInstitutions(c.Context(), catalogFilterFromQuery(c))
	if err != nil {
		return mapUsecaseError(err)
	}
	env := dto.NewListEnvelope(dto.NewInstitutionResponses(page.Items), page.Total, page.Page, page.PageSize)
	return response.Success(c, fiber.StatusOK, response.MessageOK, env)
}

func (h *YouthHandler) GetInstitution(c fiber.Ctx) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	i, err := h.uc.GetInstitution(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewInstitutionResponse(i))
}

func (h *YouthHandler) CreateInstitution(c fiber.Ctx) error {
	var req dto.InstitutionRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	created, err := h.uc.CreateInstitution(c.Context(), req.ToDomain())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, dto.NewInstitutionResponse(created))
}

func (h *YouthHandler) UpdateInstitution(c fiber.Ctx) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	var req dto.InstitutionRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	i := req.ToDomain()
	i.ID = id
	updated, err := h.uc.UpdateInstitution(c.Context(), i)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewInstitutionResponse(updated))
}

func (h *YouthHandler) DeleteInstitution(c fiber.Ctx) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	if err := h.uc.DeleteInstitution(c.Context(), id, confirmFlag(c)); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *YouthHandler) ListMentors(c fiber.Ctx) error {
	page, err := h.uc.ListMentors(c.Context(), catalogFilterFromQuery(c))
	if err != nil {
		return mapUsecaseError(err)
	}
	env := dto.NewListEnvelope(dto.NewMentorResponses(page.Items), page.Total, page.Page, page.PageSize)
	return response.Success(c, fiber.StatusOK, response.MessageOK, env)
}

func (h *YouthHandler) GetMentor(c fiber.Ctx) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	m, err := h.uc.GetMentor(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewMentorResponse(m))
}

func (h *YouthHandler) CreateMentor(c fiber.Ctx) error {
	var req dto.MentorRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	created, err := h.uc.CreateMentor(c.Context(), req.ToDomain())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, dto.NewMentorResponse(created))
}

func (h *YouthHandler) UpdateMentor(c fiber.Ctx) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	var req dto.MentorRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	m := req.ToDomain()
	m.ID = id
	updated, err := h.uc.UpdateMentor(c.Context(), m)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewMentorResponse(updated))
}

func (h *YouthHandler) DeleteMentor(c fiber.Ctx) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	if err := h.uc.DeleteMentor(c.Context(), id, confirmFlag(c)); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *YouthHandler) ListContacts(c fiber.Ctx) error {
	page, err := h.uc.ListContacts(c.Context(), catalogFilterFromQuery(c))
	if err != nil {
		return mapUsecaseError(err)
	}
	env := dto.NewListEnvelope(dto.NewContactResponses(page.Items), page.Total, page.Page, page.PageSize)
	return response.Success(c, fiber.StatusOK, response.MessageOK, env)
}

func (h *YouthHandler) GetContact(c fiber.Ctx) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	contact, err := h.uc.GetContact(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewContactResponse(contact))
}

func (h *YouthHandler) CreateContact(c fiber.Ctx) error {
	var req dto.ContactRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	created, err := h.uc.CreateContact(c.Context(), req.ToDomain())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, dto.NewContactResponse(created))
}

func (h *YouthHandler) UpdateContact(c fiber.Ctx) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	var req dto.ContactRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	contact := req.ToDomain()
	contact.ID = id
	updated, err := h.uc.UpdateContact(c.Context(), contact)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewContactResponse(updated))
}

func (h *YouthHandler) DeleteContact(c fiber.Ctx) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	if err := h.uc.DeleteContact(c.Context(), id, confirmFlag(c)); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *YouthHandler) ListResources(c fiber.Ctx) error {
	page, err := h.uc.ListResources(c.Context(), catalogFilterFromQuery(c))
	if err != nil {
		return mapUsecaseError(err)
	}
	env := dto.NewListEnvelope(dto.NewResourceResponses(page.Items), page.Total, page.Page, page.PageSize)
	return response.Success(c, fiber.StatusOK, response.MessageOK, env)
}

func (h *YouthHandler) GetResource(c fiber.Ctx) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	res, err := h.uc.GetResource(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewResourceResponse(res))
}

func (h *YouthHandler) CreateResource(c fiber.Ctx) error {
	var req dto.ResourceRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	created, err := h.uc.CreateResource(c.Context(), req.ToDomain())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, dto.NewResourceResponse(created))
}

func (h *YouthHandler) UpdateResource(c fiber.Ctx) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	var req dto.ResourceRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	res := req.ToDomain()
	res.ID = id
	updated, err := h.uc.UpdateResource(c.Context(), res)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewResourceResponse(updated))
}

func (h *YouthHandler) DeleteResource(c fiber.Ctx) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	if err := h.uc.DeleteResource(c.Context(), id, confirmFlag(c)); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}
