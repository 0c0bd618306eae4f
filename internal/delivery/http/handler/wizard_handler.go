package handler

import (
	"talento-joven/internal/delivery/http/dto"
	"talento-joven/internal/delivery/http/middleware"
	"talento-joven/internal/domain/profile"
	"talento-joven/internal/pkg/response"
	"talento-joven/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type WizardHandler struct {
	uc usecase.WizardUsecase
}

func NewWizardHandler(uc usecase.WizardUsecase) *WizardHandler {
	return &WizardHandler{uc: uc}
}

func (h *WizardHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/:kind/start", h.Start)
	r.Put("/:kind/fields", h.Input)
	r.Post("/:kind/next", h.Next)
	r.Post("/:kind/prev", h.Prev)
	r.Post("/:kind/submit", h.Submit)
}

func wizardKind(c fiber.Ctx) profile.Kind {
	return profile.Kind(c.Params("kind"))
}

func (h *WizardHandler) Start(c fiber.Ctx) error {
	st, err := h.uc.Start(c.Context(), middleware.UserIDFromCtx(c), wizardKind(c))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewWizardStateResponse(st, nil))
}

func (h *WizardHandler) Input(c fiber.Ctx) error {
	var req struct {
		Fields map[string]string `json:"fields"`
	}
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	st, fieldErrs, err := h.uc.Input(c.Context(), middleware.UserIDFromCtx(c), wizardKind(c), req.Fields)
	if err != nil {
		return mapUsecaseError(err)
	}
	if len(fieldErrs) > 0 {
		return response.Error(c, fiber.StatusUnprocessableEntity, response.MessageUnprocessableEntity, dto.NewWizardStateResponse(st, fieldErrs))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewWizardStateResponse(st, nil))
}

func (h *WizardHandler) Next(c fiber.Ctx) error {
	st, fieldErrs, err := h.uc.Next(c.Context(), middleware.UserIDFromCtx(c), wizardKind(c))
	if err != nil {
		return mapUsecaseError(err)
	}
	if len(fieldErrs) > 0 {
		return response.Error(c, fiber.StatusUnprocessableEntity, response.MessageUnprocessableEntity, dto.NewWizardStateResponse(st, fieldErrs))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewWizardStateResponse(st, nil))
}

func (h *WizardHandler) Prev(c fiber.Ctx) error {
	st, err := h.uc.Prev(c.Context(), middleware.UserIDFromCtx(c), wizardKind(c))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewWizardStateResponse(st, nil))
}

func (h *WizardHandler) Submit(c fiber.Ctx) error {
	rec, fieldErrs, err := h.uc.Submit(c.Context(), middleware.UserIDFromCtx(c), wizardKind(c))
	if err != nil {
		return mapUsecaseError(err)
	}
	if len(fieldErrs) > 0 {
		return response.Error(c, fiber.StatusUnprocessableEntity, response.MessageUnprocessableEntity, map[string]any{"errors": fieldErrs})
	}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, dto.NewProfileResponse(rec))
}
