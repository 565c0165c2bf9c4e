package handlers

import (
	"Cookbook-Backend/domain"
	"Cookbook-Backend/entities"
	"Cookbook-Backend/internal/api/presenters"
	"Cookbook-Backend/pkg/step"
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	StepHandler interface {
		GetSteps(c *fiber.Ctx) error
		CreateStep(c *fiber.Ctx) error
		UpdateStep(c *fiber.Ctx) error
		DeleteStep(c *fiber.Ctx) error
		GetMaterialSet(c *fiber.Ctx) error
		AddMaterial(c *fiber.Ctx) error
		UploadStepImage(c *fiber.Ctx) error
	}

	stepHandler struct {
		stepService step.StepService
		validator   *validator.Validate
	}
)

func NewStepHandler(stepService step.StepService, validator *validator.Validate) StepHandler {
	return &stepHandler{
		stepService: stepService,
		validator:   validator,
	}
}

func (h *stepHandler) GetSteps(c *fiber.Ctx) error {
	cookbookID := c.Params("cookbook_id")

	res, err := h.stepService.GetSteps(c.Context(), cookbookID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetSteps, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetSteps)
}

func (h *stepHandler) CreateStep(c *fiber.Ctx) error {
	req := new(domain.CreateStepRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateStep, err)
	}

	res, err := h.stepService.CreateStep(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateStep, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateStep)
}

func (h *stepHandler) UpdateStep(c *fiber.Ctx) error {
	stepID := c.Params("id")
	req := new(domain.UpdateStepRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateStep, err)
	}

	if err := h.stepService.UpdateStep(c.Context(), stepID, *req); err != nil {
		if errors.Is(err, domain.ErrStepNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUpdateStep, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateStep, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateStep)
}

func (h *stepHandler) DeleteStep(c *fiber.Ctx) error {
	stepID := c.Params("id")

	if err := h.stepService.DeleteStep(c.Context(), stepID); err != nil {
		if errors.Is(err, domain.ErrStepNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeleteStep, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteStep, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteStep)
}

// GetMaterialSet returns the step's materials in display order. An
// optional ?type=1|2|3 query restricts the result to one material type.
func (h *stepHandler) GetMaterialSet(c *fiber.Ctx) error {
	stepID := c.Params("id")

	typeQuery := c.Query("type", "")
	if typeQuery == "" {
		res, err := h.stepService.GetMaterialSet(c.Context(), stepID)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetMaterialSet, err)
		}
		return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMaterialSet)
	}

	typeValue, err := strconv.Atoi(typeQuery)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetMaterialSet, domain.ErrInvalidMaterialType)
	}

	res, err := h.stepService.GetMaterialSetByType(c.Context(), stepID, entities.MaterialType(typeValue))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetMaterialSet, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMaterialSet)
}

func (h *stepHandler) AddMaterial(c *fiber.Ctx) error {
	stepID := c.Params("id")
	req := new(domain.AddStepMaterialRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddStepMaterial, err)
	}

	if err := h.stepService.AddMaterial(c.Context(), stepID, *req); err != nil {
		if errors.Is(err, domain.ErrStepNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedAddStepMaterial, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddStepMaterial, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessAddStepMaterial)
}

func (h *stepHandler) UploadStepImage(c *fiber.Ctx) error {
	stepID := c.Params("id")

	file, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadStepImage, err)
	}

	url, err := h.stepService.UploadStepImage(c.Context(), stepID, file)
	if err != nil {
		if errors.Is(err, domain.ErrStepNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUploadStepImage, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadStepImage, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"url": url}, fiber.StatusOK, domain.MessageSuccessUploadStepImage)
}
