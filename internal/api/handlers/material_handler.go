package handlers

import (
	"Cookbook-Backend/domain"
	"Cookbook-Backend/entities"
	"Cookbook-Backend/internal/api/presenters"
	"Cookbook-Backend/pkg/material"
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	MaterialHandler interface {
		GetMaterials(c *fiber.Ctx) error
		CreateMaterial(c *fiber.Ctx) error
		UpdateMaterial(c *fiber.Ctx) error
		DeleteMaterial(c *fiber.Ctx) error
		UploadMaterialImage(c *fiber.Ctx) error
	}

	materialHandler struct {
		materialService material.MaterialService
		validator       *validator.Validate
	}
)

func NewMaterialHandler(materialService material.MaterialService, validator *validator.Validate) MaterialHandler {
	return &materialHandler{
		materialService: materialService,
		validator:       validator,
	}
}

func (h *materialHandler) GetMaterials(c *fiber.Ctx) error {
	page, limit := parsePagination(c)

	typeValue, err := strconv.Atoi(c.Query("type", "0"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetMaterials, domain.ErrInvalidMaterialType)
	}

	res, err := h.materialService.GetMaterials(c.Context(), entities.MaterialType(typeValue), page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetMaterials, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMaterials)
}

func (h *materialHandler) CreateMaterial(c *fiber.Ctx) error {
	req := new(domain.CreateMaterialRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateMaterial, err)
	}

	res, err := h.materialService.CreateMaterial(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateMaterial, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateMaterial)
}

func (h *materialHandler) UpdateMaterial(c *fiber.Ctx) error {
	materialID := c.Params("id")
	req := new(domain.UpdateMaterialRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateMaterial, err)
	}

	if err := h.materialService.UpdateMaterial(c.Context(), materialID, *req); err != nil {
		if errors.Is(err, domain.ErrMaterialNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUpdateMaterial, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateMaterial, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateMaterial)
}

func (h *materialHandler) DeleteMaterial(c *fiber.Ctx) error {
	materialID := c.Params("id")

	if err := h.materialService.DeleteMaterial(c.Context(), materialID); err != nil {
		if errors.Is(err, domain.ErrMaterialNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeleteMaterial, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteMaterial, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteMaterial)
}

func (h *materialHandler) UploadMaterialImage(c *fiber.Ctx) error {
	materialID := c.Params("id")

	file, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadMaterialImage, err)
	}

	url, err := h.materialService.UploadMaterialImage(c.Context(), materialID, file)
	if err != nil {
		if errors.Is(err, domain.ErrMaterialNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUploadMaterialImage, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadMaterialImage, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"url": url}, fiber.StatusOK, domain.MessageSuccessUploadMaterialImage)
}
