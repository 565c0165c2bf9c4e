package handlers

import (
	"Cookbook-Backend/domain"
	"Cookbook-Backend/internal/api/presenters"
	"Cookbook-Backend/pkg/editor"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	EditorHandler interface {
		Login(c *fiber.Ctx) error
		Me(c *fiber.Ctx) error
	}

	editorHandler struct {
		editorService editor.EditorService
		validator     *validator.Validate
	}
)

func NewEditorHandler(editorService editor.EditorService, validator *validator.Validate) EditorHandler {
	return &editorHandler{
		editorService: editorService,
		validator:     validator,
	}
}

func (h *editorHandler) Login(c *fiber.Ctx) error {
	req := new(domain.EditorLoginRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLogin, err)
	}

	res, err := h.editorService.Login(c.Context(), *req)
	if err != nil {
		if errors.Is(err, domain.ErrEmailOrPasswordInvalid) {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedLogin, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLogin, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessLogin)
}

func (h *editorHandler) Me(c *fiber.Ctx) error {
	editorID := c.Locals("editor_id").(string)

	res, err := h.editorService.Me(c.Context(), editorID)
	if err != nil {
		if errors.Is(err, domain.ErrEditorNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetEditor, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetEditor, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetEditor)
}
