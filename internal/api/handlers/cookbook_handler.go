package handlers

import (
	"Cookbook-Backend/domain"
	"Cookbook-Backend/internal/api/presenters"
	"Cookbook-Backend/pkg/cookbook"
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CookbookHandler interface {
		GetPublicCookbooks(c *fiber.Ctx) error
		GetPublicCookbookDetail(c *fiber.Ctx) error
		GetAllCookbooks(c *fiber.Ctx) error
		GetCookbookDetail(c *fiber.Ctx) error
		CreateCookbook(c *fiber.Ctx) error
		UpdateCookbook(c *fiber.Ctx) error
		DeleteCookbook(c *fiber.Ctx) error
		SetChecked(c *fiber.Ctx) error
		AddTag(c *fiber.Ctx) error
		GetMaterials(c *fiber.Ctx) error
		UploadCoverImage(c *fiber.Ctx) error
	}

	cookbookHandler struct {
		cookbookService cookbook.CookbookService
		validator       *validator.Validate
	}
)

func NewCookbookHandler(cookbookService cookbook.CookbookService, validator *validator.Validate) CookbookHandler {
	return &cookbookHandler{
		cookbookService: cookbookService,
		validator:       validator,
	}
}

func parsePagination(c *fiber.Ctx) (int, int) {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	return page, limit
}

func (h *cookbookHandler) getCookbooks(c *fiber.Ctx, scope cookbook.Scope) error {
	page, limit := parsePagination(c)

	res, err := h.cookbookService.GetCookbooks(c.Context(), scope, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetCookbooks, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetCookbooks)
}

func (h *cookbookHandler) getCookbookDetail(c *fiber.Ctx, scope cookbook.Scope) error {
	cookbookID := c.Params("id")
	if cookbookID == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetCookbookDetail, domain.ErrCookbookNotFound)
	}

	res, err := h.cookbookService.GetCookbookDetail(c.Context(), cookbookID, scope)
	if err != nil {
		if errors.Is(err, domain.ErrCookbookNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetCookbookDetail, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetCookbookDetail, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetCookbookDetail)
}

func (h *cookbookHandler) GetPublicCookbooks(c *fiber.Ctx) error {
	return h.getCookbooks(c, cookbook.ScopePublic)
}

func (h *cookbookHandler) GetPublicCookbookDetail(c *fiber.Ctx) error {
	return h.getCookbookDetail(c, cookbook.ScopePublic)
}

func (h *cookbookHandler) GetAllCookbooks(c *fiber.Ctx) error {
	return h.getCookbooks(c, cookbook.ScopeAll)
}

func (h *cookbookHandler) GetCookbookDetail(c *fiber.Ctx) error {
	return h.getCookbookDetail(c, cookbook.ScopeAll)
}

func (h *cookbookHandler) CreateCookbook(c *fiber.Ctx) error {
	req := new(domain.CreateCookbookRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateCookbook, err)
	}

	res, err := h.cookbookService.CreateCookbook(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateCookbook, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateCookbook)
}

func (h *cookbookHandler) UpdateCookbook(c *fiber.Ctx) error {
	cookbookID := c.Params("id")
	req := new(domain.UpdateCookbookRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateCookbook, err)
	}

	if err := h.cookbookService.UpdateCookbook(c.Context(), cookbookID, *req); err != nil {
		if errors.Is(err, domain.ErrCookbookNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUpdateCookbook, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateCookbook, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateCookbook)
}

func (h *cookbookHandler) DeleteCookbook(c *fiber.Ctx) error {
	cookbookID := c.Params("id")

	if err := h.cookbookService.DeleteCookbook(c.Context(), cookbookID); err != nil {
		if errors.Is(err, domain.ErrCookbookNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeleteCookbook, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteCookbook, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteCookbook)
}

func (h *cookbookHandler) SetChecked(c *fiber.Ctx) error {
	cookbookID := c.Params("id")
	req := new(domain.SetCheckedRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.cookbookService.SetChecked(c.Context(), cookbookID, *req); err != nil {
		if errors.Is(err, domain.ErrCookbookNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedSetChecked, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSetChecked, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessSetChecked)
}

func (h *cookbookHandler) AddTag(c *fiber.Ctx) error {
	cookbookID := c.Params("id")
	req := new(domain.AddCookbookTagRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddTag, err)
	}

	res, err := h.cookbookService.AddTag(c.Context(), cookbookID, *req)
	if err != nil {
		if errors.Is(err, domain.ErrCookbookNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedAddTag, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddTag, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessAddTag)
}

func (h *cookbookHandler) GetMaterials(c *fiber.Ctx) error {
	cookbookID := c.Params("id")

	res, err := h.cookbookService.GetMaterials(c.Context(), cookbookID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetMaterials, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMaterials)
}

func (h *cookbookHandler) UploadCoverImage(c *fiber.Ctx) error {
	cookbookID := c.Params("id")

	file, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadCover, err)
	}

	url, err := h.cookbookService.UploadCoverImage(c.Context(), cookbookID, file)
	if err != nil {
		if errors.Is(err, domain.ErrCookbookNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUploadCover, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadCover, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"url": url}, fiber.StatusOK, domain.MessageSuccessUploadCover)
}
