package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetCookbooks      = "success get cookbooks"
	MessageSuccessGetCookbookDetail = "success get cookbook detail"
	MessageSuccessCreateCookbook    = "cookbook created successfully"
	MessageSuccessUpdateCookbook    = "cookbook updated successfully"
	MessageSuccessDeleteCookbook    = "cookbook deleted successfully"
	MessageSuccessAddTag            = "tag added to cookbook successfully"
	MessageSuccessSetChecked        = "cookbook visibility updated successfully"
	MessageSuccessUploadCover       = "cover image uploaded successfully"

	MessageFailedGetCookbooks      = "failed to get cookbooks"
	MessageFailedGetCookbookDetail = "failed to get cookbook detail"
	MessageFailedCreateCookbook    = "failed to create cookbook"
	MessageFailedUpdateCookbook    = "failed to update cookbook"
	MessageFailedDeleteCookbook    = "failed to delete cookbook"
	MessageFailedAddTag            = "failed to add tag to cookbook"
	MessageFailedSetChecked        = "failed to update cookbook visibility"
	MessageFailedUploadCover       = "failed to upload cover image"

	ErrCookbookNotFound = errors.New("cookbook not found")
)

type (
	CreateCookbookRequest struct {
		Name          string `json:"name" validate:"required"`
		URLVideo      string `json:"url_video" validate:"omitempty,url"`
		URLCoverImage string `json:"url_cover_image" validate:"omitempty,url"`
		Description   string `json:"description"`
	}

	UpdateCookbookRequest struct {
		Name          string `json:"name" validate:"required"`
		URLVideo      string `json:"url_video" validate:"omitempty,url"`
		URLCoverImage string `json:"url_cover_image" validate:"omitempty,url"`
		Description   string `json:"description"`
	}

	AddCookbookTagRequest struct {
		TagID string `json:"tag_id" validate:"required,uuid"`
	}

	SetCheckedRequest struct {
		Checked bool `json:"checked"`
	}

	Cookbook struct {
		ID            string    `json:"id"`
		Name          string    `json:"name"`
		URLVideo      string    `json:"url_video,omitempty"`
		URLCoverImage string    `json:"url_cover_image,omitempty"`
		Description   string    `json:"description"`
		Checked       bool      `json:"checked"`
		CreatedAt     time.Time `json:"created_at"`
	}

	CookbookDetail struct {
		Cookbook
		Steps     []StepDetail `json:"steps"`
		Tags      []Tag        `json:"tags"`
		Materials []Material   `json:"materials"`
	}

	CookbookListResponse struct {
		Cookbooks  []Cookbook `json:"cookbooks"`
		Pagination Pagination `json:"pagination"`
	}

	AddCookbookTagResponse struct {
		Created bool `json:"created"`
	}
)
