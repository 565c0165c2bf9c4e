package domain

import "errors"

var (
	MessageSuccessGetTags           = "success get tags"
	MessageSuccessCreateTag         = "tag created successfully"
	MessageSuccessUpdateTag         = "tag updated successfully"
	MessageSuccessDeleteTag         = "tag deleted successfully"
	MessageSuccessUpdateCookbookSum = "tag cookbook count refreshed successfully"

	MessageFailedGetTags           = "failed to get tags"
	MessageFailedCreateTag         = "failed to create tag"
	MessageFailedUpdateTag         = "failed to update tag"
	MessageFailedDeleteTag         = "failed to delete tag"
	MessageFailedUpdateCookbookSum = "failed to refresh tag cookbook count"

	ErrTagNotFound = errors.New("tag not found")
)

type (
	CreateTagRequest struct {
		Name     string `json:"name" validate:"required"`
		Priority int16  `json:"priority"`
	}

	UpdateTagRequest struct {
		Name     string `json:"name" validate:"required"`
		Priority int16  `json:"priority"`
	}

	Tag struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		Priority    int16  `json:"priority"`
		CookbookSum int    `json:"cookbook_sum"`
		Like        int    `json:"like,omitempty"`
		Unlike      int    `json:"unlike,omitempty"`
	}

	UpdateCookbookSumResponse struct {
		TagID       string `json:"tag_id"`
		CookbookSum int64  `json:"cookbook_sum"`
	}
)
