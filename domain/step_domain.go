package domain

import "errors"

var (
	MessageSuccessGetSteps        = "success get steps"
	MessageSuccessCreateStep      = "step created successfully"
	MessageSuccessUpdateStep      = "step updated successfully"
	MessageSuccessDeleteStep      = "step deleted successfully"
	MessageSuccessGetMaterialSet  = "success get step materials"
	MessageSuccessAddStepMaterial = "material added to step successfully"
	MessageSuccessUploadStepImage = "step image uploaded successfully"

	MessageFailedGetSteps        = "failed to get steps"
	MessageFailedCreateStep      = "failed to create step"
	MessageFailedUpdateStep      = "failed to update step"
	MessageFailedDeleteStep      = "failed to delete step"
	MessageFailedGetMaterialSet  = "failed to get step materials"
	MessageFailedAddStepMaterial = "failed to add material to step"
	MessageFailedUploadStepImage = "failed to upload step image"

	ErrStepNotFound = errors.New("step not found")
)

type (
	CreateStepRequest struct {
		CookbookID      string `json:"cookbook_id" validate:"required,uuid"`
		Name            string `json:"name" validate:"required"`
		Detail          string `json:"detail"`
		Priority        int16  `json:"priority"`
		ImgURL          string `json:"img_url" validate:"omitempty,url"`
		DurationSeconds int64  `json:"duration_seconds" validate:"gte=0"`
	}

	UpdateStepRequest struct {
		Name            string `json:"name" validate:"required"`
		Detail          string `json:"detail"`
		Priority        int16  `json:"priority"`
		ImgURL          string `json:"img_url" validate:"omitempty,url"`
		DurationSeconds int64  `json:"duration_seconds" validate:"gte=0"`
	}

	AddStepMaterialRequest struct {
		MaterialID string `json:"material_id" validate:"required,uuid"`
		Amount     string `json:"amount"`
		Priority   int16  `json:"priority"`
	}

	StepDetail struct {
		ID               string     `json:"id"`
		CookbookID       string     `json:"cookbook_id"`
		Name             string     `json:"name"`
		Detail           string     `json:"detail"`
		Priority         int16      `json:"priority"`
		ImgURL           string     `json:"img_url,omitempty"`
		DurationSeconds  int64      `json:"duration_seconds"`
		DurationDescribe string     `json:"duration_describe"`
		Materials        []Material `json:"materials,omitempty"`
	}
)
