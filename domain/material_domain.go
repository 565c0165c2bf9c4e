package domain

import "errors"

var (
	MessageSuccessGetMaterials        = "success get materials"
	MessageSuccessCreateMaterial      = "material created successfully"
	MessageSuccessUpdateMaterial      = "material updated successfully"
	MessageSuccessDeleteMaterial      = "material deleted successfully"
	MessageSuccessUploadMaterialImage = "material image uploaded successfully"

	MessageFailedGetMaterials        = "failed to get materials"
	MessageFailedCreateMaterial      = "failed to create material"
	MessageFailedUpdateMaterial      = "failed to update material"
	MessageFailedDeleteMaterial      = "failed to delete material"
	MessageFailedUploadMaterialImage = "failed to upload material image"

	ErrMaterialNotFound    = errors.New("material not found")
	ErrInvalidMaterialType = errors.New("invalid material type")
)

type (
	CreateMaterialRequest struct {
		Name   string `json:"name" validate:"required"`
		Detail string `json:"detail"`
		Type   int16  `json:"type" validate:"required,oneof=1 2 3"`
		ImgURL string `json:"img_url" validate:"omitempty,url"`
	}

	UpdateMaterialRequest struct {
		Name   string `json:"name" validate:"required"`
		Detail string `json:"detail"`
		Type   int16  `json:"type" validate:"required,oneof=1 2 3"`
		ImgURL string `json:"img_url" validate:"omitempty,url"`
	}

	Material struct {
		ID        string `json:"id"`
		Name      string `json:"name"`
		Detail    string `json:"detail"`
		Type      int16  `json:"type"`
		TypeLabel string `json:"type_label"`
		ImgURL    string `json:"img_url,omitempty"`
		Amount    string `json:"amount,omitempty"`
		Priority  int16  `json:"priority,omitempty"`
	}

	MaterialListResponse struct {
		Materials  []Material `json:"materials"`
		Pagination Pagination `json:"pagination"`
	}
)
