package material

import (
	"Cookbook-Backend/domain"
	"Cookbook-Backend/entities"
	"Cookbook-Backend/internal/utils/storage"
	"context"
	"errors"
	"fmt"
	"mime/multipart"

	"gorm.io/gorm"
)

type (
	MaterialService interface {
		GetMaterials(ctx context.Context, materialType entities.MaterialType, page, limit int) (domain.MaterialListResponse, error)
		CreateMaterial(ctx context.Context, req domain.CreateMaterialRequest) (domain.Material, error)
		UpdateMaterial(ctx context.Context, materialID string, req domain.UpdateMaterialRequest) error
		DeleteMaterial(ctx context.Context, materialID string) error
		UploadMaterialImage(ctx context.Context, materialID string, file *multipart.FileHeader) (string, error)
	}

	materialService struct {
		materialRepository MaterialRepository
		s3                 storage.AwsS3
	}
)

func NewMaterialService(materialRepository MaterialRepository, s3 storage.AwsS3) MaterialService {
	return &materialService{
		materialRepository: materialRepository,
		s3:                 s3,
	}
}

func toMaterial(material *entities.Material) domain.Material {
	return domain.Material{
		ID:        material.ID.String(),
		Name:      material.Name,
		Detail:    material.Detail,
		Type:      int16(material.Type),
		TypeLabel: material.Type.String(),
		ImgURL:    material.ImgURL,
	}
}

func (s *materialService) GetMaterials(ctx context.Context, materialType entities.MaterialType, page, limit int) (domain.MaterialListResponse, error) {
	materials, count, err := s.materialRepository.GetMaterials(ctx, materialType, page, limit)
	if err != nil {
		return domain.MaterialListResponse{}, err
	}

	result := make([]domain.Material, 0, len(materials))
	for _, material := range materials {
		result = append(result, toMaterial(material))
	}

	return domain.MaterialListResponse{
		Materials: result,
		Pagination: domain.Pagination{
			Page:       page,
			Limit:      limit,
			Total:      count,
			TotalPages: (count + int64(limit) - 1) / int64(limit),
		},
	}, nil
}

func (s *materialService) CreateMaterial(ctx context.Context, req domain.CreateMaterialRequest) (domain.Material, error) {
	materialType := entities.MaterialType(req.Type)
	if !materialType.Valid() {
		return domain.Material{}, domain.ErrInvalidMaterialType
	}

	material := entities.Material{
		Name:   req.Name,
		Detail: req.Detail,
		Type:   materialType,
		ImgURL: req.ImgURL,
	}

	if err := s.materialRepository.CreateMaterial(ctx, &material); err != nil {
		return domain.Material{}, err
	}
	return toMaterial(&material), nil
}

func (s *materialService) UpdateMaterial(ctx context.Context, materialID string, req domain.UpdateMaterialRequest) error {
	materialType := entities.MaterialType(req.Type)
	if !materialType.Valid() {
		return domain.ErrInvalidMaterialType
	}

	material, err := s.materialRepository.GetMaterialByID(ctx, materialID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrMaterialNotFound
		}
		return err
	}

	material.Name = req.Name
	material.Detail = req.Detail
	material.Type = materialType
	material.ImgURL = req.ImgURL

	return s.materialRepository.UpdateMaterial(ctx, material)
}

func (s *materialService) DeleteMaterial(ctx context.Context, materialID string) error {
	if _, err := s.materialRepository.GetMaterialByID(ctx, materialID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrMaterialNotFound
		}
		return err
	}
	return s.materialRepository.DeleteMaterial(ctx, materialID)
}

func (s *materialService) UploadMaterialImage(ctx context.Context, materialID string, file *multipart.FileHeader) (string, error) {
	material, err := s.materialRepository.GetMaterialByID(ctx, materialID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrMaterialNotFound
		}
		return "", err
	}

	url, err := s.s3.UploadFile(ctx, fmt.Sprintf("materials/%s/image", materialID), file)
	if err != nil {
		return "", err
	}

	material.ImgURL = url
	if err := s.materialRepository.UpdateMaterial(ctx, material); err != nil {
		return "", err
	}
	return url, nil
}
