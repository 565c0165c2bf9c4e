package step

import (
	"Cookbook-Backend/domain"
	"Cookbook-Backend/entities"
	"Cookbook-Backend/internal/utils/storage"
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	StepService interface {
		GetSteps(ctx context.Context, cookbookID string) ([]domain.StepDetail, error)
		CreateStep(ctx context.Context, req domain.CreateStepRequest) (domain.StepDetail, error)
		UpdateStep(ctx context.Context, stepID string, req domain.UpdateStepRequest) error
		DeleteStep(ctx context.Context, stepID string) error
		AddMaterial(ctx context.Context, stepID string, req domain.AddStepMaterialRequest) error
		GetMaterialSet(ctx context.Context, stepID string) ([]domain.Material, error)
		GetMaterialSetByType(ctx context.Context, stepID string, materialType entities.MaterialType) ([]domain.Material, error)
		GetFoodMaterials(ctx context.Context, stepID string) ([]domain.Material, error)
		GetCondimentMaterials(ctx context.Context, stepID string) ([]domain.Material, error)
		GetToolMaterials(ctx context.Context, stepID string) ([]domain.Material, error)
		UploadStepImage(ctx context.Context, stepID string, file *multipart.FileHeader) (string, error)
	}

	stepService struct {
		stepRepository StepRepository
		s3             storage.AwsS3
	}
)

func NewStepService(stepRepository StepRepository, s3 storage.AwsS3) StepService {
	return &stepService{
		stepRepository: stepRepository,
		s3:             s3,
	}
}

// FilterMaterialsByType keeps the materials of the given type, preserving
// the relative order of the input. The result is always a subsequence of
// the input slice.
func FilterMaterialsByType(materials []*entities.Material, materialType entities.MaterialType) []*entities.Material {
	filtered := make([]*entities.Material, 0, len(materials))
	for _, material := range materials {
		if material.Type == materialType {
			filtered = append(filtered, material)
		}
	}
	return filtered
}

func toStepDetail(step *entities.Step) domain.StepDetail {
	return domain.StepDetail{
		ID:               step.ID.String(),
		CookbookID:       step.CookbookID.String(),
		Name:             step.Name,
		Detail:           step.Detail,
		Priority:         step.Priority,
		ImgURL:           step.ImgURL,
		DurationSeconds:  int64(step.Duration / time.Second),
		DurationDescribe: step.DurationDescribe(),
	}
}

func toMaterials(materials []*entities.Material) []domain.Material {
	result := make([]domain.Material, 0, len(materials))
	for _, material := range materials {
		result = append(result, domain.Material{
			ID:        material.ID.String(),
			Name:      material.Name,
			Detail:    material.Detail,
			Type:      int16(material.Type),
			TypeLabel: material.Type.String(),
			ImgURL:    material.ImgURL,
		})
	}
	return result
}

func (s *stepService) GetSteps(ctx context.Context, cookbookID string) ([]domain.StepDetail, error) {
	steps, err := s.stepRepository.GetSteps(ctx, cookbookID)
	if err != nil {
		return nil, err
	}

	result := make([]domain.StepDetail, 0, len(steps))
	for _, step := range steps {
		result = append(result, toStepDetail(step))
	}
	return result, nil
}

func (s *stepService) CreateStep(ctx context.Context, req domain.CreateStepRequest) (domain.StepDetail, error) {
	cookbookUUID, err := uuid.Parse(req.CookbookID)
	if err != nil {
		return domain.StepDetail{}, domain.ErrParseUUID
	}

	step := entities.Step{
		CookbookID: cookbookUUID,
		Name:       req.Name,
		Detail:     req.Detail,
		Priority:   req.Priority,
		ImgURL:     req.ImgURL,
		Duration:   time.Duration(req.DurationSeconds) * time.Second,
	}

	if err := s.stepRepository.CreateStep(ctx, &step); err != nil {
		return domain.StepDetail{}, err
	}
	return toStepDetail(&step), nil
}

func (s *stepService) UpdateStep(ctx context.Context, stepID string, req domain.UpdateStepRequest) error {
	step, err := s.stepRepository.GetStepByID(ctx, stepID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrStepNotFound
		}
		return err
	}

	step.Name = req.Name
	step.Detail = req.Detail
	step.Priority = req.Priority
	step.ImgURL = req.ImgURL
	step.Duration = time.Duration(req.DurationSeconds) * time.Second

	return s.stepRepository.UpdateStep(ctx, step)
}

func (s *stepService) DeleteStep(ctx context.Context, stepID string) error {
	if _, err := s.stepRepository.GetStepByID(ctx, stepID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrStepNotFound
		}
		return err
	}
	return s.stepRepository.DeleteStep(ctx, stepID)
}

func (s *stepService) AddMaterial(ctx context.Context, stepID string, req domain.AddStepMaterialRequest) error {
	if _, err := s.stepRepository.GetStepByID(ctx, stepID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrStepNotFound
		}
		return err
	}

	_, err := s.stepRepository.AddMaterial(ctx, stepID, req.MaterialID, req.Amount, req.Priority)
	return err
}

func (s *stepService) GetMaterialSet(ctx context.Context, stepID string) ([]domain.Material, error) {
	materials, err := s.stepRepository.GetMaterialSet(ctx, stepID)
	if err != nil {
		return nil, err
	}
	return toMaterials(materials), nil
}

func (s *stepService) GetMaterialSetByType(ctx context.Context, stepID string, materialType entities.MaterialType) ([]domain.Material, error) {
	if !materialType.Valid() {
		return nil, domain.ErrInvalidMaterialType
	}

	materials, err := s.stepRepository.GetMaterialSet(ctx, stepID)
	if err != nil {
		return nil, err
	}
	return toMaterials(FilterMaterialsByType(materials, materialType)), nil
}

func (s *stepService) GetFoodMaterials(ctx context.Context, stepID string) ([]domain.Material, error) {
	return s.GetMaterialSetByType(ctx, stepID, entities.MaterialTypeFood)
}

func (s *stepService) GetCondimentMaterials(ctx context.Context, stepID string) ([]domain.Material, error) {
	return s.GetMaterialSetByType(ctx, stepID, entities.MaterialTypeCondiment)
}

func (s *stepService) GetToolMaterials(ctx context.Context, stepID string) ([]domain.Material, error) {
	return s.GetMaterialSetByType(ctx, stepID, entities.MaterialTypeTool)
}

func (s *stepService) UploadStepImage(ctx context.Context, stepID string, file *multipart.FileHeader) (string, error) {
	step, err := s.stepRepository.GetStepByID(ctx, stepID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrStepNotFound
		}
		return "", err
	}

	url, err := s.s3.UploadFile(ctx, fmt.Sprintf("steps/%s/image", stepID), file)
	if err != nil {
		return "", err
	}

	step.ImgURL = url
	if err := s.stepRepository.UpdateStep(ctx, step); err != nil {
		return "", err
	}
	return url, nil
}
