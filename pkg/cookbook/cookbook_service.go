package cookbook

import (
	"Cookbook-Backend/domain"
	"Cookbook-Backend/entities"
	"Cookbook-Backend/internal/utils"
	"Cookbook-Backend/internal/utils/mailing"
	"Cookbook-Backend/internal/utils/storage"
	"Cookbook-Backend/pkg/step"
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"time"

	"gorm.io/gorm"
)

type (
	CookbookService interface {
		GetCookbooks(ctx context.Context, scope Scope, page, limit int) (domain.CookbookListResponse, error)
		GetCookbookDetail(ctx context.Context, cookbookID string, scope Scope) (domain.CookbookDetail, error)
		CreateCookbook(ctx context.Context, req domain.CreateCookbookRequest) (domain.Cookbook, error)
		UpdateCookbook(ctx context.Context, cookbookID string, req domain.UpdateCookbookRequest) error
		DeleteCookbook(ctx context.Context, cookbookID string) error
		SetChecked(ctx context.Context, cookbookID string, req domain.SetCheckedRequest) error
		AddTag(ctx context.Context, cookbookID string, req domain.AddCookbookTagRequest) (domain.AddCookbookTagResponse, error)
		GetMaterials(ctx context.Context, cookbookID string) ([]domain.Material, error)
		UploadCoverImage(ctx context.Context, cookbookID string, file *multipart.FileHeader) (string, error)
	}

	cookbookService struct {
		cookbookRepository CookbookRepository
		stepRepository     step.StepRepository
		s3                 storage.AwsS3
	}
)

func NewCookbookService(cookbookRepository CookbookRepository, stepRepository step.StepRepository, s3 storage.AwsS3) CookbookService {
	return &cookbookService{
		cookbookRepository: cookbookRepository,
		stepRepository:     stepRepository,
		s3:                 s3,
	}
}

func toCookbook(cookbook *entities.Cookbook) domain.Cookbook {
	return domain.Cookbook{
		ID:            cookbook.ID.String(),
		Name:          cookbook.Name,
		URLVideo:      cookbook.URLVideo,
		URLCoverImage: cookbook.URLCoverImage,
		Description:   cookbook.Description,
		Checked:       cookbook.Checked,
		CreatedAt:     cookbook.CreatedAt,
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

func (s *cookbookService) GetCookbooks(ctx context.Context, scope Scope, page, limit int) (domain.CookbookListResponse, error) {
	cookbooks, count, err := s.cookbookRepository.GetCookbooks(ctx, scope, page, limit)
	if err != nil {
		return domain.CookbookListResponse{}, err
	}

	result := make([]domain.Cookbook, 0, len(cookbooks))
	for _, cookbook := range cookbooks {
		result = append(result, toCookbook(cookbook))
	}

	return domain.CookbookListResponse{
		Cookbooks: result,
		Pagination: domain.Pagination{
			Page:       page,
			Limit:      limit,
			Total:      count,
			TotalPages: (count + int64(limit) - 1) / int64(limit),
		},
	}, nil
}

func (s *cookbookService) GetCookbookDetail(ctx context.Context, cookbookID string, scope Scope) (domain.CookbookDetail, error) {
	cookbook, err := s.cookbookRepository.GetCookbookByID(ctx, cookbookID, scope)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CookbookDetail{}, domain.ErrCookbookNotFound
		}
		return domain.CookbookDetail{}, err
	}

	steps, err := s.stepRepository.GetSteps(ctx, cookbookID)
	if err != nil {
		return domain.CookbookDetail{}, err
	}

	stepDetails := make([]domain.StepDetail, 0, len(steps))
	for _, st := range steps {
		relationships, err := s.stepRepository.GetMaterialRelationships(ctx, st.ID.String())
		if err != nil {
			return domain.CookbookDetail{}, err
		}

		materials := make([]domain.Material, 0, len(relationships))
		for _, rel := range relationships {
			if rel.Material == nil {
				continue
			}
			material := toMaterial(rel.Material)
			material.Amount = rel.Amount
			material.Priority = rel.Priority
			materials = append(materials, material)
		}

		stepDetails = append(stepDetails, domain.StepDetail{
			ID:               st.ID.String(),
			CookbookID:       st.CookbookID.String(),
			Name:             st.Name,
			Detail:           st.Detail,
			Priority:         st.Priority,
			ImgURL:           st.ImgURL,
			DurationSeconds:  int64(st.Duration / time.Second),
			DurationDescribe: st.DurationDescribe(),
			Materials:        materials,
		})
	}

	relationships, err := s.cookbookRepository.GetTags(ctx, cookbookID)
	if err != nil {
		return domain.CookbookDetail{}, err
	}

	tags := make([]domain.Tag, 0, len(relationships))
	for _, rel := range relationships {
		if rel.Tag == nil {
			continue
		}
		tags = append(tags, domain.Tag{
			ID:          rel.Tag.ID.String(),
			Name:        rel.Tag.Name,
			Priority:    rel.Tag.Priority,
			CookbookSum: rel.Tag.CookbookSum,
			Like:        rel.Like,
			Unlike:      rel.Unlike,
		})
	}

	aggregate, err := s.GetMaterials(ctx, cookbookID)
	if err != nil {
		return domain.CookbookDetail{}, err
	}

	return domain.CookbookDetail{
		Cookbook:  toCookbook(cookbook),
		Steps:     stepDetails,
		Tags:      tags,
		Materials: aggregate,
	}, nil
}

func (s *cookbookService) CreateCookbook(ctx context.Context, req domain.CreateCookbookRequest) (domain.Cookbook, error) {
	cookbook := entities.Cookbook{
		Name:          req.Name,
		URLVideo:      req.URLVideo,
		URLCoverImage: req.URLCoverImage,
		Description:   req.Description,
		Checked:       false,
	}

	if err := s.cookbookRepository.CreateCookbook(ctx, &cookbook); err != nil {
		return domain.Cookbook{}, err
	}
	return toCookbook(&cookbook), nil
}

func (s *cookbookService) UpdateCookbook(ctx context.Context, cookbookID string, req domain.UpdateCookbookRequest) error {
	cookbook, err := s.cookbookRepository.GetCookbookByID(ctx, cookbookID, ScopeAll)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCookbookNotFound
		}
		return err
	}

	cookbook.Name = req.Name
	cookbook.URLVideo = req.URLVideo
	cookbook.URLCoverImage = req.URLCoverImage
	cookbook.Description = req.Description

	return s.cookbookRepository.UpdateCookbook(ctx, cookbook)
}

func (s *cookbookService) DeleteCookbook(ctx context.Context, cookbookID string) error {
	if _, err := s.cookbookRepository.GetCookbookByID(ctx, cookbookID, ScopeAll); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCookbookNotFound
		}
		return err
	}
	return s.cookbookRepository.DeleteCookbook(ctx, cookbookID)
}

func (s *cookbookService) SetChecked(ctx context.Context, cookbookID string, req domain.SetCheckedRequest) error {
	cookbook, err := s.cookbookRepository.GetCookbookByID(ctx, cookbookID, ScopeAll)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCookbookNotFound
		}
		return err
	}

	if err := s.cookbookRepository.SetChecked(ctx, cookbookID, req.Checked); err != nil {
		return err
	}

	if req.Checked && !cookbook.Checked {
		if notify := utils.GetConfig("REVIEW_NOTIFY_EMAIL"); notify != "" {
			// Ignore error, publication itself already succeeded
			_ = mailing.SendMail(
				notify,
				fmt.Sprintf("Cookbook published: %s", cookbook.Name),
				fmt.Sprintf("<p>The cookbook <b>%s</b> is now publicly visible.</p>", cookbook.Name),
			)
		}
	}
	return nil
}

func (s *cookbookService) AddTag(ctx context.Context, cookbookID string, req domain.AddCookbookTagRequest) (domain.AddCookbookTagResponse, error) {
	if _, err := s.cookbookRepository.GetCookbookByID(ctx, cookbookID, ScopeAll); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.AddCookbookTagResponse{}, domain.ErrCookbookNotFound
		}
		return domain.AddCookbookTagResponse{}, err
	}

	created, err := s.cookbookRepository.AddTag(ctx, cookbookID, req.TagID)
	if err != nil {
		return domain.AddCookbookTagResponse{}, err
	}
	return domain.AddCookbookTagResponse{Created: created}, nil
}

func (s *cookbookService) GetMaterials(ctx context.Context, cookbookID string) ([]domain.Material, error) {
	materials, err := s.cookbookRepository.GetMaterials(ctx, cookbookID)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Material, 0, len(materials))
	for _, material := range materials {
		result = append(result, toMaterial(material))
	}
	return result, nil
}

func (s *cookbookService) UploadCoverImage(ctx context.Context, cookbookID string, file *multipart.FileHeader) (string, error) {
	cookbook, err := s.cookbookRepository.GetCookbookByID(ctx, cookbookID, ScopeAll)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrCookbookNotFound
		}
		return "", err
	}

	url, err := s.s3.UploadFile(ctx, fmt.Sprintf("cookbooks/%s/cover", cookbookID), file)
	if err != nil {
		return "", err
	}

	cookbook.URLCoverImage = url
	if err := s.cookbookRepository.UpdateCookbook(ctx, cookbook); err != nil {
		return "", err
	}
	return url, nil
}
