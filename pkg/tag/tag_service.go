package tag

import (
	"Cookbook-Backend/domain"
	"Cookbook-Backend/entities"
	"context"
	"errors"

	"gorm.io/gorm"
)

type (
	TagService interface {
		GetTags(ctx context.Context) ([]domain.Tag, error)
		CreateTag(ctx context.Context, req domain.CreateTagRequest) (domain.Tag, error)
		UpdateTag(ctx context.Context, tagID string, req domain.UpdateTagRequest) error
		DeleteTag(ctx context.Context, tagID string) error
		UpdateCookbookSum(ctx context.Context, tagID string) (domain.UpdateCookbookSumResponse, error)
	}

	tagService struct {
		tagRepository TagRepository
	}
)

func NewTagService(tagRepository TagRepository) TagService {
	return &tagService{tagRepository: tagRepository}
}

func toTag(tag *entities.CookbookTag) domain.Tag {
	return domain.Tag{
		ID:          tag.ID.String(),
		Name:        tag.Name,
		Priority:    tag.Priority,
		CookbookSum: tag.CookbookSum,
	}
}

func (s *tagService) GetTags(ctx context.Context) ([]domain.Tag, error) {
	tags, err := s.tagRepository.GetTags(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Tag, 0, len(tags))
	for _, tag := range tags {
		result = append(result, toTag(tag))
	}
	return result, nil
}

func (s *tagService) CreateTag(ctx context.Context, req domain.CreateTagRequest) (domain.Tag, error) {
	tag := entities.CookbookTag{
		Name:     req.Name,
		Priority: req.Priority,
	}

	if err := s.tagRepository.CreateTag(ctx, &tag); err != nil {
		return domain.Tag{}, err
	}
	return toTag(&tag), nil
}

func (s *tagService) UpdateTag(ctx context.Context, tagID string, req domain.UpdateTagRequest) error {
	tag, err := s.tagRepository.GetTagByID(ctx, tagID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrTagNotFound
		}
		return err
	}

	tag.Name = req.Name
	tag.Priority = req.Priority

	return s.tagRepository.UpdateTag(ctx, tag)
}

func (s *tagService) DeleteTag(ctx context.Context, tagID string) error {
	if _, err := s.tagRepository.GetTagByID(ctx, tagID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrTagNotFound
		}
		return err
	}
	return s.tagRepository.DeleteTag(ctx, tagID)
}

func (s *tagService) UpdateCookbookSum(ctx context.Context, tagID string) (domain.UpdateCookbookSumResponse, error) {
	count, err := s.tagRepository.UpdateCookbookSum(ctx, tagID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UpdateCookbookSumResponse{}, domain.ErrTagNotFound
		}
		return domain.UpdateCookbookSumResponse{}, err
	}

	return domain.UpdateCookbookSumResponse{
		TagID:       tagID,
		CookbookSum: count,
	}, nil
}
