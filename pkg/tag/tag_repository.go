package tag

import (
	"Cookbook-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	TagRepository interface {
		CreateTag(ctx context.Context, tag *entities.CookbookTag) error
		GetTagByID(ctx context.Context, id string) (*entities.CookbookTag, error)
		GetTags(ctx context.Context) ([]*entities.CookbookTag, error)
		UpdateTag(ctx context.Context, tag *entities.CookbookTag) error
		DeleteTag(ctx context.Context, id string) error
		UpdateCookbookSum(ctx context.Context, tagID string) (int64, error)
	}

	tagRepository struct {
		db *gorm.DB
	}
)

func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) CreateTag(ctx context.Context, tag *entities.CookbookTag) error {
	return r.db.WithContext(ctx).Create(tag).Error
}

func (r *tagRepository) GetTagByID(ctx context.Context, id string) (*entities.CookbookTag, error) {
	var tag entities.CookbookTag
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&tag).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

func (r *tagRepository) GetTags(ctx context.Context) ([]*entities.CookbookTag, error) {
	var tags []*entities.CookbookTag
	if err := r.db.WithContext(ctx).
		Order("priority asc, name asc").
		Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

func (r *tagRepository) UpdateTag(ctx context.Context, tag *entities.CookbookTag) error {
	return r.db.WithContext(ctx).Save(tag).Error
}

// DeleteTag removes the tag and its cookbook associations; the cookbooks
// themselves stay.
func (r *tagRepository) DeleteTag(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tag_id = ?", id).
			Delete(&entities.TagCookbookRelationship{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entities.CookbookTag{}).Error
	})
}

// UpdateCookbookSum recounts the cookbooks associated with the tag and
// overwrites the cached cookbook_sum. The cache is refreshed only through
// this call; adding or removing associations does not touch it.
func (r *tagRepository) UpdateCookbookSum(ctx context.Context, tagID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entities.TagCookbookRelationship{}).
			Where("tag_id = ?", tagID).
			Distinct("cookbook_id").
			Count(&count).Error; err != nil {
			return err
		}

		res := tx.Model(&entities.CookbookTag{}).
			Where("id = ?", tagID).
			Update("cookbook_sum", count)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}
