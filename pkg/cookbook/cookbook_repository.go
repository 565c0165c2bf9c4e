package cookbook

import (
	"Cookbook-Backend/entities"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Scope selects which cookbooks a query sees. ScopePublic is the
// end-user view (checked only); ScopeAll is the editor view.
type Scope string

const (
	ScopeAll    Scope = "all"
	ScopePublic Scope = "public"
)

type (
	CookbookRepository interface {
		CreateCookbook(ctx context.Context, cookbook *entities.Cookbook) error
		GetCookbooks(ctx context.Context, scope Scope, page, limit int) ([]*entities.Cookbook, int64, error)
		GetCookbookByID(ctx context.Context, id string, scope Scope) (*entities.Cookbook, error)
		UpdateCookbook(ctx context.Context, cookbook *entities.Cookbook) error
		SetChecked(ctx context.Context, id string, checked bool) error
		DeleteCookbook(ctx context.Context, id string) error
		AddTag(ctx context.Context, cookbookID, tagID string) (bool, error)
		GetTags(ctx context.Context, cookbookID string) ([]*entities.TagCookbookRelationship, error)
		GetMaterials(ctx context.Context, cookbookID string) ([]*entities.Material, error)
	}

	cookbookRepository struct {
		db *gorm.DB
	}
)

func NewCookbookRepository(db *gorm.DB) CookbookRepository {
	return &cookbookRepository{db: db}
}

func (r *cookbookRepository) scoped(db *gorm.DB, scope Scope) *gorm.DB {
	if scope == ScopePublic {
		return db.Where("checked = ?", true)
	}
	return db
}

func (r *cookbookRepository) CreateCookbook(ctx context.Context, cookbook *entities.Cookbook) error {
	return r.db.WithContext(ctx).Create(cookbook).Error
}

func (r *cookbookRepository) GetCookbooks(ctx context.Context, scope Scope, page, limit int) ([]*entities.Cookbook, int64, error) {
	var cookbooks []*entities.Cookbook
	var count int64
	offset := (page - 1) * limit

	if err := r.scoped(r.db.WithContext(ctx).Model(&entities.Cookbook{}), scope).
		Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := r.scoped(r.db.WithContext(ctx), scope).
		Offset(offset).
		Limit(limit).
		Order("created_at desc").
		Find(&cookbooks).Error; err != nil {
		return nil, 0, err
	}

	return cookbooks, count, nil
}

func (r *cookbookRepository) GetCookbookByID(ctx context.Context, id string, scope Scope) (*entities.Cookbook, error) {
	var cookbook entities.Cookbook
	if err := r.scoped(r.db.WithContext(ctx), scope).
		Where("id = ?", id).
		First(&cookbook).Error; err != nil {
		return nil, err
	}
	return &cookbook, nil
}

func (r *cookbookRepository) UpdateCookbook(ctx context.Context, cookbook *entities.Cookbook) error {
	return r.db.WithContext(ctx).Save(cookbook).Error
}

func (r *cookbookRepository) SetChecked(ctx context.Context, id string, checked bool) error {
	res := r.db.WithContext(ctx).
		Model(&entities.Cookbook{}).
		Where("id = ?", id).
		Update("checked", checked)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteCookbook removes the cookbook together with its steps and all join
// rows. Shared materials and tags are never touched.
func (r *cookbookRepository) DeleteCookbook(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		stepIDs := tx.Model(&entities.Step{}).Select("id").Where("cookbook_id = ?", id)
		if err := tx.Where("step_id IN (?)", stepIDs).
			Delete(&entities.MaterialStepRelationship{}).Error; err != nil {
			return err
		}
		if err := tx.Where("cookbook_id = ?", id).
			Delete(&entities.Step{}).Error; err != nil {
			return err
		}
		if err := tx.Where("cookbook_id = ?", id).
			Delete(&entities.TagCookbookRelationship{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entities.Cookbook{}).Error
	})
}

// AddTag is idempotent: calling it again for the same pair is a no-op. The
// returned bool reports whether a new association row was created. A
// composite unique index on (cookbook_id, tag_id) backs the existence
// check against concurrent inserts.
func (r *cookbookRepository) AddTag(ctx context.Context, cookbookID, tagID string) (bool, error) {
	cookbookUUID, err := uuid.Parse(cookbookID)
	if err != nil {
		return false, err
	}

	tagUUID, err := uuid.Parse(tagID)
	if err != nil {
		return false, err
	}

	var existing entities.TagCookbookRelationship
	if err := r.db.WithContext(ctx).
		Where("cookbook_id = ? AND tag_id = ?", cookbookUUID, tagUUID).
		First(&existing).Error; err == nil {
		return false, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	relationship := entities.TagCookbookRelationship{
		ID:         uuid.New(),
		CookbookID: cookbookUUID,
		TagID:      tagUUID,
		Like:       0,
		Unlike:     0,
	}

	if err := r.db.WithContext(ctx).Create(&relationship).Error; err != nil {
		return false, err
	}
	return true, nil
}

func (r *cookbookRepository) GetTags(ctx context.Context, cookbookID string) ([]*entities.TagCookbookRelationship, error) {
	var relationships []*entities.TagCookbookRelationship
	if err := r.db.WithContext(ctx).
		Preload("Tag").
		Where("cookbook_id = ?", cookbookID).
		Find(&relationships).Error; err != nil {
		return nil, err
	}
	return relationships, nil
}

// GetMaterials returns the distinct union of materials reachable through
// any step of the cookbook. This is a flat set view; the per-step ordered
// view lives on the step repository.
func (r *cookbookRepository) GetMaterials(ctx context.Context, cookbookID string) ([]*entities.Material, error) {
	var materials []*entities.Material
	if err := r.db.WithContext(ctx).
		Model(&entities.Material{}).
		Distinct("materials.*").
		Joins("JOIN material_step_relationships ON materials.id = material_step_relationships.material_id").
		Joins("JOIN steps ON steps.id = material_step_relationships.step_id").
		Where("steps.cookbook_id = ?", cookbookID).
		Find(&materials).Error; err != nil {
		return nil, err
	}
	return materials, nil
}
