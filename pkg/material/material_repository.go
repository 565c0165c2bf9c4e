package material

import (
	"Cookbook-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	MaterialRepository interface {
		CreateMaterial(ctx context.Context, material *entities.Material) error
		GetMaterialByID(ctx context.Context, id string) (*entities.Material, error)
		GetMaterials(ctx context.Context, materialType entities.MaterialType, page, limit int) ([]*entities.Material, int64, error)
		UpdateMaterial(ctx context.Context, material *entities.Material) error
		DeleteMaterial(ctx context.Context, id string) error
	}

	materialRepository struct {
		db *gorm.DB
	}
)

func NewMaterialRepository(db *gorm.DB) MaterialRepository {
	return &materialRepository{db: db}
}

func (r *materialRepository) CreateMaterial(ctx context.Context, material *entities.Material) error {
	return r.db.WithContext(ctx).Create(material).Error
}

func (r *materialRepository) GetMaterialByID(ctx context.Context, id string) (*entities.Material, error) {
	var material entities.Material
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&material).Error; err != nil {
		return nil, err
	}
	return &material, nil
}

// GetMaterials lists materials, optionally restricted to one type. A zero
// materialType means no type filter.
func (r *materialRepository) GetMaterials(ctx context.Context, materialType entities.MaterialType, page, limit int) ([]*entities.Material, int64, error) {
	var materials []*entities.Material
	var count int64
	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Model(&entities.Material{})
	if materialType.Valid() {
		query = query.Where("type = ?", materialType)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Offset(offset).
		Limit(limit).
		Order("name asc, id asc").
		Find(&materials).Error; err != nil {
		return nil, 0, err
	}

	return materials, count, nil
}

func (r *materialRepository) UpdateMaterial(ctx context.Context, material *entities.Material) error {
	return r.db.WithContext(ctx).Save(material).Error
}

// DeleteMaterial removes the material together with its step links. Steps
// and cookbooks referencing it are unaffected beyond losing the link.
func (r *materialRepository) DeleteMaterial(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("material_id = ?", id).
			Delete(&entities.MaterialStepRelationship{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entities.Material{}).Error
	})
}
