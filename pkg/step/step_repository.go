package step

import (
	"Cookbook-Backend/entities"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	StepRepository interface {
		CreateStep(ctx context.Context, step *entities.Step) error
		GetStepByID(ctx context.Context, id string) (*entities.Step, error)
		GetSteps(ctx context.Context, cookbookID string) ([]*entities.Step, error)
		UpdateStep(ctx context.Context, step *entities.Step) error
		DeleteStep(ctx context.Context, id string) error
		AddMaterial(ctx context.Context, stepID, materialID, amount string, priority int16) (bool, error)
		GetMaterialSet(ctx context.Context, stepID string) ([]*entities.Material, error)
		GetMaterialRelationships(ctx context.Context, stepID string) ([]*entities.MaterialStepRelationship, error)
	}

	stepRepository struct {
		db *gorm.DB
	}
)

func NewStepRepository(db *gorm.DB) StepRepository {
	return &stepRepository{db: db}
}

func (r *stepRepository) CreateStep(ctx context.Context, step *entities.Step) error {
	return r.db.WithContext(ctx).Create(step).Error
}

func (r *stepRepository) GetStepByID(ctx context.Context, id string) (*entities.Step, error) {
	var step entities.Step
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&step).Error; err != nil {
		return nil, err
	}
	return &step, nil
}

func (r *stepRepository) GetSteps(ctx context.Context, cookbookID string) ([]*entities.Step, error) {
	var steps []*entities.Step
	if err := r.db.WithContext(ctx).
		Where("cookbook_id = ?", cookbookID).
		Order("priority asc, id asc").
		Find(&steps).Error; err != nil {
		return nil, err
	}
	return steps, nil
}

func (r *stepRepository) UpdateStep(ctx context.Context, step *entities.Step) error {
	return r.db.WithContext(ctx).Save(step).Error
}

// DeleteStep removes the step and its material join rows; the materials
// themselves are shared records and stay.
func (r *stepRepository) DeleteStep(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("step_id = ?", id).
			Delete(&entities.MaterialStepRelationship{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entities.Step{}).Error
	})
}

// AddMaterial links a material to a step. An existing link is updated in
// place (amount and priority), so repeated calls never produce a second
// join row for the same (step, material) pair. The returned bool reports
// whether a new row was created.
func (r *stepRepository) AddMaterial(ctx context.Context, stepID, materialID, amount string, priority int16) (bool, error) {
	stepUUID, err := uuid.Parse(stepID)
	if err != nil {
		return false, err
	}

	materialUUID, err := uuid.Parse(materialID)
	if err != nil {
		return false, err
	}

	var existing entities.MaterialStepRelationship
	if err := r.db.WithContext(ctx).
		Where("step_id = ? AND material_id = ?", stepUUID, materialUUID).
		First(&existing).Error; err == nil {
		existing.Amount = amount
		existing.Priority = priority
		return false, r.db.WithContext(ctx).Save(&existing).Error
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	relationship := entities.MaterialStepRelationship{
		ID:         uuid.New(),
		StepID:     stepUUID,
		MaterialID: materialUUID,
		Amount:     amount,
		Priority:   priority,
	}

	if err := r.db.WithContext(ctx).Create(&relationship).Error; err != nil {
		return false, err
	}
	return true, nil
}

// GetMaterialSet returns the step's materials ordered by the join row's
// priority ascending, then by material id ascending as a tie break. The
// ordering is deterministic across repeated calls.
func (r *stepRepository) GetMaterialSet(ctx context.Context, stepID string) ([]*entities.Material, error) {
	var materials []*entities.Material
	if err := r.db.WithContext(ctx).
		Model(&entities.Material{}).
		Select("materials.*").
		Joins("JOIN material_step_relationships ON materials.id = material_step_relationships.material_id").
		Where("material_step_relationships.step_id = ?", stepID).
		Order("material_step_relationships.priority asc, materials.id asc").
		Find(&materials).Error; err != nil {
		return nil, err
	}
	return materials, nil
}

func (r *stepRepository) GetMaterialRelationships(ctx context.Context, stepID string) ([]*entities.MaterialStepRelationship, error) {
	var relationships []*entities.MaterialStepRelationship
	if err := r.db.WithContext(ctx).
		Preload("Material").
		Where("step_id = ?", stepID).
		Order("priority asc, material_id asc").
		Find(&relationships).Error; err != nil {
		return nil, err
	}
	return relationships, nil
}
