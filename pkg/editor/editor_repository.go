package editor

import (
	"Cookbook-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	EditorRepository interface {
		CreateEditor(ctx context.Context, editor *entities.EditorUser) error
		GetEditorByEmail(ctx context.Context, email string) (*entities.EditorUser, error)
		GetEditorByID(ctx context.Context, id string) (*entities.EditorUser, error)
	}

	editorRepository struct {
		db *gorm.DB
	}
)

func NewEditorRepository(db *gorm.DB) EditorRepository {
	return &editorRepository{db: db}
}

func (r *editorRepository) CreateEditor(ctx context.Context, editor *entities.EditorUser) error {
	return r.db.WithContext(ctx).Create(editor).Error
}

func (r *editorRepository) GetEditorByEmail(ctx context.Context, email string) (*entities.EditorUser, error) {
	var editor entities.EditorUser
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&editor).Error; err != nil {
		return nil, err
	}
	return &editor, nil
}

func (r *editorRepository) GetEditorByID(ctx context.Context, id string) (*entities.EditorUser, error) {
	var editor entities.EditorUser
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&editor).Error; err != nil {
		return nil, err
	}
	return &editor, nil
}
