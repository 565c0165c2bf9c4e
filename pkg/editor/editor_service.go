package editor

import (
	"Cookbook-Backend/domain"
	"Cookbook-Backend/pkg/jwt"
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	EditorService interface {
		Login(ctx context.Context, req domain.EditorLoginRequest) (domain.EditorLoginResponse, error)
		Me(ctx context.Context, editorID string) (domain.EditorProfile, error)
	}

	editorService struct {
		editorRepository EditorRepository
		jwtService       jwt.JWTService
	}
)

func NewEditorService(editorRepository EditorRepository, jwtService jwt.JWTService) EditorService {
	return &editorService{
		editorRepository: editorRepository,
		jwtService:       jwtService,
	}
}

func (s *editorService) Login(ctx context.Context, req domain.EditorLoginRequest) (domain.EditorLoginResponse, error) {
	editor, err := s.editorRepository.GetEditorByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.EditorLoginResponse{}, domain.ErrEmailOrPasswordInvalid
		}
		return domain.EditorLoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(editor.Password), []byte(req.Password)); err != nil {
		return domain.EditorLoginResponse{}, domain.ErrEmailOrPasswordInvalid
	}

	token := s.jwtService.GenerateToken(editor.ID.String(), domain.RoleEditor)

	return domain.EditorLoginResponse{
		Token: token,
		Name:  editor.Name,
		Email: editor.Email,
	}, nil
}

func (s *editorService) Me(ctx context.Context, editorID string) (domain.EditorProfile, error) {
	editor, err := s.editorRepository.GetEditorByID(ctx, editorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.EditorProfile{}, domain.ErrEditorNotFound
		}
		return domain.EditorProfile{}, err
	}

	return domain.EditorProfile{
		ID:    editor.ID.String(),
		Name:  editor.Name,
		Email: editor.Email,
	}, nil
}
