package cookbook

import (
	"Cookbook-Backend/domain"
	"Cookbook-Backend/entities"
	"Cookbook-Backend/pkg/step"
	"context"
	"errors"
	"testing"
)

func TestServiceMapsMissingCookbookError(t *testing.T) {
	db := setupTestDB(t)
	service := NewCookbookService(NewCookbookRepository(db), step.NewStepRepository(db), nil)
	ctx := context.Background()
	missing := testUUID(99).String()

	if _, err := service.GetCookbookDetail(ctx, missing, ScopeAll); !errors.Is(err, domain.ErrCookbookNotFound) {
		t.Fatalf("expected cookbook not found on detail, got %v", err)
	}
	if err := service.UpdateCookbook(ctx, missing, domain.UpdateCookbookRequest{Name: "x"}); !errors.Is(err, domain.ErrCookbookNotFound) {
		t.Fatalf("expected cookbook not found on update, got %v", err)
	}
	if err := service.DeleteCookbook(ctx, missing); !errors.Is(err, domain.ErrCookbookNotFound) {
		t.Fatalf("expected cookbook not found on delete, got %v", err)
	}
	if _, err := service.AddTag(ctx, missing, domain.AddCookbookTagRequest{TagID: testUUID(1).String()}); !errors.Is(err, domain.ErrCookbookNotFound) {
		t.Fatalf("expected cookbook not found on add tag, got %v", err)
	}
}

func TestServiceAddTagReportsCreated(t *testing.T) {
	db := setupTestDB(t)
	service := NewCookbookService(NewCookbookRepository(db), step.NewStepRepository(db), nil)
	ctx := context.Background()

	created, err := service.CreateCookbook(ctx, domain.CreateCookbookRequest{Name: "char siu"})
	if err != nil {
		t.Fatalf("create cookbook: %v", err)
	}
	if created.Checked {
		t.Fatalf("new cookbooks must start unchecked")
	}

	tagID := testUUID(5)
	if err := db.Create(&entities.CookbookTag{ID: tagID, Name: "cantonese"}).Error; err != nil {
		t.Fatalf("create tag: %v", err)
	}

	resp, err := service.AddTag(ctx, created.ID, domain.AddCookbookTagRequest{TagID: tagID.String()})
	if err != nil {
		t.Fatalf("first add tag: %v", err)
	}
	if !resp.Created {
		t.Fatalf("expected first add to report created")
	}

	resp, err = service.AddTag(ctx, created.ID, domain.AddCookbookTagRequest{TagID: tagID.String()})
	if err != nil {
		t.Fatalf("second add tag: %v", err)
	}
	if resp.Created {
		t.Fatalf("expected second add to report not created")
	}
}
