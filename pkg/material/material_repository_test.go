package material

import (
	"Cookbook-Backend/entities"
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&entities.Cookbook{},
		&entities.Step{},
		&entities.Material{},
		&entities.MaterialStepRelationship{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func testUUID(n int) uuid.UUID {
	return uuid.MustParse(fmt.Sprintf("00000000-0000-0000-0000-%012d", n))
}

func seedMaterials(t *testing.T, repo MaterialRepository) {
	t.Helper()
	materials := []*entities.Material{
		{ID: testUUID(1), Name: "chicken", Type: entities.MaterialTypeFood},
		{ID: testUUID(2), Name: "vinegar", Type: entities.MaterialTypeCondiment},
		{ID: testUUID(3), Name: "cleaver", Type: entities.MaterialTypeTool},
		{ID: testUUID(4), Name: "tofu", Type: entities.MaterialTypeFood},
	}
	for _, m := range materials {
		if err := repo.CreateMaterial(context.Background(), m); err != nil {
			t.Fatalf("create material %s: %v", m.Name, err)
		}
	}
}

func TestGetMaterialsTypeFilter(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMaterialRepository(db)
	ctx := context.Background()
	seedMaterials(t, repo)

	foods, count, err := repo.GetMaterials(ctx, entities.MaterialTypeFood, 1, 10)
	if err != nil {
		t.Fatalf("get food materials: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 food materials, got %d", count)
	}
	// name asc
	if foods[0].Name != "chicken" || foods[1].Name != "tofu" {
		t.Fatalf("unexpected food listing: %v, %v", foods[0].Name, foods[1].Name)
	}
	for _, m := range foods {
		if m.Type != entities.MaterialTypeFood {
			t.Fatalf("filter leaked type %v", m.Type)
		}
	}

	all, count, err := repo.GetMaterials(ctx, 0, 1, 10)
	if err != nil {
		t.Fatalf("get all materials: %v", err)
	}
	if count != 4 || len(all) != 4 {
		t.Fatalf("expected 4 materials without filter, got count=%d len=%d", count, len(all))
	}
}

func TestGetMaterialsPagination(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMaterialRepository(db)
	ctx := context.Background()
	seedMaterials(t, repo)

	page1, count, err := repo.GetMaterials(ctx, 0, 1, 3)
	if err != nil {
		t.Fatalf("get page 1: %v", err)
	}
	if count != 4 || len(page1) != 3 {
		t.Fatalf("expected count=4 len=3 on page 1, got count=%d len=%d", count, len(page1))
	}

	page2, _, err := repo.GetMaterials(ctx, 0, 2, 3)
	if err != nil {
		t.Fatalf("get page 2: %v", err)
	}
	if len(page2) != 1 {
		t.Fatalf("expected 1 material on page 2, got %d", len(page2))
	}
}

func TestDeleteMaterialKeepsSteps(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMaterialRepository(db)
	ctx := context.Background()

	cookbook := &entities.Cookbook{ID: testUUID(10), Name: "kung pao chicken"}
	if err := db.Create(cookbook).Error; err != nil {
		t.Fatalf("create cookbook: %v", err)
	}
	step := &entities.Step{ID: testUUID(11), CookbookID: cookbook.ID, Name: "stir fry"}
	if err := db.Create(step).Error; err != nil {
		t.Fatalf("create step: %v", err)
	}
	material := &entities.Material{ID: testUUID(12), Name: "peanut", Type: entities.MaterialTypeFood}
	if err := repo.CreateMaterial(ctx, material); err != nil {
		t.Fatalf("create material: %v", err)
	}
	link := &entities.MaterialStepRelationship{ID: testUUID(13), StepID: step.ID, MaterialID: material.ID}
	if err := db.Create(link).Error; err != nil {
		t.Fatalf("create link: %v", err)
	}

	if err := repo.DeleteMaterial(ctx, material.ID.String()); err != nil {
		t.Fatalf("delete material: %v", err)
	}

	var linkCount int64
	db.Model(&entities.MaterialStepRelationship{}).Count(&linkCount)
	if linkCount != 0 {
		t.Fatalf("expected links removed, got %d", linkCount)
	}
	if err := db.First(&entities.Step{}, "id = ?", step.ID).Error; err != nil {
		t.Fatalf("step must survive material deletion: %v", err)
	}
}
