package cookbook

import (
	"Cookbook-Backend/entities"
	"context"
	"errors"
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
		&entities.CookbookTag{},
		&entities.TagCookbookRelationship{},
		&entities.Step{},
		&entities.Material{},
		&entities.MaterialStepRelationship{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// testUUID builds ids whose lexical order matches n, so ordering
// assertions are deterministic.
func testUUID(n int) uuid.UUID {
	return uuid.MustParse(fmt.Sprintf("00000000-0000-0000-0000-%012d", n))
}

func TestPublicScopeTracksCheckedFlag(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCookbookRepository(db)
	ctx := context.Background()

	cookbook := &entities.Cookbook{ID: testUUID(1), Name: "braised pork"}
	if err := repo.CreateCookbook(ctx, cookbook); err != nil {
		t.Fatalf("create cookbook: %v", err)
	}

	_, count, err := repo.GetCookbooks(ctx, ScopePublic, 1, 10)
	if err != nil {
		t.Fatalf("get public cookbooks: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected 0 public cookbooks, got %d", count)
	}

	_, count, err = repo.GetCookbooks(ctx, ScopeAll, 1, 10)
	if err != nil {
		t.Fatalf("get all cookbooks: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 cookbook in all scope, got %d", count)
	}

	if _, err := repo.GetCookbookByID(ctx, cookbook.ID.String(), ScopePublic); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected record not found in public scope, got %v", err)
	}

	if err := repo.SetChecked(ctx, cookbook.ID.String(), true); err != nil {
		t.Fatalf("set checked: %v", err)
	}

	_, count, err = repo.GetCookbooks(ctx, ScopePublic, 1, 10)
	if err != nil {
		t.Fatalf("get public cookbooks after check: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 public cookbook after check, got %d", count)
	}

	if _, err := repo.GetCookbookByID(ctx, cookbook.ID.String(), ScopePublic); err != nil {
		t.Fatalf("expected public fetch to succeed after check: %v", err)
	}
}

func TestSetCheckedMissingCookbook(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCookbookRepository(db)

	err := repo.SetChecked(context.Background(), testUUID(99).String(), true)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected record not found, got %v", err)
	}
}

func TestAddTagIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCookbookRepository(db)
	ctx := context.Background()

	cookbook := &entities.Cookbook{ID: testUUID(1), Name: "dumplings"}
	if err := repo.CreateCookbook(ctx, cookbook); err != nil {
		t.Fatalf("create cookbook: %v", err)
	}
	tag := &entities.CookbookTag{ID: testUUID(2), Name: "northern"}
	if err := db.Create(tag).Error; err != nil {
		t.Fatalf("create tag: %v", err)
	}

	created, err := repo.AddTag(ctx, cookbook.ID.String(), tag.ID.String())
	if err != nil {
		t.Fatalf("first add tag: %v", err)
	}
	if !created {
		t.Fatalf("expected first add to create a row")
	}

	created, err = repo.AddTag(ctx, cookbook.ID.String(), tag.ID.String())
	if err != nil {
		t.Fatalf("second add tag: %v", err)
	}
	if created {
		t.Fatalf("expected second add to be a no-op")
	}

	var count int64
	if err := db.Model(&entities.TagCookbookRelationship{}).
		Where("cookbook_id = ? AND tag_id = ?", cookbook.ID, tag.ID).
		Count(&count).Error; err != nil {
		t.Fatalf("count relationships: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly 1 relationship row, got %d", count)
	}

	var relationship entities.TagCookbookRelationship
	if err := db.First(&relationship).Error; err != nil {
		t.Fatalf("load relationship: %v", err)
	}
	if relationship.Like != 0 || relationship.Unlike != 0 {
		t.Fatalf("expected fresh counters, got like=%d unlike=%d", relationship.Like, relationship.Unlike)
	}
}

func TestGetMaterialsDistinctUnion(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCookbookRepository(db)
	ctx := context.Background()

	cookbook := &entities.Cookbook{ID: testUUID(1), Name: "fried rice"}
	if err := repo.CreateCookbook(ctx, cookbook); err != nil {
		t.Fatalf("create cookbook: %v", err)
	}

	step1 := &entities.Step{ID: testUUID(2), CookbookID: cookbook.ID, Name: "prep"}
	step2 := &entities.Step{ID: testUUID(3), CookbookID: cookbook.ID, Name: "fry"}
	if err := db.Create(step1).Error; err != nil {
		t.Fatalf("create step1: %v", err)
	}
	if err := db.Create(step2).Error; err != nil {
		t.Fatalf("create step2: %v", err)
	}

	shared := &entities.Material{ID: testUUID(10), Name: "rice", Type: entities.MaterialTypeFood}
	only1 := &entities.Material{ID: testUUID(11), Name: "egg", Type: entities.MaterialTypeFood}
	unlinked := &entities.Material{ID: testUUID(12), Name: "wok", Type: entities.MaterialTypeTool}
	for _, m := range []*entities.Material{shared, only1, unlinked} {
		if err := db.Create(m).Error; err != nil {
			t.Fatalf("create material %s: %v", m.Name, err)
		}
	}

	links := []*entities.MaterialStepRelationship{
		{ID: testUUID(20), StepID: step1.ID, MaterialID: shared.ID},
		{ID: testUUID(21), StepID: step2.ID, MaterialID: shared.ID},
		{ID: testUUID(22), StepID: step1.ID, MaterialID: only1.ID},
	}
	for _, link := range links {
		if err := db.Create(link).Error; err != nil {
			t.Fatalf("create link: %v", err)
		}
	}

	materials, err := repo.GetMaterials(ctx, cookbook.ID.String())
	if err != nil {
		t.Fatalf("get materials: %v", err)
	}
	if len(materials) != 2 {
		t.Fatalf("expected 2 distinct materials, got %d", len(materials))
	}

	seen := map[uuid.UUID]int{}
	for _, m := range materials {
		seen[m.ID]++
	}
	if seen[shared.ID] != 1 {
		t.Fatalf("expected shared material exactly once, got %d", seen[shared.ID])
	}
	if seen[only1.ID] != 1 {
		t.Fatalf("expected step1 material exactly once, got %d", seen[only1.ID])
	}
	if seen[unlinked.ID] != 0 {
		t.Fatalf("unlinked material must not appear")
	}
}

func TestDeleteCookbookCascadesToStepsOnly(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCookbookRepository(db)
	ctx := context.Background()

	cookbook := &entities.Cookbook{ID: testUUID(1), Name: "hotpot"}
	other := &entities.Cookbook{ID: testUUID(2), Name: "noodles"}
	if err := repo.CreateCookbook(ctx, cookbook); err != nil {
		t.Fatalf("create cookbook: %v", err)
	}
	if err := repo.CreateCookbook(ctx, other); err != nil {
		t.Fatalf("create other cookbook: %v", err)
	}

	step := &entities.Step{ID: testUUID(3), CookbookID: cookbook.ID, Name: "boil"}
	if err := db.Create(step).Error; err != nil {
		t.Fatalf("create step: %v", err)
	}

	material := &entities.Material{ID: testUUID(10), Name: "beef", Type: entities.MaterialTypeFood}
	if err := db.Create(material).Error; err != nil {
		t.Fatalf("create material: %v", err)
	}
	link := &entities.MaterialStepRelationship{ID: testUUID(20), StepID: step.ID, MaterialID: material.ID}
	if err := db.Create(link).Error; err != nil {
		t.Fatalf("create link: %v", err)
	}

	tag := &entities.CookbookTag{ID: testUUID(30), Name: "sichuan"}
	if err := db.Create(tag).Error; err != nil {
		t.Fatalf("create tag: %v", err)
	}
	if _, err := repo.AddTag(ctx, cookbook.ID.String(), tag.ID.String()); err != nil {
		t.Fatalf("add tag: %v", err)
	}

	if err := repo.DeleteCookbook(ctx, cookbook.ID.String()); err != nil {
		t.Fatalf("delete cookbook: %v", err)
	}

	var stepCount int64
	db.Model(&entities.Step{}).Where("cookbook_id = ?", cookbook.ID).Count(&stepCount)
	if stepCount != 0 {
		t.Fatalf("expected steps to be cascade deleted, got %d", stepCount)
	}

	var linkCount int64
	db.Model(&entities.MaterialStepRelationship{}).Count(&linkCount)
	if linkCount != 0 {
		t.Fatalf("expected material links removed, got %d", linkCount)
	}

	var tagLinkCount int64
	db.Model(&entities.TagCookbookRelationship{}).Count(&tagLinkCount)
	if tagLinkCount != 0 {
		t.Fatalf("expected tag links removed, got %d", tagLinkCount)
	}

	if err := db.First(&entities.Material{}, "id = ?", material.ID).Error; err != nil {
		t.Fatalf("shared material must survive cookbook deletion: %v", err)
	}
	if err := db.First(&entities.CookbookTag{}, "id = ?", tag.ID).Error; err != nil {
		t.Fatalf("shared tag must survive cookbook deletion: %v", err)
	}
	if err := db.First(&entities.Cookbook{}, "id = ?", other.ID).Error; err != nil {
		t.Fatalf("unrelated cookbook must survive: %v", err)
	}
}
