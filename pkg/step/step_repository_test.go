package step

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

// testUUID builds ids whose lexical order matches n, so ordering
// assertions are deterministic.
func testUUID(n int) uuid.UUID {
	return uuid.MustParse(fmt.Sprintf("00000000-0000-0000-0000-%012d", n))
}

func seedStep(t *testing.T, db *gorm.DB) *entities.Step {
	t.Helper()
	cookbook := &entities.Cookbook{ID: testUUID(1), Name: "congee"}
	if err := db.Create(cookbook).Error; err != nil {
		t.Fatalf("create cookbook: %v", err)
	}
	step := &entities.Step{ID: testUUID(2), CookbookID: cookbook.ID, Name: "simmer"}
	if err := db.Create(step).Error; err != nil {
		t.Fatalf("create step: %v", err)
	}
	return step
}

func TestGetStepsOrderedByPriority(t *testing.T) {
	db := setupTestDB(t)
	repo := NewStepRepository(db)
	ctx := context.Background()

	cookbook := &entities.Cookbook{ID: testUUID(1), Name: "congee"}
	if err := db.Create(cookbook).Error; err != nil {
		t.Fatalf("create cookbook: %v", err)
	}

	steps := []*entities.Step{
		{ID: testUUID(12), CookbookID: cookbook.ID, Name: "serve", Priority: 3},
		{ID: testUUID(10), CookbookID: cookbook.ID, Name: "wash", Priority: 1},
		{ID: testUUID(11), CookbookID: cookbook.ID, Name: "simmer", Priority: 2},
	}
	for _, s := range steps {
		if err := db.Create(s).Error; err != nil {
			t.Fatalf("create step %s: %v", s.Name, err)
		}
	}

	got, err := repo.GetSteps(ctx, cookbook.ID.String())
	if err != nil {
		t.Fatalf("get steps: %v", err)
	}
	want := []string{"wash", "simmer", "serve"}
	if len(got) != len(want) {
		t.Fatalf("expected %d steps, got %d", len(want), len(got))
	}
	for i, name := range want {
		if got[i].Name != name {
			t.Fatalf("step %d: expected %q, got %q", i, name, got[i].Name)
		}
	}
}

func TestGetMaterialSetOrdering(t *testing.T) {
	db := setupTestDB(t)
	repo := NewStepRepository(db)
	ctx := context.Background()

	step := seedStep(t, db)

	materials := []*entities.Material{
		{ID: testUUID(10), Name: "rice", Type: entities.MaterialTypeFood},
		{ID: testUUID(11), Name: "salt", Type: entities.MaterialTypeCondiment},
		{ID: testUUID(12), Name: "pot", Type: entities.MaterialTypeTool},
	}
	for _, m := range materials {
		if err := db.Create(m).Error; err != nil {
			t.Fatalf("create material %s: %v", m.Name, err)
		}
	}

	// rice and pot share priority 0; the material id breaks the tie.
	links := []*entities.MaterialStepRelationship{
		{ID: testUUID(20), StepID: step.ID, MaterialID: testUUID(12), Priority: 0},
		{ID: testUUID(21), StepID: step.ID, MaterialID: testUUID(10), Priority: 0},
		{ID: testUUID(22), StepID: step.ID, MaterialID: testUUID(11), Priority: 1},
	}
	for _, link := range links {
		if err := db.Create(link).Error; err != nil {
			t.Fatalf("create link: %v", err)
		}
	}

	got, err := repo.GetMaterialSet(ctx, step.ID.String())
	if err != nil {
		t.Fatalf("get material set: %v", err)
	}
	want := []string{"rice", "pot", "salt"}
	if len(got) != len(want) {
		t.Fatalf("expected %d materials, got %d", len(want), len(got))
	}
	for i, name := range want {
		if got[i].Name != name {
			t.Fatalf("material %d: expected %q, got %q", i, name, got[i].Name)
		}
	}

	again, err := repo.GetMaterialSet(ctx, step.ID.String())
	if err != nil {
		t.Fatalf("get material set again: %v", err)
	}
	for i := range got {
		if got[i].ID != again[i].ID {
			t.Fatalf("ordering not stable at index %d", i)
		}
	}
}

func TestAddMaterialUpsertsExistingLink(t *testing.T) {
	db := setupTestDB(t)
	repo := NewStepRepository(db)
	ctx := context.Background()

	step := seedStep(t, db)
	material := &entities.Material{ID: testUUID(10), Name: "ginger", Type: entities.MaterialTypeCondiment}
	if err := db.Create(material).Error; err != nil {
		t.Fatalf("create material: %v", err)
	}

	created, err := repo.AddMaterial(ctx, step.ID.String(), material.ID.String(), "10g", 1)
	if err != nil {
		t.Fatalf("first add material: %v", err)
	}
	if !created {
		t.Fatalf("expected first add to create a row")
	}

	created, err = repo.AddMaterial(ctx, step.ID.String(), material.ID.String(), "20g", 2)
	if err != nil {
		t.Fatalf("second add material: %v", err)
	}
	if created {
		t.Fatalf("expected second add to update in place")
	}

	var links []*entities.MaterialStepRelationship
	if err := db.Where("step_id = ?", step.ID).Find(&links).Error; err != nil {
		t.Fatalf("load links: %v", err)
	}
	if len(links) != 1 {
		t.Fatalf("expected exactly 1 link, got %d", len(links))
	}
	if links[0].Amount != "20g" || links[0].Priority != 2 {
		t.Fatalf("expected updated amount/priority, got %q / %d", links[0].Amount, links[0].Priority)
	}
}

func TestDeleteStepKeepsMaterials(t *testing.T) {
	db := setupTestDB(t)
	repo := NewStepRepository(db)
	ctx := context.Background()

	step := seedStep(t, db)
	material := &entities.Material{ID: testUUID(10), Name: "scallion", Type: entities.MaterialTypeFood}
	if err := db.Create(material).Error; err != nil {
		t.Fatalf("create material: %v", err)
	}
	if _, err := repo.AddMaterial(ctx, step.ID.String(), material.ID.String(), "2 stalks", 1); err != nil {
		t.Fatalf("add material: %v", err)
	}

	if err := repo.DeleteStep(ctx, step.ID.String()); err != nil {
		t.Fatalf("delete step: %v", err)
	}

	var linkCount int64
	db.Model(&entities.MaterialStepRelationship{}).Count(&linkCount)
	if linkCount != 0 {
		t.Fatalf("expected links removed, got %d", linkCount)
	}
	if err := db.First(&entities.Material{}, "id = ?", material.ID).Error; err != nil {
		t.Fatalf("material must survive step deletion: %v", err)
	}
}
