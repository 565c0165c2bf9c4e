package migration

import (
	"Cookbook-Backend/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.EditorUser{}); err != nil {
		log.Fatalf("Error migrating editor user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Cookbook{}); err != nil {
		log.Fatalf("Error migrating cookbook database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.CookbookTag{}); err != nil {
		log.Fatalf("Error migrating cookbook tag database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.TagCookbookRelationship{}); err != nil {
		log.Fatalf("Error migrating tag cookbook relationship database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Step{}); err != nil {
		log.Fatalf("Error migrating step database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Material{}); err != nil {
		log.Fatalf("Error migrating material database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.MaterialStepRelationship{}); err != nil {
		log.Fatalf("Error migrating material step relationship database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
