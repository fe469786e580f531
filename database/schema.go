package database

import (
	"fmt"

	"github.com/goodzap/backoffice/models"
	"github.com/goodzap/backoffice/utils"
	"gorm.io/gorm"
)

// Prepare -> creates the tables when autoMigrate is set, then reports which
// tables the panel expects but the database does not have.
func Prepare(db *gorm.DB, autoMigrate bool) ([]string, error) {
	if autoMigrate {
		if err := db.AutoMigrate(models.All()...); err != nil {
			return nil, fmt.Errorf("auto migrate: %w", err)
		}
		utils.InfoLogger.Println("AutoMigrate completed.")
	}

	return MissingTables(db)
}

// MissingTables lists the table names of models absent from the database.
func MissingTables(db *gorm.DB) ([]string, error) {
	var missing []string
	for _, m := range models.All() {
		if db.Migrator().HasTable(m) {
			continue
		}
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(m); err != nil {
			return nil, fmt.Errorf("parse model %T: %w", m, err)
		}
		missing = append(missing, stmt.Schema.Table)
	}

	for _, t := range missing {
		utils.ErrorLogger.Printf("Table %s not found", t)
	}
	return missing, nil
}
