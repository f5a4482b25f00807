package db

import (
	"fintrack/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus"

	"gorm.io/driver/mysql" // MySQL driver for GORM
	"gorm.io/gorm"         // GORM ORM library
)

// Models returns every persisted model, in migration order.
func Models() []any {
	return []any{
		&domain.User{},
		&domain.Income{},
		&domain.Expense{},
		&domain.Budget{},
		&domain.BudgetCategory{},
		&domain.Goal{},
		&domain.Notification{},
		&domain.Profile{},
	}
}

// Migrate performs automatic migration for the database schema
func Migrate(dsn string) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err)
	}
	// AutoMigrate will create tables, missing foreign keys, constraints, columns and indexes
	if err := db.AutoMigrate(Models()...); err != nil {
		logrus.Fatalf("migration failed: %v", err)
	}
	logrus.Info("Migration completed.")
}
