package db

import (
	"fmt" // Error wrapping

	"user_directory/internal/domain" // Importing domain models

	"gorm.io/driver/mysql"  // MySQL driver for GORM
	"gorm.io/driver/sqlite" // SQLite driver for GORM
	"gorm.io/gorm"          // GORM ORM library
	"gorm.io/gorm/clause"   // Upsert clause
	"gorm.io/gorm/logger"   // GORM logger levels
)

// Open connects to the export target; driver is "mysql" or "sqlite"
func Open(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "mysql":
		dialector = mysql.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported driver %q", driver)
	}
	db, err := gorm.Open(dialector, &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", driver, err)
	}
	return db, nil
}

// Export creates the users table if needed and upserts users into it. When
// several users share an id the last one wins. It returns the number of
// distinct ids written.
func Export(db *gorm.DB, users []domain.User) (int, error) {
	// AutoMigrate will create the table, missing columns and indexes
	if err := db.AutoMigrate(&domain.User{}); err != nil {
		return 0, fmt.Errorf("migrate users table: %w", err)
	}

	rows := dedupe(users)
	if len(rows) == 0 {
		return 0, nil
	}
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "role"}),
	}).Create(&rows).Error
	if err != nil {
		return 0, fmt.Errorf("upsert users: %w", err)
	}
	return len(rows), nil
}

func dedupe(users []domain.User) []domain.User {
	pos := make(map[int64]int, len(users))
	rows := make([]domain.User, 0, len(users))
	for _, u := range users {
		if i, ok := pos[u.ID]; ok {
			rows[i] = u
			continue
		}
		pos[u.ID] = len(rows)
		rows = append(rows, u)
	}
	return rows
}
