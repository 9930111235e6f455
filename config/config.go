package config

import (
	"fmt"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// InitDB opens the document database. MYSQL_DSN selects MySQL; otherwise a
// local sqlite file is used (SQLITE_PATH, default storefront.db), which is
// all a single-storefront deployment needs.
func InitDB() (*gorm.DB, error) {
	if dsn := os.Getenv("MYSQL_DSN"); dsn != "" {
		db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("connect mysql: %w", err)
		}
		return db, nil
	}

	path := os.Getenv("SQLITE_PATH")
	if path == "" {
		path = "storefront.db"
	}
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	return db, nil
}
