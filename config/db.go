package config

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ConnectDB opens the PostgreSQL connection using Gorm
func ConnectDB() (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(DBDsn), &gorm.Config{})
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return nil, err
	}

	fmt.Println("✅ Connected to database")
	return db, nil
}
