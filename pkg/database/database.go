package database

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"user-management-api/internal/config"
	"user-management-api/internal/models"
)

// Connect opens a database handle for the configured driver, applies pool
// settings and migrates the users table. The dialect is fixed at startup by
// DB_DRIVER; TranslateError makes duplicate-key failures dialect-agnostic.
func Connect(env config.EnvConfig) (*gorm.DB, error) {
	dialector, err := dialectorFor(env)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	if err := db.AutoMigrate(&models.User{}); err != nil {
		return nil, fmt.Errorf("failed to migrate users table: %w", err)
	}

	return db, nil
}

func dialectorFor(env config.EnvConfig) (gorm.Dialector, error) {
	switch env.DB.Driver {
	case "postgres":
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
			env.DB.Host, env.DB.User, env.DB.Pass, env.DB.Name, env.DB.Port,
		)
		return postgres.Open(dsn), nil
	case "mysql":
		dsn := fmt.Sprintf(
			"%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
			env.DB.User, env.DB.Pass, env.DB.Host, env.DB.Port, env.DB.Name,
		)
		return mysql.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", env.DB.Driver)
	}
}
