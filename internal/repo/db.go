package repo

import (
	"Inventario/internal/model"
	"context"
	"time"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

// InitDB opens the database and runs migrations. An empty DSN falls back to
// an in-memory SQLite (modernc.org/sqlite), which is enough for local
// development without a Postgres around.
//
// FK constraints are intentionally not created: referential integrity is
// the application's job, and deleting a referenced category/supplier must
// succeed and leave a dangling reference (see ListWithRefs).
func InitDB(dsn string, timeout time.Duration) (*gorm.DB, error) {
	var dial gorm.Dialector
	if dsn == "" {
		dial = gormsqlite.Dialector{DriverName: "sqlite", DSN: "file::memory:?cache=shared"}
	} else {
		dial = postgres.Open(dsn)
	}

	db, err := gorm.Open(dial, &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if dsn == "" {
		// shared-cache in-memory sqlite cannot take concurrent writers
		sqlDB.SetMaxOpenConns(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&model.User{},
		&model.Product{},
		&model.Supplier{},
		&model.Category{},
		&model.Counter{},
	); err != nil {
		return nil, err
	}
	return db, nil
}
