package main

import (
	"Inventario/internal/config"
	"Inventario/internal/handlers"
	"Inventario/internal/middleware"
	"Inventario/internal/repo"
	"Inventario/internal/service"
	"net/http"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	cfg := config.NewConfig()

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	sugar := logger.Sugar()
	middleware.SetLogger(sugar)
	defer func() {
		_ = logger.Sync()
	}()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN, cfg.DBTimeout())
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	seq := repo.NewSequenceAllocator(gormDB)
	userRepo := repo.NewUserRepository(gormDB)
	productRepo := repo.NewProductRepository(gormDB)
	supplierRepo := repo.NewSupplierRepository(gormDB)
	categoryRepo := repo.NewCategoryRepository(gormDB)

	userService := service.NewUserService(userRepo, seq)
	categoryService := service.NewCategoryService(categoryRepo)
	supplierService := service.NewSupplierService(supplierRepo)
	productService := service.NewProductService(productRepo, categoryRepo, supplierRepo)

	h := handlers.NewHandler(userService, productService, supplierService, categoryService, sugar, cfg)

	sugar.Infow("starting server",
		"addr", cfg.BaseURL,
		"db", cfg.DatabaseDSN != "",
	)

	if err := http.ListenAndServe(cfg.BaseURL, h.Router); err != nil {
		sugar.Fatalw("server failed", "error", err)
	}
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	zcfg := zap.NewDevelopmentConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	return zcfg.Build()
}
