package handlers_test

import (
	"Inventario/internal/config"
	"Inventario/internal/handlers"
	"Inventario/internal/model"
	"Inventario/internal/repo"
	"Inventario/internal/service"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"

	"go.uber.org/zap"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

var testDBSeq atomic.Int64

// testApp is the whole application wired against a fresh in-memory SQLite,
// services exposed so tests can seed data directly.
type testApp struct {
	Router     http.Handler
	Users      *service.UserService
	Products   *service.ProductService
	Suppliers  *service.SupplierService
	Categories *service.CategoryService
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	dsn := fmt.Sprintf("file:handlertest%d?mode=memory&cache=shared", testDBSeq.Add(1))
	dial := gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}
	db, err := gorm.Open(dial, &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(
		&model.User{}, &model.Product{}, &model.Supplier{}, &model.Category{}, &model.Counter{},
	); err != nil {
		t.Fatalf("failed to automigrate: %v", err)
	}

	cfg := &config.Config{AuthSecret: "test-secret", BaseURL: "localhost:0"}
	logger := zap.NewNop().Sugar()

	seq := repo.NewSequenceAllocator(db)
	userRepo := repo.NewUserRepository(db)
	productRepo := repo.NewProductRepository(db)
	supplierRepo := repo.NewSupplierRepository(db)
	categoryRepo := repo.NewCategoryRepository(db)

	users := service.NewUserService(userRepo, seq)
	categories := service.NewCategoryService(categoryRepo)
	suppliers := service.NewSupplierService(supplierRepo)
	products := service.NewProductService(productRepo, categoryRepo, supplierRepo)

	h := handlers.NewHandler(users, products, suppliers, categories, logger, cfg)
	return &testApp{
		Router:     h.Router,
		Users:      users,
		Products:   products,
		Suppliers:  suppliers,
		Categories: categories,
	}
}

// postForm submits an urlencoded form the way a browser would.
func postForm(t *testing.T, router http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func get(t *testing.T, router http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}
