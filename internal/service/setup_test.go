package service

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"bookstore-api/internal/core/auth"
	"bookstore-api/internal/domain"
	"bookstore-api/internal/repo"
)

type testEnv struct {
	db         *gorm.DB
	auth       *AuthService
	books      *BookService
	categories *CategoryService
}

func setupServices(t *testing.T) (*testEnv, func()) {
	dbPath := "./test_service_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&domain.User{}, &domain.Category{}, &domain.Book{})
	require.NoError(t, err)

	jwter := &auth.JWTer{
		Secret:   []byte("test-secret"),
		Issuer:   "bookstore-api",
		Audience: "bookstore-client",
		TTL:      6 * time.Hour,
	}

	categoryRepo := repo.NewCategoryRepo(db)
	env := &testEnv{
		db:         db,
		auth:       NewAuthService(repo.NewUserRepo(db), jwter),
		books:      NewBookService(repo.NewBookRepo(db), categoryRepo),
		categories: NewCategoryService(categoryRepo),
	}
	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}
	return env, cleanup
}
