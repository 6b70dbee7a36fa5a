//go:build integration
// +build integration

package tests

import (
	"fmt"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	_ "github.com/go-sql-driver/mysql"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	dbadapter "github.com/go-to-sky/onelife/internal/adapter/db"
	httpadapter "github.com/go-to-sky/onelife/internal/adapter/http"
	"github.com/go-to-sky/onelife/internal/adapter/http/handlers"
	appservice "github.com/go-to-sky/onelife/internal/app/service"
	"github.com/go-to-sky/onelife/pkg/translator"
)

type IntegrationSuiteBase struct {
	suite.Suite

	adminDB    *sqlx.DB
	DB         *sqlx.DB
	testDBName string
}

func (s *IntegrationSuiteBase) SetupSuite() {
	gin.SetMode(gin.TestMode)
	translator.InitTranslator(translator.Config{
		TranslationFolder:  filepath.Join(projectRoot(s.T()), "pkg", "translator", "translation"),
		SupportedLanguages: []string{translator.LanguageEn, translator.LanguageZh},
	})

	host := envOrDefault("MYSQL_HOST", "127.0.0.1")
	port := envOrDefault("MYSQL_PORT", "3306")
	rootUser := envOrDefault("MYSQL_ROOT_USER", "root")
	rootPassword := envOrDefault("MYSQL_ROOT_PASSWORD", "root")
	database := envOrDefault("MYSQL_TEST_DATABASE", envOrDefault("MYSQL_DATABASE", "onelife")+"_test")
	params := envOrDefault("MYSQL_PARAMS", "parseTime=true&multiStatements=true")

	adminDB, err := sqlx.Connect("mysql", mysqlDSN(rootUser, rootPassword, host, port, "", params))
	if err != nil {
		s.T().Skipf("skipping integration suite: could not connect to mysql: %v", err)
	}
	s.adminDB = adminDB

	_, err = s.adminDB.Exec(fmt.Sprintf("CREATE DATABASE IF NOT EXISTS `%s`", database))
	s.Require().NoError(err)

	db, err := sqlx.Connect("mysql", mysqlDSN(rootUser, rootPassword, host, port, database, params))
	s.Require().NoError(err)
	s.DB = db
	s.testDBName = database
}

func (s *IntegrationSuiteBase) TearDownSuite() {
	if s.DB != nil {
		s.Require().NoError(s.DB.Close())
	}

	// Drop test database to keep local environment clean after integration runs.
	if s.adminDB != nil && s.testDBName != "" && strings.HasSuffix(s.testDBName, "_test") {
		_, err := s.adminDB.Exec(fmt.Sprintf("DROP DATABASE IF EXISTS `%s`", s.testDBName))
		s.Require().NoError(err)
	}

	if s.adminDB != nil {
		s.Require().NoError(s.adminDB.Close())
	}
}

func (s *IntegrationSuiteBase) ResetDatabase() {
	applyTestMigrations(s.T(), s.DB)
}

// NewRouter wires the full HTTP stack against the test database.
func (s *IntegrationSuiteBase) NewRouter() *gin.Engine {
	taskRepository := dbadapter.NewTaskRepository(s.DB)
	exhibitRepository := dbadapter.NewExhibitRepository(s.DB)
	tagRepository := dbadapter.NewTagRepository(s.DB)
	categoryRepository := dbadapter.NewCategoryRepository(s.DB)
	commentRepository := dbadapter.NewCommentRepository(s.DB)

	taskService := appservice.NewTaskService(taskRepository)
	categoryService := appservice.NewCategoryService(categoryRepository)
	exhibitService := appservice.NewExhibitService(exhibitRepository, tagRepository, commentRepository, categoryService)
	commentService := appservice.NewCommentService(commentRepository, exhibitRepository)

	router := gin.New()
	httpadapter.RegisterRoutes(router, httpadapter.Handlers{
		Health:   handlers.NewHealthHandler(s.DB),
		Task:     handlers.NewTaskHandler(taskService),
		Exhibit:  handlers.NewExhibitHandler(exhibitService),
		Category: handlers.NewCategoryHandler(categoryService),
		Comment:  handlers.NewCommentHandler(commentService),
	})
	return router
}

func (s *IntegrationSuiteBase) SeedUser(id, name string, admin bool) {
	_, err := s.DB.Exec(
		"INSERT INTO users (id, name, email, is_admin, created_at, updated_at) VALUES (?, ?, ?, ?, NOW(3), NOW(3))",
		id, name, id+"@example.com", admin)
	s.Require().NoError(err)
}

func (s *IntegrationSuiteBase) SeedCategory(id, name, slug string) {
	_, err := s.DB.Exec(
		"INSERT INTO categories (id, name, slug, created_at, updated_at) VALUES (?, ?, ?, NOW(3), NOW(3))",
		id, name, slug)
	s.Require().NoError(err)
}

func (s *IntegrationSuiteBase) Do(router *gin.Engine, method, target, body, userID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Accept-Language", translator.LanguageEn)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func (s *IntegrationSuiteBase) DoAsAdmin(router *gin.Engine, method, target, body, userID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Accept-Language", translator.LanguageEn)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", userID)
	req.Header.Set("X-User-Admin", "1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func applyTestMigrations(t *testing.T, db *sqlx.DB) {
	t.Helper()

	_, err := db.Exec(`
DROP TABLE IF EXISTS comments;
DROP TABLE IF EXISTS exhibit_tags;
DROP TABLE IF EXISTS exhibits;
DROP TABLE IF EXISTS tasks;
DROP TABLE IF EXISTS tags;
DROP TABLE IF EXISTS categories;
DROP TABLE IF EXISTS users;
`)
	require.NoError(t, err)

	for _, file := range []string{
		"000001_create_users.up.sql",
		"000002_create_categories.up.sql",
		"000003_create_tags.up.sql",
		"000004_create_exhibits.up.sql",
		"000005_create_comments.up.sql",
		"000006_create_tasks.up.sql",
	} {
		content, readErr := os.ReadFile(filepath.Join(projectRoot(t), "db", "migrations", file))
		require.NoError(t, readErr)
		_, execErr := db.Exec(string(content))
		require.NoError(t, execErr)
	}
}

func projectRoot(t *testing.T) string {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	require.True(t, ok)
	return filepath.Clean(filepath.Join(filepath.Dir(thisFile), "..", "..", "..", ".."))
}

func mysqlDSN(user, password, host, port, database, params string) string {
	if database == "" {
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/?%s", user, password, host, port, params)
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, password, host, port, database, params)
}

func envOrDefault(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
