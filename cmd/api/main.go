package main

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	dbadapter "github.com/go-to-sky/onelife/internal/adapter/db"
	httpadapter "github.com/go-to-sky/onelife/internal/adapter/http"
	"github.com/go-to-sky/onelife/internal/adapter/http/handlers"
	httpmiddleware "github.com/go-to-sky/onelife/internal/adapter/http/middleware"
	"github.com/go-to-sky/onelife/internal/app/service"
	"github.com/go-to-sky/onelife/internal/config"
	"github.com/go-to-sky/onelife/pkg/translator"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  "pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageEn, translator.LanguageZh},
	})

	cfg := config.LoadConfig()
	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to mysql", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close mysql connection", zap.Error(err))
		}
	}()

	taskRepository := dbadapter.NewTaskRepository(db)
	exhibitRepository := dbadapter.NewExhibitRepository(db)
	tagRepository := dbadapter.NewTagRepository(db)
	categoryRepository := dbadapter.NewCategoryRepository(db)
	commentRepository := dbadapter.NewCommentRepository(db)

	taskService := service.NewTaskService(taskRepository)
	categoryService := service.NewCategoryService(categoryRepository)
	exhibitService := service.NewExhibitService(exhibitRepository, tagRepository, commentRepository, categoryService)
	commentService := service.NewCommentService(commentRepository, exhibitRepository)

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.RequestLogger(logger))
	if len(cfg.TrustedProxies) > 0 {
		if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
			logger.Fatal("invalid trusted proxies", zap.Error(err))
		}
	}

	httpadapter.RegisterRoutes(r, httpadapter.Handlers{
		Health:   handlers.NewHealthHandler(db),
		Task:     handlers.NewTaskHandler(taskService),
		Exhibit:  handlers.NewExhibitHandler(exhibitService),
		Category: handlers.NewCategoryHandler(categoryService),
		Comment:  handlers.NewCommentHandler(commentService),
	})

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	addr := ":" + port
	logger.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}
