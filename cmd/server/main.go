package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"secondhand-market/docs"
	"secondhand-market/internal/config"
	mydb "secondhand-market/internal/db"
	"secondhand-market/internal/handler"
	"secondhand-market/internal/logger"
	"secondhand-market/internal/mapper"
	"secondhand-market/internal/metrics"
	"secondhand-market/internal/router"
	"secondhand-market/internal/service"
)

// @title        Secondhand Market API
// @version      1.0
// @description  User profiles, product listings and categories of the secondhand market.
// @BasePath     /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	l := logger.New(cfg.Primary.Env)
	log.Logger = l

	db, err := mydb.Open(cfg.Database, l)
	if err != nil {
		l.Fatal().Err(err).Msg("failed to open database")
	}
	sqlDB, err := db.DB()
	if err != nil {
		l.Fatal().Err(err).Msg("failed to get sql.DB")
	}
	defer sqlDB.Close()

	m := metrics.New()

	users := service.NewUserService(mapper.NewUserProfileMapper(db))
	categoryMapper := mapper.NewCategoryMapper(db)
	fileMapper := mapper.NewFileMapper(db)
	products := service.NewProductService(mapper.NewProductMapper(db), users, categoryMapper, fileMapper)

	handlers := &handler.Handlers{
		Profile:  handler.NewProfileHandler(users),
		Product:  handler.NewProductHandler(products, m),
		Category: handler.NewCategoryHandler(service.NewCategoryService(categoryMapper)),
		Auth:     handler.NewAuthHandler(users, m),
		File:     handler.NewFileHandler(service.NewFileService(fileMapper, cfg.Server.UploadDir), m),
		Health:   handler.NewHealthHandler(sqlDB),
		Docs:     handler.NewDocsHandler(docs.SwaggerInfo.InstanceName()),
	}

	r, err := router.New(router.Deps{
		Config:   cfg,
		Logger:   l,
		Metrics:  m,
		Handlers: handlers,
	})
	if err != nil {
		l.Fatal().Err(err).Msg("failed to build router")
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		l.Info().Str("addr", srv.Addr).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			l.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	l.Info().Msg("shutting down")
	if err := srv.Shutdown(ctx); err != nil {
		l.Error().Err(err).Msg("forced shutdown")
	}
}
