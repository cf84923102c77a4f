package main

import (
	"context"
	"duty-service/internal/app/config"
	"duty-service/internal/app/delivery/http/controllers"
	"duty-service/internal/app/delivery/http/middlewares"
	"duty-service/internal/app/delivery/http/routers"
	"duty-service/internal/app/drivers/logger"
	"duty-service/internal/app/drivers/storage"
	"duty-service/internal/app/services/core/duty"
	"duty-service/internal/app/services/shared/dutydata"
	"duty-service/internal/app/services/shared/metrics"
	"duty-service/internal/pkg/constvars"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	if err := config.Validate(driverConfig, internalConfig); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := logger.NewZapLogger(driverConfig, internalConfig)

	bootstrap := config.Bootstrap{
		Router:         chi.NewRouter(),
		Logger:         logger,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}
	if internalConfig.Duty.DataSource == constvars.DutyDataSourceMinio {
		bootstrap.Minio = storage.NewMinio(driverConfig)
	}

	if err := bootstrapingTheApp(&bootstrap); err != nil {
		logger.Fatal("Failed to bootstrap the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:         internalConfig.App.Port,
		Handler:      bootstrap.Router,
		ReadTimeout:  time.Second * time.Duration(internalConfig.App.ReadTimeoutInSeconds),
		WriteTimeout: time.Second * time.Duration(internalConfig.App.WriteTimeoutInSeconds),
	}

	go func() {
		logger.Info("Server started",
			zap.String("address", internalConfig.App.Port),
			zap.String("webhook_path", internalConfig.App.WebhookPath),
			zap.String(constvars.LoggingStrategyKey, internalConfig.Duty.Strategy),
		)
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logger.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Printf("Bootstrap shutdown returned: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	dutyConfig := bootstrap.InternalConfig.Duty

	// Duty data
	var source dutydata.Source
	switch dutyConfig.DataSource {
	case constvars.DutyDataSourceMinio:
		source = dutydata.NewMinioSource(bootstrap.Minio, bootstrap.DriverConfig.Minio.BucketName, dutyConfig.DataDir)
	default:
		source = dutydata.NewFileSource(dutyConfig.DataDir)
	}

	loadCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	dutyData, err := dutydata.NewLoader(source, bootstrap.Logger).Load(loadCtx, dutyConfig)
	if err != nil {
		return err
	}

	// Duty
	resolver, err := duty.NewDutyResolver(dutyConfig, dutyData)
	if err != nil {
		return err
	}

	skillMetrics := metrics.NewSkillMetrics(bootstrap.InternalConfig.App.MetricsNamespace)
	dutyUsecase := duty.NewDutyUsecase(resolver, bootstrap.InternalConfig, skillMetrics, bootstrap.Logger)
	dutyController := controllers.NewDutyController(bootstrap.Logger, dutyUsecase, bootstrap.InternalConfig, skillMetrics)

	// Health
	healthController := controllers.NewHealthController(bootstrap.Logger)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		dutyController,
		healthController,
		skillMetrics.Handler(),
	)
	return nil
}
