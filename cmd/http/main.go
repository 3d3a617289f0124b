package main

import (
	"abdm-link-service/internal/app/config"
	"abdm-link-service/internal/app/delivery/http/controllers"
	"abdm-link-service/internal/app/delivery/http/middlewares"
	"abdm-link-service/internal/app/delivery/http/routers"
	"abdm-link-service/internal/app/drivers/database"
	"abdm-link-service/internal/app/drivers/logger"
	"abdm-link-service/internal/app/drivers/messaging"
	abdmFlows "abdm-link-service/internal/app/services/abdm_flows"
	careContexts "abdm-link-service/internal/app/services/core/care_contexts"
	linkTransactions "abdm-link-service/internal/app/services/core/link_transactions"
	"abdm-link-service/internal/app/services/shared/locker"
	"abdm-link-service/internal/app/services/shared/reconciliation"
	"abdm-link-service/internal/app/services/shared/redis"
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("Error loading location", zap.Error(err))
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig, log)
	redisClient := database.NewRedisClient(driverConfig, log)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig, log)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	err = bootstrapingTheApp(bootstrap)
	if err != nil {
		log.Fatal("Error bootstrapping the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		log.Info("Server started", zap.String("port", internalConfig.App.Port))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Error closing drivers", zap.Error(err))
	}

	log.Info("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) error {
	// Redis
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockerService := locker.NewLockService(redisRepository, bootstrap.Logger)

	// Ledger
	linkTransactionRepository := linkTransactions.NewLinkTransactionMongoRepository(
		bootstrap.MongoDB.Database(bootstrap.DriverConfig.MongoDB.DbName),
	)

	// Reconciliation
	reconciliationPublisher, err := reconciliation.NewService(
		bootstrap.RabbitMQ,
		bootstrap.Logger,
		bootstrap.InternalConfig.Saga.ReconciliationQueue,
	)
	if err != nil {
		return err
	}

	// ABDM gateway
	abdmHTTPClient := &http.Client{
		Timeout: time.Duration(bootstrap.InternalConfig.Abdm.RequestTimeoutInSeconds) * time.Second,
	}
	abdmLimiter := rate.NewLimiter(
		rate.Limit(bootstrap.InternalConfig.Abdm.RateLimitPerSecond),
		bootstrap.InternalConfig.Abdm.RateLimitBurst,
	)
	abdmFlowClient := abdmFlows.NewAbdmFlowClient(
		bootstrap.InternalConfig.Abdm.BaseUrl,
		abdmHTTPClient,
		abdmLimiter,
		bootstrap.Logger,
	)

	// Care context
	careContextUsecase := careContexts.NewCareContextUsecase(
		abdmFlowClient,
		linkTransactionRepository,
		reconciliationPublisher,
		lockerService,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	careContextController := controllers.NewCareContextController(bootstrap.Logger, careContextUsecase, bootstrap.InternalConfig)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, middlewares, careContextController)
	return nil
}
