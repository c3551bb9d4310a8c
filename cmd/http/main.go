package main

import (
	"context"
	"fmt"
	"mindcare-service/internal/app/config"
	"mindcare-service/internal/app/delivery/http/controllers"
	"mindcare-service/internal/app/delivery/http/middlewares"
	"mindcare-service/internal/app/delivery/http/routers"
	"mindcare-service/internal/app/drivers/database"
	"mindcare-service/internal/app/drivers/logger"
	"mindcare-service/internal/app/drivers/messaging"
	"mindcare-service/internal/app/services/core/dashboard"
	"mindcare-service/internal/app/services/core/session"
	"mindcare-service/internal/app/services/core/therapists"
	"mindcare-service/internal/app/services/shared/docstore"
	"mindcare-service/internal/app/services/shared/locker"
	"mindcare-service/internal/app/services/shared/mailer"
	"mindcare-service/internal/app/services/shared/redis"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Version sets the default build version
var Version = "develop"

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)
	log.Info("Starting mindcare service",
		zap.String("version", Version),
		zap.String("env", internalConfig.App.Env),
	)

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		Logger:         log,
		RabbitMQ:       rabbitMQ,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	if err := bootstrapingTheApp(bootstrap); err != nil {
		log.Fatal("Failed to bootstrap the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:              fmt.Sprintf(":%s", internalConfig.App.Port),
		Handler:           chiRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("Server listening", zap.String("address", server.Addr))
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

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Error("Failed to release app resources", zap.Error(err))
	}

	fmt.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) error {
	// Redis
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)

	// Locker
	lockerService := locker.NewLockerService(redisRepository, bootstrap.Logger)

	// Session
	sessionService := session.NewSessionService(redisRepository)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, sessionService, bootstrap.InternalConfig)

	// Dashboard
	documentStore := docstore.NewMongoDocumentStore(
		bootstrap.MongoDB.Database(bootstrap.DriverConfig.MongoDB.DbName),
		bootstrap.Logger,
	)
	dashboardUsecase, err := dashboard.NewDashboardUsecase(documentStore, bootstrap.InternalConfig, bootstrap.Logger)
	if err != nil {
		return err
	}
	dashboardController := controllers.NewDashboardController(bootstrap.Logger, dashboardUsecase, bootstrap.InternalConfig)

	// Mailer
	mailerService, err := mailer.NewMailerService(
		bootstrap.RabbitMQ,
		bootstrap.InternalConfig.RabbitMQ.MailerQueue,
		bootstrap.Logger,
	)
	if err != nil {
		return err
	}

	// Therapist
	userMongoRepository := therapists.NewUserMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	therapistUsecase := therapists.NewTherapistUsecase(
		userMongoRepository,
		lockerService,
		sessionService,
		mailerService,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	therapistController := controllers.NewTherapistController(bootstrap.Logger, therapistUsecase)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, middlewares, dashboardController, therapistController)
	return nil
}
