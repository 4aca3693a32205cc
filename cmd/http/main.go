package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"screening-service/internal/app/config"
	"screening-service/internal/app/delivery/http/middlewares"
	"screening-service/internal/app/delivery/http/routers"
	"screening-service/internal/app/drivers/database"
	"screening-service/internal/app/drivers/logger"
	"screening-service/internal/app/drivers/messaging"
	"screening-service/internal/app/drivers/storage"
	"screening-service/internal/app/services/core/questionnaires"
	"screening-service/internal/app/services/core/questions"
	"screening-service/internal/app/services/core/responses"
	"screening-service/internal/app/services/core/scorebands"
	"screening-service/internal/app/services/core/screenings"
	"screening-service/internal/app/services/shared/archive"
	"screening-service/internal/app/services/shared/events"
	"screening-service/internal/app/services/shared/redis"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	logger.InitBootstrapLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		logrus.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	mongoClient := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQConnection := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoClient:    mongoClient,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQConnection,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	bootstrapTheApp(bootstrap, minioClient)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Server failed to start: %v", err)
		}
	}()
	logrus.Infof("Server listening on %s", internalConfig.App.Port)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests already received by the server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		logrus.Fatalf("Error closing drivers: %v", err)
	}

	logrus.Println("Server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap, minioClient *minio.Client) {
	dbName := bootstrap.DriverConfig.MongoDB.DbName

	// Shared
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	submissionArchive := archive.NewMinioArchive(minioClient, bootstrap.InternalConfig)
	eventPublisher, err := events.NewRabbitMQPublisher(bootstrap.RabbitMQ, bootstrap.InternalConfig, bootstrap.Logger)
	if err != nil {
		logrus.Fatalf("Error declaring the screening event queue: %v", err)
	}

	// Middlewares
	appMiddlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)
	submitLimiter := middlewares.NewRateLimiter(
		bootstrap.InternalConfig.App.SubmitRatePerSecond,
		time.Second,
		time.Duration(bootstrap.InternalConfig.App.SubmitRateBlockTimeInMin)*time.Minute,
		bootstrap.Logger,
	)

	// Questionnaire
	questionnaireMongoRepository := questionnaires.NewQuestionnaireMongoRepository(bootstrap.MongoClient, dbName)
	questionnaireUsecase := questionnaires.NewQuestionnaireUsecase(questionnaireMongoRepository)
	questionnaireController := questionnaires.NewQuestionnaireController(bootstrap.Logger, questionnaireUsecase)

	// Question and option bank
	questionMongoRepository := questions.NewQuestionMongoRepository(bootstrap.MongoClient, dbName)
	optionMongoRepository := questions.NewOptionMongoRepository(bootstrap.MongoClient, dbName)
	questionUsecase := questions.NewQuestionUsecase(
		questionMongoRepository,
		optionMongoRepository,
		questionnaireMongoRepository,
		redisRepository,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	questionController := questions.NewQuestionController(bootstrap.Logger, questionUsecase)

	// Score bands
	scoreBandMongoRepository := scorebands.NewScoreBandMongoRepository(bootstrap.MongoClient, dbName)
	scoreBandUsecase := scorebands.NewScoreBandUsecase(scoreBandMongoRepository, questionnaireMongoRepository)
	scoreBandController := scorebands.NewScoreBandController(bootstrap.Logger, scoreBandUsecase)

	// Patient screening state
	patientScreeningMongoRepository := screenings.NewPatientScreeningMongoRepository(bootstrap.MongoClient, dbName)
	screeningUsecase := screenings.NewScreeningUsecase(
		patientScreeningMongoRepository,
		redisRepository,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	screeningController := screenings.NewScreeningController(bootstrap.Logger, screeningUsecase)

	// Response submission
	responseMongoRepository := responses.NewResponseMongoRepository(bootstrap.MongoClient, dbName)
	responseUsecase := responses.NewResponseUsecase(
		responseMongoRepository,
		questionnaireMongoRepository,
		questionMongoRepository,
		optionMongoRepository,
		scoreBandMongoRepository,
		patientScreeningMongoRepository,
		redisRepository,
		submissionArchive,
		eventPublisher,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	responseController := responses.NewResponseController(bootstrap.Logger, responseUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		appMiddlewares,
		submitLimiter,
		questionnaireController,
		questionController,
		responseController,
		scoreBandController,
		screeningController,
	)
}
