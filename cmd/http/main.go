package main

import (
	"context"
	"dentflow-service/internal/app/config"
	"dentflow-service/internal/app/delivery/http/controllers"
	"dentflow-service/internal/app/delivery/http/middlewares"
	"dentflow-service/internal/app/delivery/http/routers"
	"dentflow-service/internal/app/drivers/database"
	"dentflow-service/internal/app/drivers/logger"
	"dentflow-service/internal/app/drivers/messaging"
	appointmentsBackend "dentflow-service/internal/app/services/backend_api/appointments"
	authBackend "dentflow-service/internal/app/services/backend_api/auth"
	clinicsBackend "dentflow-service/internal/app/services/backend_api/clinics"
	patientsBackend "dentflow-service/internal/app/services/backend_api/patients"
	servicesBackend "dentflow-service/internal/app/services/backend_api/services"
	staffBackend "dentflow-service/internal/app/services/backend_api/staff"
	subscriptionsBackend "dentflow-service/internal/app/services/backend_api/subscriptions"
	"dentflow-service/internal/app/services/core/access"
	"dentflow-service/internal/app/services/core/appointments"
	"dentflow-service/internal/app/services/core/auth"
	"dentflow-service/internal/app/services/core/clinics"
	"dentflow-service/internal/app/services/core/dashboard"
	"dentflow-service/internal/app/services/core/patients"
	"dentflow-service/internal/app/services/core/roles"
	"dentflow-service/internal/app/services/core/services"
	"dentflow-service/internal/app/services/core/session"
	"dentflow-service/internal/app/services/core/staff"
	"dentflow-service/internal/app/services/core/subscriptions"
	"dentflow-service/internal/app/services/shared/backend"
	"dentflow-service/internal/app/services/shared/events"
	"dentflow-service/internal/app/services/shared/redis"
	"dentflow-service/internal/pkg/metrics"
	"errors"
	"fmt"
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

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQConnection := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		Logger:         zapLogger,
		RabbitMQ:       rabbitMQConnection,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}

	err := bootstrapingTheApp(bootstrap)
	if err != nil {
		log.Fatalf("Error bootstraping the app: %v", err)
	}

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", internalConfig.App.Port),
		Handler: chiRouter,
	}

	go func() {
		zapLogger.Info("Server started", zap.String("address", server.Addr))
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("Error closing dependencies: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) error {
	appMetrics := metrics.NewMetrics()

	// Redis backed session store
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	sessionTTL := time.Duration(bootstrap.InternalConfig.Session.ExpTimeInHour) * time.Hour
	sessionService := session.NewSessionService(redisRepository, sessionTTL, bootstrap.Logger)

	// Activity events, discarded when RabbitMQ is disabled
	eventPublisher, err := events.NewActivityPublisher(
		bootstrap.RabbitMQ,
		bootstrap.InternalConfig.RabbitMQ.ActivityQueue,
		appMetrics.ActivityEvents,
		bootstrap.Logger,
	)
	if err != nil {
		return err
	}

	// Clinic REST API
	backendTimeout := time.Duration(bootstrap.InternalConfig.Backend.RequestTimeoutInSeconds) * time.Second
	backendClient := backend.NewClient(bootstrap.InternalConfig.Backend.BaseUrl, backendTimeout, bootstrap.Logger)

	authBackendClient := authBackend.NewAuthBackendClient(backendClient, bootstrap.Logger)
	clinicBackendClient := clinicsBackend.NewClinicBackendClient(backendClient, bootstrap.Logger)
	appointmentBackendClient := appointmentsBackend.NewAppointmentBackendClient(backendClient, bootstrap.Logger)
	patientBackendClient := patientsBackend.NewPatientBackendClient(backendClient, bootstrap.Logger)
	staffBackendClient := staffBackend.NewStaffBackendClient(backendClient, bootstrap.Logger)
	serviceBackendClient := servicesBackend.NewServiceBackendClient(backendClient, bootstrap.Logger)
	subscriptionBackendClient := subscriptionsBackend.NewSubscriptionBackendClient(backendClient, bootstrap.Logger)

	// Usecases
	authUsecase := auth.NewAuthUsecase(authBackendClient, sessionService, bootstrap.InternalConfig, bootstrap.Logger)
	accessUsecase := access.NewAccessUsecase(clinicBackendClient, subscriptionBackendClient, appMetrics.AccessDecisions, bootstrap.Logger)
	dashboardUsecase := dashboard.NewDashboardUsecase()
	clinicUsecase := clinics.NewClinicUsecase(clinicBackendClient, sessionService, eventPublisher, bootstrap.Logger)
	appointmentUsecase := appointments.NewAppointmentUsecase(appointmentBackendClient, patientBackendClient, staffBackendClient, bootstrap.Logger)
	patientUsecase := patients.NewPatientUsecase(patientBackendClient, staffBackendClient, bootstrap.Logger)
	staffUsecase := staff.NewStaffUsecase(staffBackendClient, bootstrap.Logger)
	serviceUsecase := services.NewServiceUsecase(serviceBackendClient, bootstrap.Logger)
	subscriptionUsecase := subscriptions.NewSubscriptionUsecase(subscriptionBackendClient, eventPublisher, bootstrap.Logger)

	roleUsecase, err := roles.NewRoleUsecase(bootstrap.Logger)
	if err != nil {
		return err
	}

	middlewares := middlewares.NewMiddlewares(
		bootstrap.Logger,
		bootstrap.InternalConfig,
		sessionService,
		accessUsecase,
		roleUsecase,
		appMetrics,
	)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, appMetrics, middlewares, &routers.Controllers{
		Auth:         controllers.NewAuthController(bootstrap.Logger, authUsecase),
		Access:       controllers.NewAccessController(bootstrap.Logger, accessUsecase, dashboardUsecase),
		Clinic:       controllers.NewClinicController(bootstrap.Logger, clinicUsecase),
		Appointment:  controllers.NewAppointmentController(bootstrap.Logger, appointmentUsecase),
		Patient:      controllers.NewPatientController(bootstrap.Logger, patientUsecase),
		Staff:        controllers.NewStaffController(bootstrap.Logger, staffUsecase),
		Service:      controllers.NewServiceController(bootstrap.Logger, serviceUsecase),
		Subscription: controllers.NewSubscriptionController(bootstrap.Logger, subscriptionUsecase),
	})

	return nil
}
