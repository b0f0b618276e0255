package routers

import (
	"fmt"
	"net/http"

	"dentflow-service/internal/app/config"
	"dentflow-service/internal/app/delivery/http/controllers"
	"dentflow-service/internal/app/delivery/http/middlewares"
	"dentflow-service/internal/pkg/constvars"
	"dentflow-service/internal/pkg/metrics"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Controllers groups every HTTP controller the router mounts.
type Controllers struct {
	Auth         *controllers.AuthController
	Access       *controllers.AccessController
	Clinic       *controllers.ClinicController
	Appointment  *controllers.AppointmentController
	Patient      *controllers.PatientController
	Staff        *controllers.StaffController
	Service      *controllers.ServiceController
	Subscription *controllers.SubscriptionController
}

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	appMetrics *metrics.Metrics,
	middlewares *middlewares.Middlewares,
	ctrls *Controllers,
) {
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.Instrument)

	corsOptions := cors.Options{
		AllowedOrigins:   internalConfig.App.FrontendDomains,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{constvars.HeaderAccept, constvars.HeaderAuthorization, constvars.HeaderContentType, constvars.HeaderXRequestID},
		ExposedHeaders:   []string{constvars.HeaderLocation, constvars.HeaderXRequestID},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))
	router.Use(middlewares.RateLimit())
	router.Use(middlewares.BodyLimit)

	router.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(appMetrics.Registry, promhttp.HandlerOpts{}))

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/auth", func(r chi.Router) {
				attachAuthRoutes(r, middlewares, ctrls.Auth)
			})

			attachAccessRoutes(r, middlewares, ctrls.Access)

			r.Route("/clinics", func(r chi.Router) {
				attachClinicRoutes(r, middlewares, ctrls.Clinic)
			})

			r.Route("/appointments", func(r chi.Router) {
				attachAppointmentRoutes(r, middlewares, ctrls.Appointment)
			})

			r.Route("/patients", func(r chi.Router) {
				attachPatientRoutes(r, middlewares, ctrls.Patient)
			})

			r.Route("/staff", func(r chi.Router) {
				attachStaffRoutes(r, middlewares, ctrls.Staff)
			})

			r.Route("/services", func(r chi.Router) {
				attachServiceRoutes(r, middlewares, ctrls.Service)
			})

			attachSubscriptionRoutes(r, middlewares, ctrls.Subscription)
		})
	})
}
