package routers

import (
	"dentflow-service/internal/app/delivery/http/controllers"
	"dentflow-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachClinicRoutes(router chi.Router, middlewares *middlewares.Middlewares, clinicController *controllers.ClinicController) {
	router.Use(middlewares.Authenticate)
	router.Use(middlewares.Authorize)

	router.Post("/", clinicController.CreateClinic)
	router.Get("/", clinicController.FindAll)
	router.Delete("/{clinic_id}", clinicController.ToggleClinicStatus)
}
