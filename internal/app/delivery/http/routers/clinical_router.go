package routers

import (
	"dentflow-service/internal/app/delivery/http/controllers"
	"dentflow-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

// Clinical routes need an active clinic on top of a permitted role.

func attachAppointmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, appointmentController *controllers.AppointmentController) {
	router.Use(middlewares.Authenticate)
	router.Use(middlewares.Authorize)
	router.Use(middlewares.RequireAccess)

	router.Get("/", appointmentController.FindAll)
	router.Post("/", appointmentController.Create)
	router.Get("/options", appointmentController.FormOptions)
	router.Get("/{appointment_id}", appointmentController.FindByID)
	router.Put("/{appointment_id}", appointmentController.Update)
	router.Delete("/{appointment_id}", appointmentController.Delete)
}

func attachPatientRoutes(router chi.Router, middlewares *middlewares.Middlewares, patientController *controllers.PatientController) {
	router.Use(middlewares.Authenticate)
	router.Use(middlewares.Authorize)
	router.Use(middlewares.RequireAccess)

	router.Get("/", patientController.FindAll)
	router.Post("/", patientController.Create)
	router.Get("/options", patientController.FormOptions)
	router.Delete("/attachments/{attachment_id}", patientController.DeleteAttachment)
	router.Get("/{patient_id}", patientController.FindByID)
	router.Put("/{patient_id}", patientController.Update)
	router.Delete("/{patient_id}", patientController.Delete)
	router.Post("/{patient_id}/attachments", patientController.UploadAttachment)
}

func attachStaffRoutes(router chi.Router, middlewares *middlewares.Middlewares, staffController *controllers.StaffController) {
	router.Use(middlewares.Authenticate)
	router.Use(middlewares.Authorize)
	router.Use(middlewares.RequireAccess)

	router.Post("/", staffController.Create)
	router.Get("/{staff_type}", staffController.FindAll)
	router.Put("/{staff_id}", staffController.Update)
	router.Delete("/{staff_id}", staffController.Delete)
}

func attachServiceRoutes(router chi.Router, middlewares *middlewares.Middlewares, serviceController *controllers.ServiceController) {
	router.Use(middlewares.Authenticate)
	router.Use(middlewares.Authorize)
	router.Use(middlewares.RequireAccess)

	router.Get("/", serviceController.FindAll)
	router.Post("/", serviceController.Create)
	router.Get("/{service_id}", serviceController.FindByID)
	router.Put("/{service_id}", serviceController.Update)
	router.Delete("/{service_id}", serviceController.Delete)
}
