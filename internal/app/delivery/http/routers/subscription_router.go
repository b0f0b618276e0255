package routers

import (
	"dentflow-service/internal/app/delivery/http/controllers"
	"dentflow-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

// Owners reach these before their clinic is active, so no access gate here.
func attachSubscriptionRoutes(router chi.Router, middlewares *middlewares.Middlewares, subscriptionController *controllers.SubscriptionController) {
	router.Group(func(r chi.Router) {
		r.Use(middlewares.Authenticate)
		r.Use(middlewares.Authorize)

		r.Get("/subscriptions", subscriptionController.GetOverview)
		r.Post("/subscriptions/requests", subscriptionController.RequestPlanChange)

		r.Get("/subscription-plans", subscriptionController.FindAllPlans)
		r.Post("/subscription-plans", subscriptionController.SavePlan)
		r.Get("/subscription-plans/{plan_id}", subscriptionController.FindPlanByID)
		r.Put("/subscription-plans/{plan_id}", subscriptionController.SavePlan)

		r.Get("/subscription-requests", subscriptionController.FindAllRequests)
		r.Put("/subscription-requests/{request_id}", subscriptionController.ActivateRequest)

		r.Get("/payments", subscriptionController.GetPaymentsOverview)
	})
}
