package routers

import (
	"dentflow-service/internal/app/delivery/http/controllers"
	"dentflow-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *controllers.AuthController) {
	router.Post("/login", authController.Login)
	router.Post("/register", authController.Register)
	router.Post("/forget-password", authController.ForgetPassword)
	router.Get("/verify", authController.VerifyAccount)
	router.Post("/verify", authController.VerifyAccount)

	router.With(middlewares.Authenticate).Post("/logout", authController.Logout)
}

func attachAccessRoutes(router chi.Router, middlewares *middlewares.Middlewares, accessController *controllers.AccessController) {
	router.With(middlewares.SessionOptional).Get("/access", accessController.Resolve)
	router.With(middlewares.Authenticate).Get("/dashboard", accessController.Dashboard)
}
