package routers

import (
	"mindcare-service/internal/app/delivery/http/controllers"
	"mindcare-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachTherapistAuthRoutes(router chi.Router, therapistController *controllers.TherapistController) {
	router.Post("/register", therapistController.RegisterTherapist)
}

func attachTherapistRoutes(router chi.Router, middlewares *middlewares.Middlewares, therapistController *controllers.TherapistController) {
	router.With(middlewares.Authenticate).Get("/me", therapistController.GetTherapistProfile)
}
