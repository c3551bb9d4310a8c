package routers

import (
	"mindcare-service/internal/app/delivery/http/controllers"
	"mindcare-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachDashboardRoutes(router chi.Router, middlewares *middlewares.Middlewares, dashboardController *controllers.DashboardController) {
	router.With(middlewares.OptionalAuthenticate).Get("/", dashboardController.GetDashboard)
	router.With(middlewares.OptionalAuthenticate).Get("/summary", dashboardController.GetDashboardSummary)
}
