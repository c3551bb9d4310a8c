package routers

import (
	"fmt"
	"mindcare-service/internal/app/config"
	"mindcare-service/internal/app/delivery/http/controllers"
	"mindcare-service/internal/app/delivery/http/middlewares"
	"mindcare-service/internal/pkg/constvars"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	dashboardController *controllers.DashboardController,
	therapistController *controllers.TherapistController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{constvars.MethodGet, constvars.MethodPost, constvars.MethodOptions},
		AllowedHeaders:   []string{constvars.HeaderAccept, constvars.HeaderAuthorization, constvars.HeaderContentType, constvars.HeaderXCSRFToken, constvars.HeaderXRequestID},
		ExposedHeaders:   []string{constvars.HeaderLink, constvars.HeaderXRequestID},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))
	router.Use(middlewares.RateLimiter())
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.BodyLimit)

	endpointPrefix := fmt.Sprintf("/%s", strings.Trim(internalConfig.App.EndpointPrefix, "/"))
	versionPrefix := fmt.Sprintf("/%s", strings.Trim(internalConfig.App.Version, "/"))

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route(fmt.Sprintf("/%s", constvars.ResourceDashboard), func(r chi.Router) {
				attachDashboardRoutes(r, middlewares, dashboardController)
			})

			r.Route(fmt.Sprintf("/%s/%s", constvars.ResourceAuth, constvars.ResourceTherapists), func(r chi.Router) {
				attachTherapistAuthRoutes(r, therapistController)
			})

			r.Route(fmt.Sprintf("/%s", constvars.ResourceTherapists), func(r chi.Router) {
				attachTherapistRoutes(r, middlewares, therapistController)
			})
		})
	})
}
