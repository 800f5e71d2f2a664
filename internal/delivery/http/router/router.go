// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"

	"accounts/config"
	"accounts/internal/delivery/http/router/handler"
)

type RouterParams struct {
	fx.In

	Config            *config.Config
	CredentialHandler *handler.CredentialHandler
	Gatherer          prometheus.Gatherer `optional:"true"`
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg               *config.Config
	credentialHandler *handler.CredentialHandler
	gatherer          prometheus.Gatherer
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cfg:               params.Config,
		credentialHandler: params.CredentialHandler,
		gatherer:          params.Gatherer,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	if r.gatherer != nil && r.cfg.Metrics != nil && r.cfg.Metrics.Enabled {
		e.GET(r.cfg.Metrics.Path, echo.WrapHandler(promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{})))
	}

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/users", r.credentialHandler.CreateUser)
		authGroup.POST("/authenticate", r.credentialHandler.AuthenticateUser)
	}
}
