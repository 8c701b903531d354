// Package httpserver exposes the JSON API over chi.
package httpserver

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/akulagin/shopapi/internal/service"
)

// sessionCookie is the name of the cookie carrying the opaque session token.
const sessionCookie = "sid"

// Server wires services into HTTP handlers.
type Server struct {
	auth       service.AuthService
	orders     service.OrderService
	sessionTTL time.Duration
	log        *zap.Logger
}

// New constructs a Server with injected services.
func New(auth service.AuthService, orders service.OrderService, sessionTTL time.Duration, log *zap.Logger) *Server {
	return &Server{auth: auth, orders: orders, sessionTTL: sessionTTL, log: log}
}

// Router builds the chi router with middleware and all routes registered.
func (s *Server) Router() *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP)
	r.Use(Recover(s.log), Logging(s.log))
	r.Use(middleware.Timeout(15 * time.Second))

	r.Get("/healthz", s.healthz)

	r.Post("/auth/register", s.register)
	r.Post("/auth/login", s.login)
	r.Post("/auth/logout", s.logout)
	r.Get("/auth/me", s.me)

	r.Post("/orders", s.createOrder)
	r.Get("/orders/me", s.listMyOrders)

	return r
}
