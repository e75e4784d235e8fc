// Package handler implements the HTTP handlers for the freight rates API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (health.go, rates.go, docs.go) but share the same Server struct so
// they can access its dependencies.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/pkordes/freight-rates/backend/internal/domain"
)

// RateServicer defines the business operation the rates handler depends on.
// Defining the interface here (in the consumer package) lets handler tests
// inject a mock without touching the database or service layer.
type RateServicer interface {
	Rates(ctx context.Context, q domain.RateQuery) ([]domain.DailyRate, error)
}

// RatesObserver receives the shape of every successful rates response.
// It is satisfied by *metrics.Metrics; nil disables observation.
type RatesObserver interface {
	ObserveRates(days, suppressed int)
}

// Server holds the dependencies shared by all handlers.
type Server struct {
	rates    RateServicer
	observer RatesObserver
	validate *validator.Validate
	log      *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
// observer and log may be nil.
func NewServer(rates RateServicer, observer RatesObserver, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{
		rates:    rates,
		observer: observer,
		validate: newValidator(),
		log:      log.With("component", "handler"),
	}
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(nil, nil, nil)
}

// Handler returns a chi router serving every API route of s.
// Middleware is applied by the caller (main.go), not here.
func Handler(s *Server) http.Handler {
	r := chi.NewRouter()
	r.Get("/healthz", s.GetHealth)
	r.Get("/rates", s.GetRates)
	r.Get("/openapi.yaml", s.GetOpenAPI)
	return r
}

// newValidator returns a validator that names fields by their json tag, so
// error messages use the query parameter names clients actually send.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}
