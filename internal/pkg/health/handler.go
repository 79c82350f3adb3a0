package health

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Checker verifies one dependency
type Checker interface {
	Check(ctx context.Context) error
}

// CheckerFunc adapts a function to the Checker interface
type CheckerFunc func(ctx context.Context) error

// Check calls the wrapped function
func (f CheckerFunc) Check(ctx context.Context) error { return f(ctx) }

// Service aggregates named dependency checks
type Service struct {
	checkers map[string]Checker
}

// NewService creates an empty health service
func NewService() *Service {
	return &Service{checkers: make(map[string]Checker)}
}

// AddChecker registers a named dependency check
func (s *Service) AddChecker(name string, checker Checker) {
	s.checkers[name] = checker
}

type status struct {
	Service string            `json:"service"`
	Version string            `json:"version"`
	Status  string            `json:"status"`
	Checks  map[string]string `json:"checks,omitempty"`
	Time    time.Time         `json:"time"`
}

// RegisterEndpoints registers liveness and readiness endpoints.
// /health is pure liveness; /ready runs every dependency check.
func RegisterEndpoints(e *echo.Echo, serviceName, version string, svc *Service) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, status{
			Service: serviceName,
			Version: version,
			Status:  "ok",
			Time:    time.Now(),
		})
	})

	e.GET("/ready", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
		defer cancel()

		checks := make(map[string]string, len(svc.checkers))
		healthy := true
		for name, checker := range svc.checkers {
			if err := checker.Check(ctx); err != nil {
				checks[name] = err.Error()
				healthy = false
				continue
			}
			checks[name] = "ok"
		}

		code := http.StatusOK
		overall := "ok"
		if !healthy {
			code = http.StatusServiceUnavailable
			overall = "degraded"
		}

		return c.JSON(code, status{
			Service: serviceName,
			Version: version,
			Status:  overall,
			Checks:  checks,
			Time:    time.Now(),
		})
	})
}
