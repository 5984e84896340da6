package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/SYD090303/GymFlow/internal/api/metrics"
	"github.com/SYD090303/GymFlow/pkg/activity"
)

// Activity tracks in-flight requests on the shared counter and mirrors the
// count into the Prometheus gauge.
func Activity(counter *activity.Counter) echo.MiddlewareFunc {
	counter.Subscribe(func(n int) {
		metrics.RequestsInFlight.Set(float64(n))
	})

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			counter.Inc()
			defer counter.Dec()
			return next(c)
		}
	}
}
