package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/miguelofoliveir/pandafit-frontend/internal/telemetry/metrics"

	"github.com/prometheus/client_golang/prometheus"
)

// RequestMetrics counts served requests per method, route name and status.
func RequestMetrics(metricsManager *metrics.Manager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			begin := time.Now()
			rec := &statusRecorder{ResponseWriter: w}

			next.ServeHTTP(rec, req)

			metricsManager.HistRequestDuration.Observe(time.Since(begin).Seconds())
			metricsManager.CounterRequests.With(
				prometheus.Labels{
					"method": req.Method,
					"route":  routeName(req),
					"status": strconv.Itoa(rec.status()),
				},
			).Inc()
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	code int
}

func (r *statusRecorder) WriteHeader(statusCode int) {
	if r.code == 0 {
		r.code = statusCode
	}
	r.ResponseWriter.WriteHeader(statusCode)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if r.code == 0 {
		r.code = http.StatusOK
	}
	return r.ResponseWriter.Write(b)
}

// status is 200 for handlers that never wrote anything.
func (r *statusRecorder) status() int {
	if r.code == 0 {
		return http.StatusOK
	}
	return r.code
}
