package middleware

import (
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/VictoriaMetrics/metrics"
	"github.com/gin-gonic/gin"
)

var httpRequestsInFlight int64

func init() {
	metrics.NewGauge(`http_requests_in_flight`, func() float64 {
		return float64(atomic.LoadInt64(&httpRequestsInFlight))
	})
}

// Metrics records request counts, latency and response size per route
// template, so path parameters such as job names never become labels.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		atomic.AddInt64(&httpRequestsInFlight, 1)
		defer atomic.AddInt64(&httpRequestsInFlight, -1)

		c.Next()

		route := routeLabel(c.FullPath())
		method := sanitizeLabel(c.Request.Method)
		status := strconv.Itoa(c.Writer.Status())

		metrics.GetOrCreateCounter(`http_requests_total{handler="` + route + `",method="` + method + `",status="` + status + `"}`).Inc()
		metrics.GetOrCreateHistogram(`http_request_duration_seconds{handler="` + route + `",method="` + method + `"}`).Update(time.Since(start).Seconds())
		if size := c.Writer.Size(); size > 0 {
			metrics.GetOrCreateHistogram(`http_response_size_bytes{handler="` + route + `"}`).Update(float64(size))
		}
	}
}

func routeLabel(fullPath string) string {
	if fullPath == "" {
		return "unknown"
	}
	return sanitizeLabel(fullPath)
}

func sanitizeLabel(v string) string {
	return strings.ReplaceAll(v, `"`, `_`)
}
