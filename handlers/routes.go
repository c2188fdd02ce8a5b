package handlers

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes wires the balancer's HTTP surface onto e: the proxy catch-all
// routes, the status view, the health probe and, when enabled, Prometheus
// metrics. Echo matches static routes before the :kind parameter, so /status,
// /healthz and /metrics are never swallowed by the proxy.
func RegisterRoutes(e *echo.Echo, proxy *Proxy, status *Status, metricsEnabled bool) {
	e.GET("/status", status.Handle)
	e.GET("/healthz", Healthz)
	if metricsEnabled {
		e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	}

	e.Any("/:kind", proxy.Handle)
	e.Any("/:kind/*", proxy.Handle)
}
