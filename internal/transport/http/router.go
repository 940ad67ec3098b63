package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/Gunvolt24/top_products/pkg/httpx"
)

// TopProductsPath — единственный ресурс API.
const TopProductsPath = "/api/v1/top-products"

// NewRouter — роутер API. Любой другой путь или метод на ресурсе → 404 с телом ошибки.
// otelServiceName != "" включает otelgin.
func NewRouter(h *Handler, otelServiceName string) *gin.Engine {
	r := gin.New()
	// 405 не отдаём: неподдерживаемый метод неотличим от неизвестного маршрута.
	r.HandleMethodNotAllowed = false
	r.RedirectTrailingSlash = false
	r.RedirectFixedPath = false

	r.Use(gin.CustomRecovery(h.recovered))
	if otelServiceName != "" {
		r.Use(otelgin.Middleware(otelServiceName))
	}
	r.Use(httpx.RequestIDMiddleware())
	r.Use(httpx.RequestLogger(h.log))

	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET(TopProductsPath, h.getTopProducts)

	r.NoRoute(h.notFound)
	r.NoMethod(h.notFound)

	return r
}
