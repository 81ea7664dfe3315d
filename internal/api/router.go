package api

import (
	_ "go-bikeshare/docs"
	"go-bikeshare/internal/api/handler"
	"go-bikeshare/pkg/router"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

func RegisterRoutes(r *router.Router, h *handler.Handler) {
	r.POST("/api/v1/queries", h.CreateQuery)
	r.GET("/api/v1/rows", h.GetRows)
	r.GET("/api/v1/cities", h.ListCities)
	r.GET("/healthz", h.Health)

	r.Handle("/metrics", promhttp.Handler())
	r.Handle("/swagger/*", httpSwagger.WrapHandler)
	r.GET("/swagger", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, "/swagger/index.html", http.StatusMovedPermanently)
	})
}
