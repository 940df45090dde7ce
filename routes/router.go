package routes // Router setup layer.

import (
	"net/http"

	"VisitorIntake/handlers"
	"VisitorIntake/middlewares"
	"VisitorIntake/repositories"
	"VisitorIntake/services"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Deps are the collaborators the HTTP layer needs.
type Deps struct {
	Visitors    services.VisitorService
	Store       *repositories.StoreHandle // read-only here, for health
	Gatherer    prometheus.Gatherer       // nil disables /metrics
	CORSOrigins []string
}

// Setup attaches middlewares and registers all endpoints.
func Setup(r *gin.Engine, d Deps) {
	r.Use(middlewares.RequestID(), middlewares.RequestLogger(), middlewares.Recovery(), middlewares.CORS(d.CORSOrigins))

	api := r.Group("/api")

	vh := handlers.NewVisitorHandler(d.Visitors)
	api.POST("/visitors", vh.Submit) // intake; no auth by design of the site

	hh := handlers.NewHealthHandler(d.Store)
	api.GET("/health", hh.Health)

	if d.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{})))
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})
}
