package handlers

import (
	"net/http"

	"VisitorIntake/global"
	"VisitorIntake/models"
	"VisitorIntake/repositories"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports liveness and whether visitor writes currently land anywhere.
type HealthHandler struct {
	store *repositories.StoreHandle
}

func NewHealthHandler(store *repositories.StoreHandle) *HealthHandler {
	return &HealthHandler{store: store}
}

// Health handles GET /api/health. Always 200: a missing store is a degraded
// mode, not an outage.
func (h *HealthHandler) Health(c *gin.Context) {
	state := "unavailable"
	if h.store.Connected() {
		state = "connected"
	}
	c.JSON(http.StatusOK, models.HealthResponse{Status: "ok", Version: global.AppVersion, Store: state})
}
