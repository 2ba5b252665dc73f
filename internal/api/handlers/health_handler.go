package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tshrrx/chatty-bot/internal/version"
)

type HealthHandler struct {
	service  string
	model    string
	provider string
}

func NewHealthHandler(service, model, provider string) *HealthHandler {
	return &HealthHandler{service: service, model: model, provider: provider}
}

// Health reports liveness plus the identity the service answers with.
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"service":  h.service,
		"model":    h.model,
		"provider": h.provider,
		"version":  version.Get().Version,
	})
}
