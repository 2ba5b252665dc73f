package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tshrrx/chatty-bot/internal/api/handlers"
)

type Deps struct {
	Chat   *handlers.ChatHandler
	Health *handlers.HealthHandler
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	r.GET("/", d.Health.Health)
	r.POST("/chat", d.Chat.Chat)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
