package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/tshrrx/chatty-bot/internal/models"
	"github.com/tshrrx/chatty-bot/internal/services"
	"github.com/tshrrx/chatty-bot/internal/utils"
)

type ChatHandler struct {
	svc services.ChatService
	log *logrus.Logger
}

func NewChatHandler(svc services.ChatService, log *logrus.Logger) *ChatHandler {
	return &ChatHandler{svc: svc, log: log}
}

// Chat answers a message with a server-sent event stream. Each frame carries
// one JSON event; the stream ends with a single done or error event.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ChatHandler.Chat", "invalid request body: newMessage is required", err))
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	events := h.svc.Stream(c.Request.Context(), *req.NewMessage)
	for ev := range events {
		if ev.Error != "" {
			h.log.WithFields(logrus.Fields{
				"request_id":     c.GetString("request_id"),
				"upstream_error": ev.Error,
			}).Warn("relaying upstream error to client")
		}
		if err := utils.WriteSSE(c.Writer, ev); err != nil {
			h.log.WithError(err).Debug("client write failed, abandoning stream")
			return
		}
	}
}
