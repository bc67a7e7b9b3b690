package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Pinger reports whether the storage backend is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type PageHandler struct {
	storage Pinger
	log     *logrus.Logger
}

func NewPageHandler(storage Pinger, log *logrus.Logger) *PageHandler {
	return &PageHandler{storage: storage, log: log}
}

// Index serves the landing page of the web client.
func (h *PageHandler) Index(c *gin.Context) {
	Render(c, http.StatusOK, "index.html", gin.H{"Title": "Blog"})
}

func (h *PageHandler) Health(c *gin.Context) {
	if err := h.storage.Ping(c.Request.Context()); err != nil {
		h.log.WithError(err).Warn("Health check failed")
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
