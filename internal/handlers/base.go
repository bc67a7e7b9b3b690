package handlers

import (
	"errors"
	"net/http"

	"blogapi/internal/middleware"
	"blogapi/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Render helper for HTML pages
func Render(c *gin.Context, code int, name string, obj gin.H) {
	if obj == nil {
		obj = gin.H{}
	}
	obj["CurrentPath"] = c.Request.URL.Path
	c.HTML(code, name, obj)
}

func message(c *gin.Context, text string) {
	c.JSON(http.StatusOK, gin.H{"message": text})
}

// bindError answers a body that failed to decode or validate.
func bindError(c *gin.Context, err error) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
}

// respondError maps a service error to a status code. kind names the entity
// in client-facing messages, e.g. "User".
func respondError(c *gin.Context, log *logrus.Logger, kind string, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": kind + " not found"})
	case errors.Is(err, store.ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid " + kind + " ID"})
	default:
		log.WithError(err).WithFields(logrus.Fields{
			"request_id": c.GetString(middleware.RequestIDKey),
			"path":       c.Request.URL.Path,
		}).Error("Unexpected storage error")
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
	}
}
