package handlers

import (
	"net/http"

	"blogapi/internal/models"
	"blogapi/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type LikeHandler struct {
	likes *services.LikeService
	log   *logrus.Logger
}

func NewLikeHandler(likes *services.LikeService, log *logrus.Logger) *LikeHandler {
	return &LikeHandler{likes: likes, log: log}
}

func (h *LikeHandler) Create(c *gin.Context) {
	var req models.LikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	id, err := h.likes.Create(c.Request.Context(), req.Fields())
	if err != nil {
		respondError(c, h.log, "Like", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

func (h *LikeHandler) Get(c *gin.Context) {
	like, err := h.likes.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, "Like", err)
		return
	}
	c.JSON(http.StatusOK, like)
}

func (h *LikeHandler) Update(c *gin.Context) {
	var req models.LikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	if err := h.likes.Update(c.Request.Context(), c.Param("id"), req.Fields()); err != nil {
		respondError(c, h.log, "Like", err)
		return
	}
	message(c, "Like updated successfully")
}

func (h *LikeHandler) Delete(c *gin.Context) {
	if err := h.likes.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.log, "Like", err)
		return
	}
	message(c, "Like deleted successfully")
}
