package handlers

import (
	"net/http"

	"blogapi/internal/models"
	"blogapi/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type CommentHandler struct {
	comments *services.CommentService
	log      *logrus.Logger
}

func NewCommentHandler(comments *services.CommentService, log *logrus.Logger) *CommentHandler {
	return &CommentHandler{comments: comments, log: log}
}

// Create takes the post id from the route; a post_id in the body is ignored.
func (h *CommentHandler) Create(c *gin.Context) {
	var req models.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	id, err := h.comments.Create(c.Request.Context(), c.Param("post_id"), req.Fields())
	if err != nil {
		respondError(c, h.log, "Comment", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

func (h *CommentHandler) Get(c *gin.Context) {
	comment, err := h.comments.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, "Comment", err)
		return
	}
	c.JSON(http.StatusOK, comment)
}

func (h *CommentHandler) ListForPost(c *gin.Context) {
	comments, err := h.comments.ListForPost(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, "Comment", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

func (h *CommentHandler) Update(c *gin.Context) {
	var req models.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	if err := h.comments.Update(c.Request.Context(), c.Param("id"), req.Fields()); err != nil {
		respondError(c, h.log, "Comment", err)
		return
	}
	message(c, "Comment updated successfully")
}

func (h *CommentHandler) Delete(c *gin.Context) {
	if err := h.comments.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.log, "Comment", err)
		return
	}
	message(c, "Comment deleted successfully")
}
