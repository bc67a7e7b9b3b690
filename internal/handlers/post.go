package handlers

import (
	"net/http"

	"blogapi/internal/models"
	"blogapi/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type PostHandler struct {
	posts *services.PostService
	log   *logrus.Logger
}

func NewPostHandler(posts *services.PostService, log *logrus.Logger) *PostHandler {
	return &PostHandler{posts: posts, log: log}
}

func (h *PostHandler) Create(c *gin.Context) {
	var req models.PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	id, err := h.posts.Create(c.Request.Context(), req.Fields())
	if err != nil {
		respondError(c, h.log, "Post", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

// Get answers the literal id "null" with a notice instead of a lookup; the
// web client sends it before a post has been selected.
func (h *PostHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if id == services.NullPostID {
		message(c, "Invalid post ID")
		return
	}
	post, err := h.posts.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, "Post", err)
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *PostHandler) List(c *gin.Context) {
	posts, err := h.posts.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, h.log, "Post", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

func (h *PostHandler) Update(c *gin.Context) {
	var req models.PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	if err := h.posts.Update(c.Request.Context(), c.Param("id"), req.Fields()); err != nil {
		respondError(c, h.log, "Post", err)
		return
	}
	message(c, "Post updated successfully")
}

func (h *PostHandler) Delete(c *gin.Context) {
	if err := h.posts.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.log, "Post", err)
		return
	}
	message(c, "Post deleted successfully")
}

// Like increments the post's likes counter and returns the new count.
func (h *PostHandler) Like(c *gin.Context) {
	likes, err := h.posts.Like(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, "Post", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"likes": likes})
}
