package handlers

import (
	"net/http"

	"blogapi/internal/models"
	"blogapi/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type UserHandler struct {
	users *services.UserService
	log   *logrus.Logger
}

func NewUserHandler(users *services.UserService, log *logrus.Logger) *UserHandler {
	return &UserHandler{users: users, log: log}
}

func (h *UserHandler) Create(c *gin.Context) {
	var req models.UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	id, err := h.users.Create(c.Request.Context(), req.Fields())
	if err != nil {
		respondError(c, h.log, "User", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.users.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, "User", err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) Update(c *gin.Context) {
	var req models.UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	if err := h.users.Update(c.Request.Context(), c.Param("id"), req.Fields()); err != nil {
		respondError(c, h.log, "User", err)
		return
	}
	message(c, "User updated successfully")
}

func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.users.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.log, "User", err)
		return
	}
	message(c, "User deleted successfully")
}
