package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/middleware"
	"storefront/internal/models"
	"storefront/internal/session"
)

type SessionHandler struct{}

func NewSessionHandler() *SessionHandler {
	return &SessionHandler{}
}

// GET /v1/session
func (h *SessionHandler) GetSession(c *gin.Context) {
	v := middleware.CurrentVisitor(c)
	user, ok := v.Session.Current()
	if !ok {
		c.JSON(http.StatusOK, gin.H{"loggedIn": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"loggedIn": true, "user": user})
}

// POST /v1/session
func (h *SessionHandler) Login(c *gin.Context) {
	var user models.UserSession
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	v := middleware.CurrentVisitor(c)
	if err := v.Session.Login(c.Request.Context(), user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not start session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"loggedIn": true, "user": user})
}

// DELETE /v1/session
func (h *SessionHandler) Logout(c *gin.Context) {
	v := middleware.CurrentVisitor(c)
	if err := v.Session.Logout(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not end session"})
		return
	}
	c.Header("Location", session.HomePath)
	c.JSON(http.StatusOK, gin.H{"loggedIn": false, "redirect": session.HomePath})
}
