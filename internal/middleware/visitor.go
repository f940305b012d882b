package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/auth"
	"storefront/internal/session"
	"storefront/internal/visitor"
)

// VisitorHeader lleva el token firmado que identifica al visitante
const VisitorHeader = "X-Visitor-Token"

const visitorContextKey = "visitor"

// Visitor resuelve el visitante del request. Sin token, o con un token
// inválido, se crea un visitante nuevo y se devuelve su token en la respuesta.
func Visitor(tokens *auth.Tokens, registry *visitor.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(VisitorHeader)
		id := ""
		if token != "" {
			parsed, err := tokens.Parse(token)
			if err != nil {
				log.Printf("⚠️ Rejected visitor token: %v", err)
			} else {
				id = parsed
			}
		}

		if id == "" {
			id = visitor.NewID()
			issued, err := tokens.Issue(id)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "could not issue visitor token"})
				return
			}
			token = issued
		}

		v, err := registry.Get(c.Request.Context(), id)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "could not load visitor"})
			return
		}

		c.Header(VisitorHeader, token)
		c.Set(visitorContextKey, v)
		c.Next()
	}
}

// CurrentVisitor retorna el visitante cargado por Visitor
func CurrentVisitor(c *gin.Context) *visitor.Visitor {
	v, ok := c.Get(visitorContextKey)
	if !ok {
		return nil
	}
	return v.(*visitor.Visitor)
}

// RequireAuth corta el request con 401 y Location al login si no hay sesión
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		v := CurrentVisitor(c)
		if v == nil || !v.Session.RequireAuth() {
			c.Header("Location", session.LoginPath)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "login required"})
			return
		}
		c.Next()
	}
}
