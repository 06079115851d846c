package v1

import (
	"log"
	"net/http"
	"strings"

	"github.com/gfdmit/blogdesk/internal/repository"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	currentUserKey  = "currentUser"
	requestIDHeader = "X-Request-ID"
)

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// recovery keeps panics inside the envelope contract: clients get a generic
// 500 body, the panic value stays in the server log.
func recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("[PANIC] %s %s: %v", c.Request.Method, c.Request.URL.Path, r)
				c.Abort()
				fail(c, http.StatusInternalServerError, "internal server error")
			}
		}()
		c.Next()
	}
}

func (h *handlers) resolveBearer(c *gin.Context) (repository.User, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return repository.User{}, false
	}
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return repository.User{}, false
	}
	userID, err := h.tokens.Parse(parts[1])
	if err != nil {
		return repository.User{}, false
	}
	user, err := h.svc.UserByID(c.Request.Context(), userID)
	if err != nil {
		return repository.User{}, false
	}
	return user, true
}

// requireAuth rejects the request unless a valid bearer token resolves to an
// existing user. Missing header, malformed header, bad signature, expired
// token and deleted user all produce the same 401.
func (h *handlers) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, authed := h.resolveBearer(c)
		if !authed {
			c.Abort()
			fail(c, http.StatusUnauthorized, "not authenticated")
			return
		}
		c.Set(currentUserKey, user)
		c.Next()
	}
}

// optionalAuth resolves the caller's identity when a valid token is present
// and lets the request through anonymously otherwise.
func (h *handlers) optionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if user, authed := h.resolveBearer(c); authed {
			c.Set(currentUserKey, user)
		}
		c.Next()
	}
}

func currentUser(c *gin.Context) (repository.User, bool) {
	v, exists := c.Get(currentUserKey)
	if !exists {
		return repository.User{}, false
	}
	user, ok := v.(repository.User)
	return user, ok
}
