package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type credentialsRequest struct {
	Username string `json:"username" binding:"required,max=128"`
	Password string `json:"password" binding:"required"`
}

func (h *handlers) register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "username/password required")
		return
	}

	user, err := h.svc.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		renderError(c, err)
		return
	}
	created(c, gin.H{"id": user.ID, "username": user.Username}, "register success")
}

func (h *handlers) login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "username/password required")
		return
	}

	user, token, err := h.svc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		renderError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{
		"id":       user.ID,
		"username": user.Username,
		"token":    token,
	}, "login success")
}

// logout is stateless: the token simply expires; clients drop it.
func (h *handlers) logout(c *gin.Context) {
	respond(c, http.StatusOK, nil, "logout success")
}

func (h *handlers) me(c *gin.Context) {
	user, _ := currentUser(c)
	respond(c, http.StatusOK, gin.H{"id": user.ID, "username": user.Username}, "whoami")
}
