package v1

import (
	"github.com/gfdmit/blogdesk/internal/repository"
	"github.com/gin-gonic/gin"
)

func (h *handlers) siteInfo(c *gin.Context) {
	info, err := h.svc.SiteInfo(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}
	ok(c, info)
}

func (h *handlers) menus(c *gin.Context) {
	menus, err := h.svc.Menus(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}
	if menus == nil {
		menus = []repository.Menu{}
	}
	ok(c, gin.H{"menus": menus})
}
