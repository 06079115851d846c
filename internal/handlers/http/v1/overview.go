package v1

import (
	"github.com/gfdmit/blogdesk/internal/repository"
	"github.com/gin-gonic/gin"
)

func (h *handlers) ticketOverview(c *gin.Context) {
	overview, err := h.svc.TicketOverview(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}
	ok(c, overview)
}

func (h *handlers) ticketTrend(c *gin.Context) {
	days := intQuery(c, "days", 30)
	if days < 1 {
		days = 30
	}
	trend, err := h.svc.TicketTrend(c.Request.Context(), days)
	if err != nil {
		renderError(c, err)
		return
	}
	if trend == nil {
		trend = []repository.TrendPoint{}
	}
	ok(c, gin.H{"trend": trend, "days": days})
}

func (h *handlers) categoryDistribution(c *gin.Context) {
	distribution, err := h.svc.CategoryDistribution(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}
	if distribution == nil {
		distribution = []repository.CategoryDistribution{}
	}
	ok(c, gin.H{"distribution": distribution})
}

func (h *handlers) statusDistribution(c *gin.Context) {
	distribution, err := h.svc.StatusDistribution(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}
	ok(c, gin.H{"distribution": distribution})
}

func (h *handlers) priorityDistribution(c *gin.Context) {
	distribution, err := h.svc.PriorityDistribution(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}
	ok(c, gin.H{"distribution": distribution})
}
