package v1

import (
	"net/http"

	"github.com/gfdmit/blogdesk/internal/repository"
	"github.com/gin-gonic/gin"
)

func (h *handlers) listTickets(c *gin.Context) {
	filter := repository.TicketFilter{
		Page:       intQuery(c, "page", 1),
		Size:       intQuery(c, "size", 10),
		Search:     c.Query("search"),
		Status:     c.Query("status"),
		Priority:   c.Query("priority"),
		CategoryID: intQuery(c, "category_id", 0),
	}

	tickets, total, err := h.svc.ListTickets(c.Request.Context(), filter)
	if err != nil {
		renderError(c, err)
		return
	}
	if tickets == nil {
		tickets = []repository.Ticket{}
	}
	ok(c, gin.H{
		"page":    filter.Page,
		"size":    filter.Size,
		"total":   total,
		"tickets": tickets,
	})
}

func (h *handlers) getTicket(c *gin.Context) {
	id, valid := idParam(c)
	if !valid {
		return
	}
	ticket, err := h.svc.Ticket(c.Request.Context(), id)
	if err != nil {
		renderError(c, err)
		return
	}
	ok(c, ticket)
}

type createTicketRequest struct {
	Title       string `json:"title" binding:"required,max=256"`
	Description string `json:"description" binding:"required"`
	Status      string `json:"status" binding:"omitempty,oneof=open in_progress resolved closed"`
	Priority    string `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	CategoryID  *int   `json:"category_id"`
}

func (h *handlers) createTicket(c *gin.Context) {
	var req createTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	user, _ := currentUser(c)

	ticket, err := h.svc.CreateTicket(c.Request.Context(), repository.TicketInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		CategoryID:  req.CategoryID,
		UserID:      user.ID,
	})
	if err != nil {
		renderError(c, err)
		return
	}
	created(c, ticket, "ticket created")
}

type updateTicketRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=256"`
	Description *string `json:"description"`
	Status      *string `json:"status" binding:"omitempty,oneof=open in_progress resolved closed"`
	Priority    *string `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	CategoryID  *int    `json:"category_id"`
}

func (h *handlers) updateTicket(c *gin.Context) {
	id, valid := idParam(c)
	if !valid {
		return
	}
	var req updateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	ticket, err := h.svc.UpdateTicket(c.Request.Context(), id, repository.TicketPatch{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		CategoryID:  req.CategoryID,
	})
	if err != nil {
		renderError(c, err)
		return
	}
	respond(c, http.StatusOK, ticket, "ticket updated")
}

func (h *handlers) deleteTicket(c *gin.Context) {
	id, valid := idParam(c)
	if !valid {
		return
	}
	if err := h.svc.DeleteTicket(c.Request.Context(), id); err != nil {
		renderError(c, err)
		return
	}
	respond(c, http.StatusOK, nil, "ticket deleted")
}
