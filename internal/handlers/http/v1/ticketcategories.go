package v1

import (
	"net/http"

	"github.com/gfdmit/blogdesk/internal/repository"
	"github.com/gin-gonic/gin"
)

func (h *handlers) listTicketCategories(c *gin.Context) {
	categories, err := h.svc.TicketCategories(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}
	if categories == nil {
		categories = []repository.TicketCategoryCount{}
	}
	ok(c, gin.H{"categories": categories})
}

type createTicketCategoryRequest struct {
	Name        string  `json:"name" binding:"required,max=128"`
	Description *string `json:"description" binding:"omitempty,max=512"`
}

func (h *handlers) createTicketCategory(c *gin.Context) {
	var req createTicketCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "name required")
		return
	}
	category, err := h.svc.CreateTicketCategory(c.Request.Context(), req.Name, req.Description)
	if err != nil {
		renderError(c, err)
		return
	}
	created(c, repository.TicketCategoryCount{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
	}, "ticket category created")
}

type updateTicketCategoryRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=128"`
	Description *string `json:"description" binding:"omitempty,max=512"`
}

func (h *handlers) updateTicketCategory(c *gin.Context) {
	id, valid := idParam(c)
	if !valid {
		return
	}
	var req updateTicketCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	category, err := h.svc.UpdateTicketCategory(c.Request.Context(), id, repository.TicketCategoryPatch{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		renderError(c, err)
		return
	}
	count, err := h.svc.TicketCategoryCount(c.Request.Context(), id)
	if err != nil {
		renderError(c, err)
		return
	}
	respond(c, http.StatusOK, repository.TicketCategoryCount{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
		Count:       count,
	}, "ticket category updated")
}

func (h *handlers) deleteTicketCategory(c *gin.Context) {
	id, valid := idParam(c)
	if !valid {
		return
	}
	if err := h.svc.DeleteTicketCategory(c.Request.Context(), id); err != nil {
		renderError(c, err)
		return
	}
	respond(c, http.StatusOK, nil, "ticket category deleted")
}
