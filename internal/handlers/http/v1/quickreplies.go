package v1

import (
	"net/http"

	"github.com/gfdmit/blogdesk/internal/repository"
	"github.com/gin-gonic/gin"
)

func (h *handlers) listQuickReplies(c *gin.Context) {
	filter := repository.QuickReplyFilter{
		Page:     intQuery(c, "page", 1),
		Size:     intQuery(c, "size", 10),
		Search:   c.Query("search"),
		Category: c.Query("category"),
	}

	replies, total, err := h.svc.ListQuickReplies(c.Request.Context(), filter)
	if err != nil {
		renderError(c, err)
		return
	}
	if replies == nil {
		replies = []repository.QuickReply{}
	}
	ok(c, gin.H{
		"page":          filter.Page,
		"size":          filter.Size,
		"total":         total,
		"quick_replies": replies,
	})
}

func (h *handlers) getQuickReply(c *gin.Context) {
	id, valid := idParam(c)
	if !valid {
		return
	}
	reply, err := h.svc.QuickReply(c.Request.Context(), id)
	if err != nil {
		renderError(c, err)
		return
	}
	ok(c, reply)
}

type createQuickReplyRequest struct {
	Title    string  `json:"title" binding:"required,max=256"`
	Content  string  `json:"content" binding:"required"`
	Category *string `json:"category" binding:"omitempty,max=128"`
}

func (h *handlers) createQuickReply(c *gin.Context) {
	var req createQuickReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	reply, err := h.svc.CreateQuickReply(c.Request.Context(), repository.QuickReplyInput{
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
	})
	if err != nil {
		renderError(c, err)
		return
	}
	created(c, reply, "quick reply created")
}

type updateQuickReplyRequest struct {
	Title    *string `json:"title" binding:"omitempty,max=256"`
	Content  *string `json:"content"`
	Category *string `json:"category" binding:"omitempty,max=128"`
}

func (h *handlers) updateQuickReply(c *gin.Context) {
	id, valid := idParam(c)
	if !valid {
		return
	}
	var req updateQuickReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	reply, err := h.svc.UpdateQuickReply(c.Request.Context(), id, repository.QuickReplyPatch{
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
	})
	if err != nil {
		renderError(c, err)
		return
	}
	respond(c, http.StatusOK, reply, "quick reply updated")
}

func (h *handlers) deleteQuickReply(c *gin.Context) {
	id, valid := idParam(c)
	if !valid {
		return
	}
	if err := h.svc.DeleteQuickReply(c.Request.Context(), id); err != nil {
		renderError(c, err)
		return
	}
	respond(c, http.StatusOK, nil, "quick reply deleted")
}

func (h *handlers) useQuickReply(c *gin.Context) {
	id, valid := idParam(c)
	if !valid {
		return
	}
	reply, err := h.svc.UseQuickReply(c.Request.Context(), id)
	if err != nil {
		renderError(c, err)
		return
	}
	respond(c, http.StatusOK, reply, "quick reply used")
}
