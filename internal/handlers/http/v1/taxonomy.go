package v1

import (
	"net/http"

	"github.com/gfdmit/blogdesk/internal/repository"
	"github.com/gin-gonic/gin"
)

type nameRequest struct {
	Name string `json:"name" binding:"required,max=128"`
}

func (h *handlers) listCategories(c *gin.Context) {
	categories, err := h.svc.Categories(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}
	if categories == nil {
		categories = []repository.CategoryCount{}
	}
	ok(c, gin.H{"categories": categories})
}

func (h *handlers) createCategory(c *gin.Context) {
	var req nameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "name required")
		return
	}
	category, err := h.svc.CreateCategory(c.Request.Context(), req.Name)
	if err != nil {
		renderError(c, err)
		return
	}
	created(c, repository.CategoryCount{ID: category.ID, Name: category.Name}, "category created")
}

func (h *handlers) updateCategory(c *gin.Context) {
	id, valid := idParam(c)
	if !valid {
		return
	}
	var req nameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "name required")
		return
	}
	category, err := h.svc.RenameCategory(c.Request.Context(), id, req.Name)
	if err != nil {
		renderError(c, err)
		return
	}
	count, err := h.svc.CategoryPostCount(c.Request.Context(), id)
	if err != nil {
		renderError(c, err)
		return
	}
	respond(c, http.StatusOK, repository.CategoryCount{
		ID:    category.ID,
		Name:  category.Name,
		Count: count,
	}, "category updated")
}

func (h *handlers) deleteCategory(c *gin.Context) {
	id, valid := idParam(c)
	if !valid {
		return
	}
	if err := h.svc.DeleteCategory(c.Request.Context(), id); err != nil {
		renderError(c, err)
		return
	}
	respond(c, http.StatusOK, nil, "category deleted")
}

func (h *handlers) listTags(c *gin.Context) {
	tags, err := h.svc.Tags(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}
	if tags == nil {
		tags = []repository.TagCount{}
	}
	ok(c, gin.H{"tags": tags})
}

func (h *handlers) createTag(c *gin.Context) {
	var req nameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "name required")
		return
	}
	tag, err := h.svc.CreateTag(c.Request.Context(), req.Name)
	if err != nil {
		renderError(c, err)
		return
	}
	created(c, repository.TagCount{ID: tag.ID, Name: tag.Name}, "tag created")
}

func (h *handlers) updateTag(c *gin.Context) {
	id, valid := idParam(c)
	if !valid {
		return
	}
	var req nameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "name required")
		return
	}
	tag, err := h.svc.RenameTag(c.Request.Context(), id, req.Name)
	if err != nil {
		renderError(c, err)
		return
	}
	count, err := h.svc.TagPostCount(c.Request.Context(), id)
	if err != nil {
		renderError(c, err)
		return
	}
	respond(c, http.StatusOK, repository.TagCount{
		ID:    tag.ID,
		Name:  tag.Name,
		Count: count,
	}, "tag updated")
}

func (h *handlers) deleteTag(c *gin.Context) {
	id, valid := idParam(c)
	if !valid {
		return
	}
	if err := h.svc.DeleteTag(c.Request.Context(), id); err != nil {
		renderError(c, err)
		return
	}
	respond(c, http.StatusOK, nil, "tag deleted")
}
