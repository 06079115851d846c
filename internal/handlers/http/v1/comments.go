package v1

import (
	"net/http"

	"github.com/gfdmit/blogdesk/internal/repository"
	"github.com/gin-gonic/gin"
)

func (h *handlers) listComments(c *gin.Context) {
	id, valid := idParam(c)
	if !valid {
		return
	}
	tree, err := h.svc.CommentTree(c.Request.Context(), id)
	if err != nil {
		renderError(c, err)
		return
	}
	ok(c, gin.H{"comments": tree})
}

type createCommentRequest struct {
	PostID      int     `json:"post_id" binding:"required"`
	ParentID    *int    `json:"parent_id"`
	AuthorName  string  `json:"author_name" binding:"required,max=128"`
	AuthorEmail *string `json:"author_email" binding:"omitempty,max=256"`
	Content     string  `json:"content" binding:"required"`
}

func (h *handlers) createComment(c *gin.Context) {
	var req createCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	in := repository.CommentInput{
		PostID:      req.PostID,
		ParentID:    req.ParentID,
		AuthorName:  req.AuthorName,
		AuthorEmail: req.AuthorEmail,
		Content:     req.Content,
	}
	// anonymous comments are allowed; the identity is attached only when a
	// valid token accompanied the request
	if user, authed := currentUser(c); authed {
		in.UserID = &user.ID
	}

	node, err := h.svc.CreateComment(c.Request.Context(), in)
	if err != nil {
		renderError(c, err)
		return
	}
	created(c, node, "comment created")
}

func (h *handlers) deleteComment(c *gin.Context) {
	id, valid := idParam(c)
	if !valid {
		return
	}
	user, _ := currentUser(c)
	if err := h.svc.DeleteComment(c.Request.Context(), id, user.ID); err != nil {
		renderError(c, err)
		return
	}
	respond(c, http.StatusOK, nil, "comment deleted")
}
