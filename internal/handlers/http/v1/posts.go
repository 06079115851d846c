package v1

import (
	"net/http"
	"time"

	"github.com/gfdmit/blogdesk/internal/repository"
	"github.com/gin-gonic/gin"
)

// postView adds the formatted date on top of the repository read model.
type postView struct {
	repository.Post
	Date string `json:"date"`
}

func viewOfPost(p repository.Post) postView {
	return postView{Post: p, Date: p.Date.Format(time.DateOnly)}
}

func (h *handlers) listPosts(c *gin.Context) {
	filter := repository.PostFilter{
		Page:     intQuery(c, "page", 1),
		Size:     intQuery(c, "size", 10),
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Tag:      c.Query("tag"),
		Date:     c.Query("date"),
	}

	posts, total, err := h.svc.ListPosts(c.Request.Context(), filter)
	if err != nil {
		renderError(c, err)
		return
	}

	views := make([]postView, 0, len(posts))
	for _, p := range posts {
		views = append(views, viewOfPost(p))
	}
	ok(c, gin.H{
		"page":  filter.Page,
		"size":  filter.Size,
		"total": total,
		"posts": views,
	})
}

func (h *handlers) getPost(c *gin.Context) {
	id, valid := idParam(c)
	if !valid {
		return
	}
	post, err := h.svc.Post(c.Request.Context(), id)
	if err != nil {
		renderError(c, err)
		return
	}
	ok(c, viewOfPost(post))
}

type createPostRequest struct {
	Title      string `json:"title" binding:"required,max=256"`
	Summary    string `json:"summary" binding:"max=512"`
	Content    string `json:"content" binding:"required"`
	CategoryID *int   `json:"category_id"`
	TagIDs     []int  `json:"tag_ids"`
}

func (h *handlers) createPost(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	user, _ := currentUser(c)

	post, err := h.svc.CreatePost(c.Request.Context(), repository.PostInput{
		Title:      req.Title,
		Summary:    req.Summary,
		Content:    req.Content,
		CategoryID: req.CategoryID,
		TagIDs:     req.TagIDs,
		AuthorID:   user.ID,
	})
	if err != nil {
		renderError(c, err)
		return
	}
	created(c, viewOfPost(post), "post created")
}

type updatePostRequest struct {
	Title      *string `json:"title" binding:"omitempty,max=256"`
	Summary    *string `json:"summary" binding:"omitempty,max=512"`
	Content    *string `json:"content"`
	CategoryID *int    `json:"category_id"`
	TagIDs     *[]int  `json:"tag_ids"`
}

func (h *handlers) updatePost(c *gin.Context) {
	id, valid := idParam(c)
	if !valid {
		return
	}
	var req updatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	user, _ := currentUser(c)

	post, err := h.svc.UpdatePost(c.Request.Context(), id, user.ID, repository.PostPatch{
		Title:      req.Title,
		Summary:    req.Summary,
		Content:    req.Content,
		CategoryID: req.CategoryID,
		TagIDs:     req.TagIDs,
	})
	if err != nil {
		renderError(c, err)
		return
	}
	respond(c, http.StatusOK, viewOfPost(post), "post updated")
}

func (h *handlers) deletePost(c *gin.Context) {
	id, valid := idParam(c)
	if !valid {
		return
	}
	user, _ := currentUser(c)
	if err := h.svc.DeletePost(c.Request.Context(), id, user.ID); err != nil {
		renderError(c, err)
		return
	}
	respond(c, http.StatusOK, nil, "post deleted")
}

func (h *handlers) addView(c *gin.Context) {
	id, valid := idParam(c)
	if !valid {
		return
	}
	if err := h.svc.AddView(c.Request.Context(), id); err != nil {
		renderError(c, err)
		return
	}
	respond(c, http.StatusOK, nil, "view +1")
}

func (h *handlers) addLike(c *gin.Context) {
	id, valid := idParam(c)
	if !valid {
		return
	}
	if err := h.svc.AddLike(c.Request.Context(), id); err != nil {
		renderError(c, err)
		return
	}
	respond(c, http.StatusOK, nil, "like +1")
}

func (h *handlers) archive(c *gin.Context) {
	archive, err := h.svc.Archive(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}
	ok(c, gin.H{"archive": archive})
}
