package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inkwell-social/inkwell/internal/middleware"
	"github.com/inkwell-social/inkwell/internal/service"
	"github.com/inkwell-social/inkwell/pkg/response"
)

type postRequest struct {
	Text      string `json:"text" binding:"required"`
	GroupSlug string `json:"group_slug" binding:"omitempty,slug"`
	Image     string `json:"image" binding:"omitempty,max=255"`
}

// PostDetail serves one post with its comments, newest first.
func (h *Handler) PostDetail(c *gin.Context) {
	post, err := h.posts.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	comments, err := h.comments.ListByPost(c.Request.Context(), post.ID)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, gin.H{"post": post, "comments": comments})
}

// CreatePost publishes a post by the authenticated viewer, pointing
// the client back at the author's profile like the classic flow does.
func (h *Handler) CreatePost(c *gin.Context) {
	var req postRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	post, err := h.posts.Create(c.Request.Context(), middleware.UserID(c), service.PostInput{
		Text:      req.Text,
		GroupSlug: req.GroupSlug,
		Image:     req.Image,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.Header("Location", "/profile/"+c.GetString(middleware.CtxUsername)+"/")
	response.Created(c, post)
}

// EditPost updates a post's mutable fields. A non-author is silently
// bounced to the post detail, not shown an error.
func (h *Handler) EditPost(c *gin.Context) {
	id := c.Param("id")
	var req postRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	post, err := h.posts.Edit(c.Request.Context(), middleware.UserID(c), id, service.PostInput{
		Text:      req.Text,
		GroupSlug: req.GroupSlug,
		Image:     req.Image,
	})
	if err != nil {
		if errors.Is(err, service.ErrForbidden) {
			c.Redirect(http.StatusFound, "/posts/"+id+"/")
			return
		}
		fail(c, err)
		return
	}
	response.Success(c, post)
}
