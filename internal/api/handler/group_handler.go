package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/inkwell-social/inkwell/internal/model"
	"github.com/inkwell-social/inkwell/pkg/response"
)

type groupRequest struct {
	Slug        string `json:"slug" binding:"required,slug,max=64"`
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description"`
}

// CreateGroup registers a new group. Groups are shared: any
// authenticated account may create one.
func (h *Handler) CreateGroup(c *gin.Context) {
	var req groupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	group := &model.Group{Slug: req.Slug, Title: req.Title, Description: req.Description}
	if err := h.groups.Create(c.Request.Context(), group); err != nil {
		fail(c, err)
		return
	}
	response.Created(c, group)
}

// DeleteGroup removes a group. Posts that referenced it stay, detached
// from any group.
func (h *Handler) DeleteGroup(c *gin.Context) {
	if err := h.groups.Delete(c.Request.Context(), c.Param("slug")); err != nil {
		fail(c, err)
		return
	}
	response.Success(c, nil)
}
