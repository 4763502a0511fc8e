package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/inkwell-social/inkwell/internal/middleware"
	"github.com/inkwell-social/inkwell/pkg/response"
)

type commentRequest struct {
	Text string `json:"text" binding:"required"`
}

// AddComment attaches a comment to the post by the authenticated
// viewer; 404 for an unknown post id.
func (h *Handler) AddComment(c *gin.Context) {
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	comment, err := h.comments.Add(c.Request.Context(), middleware.UserID(c), c.Param("id"), req.Text)
	if err != nil {
		fail(c, err)
		return
	}
	response.Created(c, comment)
}
