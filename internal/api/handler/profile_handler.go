package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inkwell-social/inkwell/internal/middleware"
	"github.com/inkwell-social/inkwell/pkg/response"
)

// Profile serves an author's page. The following flag is true only
// when the viewer is authenticated, is not the author, and has an
// active follow edge to them.
// @Summary Author profile
// @Produce json
// @Param username path string true "author username"
// @Param page query int false "page number" default(1)
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /profile/{username}/ [get]
func (h *Handler) Profile(c *gin.Context) {
	author, timeline, err := h.feed.ByAuthor(c.Request.Context(), c.Param("username"), pageParam(c))
	if err != nil {
		fail(c, err)
		return
	}
	following := false
	if viewer := middleware.UserID(c); viewer != "" && viewer != author.ID {
		following, err = h.follows.IsFollowing(c.Request.Context(), viewer, author.ID)
		if err != nil {
			fail(c, err)
			return
		}
	}
	response.Success(c, gin.H{
		"author":    author,
		"timeline":  timeline,
		"following": following,
	})
}

// FollowAction creates the follow edge. Re-following and following
// yourself both succeed without doing anything.
func (h *Handler) FollowAction(c *gin.Context) {
	username := c.Param("username")
	if err := h.follows.Follow(c.Request.Context(), middleware.UserID(c), username); err != nil {
		fail(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/profile/"+username+"/")
}

// UnfollowAction removes the follow edge; unlike FollowAction it is
// not idempotent and 404s when no edge exists.
func (h *Handler) UnfollowAction(c *gin.Context) {
	username := c.Param("username")
	if err := h.follows.Unfollow(c.Request.Context(), middleware.UserID(c), username); err != nil {
		fail(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/profile/"+username+"/")
}
