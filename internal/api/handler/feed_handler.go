package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inkwell-social/inkwell/internal/middleware"
	"github.com/inkwell-social/inkwell/pkg/response"
)

// Index serves the global timeline. The first page comes from the
// shared cache slot when it is warm, so the body is identical for
// every viewer within the TTL window.
// @Summary Global timeline
// @Produce json
// @Param page query int false "page number" default(1)
// @Success 200 {object} response.Response{data=service.Timeline}
// @Router / [get]
func (h *Handler) Index(c *gin.Context) {
	body, err := h.timeline.RenderGlobal(c.Request.Context(), pageParam(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}

// GroupTimeline serves posts of one group, 404 for an unknown slug.
// @Summary Group timeline
// @Produce json
// @Param slug path string true "group slug"
// @Param page query int false "page number" default(1)
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /group/{slug}/ [get]
func (h *Handler) GroupTimeline(c *gin.Context) {
	group, timeline, err := h.feed.ByGroup(c.Request.Context(), c.Param("slug"), pageParam(c))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, gin.H{"group": group, "timeline": timeline})
}

// FollowFeed serves posts by every author the viewer follows.
func (h *Handler) FollowFeed(c *gin.Context) {
	timeline, err := h.feed.ByFollowGraph(c.Request.Context(), middleware.UserID(c), pageParam(c))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, timeline)
}

// ClearTimelineCache force-evicts the cached global timeline; the next
// request recomputes it.
func (h *Handler) ClearTimelineCache(c *gin.Context) {
	if err := h.timeline.ClearCache(c.Request.Context()); err != nil {
		fail(c, err)
		return
	}
	response.Success(c, nil)
}
