package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/inkwell-social/inkwell/internal/service"
	"github.com/inkwell-social/inkwell/pkg/response"
)

// Handler bundles the services behind the HTTP surface.
type Handler struct {
	feed     service.FeedService
	timeline service.TimelineService
	posts    service.PostService
	comments service.CommentService
	follows  service.FollowService
	accounts service.AccountService
	groups   service.GroupService
}

func New(
	feed service.FeedService,
	timeline service.TimelineService,
	posts service.PostService,
	comments service.CommentService,
	follows service.FollowService,
	accounts service.AccountService,
	groups service.GroupService,
) *Handler {
	return &Handler{
		feed:     feed,
		timeline: timeline,
		posts:    posts,
		comments: comments,
		follows:  follows,
		accounts: accounts,
		groups:   groups,
	}
}

// pageParam reads the 1-based page query parameter; absent or garbage
// means page 1 (the paginator clamps out-of-range values anyway).
func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		return 1
	}
	return page
}

// fail renders a service error with the matching status code.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrUsernameTaken):
		response.Conflict(c, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		response.Unauthorized(c, err.Error())
	default:
		response.InternalError(c, err)
	}
}
