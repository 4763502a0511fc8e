package router

import (
	"regexp"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/inkwell-social/inkwell/internal/api/handler"
	"github.com/inkwell-social/inkwell/internal/config"
	"github.com/inkwell-social/inkwell/internal/middleware"
)

var slugRe = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

func registerValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
			return slugRe.MatchString(fl.Field().String())
		})
	}
}

// New assembles the gin engine with the full route table.
func New(cfg *config.Config, h *handler.Handler) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)
	registerValidations()

	r := gin.New()
	r.Use(
		middleware.Recovery(),
		middleware.RequestLogger(),
		middleware.RateLimit(cfg.RateLimit.RPS, cfg.RateLimit.Burst),
		gzip.Gzip(gzip.DefaultCompression),
	)

	secret := cfg.Auth.JWTSecret
	optional := middleware.AuthOptional(secret)
	required := middleware.AuthRequired(secret)

	r.GET("/", h.Index)
	r.GET("/group/:slug/", h.GroupTimeline)
	r.GET("/profile/:username/", optional, h.Profile)
	r.GET("/posts/:id/", h.PostDetail)

	r.POST("/create/", required, h.CreatePost)
	r.POST("/posts/:id/edit/", required, h.EditPost)
	r.POST("/posts/:id/comment/", required, h.AddComment)
	r.GET("/follow/", required, h.FollowFeed)
	r.POST("/profile/:username/follow/", required, h.FollowAction)
	r.POST("/profile/:username/unfollow/", required, h.UnfollowAction)

	auth := r.Group("/auth")
	{
		auth.POST("/register/", h.Register)
		auth.POST("/login/", h.Login)
	}

	// Administrative and test pathways.
	internal := r.Group("/internal", required)
	{
		internal.POST("/timeline-cache/clear/", h.ClearTimelineCache)
		internal.POST("/groups/", h.CreateGroup)
		internal.POST("/groups/:slug/delete/", h.DeleteGroup)
	}

	return r
}
