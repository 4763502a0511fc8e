package main

import (
	"context"
	"flag"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/inkwell-social/inkwell/internal/config"
	"github.com/inkwell-social/inkwell/internal/database"
	"github.com/inkwell-social/inkwell/internal/model"
	"github.com/inkwell-social/inkwell/internal/repository"
	"github.com/inkwell-social/inkwell/pkg/logger"
)

// Seeds a handful of demo accounts, groups, posts and follow edges so
// a fresh instance has something on its timelines.
func main() {
	usersN := flag.Int("users", 5, "number of demo users")
	postsN := flag.Int("posts", 4, "posts per user")
	flag.Parse()

	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}
	if err := logger.Init(cfg.Server.Mode); err != nil {
		panic(err)
	}
	defer logger.Sync()

	db, err := database.Open(cfg.Database)
	if err != nil {
		logger.L().Fatal("open database", zap.Error(err))
	}
	if err := database.Migrate(db); err != nil {
		logger.L().Fatal("migrate database", zap.Error(err))
	}

	ctx := context.Background()
	users := repository.NewUserRepository(db)
	groups := repository.NewGroupRepository(db)
	posts := repository.NewPostRepository(db)
	follows := repository.NewFollowRepository(db)

	hash, _ := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)

	demoGroups := []*model.Group{
		{Slug: "news", Title: "News", Description: "What happened today"},
		{Slug: "golang", Title: "Go", Description: "Notes on Go"},
	}
	for _, g := range demoGroups {
		if err := groups.Create(ctx, g); err != nil {
			logger.Warn("seed group", zap.String("slug", g.Slug), zap.Error(err))
		}
	}

	var seeded []*model.User
	for i := 0; i < *usersN; i++ {
		u := &model.User{
			Username: fmt.Sprintf("demo%02d", i),
			Email:    fmt.Sprintf("demo%02d@example.com", i),
			Password: string(hash),
		}
		if err := users.Create(ctx, u); err != nil {
			logger.Warn("seed user", zap.String("username", u.Username), zap.Error(err))
			continue
		}
		seeded = append(seeded, u)
	}

	for i, u := range seeded {
		for j := 0; j < *postsN; j++ {
			p := &model.Post{
				AuthorID: u.ID,
				Text:     fmt.Sprintf("post %d by %s", j, u.Username),
			}
			if j%2 == 0 {
				p.GroupID = &demoGroups[i%len(demoGroups)].ID
			}
			if err := posts.Create(ctx, p); err != nil {
				logger.Warn("seed post", zap.Error(err))
			}
		}
		// everyone follows the next user, ring-style
		next := seeded[(i+1)%len(seeded)]
		if next.ID != u.ID {
			if err := follows.Create(ctx, u.ID, next.ID); err != nil {
				logger.Warn("seed follow", zap.Error(err))
			}
		}
	}

	logger.Info("seeded",
		zap.Int("users", len(seeded)),
		zap.Int("groups", len(demoGroups)),
	)
}
