package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/inkwell-social/inkwell/internal/model"
	"github.com/inkwell-social/inkwell/internal/repository"
)

type fixtures struct {
	db       *gorm.DB
	users    repository.UserRepository
	groups   repository.GroupRepository
	posts    repository.PostRepository
	comments repository.CommentRepository
	follows  repository.FollowRepository
}

func setup(t *testing.T) *fixtures {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.User{}, &model.Group{}, &model.Post{}, &model.Comment{}, &model.Follow{},
	))
	return &fixtures{
		db:       db,
		users:    repository.NewUserRepository(db),
		groups:   repository.NewGroupRepository(db),
		posts:    repository.NewPostRepository(db),
		comments: repository.NewCommentRepository(db),
		follows:  repository.NewFollowRepository(db),
	}
}

func (f *fixtures) feed(pageSize int) FeedService {
	return NewFeedService(f.posts, f.groups, f.users, pageSize)
}

func (f *fixtures) user(t *testing.T, username string) *model.User {
	t.Helper()
	u := &model.User{ID: uuid.New().String(), Username: username, Password: "x"}
	require.NoError(t, f.db.Create(u).Error)
	return u
}

func (f *fixtures) group(t *testing.T, slug string) *model.Group {
	t.Helper()
	g := &model.Group{ID: uuid.New().String(), Slug: slug, Title: slug}
	require.NoError(t, f.db.Create(g).Error)
	return g
}

func (f *fixtures) post(t *testing.T, author *model.User, group *model.Group, text string, at time.Time) *model.Post {
	t.Helper()
	p := &model.Post{ID: uuid.New().String(), AuthorID: author.ID, Text: text, CreatedAt: at}
	if group != nil {
		p.GroupID = &group.ID
	}
	require.NoError(t, f.db.Create(p).Error)
	return p
}
