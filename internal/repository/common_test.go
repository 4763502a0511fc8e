package repository

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/inkwell-social/inkwell/internal/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.User{}, &model.Group{}, &model.Post{}, &model.Comment{}, &model.Follow{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *model.User {
	t.Helper()
	u := &model.User{ID: uuid.New().String(), Username: username, Password: "x"}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedGroup(t *testing.T, db *gorm.DB, slug string) *model.Group {
	t.Helper()
	g := &model.Group{ID: uuid.New().String(), Slug: slug, Title: slug}
	require.NoError(t, db.Create(g).Error)
	return g
}

// seedPost pins created_at to a caller-chosen instant so ordering
// assertions do not depend on clock resolution.
func seedPost(t *testing.T, db *gorm.DB, author *model.User, group *model.Group, text string, at time.Time) *model.Post {
	t.Helper()
	p := &model.Post{ID: uuid.New().String(), AuthorID: author.ID, Text: text, CreatedAt: at}
	if group != nil {
		p.GroupID = &group.ID
	}
	require.NoError(t, db.Create(p).Error)
	return p
}
