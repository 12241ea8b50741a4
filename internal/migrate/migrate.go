package migrate

import (
	"github.com/gassama94/drf-api/internal/comment"
	"github.com/gassama94/drf-api/internal/follower"
	"github.com/gassama94/drf-api/internal/like"
	"github.com/gassama94/drf-api/internal/post"
	"github.com/gassama94/drf-api/internal/profile"
	"github.com/gassama94/drf-api/internal/shared/db"
	"github.com/gassama94/drf-api/internal/user"
)

// AutoMigrateAll creates the schema, including the composite unique indexes
// that back the duplicate guards and the ON DELETE CASCADE foreign keys.
func AutoMigrateAll(store *db.Store) error {
	return store.DB.AutoMigrate(
		&user.User{},
		&profile.Profile{},
		&post.Post{},
		&comment.Comment{},
		&like.Like{},
		&follower.Follower{},
	)
}
