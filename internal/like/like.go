package like

import (
	"time"

	"github.com/gassama94/drf-api/internal/post"
	"github.com/gassama94/drf-api/internal/user"
)

// Like records a user liking a post. The composite unique index is the
// uniqueness guard: the store, not the application, decides whether the
// (owner, post) pair already exists, so concurrent duplicate submissions
// race on the index and exactly one wins.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	OwnerID   uint      `gorm:"not null;uniqueIndex:idx_like_owner_post" json:"-"`
	Owner     user.User `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_like_owner_post" json:"post"`
	Post      post.Post `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateReq struct {
	Post uint `json:"post" validate:"required"`
}

type View struct {
	ID        uint      `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Owner     string    `json:"owner"`
	Post      uint      `json:"post"`
}

type Row struct {
	ID            uint
	OwnerID       uint
	OwnerUsername string
	PostID        uint
	CreatedAt     time.Time
}

func NewView(row Row) View {
	return View{
		ID:        row.ID,
		CreatedAt: row.CreatedAt,
		Owner:     row.OwnerUsername,
		Post:      row.PostID,
	}
}
