package follower

import (
	"time"

	"github.com/gassama94/drf-api/internal/user"
)

// Follower is a directed follow edge: Owner follows Followed. The composite
// unique index is the uniqueness guard, same discipline as likes.
type Follower struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	OwnerID    uint      `gorm:"not null;uniqueIndex:idx_follow_owner_followed" json:"-"`
	Owner      user.User `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	FollowedID uint      `gorm:"not null;uniqueIndex:idx_follow_owner_followed" json:"followed"`
	Followed   user.User `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt  time.Time `json:"created_at"`
}

type CreateReq struct {
	Followed uint `json:"followed" validate:"required"`
}

type View struct {
	ID           uint      `json:"id"`
	Owner        string    `json:"owner"`
	CreatedAt    time.Time `json:"created_at"`
	Followed     uint      `json:"followed"`
	FollowedName string    `json:"followed_name"`
}

type Row struct {
	ID               uint
	OwnerID          uint
	OwnerUsername    string
	FollowedID       uint
	FollowedUsername string
	CreatedAt        time.Time
}

func NewView(row Row) View {
	return View{
		ID:           row.ID,
		Owner:        row.OwnerUsername,
		CreatedAt:    row.CreatedAt,
		Followed:     row.FollowedID,
		FollowedName: row.FollowedUsername,
	}
}
