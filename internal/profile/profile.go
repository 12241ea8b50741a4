package profile

import (
	"time"

	"github.com/gassama94/drf-api/internal/user"
)

// Profile is the one-to-one projection over a user. It is provisioned when
// the user registers and never created or deleted through the API.
type Profile struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	OwnerID   uint      `gorm:"uniqueIndex;not null" json:"-"`
	Owner     user.User `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Name      string    `gorm:"size:255" json:"name"`
	Content   string    `gorm:"type:text" json:"content"`
	Image     string    `gorm:"size:255" json:"image"`
}

type UpdateReq struct {
	Name    string `json:"name" validate:"max=255"`
	Content string `json:"content"`
}

// View is the serialized profile with its derived counters. The counts are
// computed per read from the related rows, never stored.
type View struct {
	ID             uint      `json:"id"`
	Owner          string    `json:"owner"`
	IsOwner        bool      `json:"is_owner"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
	Name           string    `json:"name"`
	Content        string    `json:"content"`
	Image          string    `json:"image"`
	FollowingID    *uint     `json:"following_id"`
	PostsCount     int64     `json:"posts_count"`
	FollowersCount int64     `json:"followers_count"`
	FollowingCount int64     `json:"following_count"`
}

// Row is what the repository's annotated query scans into.
type Row struct {
	ID             uint
	OwnerID        uint
	OwnerUsername  string
	CreatedAt      time.Time
	UpdatedAt      time.Time
	Name           string
	Content        string
	Image          string
	FollowingID    *uint
	PostsCount     int64
	FollowersCount int64
	FollowingCount int64
}

// NewView builds the response shape for a requesting identity (0 for
// anonymous).
func NewView(row Row, requester uint) View {
	return View{
		ID:             row.ID,
		Owner:          row.OwnerUsername,
		IsOwner:        requester != 0 && requester == row.OwnerID,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
		Name:           row.Name,
		Content:        row.Content,
		Image:          row.Image,
		FollowingID:    row.FollowingID,
		PostsCount:     row.PostsCount,
		FollowersCount: row.FollowersCount,
		FollowingCount: row.FollowingCount,
	}
}
