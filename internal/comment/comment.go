package comment

import (
	"time"

	"github.com/gassama94/drf-api/internal/post"
	"github.com/gassama94/drf-api/internal/user"
)

type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	OwnerID   uint      `gorm:"index;not null" json:"-"`
	Owner     user.User `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	PostID    uint      `gorm:"index;not null" json:"post"`
	Post      post.Post `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Content   string    `gorm:"type:text;not null" json:"content"`
}

type CreateReq struct {
	Post    uint   `json:"post" validate:"required"`
	Content string `json:"content" validate:"required"`
}

type UpdateReq struct {
	Content string `json:"content" validate:"required"`
}

type View struct {
	ID           uint      `json:"id"`
	Owner        string    `json:"owner"`
	IsOwner      bool      `json:"is_owner"`
	ProfileID    uint      `json:"profile_id"`
	ProfileImage string    `json:"profile_image"`
	Post         uint      `json:"post"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Content      string    `json:"content"`
}

type Row struct {
	ID            uint
	OwnerID       uint
	OwnerUsername string
	ProfileID     uint
	ProfileImage  string
	PostID        uint
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Content       string
}

func NewView(row Row, requester uint) View {
	return View{
		ID:           row.ID,
		Owner:        row.OwnerUsername,
		IsOwner:      requester != 0 && requester == row.OwnerID,
		ProfileID:    row.ProfileID,
		ProfileImage: row.ProfileImage,
		Post:         row.PostID,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
		Content:      row.Content,
	}
}
