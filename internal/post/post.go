package post

import (
	"time"

	"github.com/gassama94/drf-api/internal/user"
)

// Categories a post can carry. The first one is the default.
var Categories = []string{
	"world", "environment", "technology", "design", "culture", "business",
	"politics", "opinion", "science", "health", "style", "travel",
}

// ImageFilters selectable for the post image.
var ImageFilters = []string{
	"_1977", "brannan", "earlybird", "hudson", "inkwell", "lofi", "kelvin",
	"normal", "nashville", "rise", "toaster", "valencia", "walden", "xpro2",
}

type Post struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	OwnerID     uint      `gorm:"index;not null" json:"-"`
	Owner       user.User `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Content     string    `gorm:"type:text" json:"content"`
	Category    string    `gorm:"size:50;default:world" json:"category"`
	Image       string    `gorm:"size:255" json:"image"`
	ImageFilter string    `gorm:"size:32;default:normal" json:"image_filter"`
}

type WriteReq struct {
	Title       string `json:"title" validate:"required,max=255"`
	Content     string `json:"content"`
	Category    string `json:"category" validate:"omitempty,oneof=world environment technology design culture business politics opinion science health style travel"`
	ImageFilter string `json:"image_filter" validate:"omitempty,oneof=_1977 brannan earlybird hudson inkwell lofi kelvin normal nashville rise toaster valencia walden xpro2"`
}

type View struct {
	ID            uint      `json:"id"`
	Owner         string    `json:"owner"`
	IsOwner       bool      `json:"is_owner"`
	ProfileID     uint      `json:"profile_id"`
	ProfileImage  string    `json:"profile_image"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	Category      string    `json:"category"`
	Image         string    `json:"image"`
	ImageFilter   string    `json:"image_filter"`
	LikeID        *uint     `json:"like_id"`
	LikesCount    int64     `json:"likes_count"`
	CommentsCount int64     `json:"comments_count"`
}

type Row struct {
	ID            uint
	OwnerID       uint
	OwnerUsername string
	ProfileID     uint
	ProfileImage  string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Title         string
	Content       string
	Category      string
	Image         string
	ImageFilter   string
	LikeID        *uint
	LikesCount    int64
	CommentsCount int64
}

func NewView(row Row, requester uint) View {
	return View{
		ID:            row.ID,
		Owner:         row.OwnerUsername,
		IsOwner:       requester != 0 && requester == row.OwnerID,
		ProfileID:     row.ProfileID,
		ProfileImage:  row.ProfileImage,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
		Title:         row.Title,
		Content:       row.Content,
		Category:      row.Category,
		Image:         row.Image,
		ImageFilter:   row.ImageFilter,
		LikeID:        row.LikeID,
		LikesCount:    row.LikesCount,
		CommentsCount: row.CommentsCount,
	}
}
