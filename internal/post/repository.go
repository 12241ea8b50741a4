package post

import (
	"strings"

	"gorm.io/gorm"

	"github.com/gassama94/drf-api/internal/shared/db"
)

type ListOpts struct {
	// Owner filters by the author's profile id. LikedBy keeps posts liked
	// by the given profile. FollowedBy keeps posts whose authors the given
	// profile follows (the feed).
	Owner      uint
	LikedBy    uint
	FollowedBy uint
	Search     string
	Ordering   string
	Limit      int
	Offset     int
	Requester  uint
}

type Repository interface {
	Create(p *Post) error
	GetByID(id uint) (*Post, error)
	GetRow(id, requester uint) (*Row, error)
	List(opts ListOpts) ([]Row, error)
	Update(p *Post) error
	Delete(id uint) error
}

type repo struct{ db *gorm.DB }

func NewRepository(s *db.Store) Repository { return &repo{db: s.DB} }

func (r *repo) Create(p *Post) error {
	return db.Translate(r.db.Create(p).Error, "post not found", "duplicate post")
}

func (r *repo) GetByID(id uint) (*Post, error) {
	var p Post
	if err := r.db.First(&p, id).Error; err != nil {
		return nil, db.Translate(err, "post not found", "")
	}
	return &p, nil
}

func (r *repo) Update(p *Post) error {
	return db.Translate(r.db.Save(p).Error, "post not found", "")
}

func (r *repo) Delete(id uint) error {
	return db.Translate(r.db.Delete(&Post{}, id).Error, "post not found", "")
}

// annotated counts likes and comments distinctly in one query; the two LEFT
// JOINs fan out against each other, so anything short of DISTINCT would
// multiply the counts. MAX(ml.id) picks the requester's like, of which the
// uniqueness guard permits at most one.
func (r *repo) annotated(requester uint) *gorm.DB {
	return r.db.Model(&Post{}).
		Select(`posts.id, posts.owner_id, users.username AS owner_username,
			profiles.id AS profile_id, profiles.image AS profile_image,
			posts.created_at, posts.updated_at, posts.title, posts.content,
			posts.category, posts.image, posts.image_filter,
			COUNT(DISTINCT likes.id) AS likes_count,
			COUNT(DISTINCT comments.id) AS comments_count,
			MAX(ml.id) AS like_id`).
		Joins("JOIN users ON users.id = posts.owner_id").
		Joins("JOIN profiles ON profiles.owner_id = posts.owner_id").
		Joins("LEFT JOIN likes ON likes.post_id = posts.id").
		Joins("LEFT JOIN comments ON comments.post_id = posts.id").
		Joins("LEFT JOIN likes ml ON ml.post_id = posts.id AND ml.owner_id = ?", requester).
		Group("posts.id, users.id, profiles.id")
}

func (r *repo) GetRow(id, requester uint) (*Row, error) {
	var row Row
	res := r.annotated(requester).Where("posts.id = ?", id).Scan(&row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, db.Translate(gorm.ErrRecordNotFound, "post not found", "")
	}
	return &row, nil
}

var orderings = map[string]string{
	"likes_count":      "likes_count",
	"comments_count":   "comments_count",
	"likes_created_at": "MAX(likes.created_at)",
	"created_at":       "posts.created_at",
}

func (r *repo) List(opts ListOpts) ([]Row, error) {
	q := r.annotated(opts.Requester)
	if opts.Owner != 0 {
		q = q.Where("profiles.id = ?", opts.Owner)
	}
	if opts.LikedBy != 0 {
		q = q.Where(`EXISTS (
			SELECT 1 FROM likes l
			JOIN profiles lp ON lp.owner_id = l.owner_id
			WHERE l.post_id = posts.id AND lp.id = ?)`, opts.LikedBy)
	}
	if opts.FollowedBy != 0 {
		q = q.Where(`EXISTS (
			SELECT 1 FROM followers f
			JOIN profiles fp ON fp.owner_id = f.owner_id
			WHERE f.followed_id = posts.owner_id AND fp.id = ?)`, opts.FollowedBy)
	}
	if s := strings.TrimSpace(opts.Search); s != "" {
		pat := "%" + strings.ToLower(s) + "%"
		q = q.Where("LOWER(users.username) LIKE ? OR LOWER(posts.title) LIKE ?", pat, pat)
	}
	q = q.Order(db.OrderExpr(opts.Ordering, orderings, "posts.created_at DESC"))
	var rows []Row
	err := q.Limit(opts.Limit).Offset(opts.Offset).Scan(&rows).Error
	return rows, err
}
