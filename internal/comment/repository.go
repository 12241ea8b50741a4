package comment

import (
	"gorm.io/gorm"

	"github.com/gassama94/drf-api/internal/shared/db"
)

type Repository interface {
	Create(c *Comment) error
	GetByID(id uint) (*Comment, error)
	GetRow(id uint) (*Row, error)
	ListByPost(postID uint, limit, offset int) ([]Row, error)
	Update(c *Comment) error
	Delete(id uint) error
}

type repo struct{ db *gorm.DB }

func NewRepository(s *db.Store) Repository { return &repo{db: s.DB} }

func (r *repo) Create(c *Comment) error {
	return db.Translate(r.db.Create(c).Error, "post not found", "duplicate comment")
}

func (r *repo) GetByID(id uint) (*Comment, error) {
	var c Comment
	if err := r.db.First(&c, id).Error; err != nil {
		return nil, db.Translate(err, "comment not found", "")
	}
	return &c, nil
}

func (r *repo) annotated() *gorm.DB {
	return r.db.Model(&Comment{}).
		Select(`comments.id, comments.owner_id, users.username AS owner_username,
			profiles.id AS profile_id, profiles.image AS profile_image,
			comments.post_id, comments.created_at, comments.updated_at, comments.content`).
		Joins("JOIN users ON users.id = comments.owner_id").
		Joins("JOIN profiles ON profiles.owner_id = comments.owner_id")
}

func (r *repo) GetRow(id uint) (*Row, error) {
	var row Row
	res := r.annotated().Where("comments.id = ?", id).Scan(&row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, db.Translate(gorm.ErrRecordNotFound, "comment not found", "")
	}
	return &row, nil
}

func (r *repo) ListByPost(postID uint, limit, offset int) ([]Row, error) {
	q := r.annotated()
	if postID != 0 {
		q = q.Where("comments.post_id = ?", postID)
	}
	var rows []Row
	err := q.Order("comments.created_at DESC").
		Limit(limit).Offset(offset).Scan(&rows).Error
	return rows, err
}

func (r *repo) Update(c *Comment) error {
	return db.Translate(r.db.Save(c).Error, "comment not found", "")
}

func (r *repo) Delete(id uint) error {
	return db.Translate(r.db.Delete(&Comment{}, id).Error, "comment not found", "")
}
