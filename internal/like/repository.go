package like

import (
	"gorm.io/gorm"

	"github.com/gassama94/drf-api/internal/shared/db"
)

type Repository interface {
	Create(l *Like) error
	GetByID(id uint) (*Like, error)
	GetRow(id uint) (*Row, error)
	List(limit, offset int) ([]Row, error)
	Delete(id uint) error
}

type repo struct{ db *gorm.DB }

func NewRepository(s *db.Store) Repository { return &repo{db: s.DB} }

// Create attempts the insert unconditionally. A unique-index rejection comes
// back as a validation error carrying the duplicate message; there is no
// check-then-act window.
func (r *repo) Create(l *Like) error {
	return db.Translate(r.db.Create(l).Error, "post not found", "possible duplicate")
}

func (r *repo) GetByID(id uint) (*Like, error) {
	var l Like
	if err := r.db.First(&l, id).Error; err != nil {
		return nil, db.Translate(err, "like not found", "")
	}
	return &l, nil
}

func (r *repo) annotated() *gorm.DB {
	return r.db.Model(&Like{}).
		Select(`likes.id, likes.owner_id, users.username AS owner_username,
			likes.post_id, likes.created_at`).
		Joins("JOIN users ON users.id = likes.owner_id")
}

func (r *repo) GetRow(id uint) (*Row, error) {
	var row Row
	res := r.annotated().Where("likes.id = ?", id).Scan(&row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, db.Translate(gorm.ErrRecordNotFound, "like not found", "")
	}
	return &row, nil
}

func (r *repo) List(limit, offset int) ([]Row, error) {
	var rows []Row
	err := r.annotated().Order("likes.created_at DESC").
		Limit(limit).Offset(offset).Scan(&rows).Error
	return rows, err
}

func (r *repo) Delete(id uint) error {
	return db.Translate(r.db.Delete(&Like{}, id).Error, "like not found", "")
}
