package follower

import (
	"gorm.io/gorm"

	"github.com/gassama94/drf-api/internal/shared/db"
)

type Repository interface {
	Create(f *Follower) error
	GetByID(id uint) (*Follower, error)
	GetRow(id uint) (*Row, error)
	List(limit, offset int) ([]Row, error)
	Delete(id uint) error
}

type repo struct{ db *gorm.DB }

func NewRepository(s *db.Store) Repository { return &repo{db: s.DB} }

func (r *repo) Create(f *Follower) error {
	return db.Translate(r.db.Create(f).Error, "user not found", "possible duplicate")
}

func (r *repo) GetByID(id uint) (*Follower, error) {
	var f Follower
	if err := r.db.First(&f, id).Error; err != nil {
		return nil, db.Translate(err, "follower not found", "")
	}
	return &f, nil
}

func (r *repo) annotated() *gorm.DB {
	return r.db.Model(&Follower{}).
		Select(`followers.id, followers.owner_id, owners.username AS owner_username,
			followers.followed_id, followed.username AS followed_username,
			followers.created_at`).
		Joins("JOIN users owners ON owners.id = followers.owner_id").
		Joins("JOIN users followed ON followed.id = followers.followed_id")
}

func (r *repo) GetRow(id uint) (*Row, error) {
	var row Row
	res := r.annotated().Where("followers.id = ?", id).Scan(&row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, db.Translate(gorm.ErrRecordNotFound, "follower not found", "")
	}
	return &row, nil
}

func (r *repo) List(limit, offset int) ([]Row, error) {
	var rows []Row
	err := r.annotated().Order("followers.created_at DESC").
		Limit(limit).Offset(offset).Scan(&rows).Error
	return rows, err
}

func (r *repo) Delete(id uint) error {
	return db.Translate(r.db.Delete(&Follower{}, id).Error, "follower not found", "")
}
