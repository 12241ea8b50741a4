package user

import (
	"gorm.io/gorm"

	"github.com/gassama94/drf-api/internal/shared/db"
)

type Repository interface {
	Create(u *User) error
	// CreateAndProvision inserts the user and runs provision inside one
	// transaction. Either both rows land or neither does.
	CreateAndProvision(u *User, provision func(tx *gorm.DB) error) error
	GetByID(id uint) (*User, error)
	GetByUsername(username string) (*User, error)
}

type repo struct{ db *gorm.DB }

func NewRepository(s *db.Store) Repository { return &repo{db: s.DB} }

func (r *repo) Create(u *User) error {
	return db.Translate(r.db.Create(u).Error, "user not found", "username already taken")
}

func (r *repo) CreateAndProvision(u *User, provision func(tx *gorm.DB) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(u).Error; err != nil {
			return db.Translate(err, "user not found", "username already taken")
		}
		return provision(tx)
	})
}

func (r *repo) GetByID(id uint) (*User, error) {
	var u User
	if err := r.db.First(&u, id).Error; err != nil {
		return nil, db.Translate(err, "user not found", "")
	}
	return &u, nil
}

func (r *repo) GetByUsername(username string) (*User, error) {
	var u User
	if err := r.db.First(&u, "username = ?", username).Error; err != nil {
		return nil, db.Translate(err, "user not found", "")
	}
	return &u, nil
}
