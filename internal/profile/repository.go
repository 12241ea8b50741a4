package profile

import (
	"gorm.io/gorm"

	"github.com/gassama94/drf-api/internal/shared/db"
)

type ListOpts struct {
	// Follows keeps only profiles of users who follow the given profile.
	Follows   uint
	Ordering  string
	Limit     int
	Offset    int
	Requester uint
}

type Repository interface {
	Create(p *Profile) error
	// CreateIn inserts within the caller's transaction; registration uses it
	// so user and profile commit together.
	CreateIn(tx *gorm.DB, p *Profile) error
	GetByID(id uint) (*Profile, error)
	GetRow(id, requester uint) (*Row, error)
	List(opts ListOpts) ([]Row, error)
	Update(p *Profile) error
}

type repo struct{ db *gorm.DB }

func NewRepository(s *db.Store) Repository { return &repo{db: s.DB} }

func (r *repo) Create(p *Profile) error { return r.CreateIn(r.db, p) }

func (r *repo) CreateIn(tx *gorm.DB, p *Profile) error {
	return db.Translate(tx.Create(p).Error, "profile not found", "profile already exists")
}

func (r *repo) GetByID(id uint) (*Profile, error) {
	var p Profile
	if err := r.db.First(&p, id).Error; err != nil {
		return nil, db.Translate(err, "profile not found", "")
	}
	return &p, nil
}

func (r *repo) Update(p *Profile) error {
	return db.Translate(r.db.Save(p).Error, "profile not found", "")
}

// annotated builds the counted query. Every counter counts its related rows
// distinctly so the three LEFT JOIN fan-outs cannot inflate each other.
func (r *repo) annotated(requester uint) *gorm.DB {
	return r.db.Model(&Profile{}).
		Select(`profiles.id, profiles.owner_id, users.username AS owner_username,
			profiles.created_at, profiles.updated_at, profiles.name, profiles.content, profiles.image,
			COUNT(DISTINCT posts.id) AS posts_count,
			COUNT(DISTINCT fr.id) AS followers_count,
			COUNT(DISTINCT fg.id) AS following_count,
			MAX(mine.id) AS following_id`).
		Joins("JOIN users ON users.id = profiles.owner_id").
		Joins("LEFT JOIN posts ON posts.owner_id = profiles.owner_id").
		Joins("LEFT JOIN followers fr ON fr.followed_id = profiles.owner_id").
		Joins("LEFT JOIN followers fg ON fg.owner_id = profiles.owner_id").
		Joins("LEFT JOIN followers mine ON mine.followed_id = profiles.owner_id AND mine.owner_id = ?", requester).
		Group("profiles.id, users.id")
}

func (r *repo) GetRow(id, requester uint) (*Row, error) {
	var row Row
	res := r.annotated(requester).Where("profiles.id = ?", id).Scan(&row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, db.Translate(gorm.ErrRecordNotFound, "profile not found", "")
	}
	return &row, nil
}

var orderings = map[string]string{
	"posts_count":          "posts_count",
	"followers_count":      "followers_count",
	"following_count":      "following_count",
	"following_created_at": "MAX(fg.created_at)",
	"followed_created_at":  "MAX(fr.created_at)",
}

func (r *repo) List(opts ListOpts) ([]Row, error) {
	q := r.annotated(opts.Requester)
	if opts.Follows != 0 {
		q = q.Where(`EXISTS (
			SELECT 1 FROM followers f
			JOIN profiles px ON px.owner_id = f.followed_id
			WHERE f.owner_id = profiles.owner_id AND px.id = ?)`, opts.Follows)
	}
	q = q.Order(db.OrderExpr(opts.Ordering, orderings, "profiles.created_at DESC"))
	var rows []Row
	err := q.Limit(opts.Limit).Offset(opts.Offset).Scan(&rows).Error
	return rows, err
}
