package user

import (
	"context"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/gassama94/drf-api/internal/events"
	"github.com/gassama94/drf-api/internal/shared/apperr"
)

// ProfileProvisioner is the identity-lifecycle hook: on user creation it
// creates exactly one profile owned by that user, inside the caller's
// transaction so a failed registration leaves no partial state. The profile
// package implements it; wiring happens in the app container.
type ProfileProvisioner interface {
	ProvisionFor(tx *gorm.DB, ownerID uint) error
}

type Service interface {
	Register(in RegisterReq) (*User, error)
	Login(in LoginReq) (*User, error)
	GetByID(id uint) (*User, error)
}

type service struct {
	repo     Repository
	profiles ProfileProvisioner
	events   events.Publisher
}

func NewService(r Repository, p ProfileProvisioner, ev events.Publisher) Service {
	return &service{repo: r, profiles: p, events: ev}
}

func (s *service) Register(in RegisterReq) (*User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &User{Username: in.Username, Email: in.Email, PassHash: string(hash)}
	err = s.repo.CreateAndProvision(u, func(tx *gorm.DB) error {
		return s.profiles.ProvisionFor(tx, u.ID)
	})
	if err != nil {
		return nil, err
	}
	s.events.Publish(context.Background(), "user.registered", map[string]any{
		"user_id": u.ID, "username": u.Username,
	})
	return u, nil
}

func (s *service) Login(in LoginReq) (*User, error) {
	u, err := s.repo.GetByUsername(in.Username)
	if err != nil {
		return nil, apperr.Validation("invalid credentials")
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PassHash), []byte(in.Password)) != nil {
		return nil, apperr.Validation("invalid credentials")
	}
	return u, nil
}

func (s *service) GetByID(id uint) (*User, error) { return s.repo.GetByID(id) }
