package profile

import (
	"context"
	"net/http"

	"gorm.io/gorm"

	"github.com/gassama94/drf-api/internal/media"
	"github.com/gassama94/drf-api/internal/shared/authz"
)

type Service interface {
	// ProvisionFor is the identity-lifecycle hook: one profile per new user,
	// created in the registration transaction.
	ProvisionFor(tx *gorm.DB, ownerID uint) error
	List(opts ListOpts) ([]View, error)
	Get(id, requester uint) (*View, error)
	Update(id, requester uint, in UpdateReq, image []byte, imageExt, imageCT string) (*View, error)
}

type service struct {
	repo    Repository
	storage media.Storage
}

func NewService(r Repository, st media.Storage) Service {
	return &service{repo: r, storage: st}
}

func (s *service) ProvisionFor(tx *gorm.DB, ownerID uint) error {
	return s.repo.CreateIn(tx, &Profile{OwnerID: ownerID})
}

func (s *service) List(opts ListOpts) ([]View, error) {
	rows, err := s.repo.List(opts)
	if err != nil {
		return nil, err
	}
	views := make([]View, len(rows))
	for i, row := range rows {
		views[i] = NewView(row, opts.Requester)
	}
	return views, nil
}

func (s *service) Get(id, requester uint) (*View, error) {
	row, err := s.repo.GetRow(id, requester)
	if err != nil {
		return nil, err
	}
	v := NewView(*row, requester)
	return &v, nil
}

func (s *service) Update(id, requester uint, in UpdateReq, image []byte, imageExt, imageCT string) (*View, error) {
	p, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := authz.Authorize(http.MethodPut, requester, p.OwnerID); err != nil {
		return nil, err
	}
	p.Name = in.Name
	p.Content = in.Content
	if image != nil {
		if err := media.ValidateImage(image); err != nil {
			return nil, err
		}
		key, err := s.storage.Save(context.Background(), imageExt, imageCT, image)
		if err != nil {
			return nil, err
		}
		p.Image = key
	}
	if err := s.repo.Update(p); err != nil {
		return nil, err
	}
	return s.Get(id, requester)
}
