package like

import (
	"net/http"

	"github.com/gassama94/drf-api/internal/shared/authz"
)

type Service interface {
	Create(owner uint, in CreateReq) (*View, error)
	Get(id uint) (*View, error)
	List(limit, offset int) ([]View, error)
	Delete(id, requester uint) error
}

type service struct{ repo Repository }

func NewService(r Repository) Service { return &service{repo: r} }

func (s *service) Create(owner uint, in CreateReq) (*View, error) {
	l := &Like{OwnerID: owner, PostID: in.Post}
	if err := s.repo.Create(l); err != nil {
		return nil, err
	}
	return s.Get(l.ID)
}

func (s *service) Get(id uint) (*View, error) {
	row, err := s.repo.GetRow(id)
	if err != nil {
		return nil, err
	}
	v := NewView(*row)
	return &v, nil
}

func (s *service) List(limit, offset int) ([]View, error) {
	rows, err := s.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	views := make([]View, len(rows))
	for i, row := range rows {
		views[i] = NewView(row)
	}
	return views, nil
}

// Delete is the only mutation; likes have no update.
func (s *service) Delete(id, requester uint) error {
	l, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if err := authz.Authorize(http.MethodDelete, requester, l.OwnerID); err != nil {
		return err
	}
	return s.repo.Delete(id)
}
