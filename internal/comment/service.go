package comment

import (
	"net/http"

	"github.com/gassama94/drf-api/internal/shared/authz"
)

type Service interface {
	Create(owner uint, in CreateReq) (*View, error)
	Get(id, requester uint) (*View, error)
	ListByPost(postID uint, limit, offset int, requester uint) ([]View, error)
	Update(id, requester uint, in UpdateReq) (*View, error)
	Delete(id, requester uint) error
}

type service struct{ repo Repository }

func NewService(r Repository) Service { return &service{repo: r} }

func (s *service) Create(owner uint, in CreateReq) (*View, error) {
	c := &Comment{OwnerID: owner, PostID: in.Post, Content: in.Content}
	if err := s.repo.Create(c); err != nil {
		return nil, err
	}
	return s.Get(c.ID, owner)
}

func (s *service) Get(id, requester uint) (*View, error) {
	row, err := s.repo.GetRow(id)
	if err != nil {
		return nil, err
	}
	v := NewView(*row, requester)
	return &v, nil
}

func (s *service) ListByPost(postID uint, limit, offset int, requester uint) ([]View, error) {
	rows, err := s.repo.ListByPost(postID, limit, offset)
	if err != nil {
		return nil, err
	}
	views := make([]View, len(rows))
	for i, row := range rows {
		views[i] = NewView(row, requester)
	}
	return views, nil
}

func (s *service) Update(id, requester uint, in UpdateReq) (*View, error) {
	c, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := authz.Authorize(http.MethodPut, requester, c.OwnerID); err != nil {
		return nil, err
	}
	c.Content = in.Content
	if err := s.repo.Update(c); err != nil {
		return nil, err
	}
	return s.Get(id, requester)
}

func (s *service) Delete(id, requester uint) error {
	c, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if err := authz.Authorize(http.MethodDelete, requester, c.OwnerID); err != nil {
		return err
	}
	return s.repo.Delete(id)
}
