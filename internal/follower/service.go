package follower

import (
	"context"
	"net/http"

	"github.com/gassama94/drf-api/internal/events"
	"github.com/gassama94/drf-api/internal/shared/apperr"
	"github.com/gassama94/drf-api/internal/shared/authz"
)

type Service interface {
	Create(owner uint, in CreateReq) (*View, error)
	Get(id uint) (*View, error)
	List(limit, offset int) ([]View, error)
	Delete(id, requester uint) error
}

type service struct {
	repo   Repository
	events events.Publisher
}

func NewService(r Repository, ev events.Publisher) Service {
	return &service{repo: r, events: ev}
}

func (s *service) Create(owner uint, in CreateReq) (*View, error) {
	if owner == in.Followed {
		return nil, apperr.Validation("cannot follow self")
	}
	f := &Follower{OwnerID: owner, FollowedID: in.Followed}
	if err := s.repo.Create(f); err != nil {
		return nil, err
	}
	s.events.Publish(context.Background(), "follower.created", map[string]any{
		"follower_id": f.ID, "owner_id": owner, "followed_id": in.Followed,
	})
	return s.Get(f.ID)
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

// Delete is unfollow; follows have no update.
func (s *service) Delete(id, requester uint) error {
	f, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if err := authz.Authorize(http.MethodDelete, requester, f.OwnerID); err != nil {
		return err
	}
	return s.repo.Delete(id)
}
