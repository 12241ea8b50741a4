package post

import (
	"context"
	"net/http"

	"github.com/gassama94/drf-api/internal/events"
	"github.com/gassama94/drf-api/internal/media"
	"github.com/gassama94/drf-api/internal/shared/authz"
)

type Image struct {
	Data        []byte
	Ext         string
	ContentType string
}

type Service interface {
	Create(owner uint, in WriteReq, img *Image) (*View, error)
	Get(id, requester uint) (*View, error)
	List(opts ListOpts) ([]View, error)
	Update(id, requester uint, in WriteReq, img *Image) (*View, error)
	Delete(id, requester uint) error
}

type service struct {
	repo    Repository
	storage media.Storage
	events  events.Publisher
}

func NewService(r Repository, st media.Storage, ev events.Publisher) Service {
	return &service{repo: r, storage: st, events: ev}
}

func (s *service) storeImage(img *Image) (string, error) {
	if img == nil || img.Data == nil {
		return "", nil
	}
	if err := media.ValidateImage(img.Data); err != nil {
		return "", err
	}
	return s.storage.Save(context.Background(), img.Ext, img.ContentType, img.Data)
}

func (s *service) Create(owner uint, in WriteReq, img *Image) (*View, error) {
	key, err := s.storeImage(img)
	if err != nil {
		return nil, err
	}
	p := &Post{
		OwnerID:     owner,
		Title:       in.Title,
		Content:     in.Content,
		Category:    in.Category,
		ImageFilter: in.ImageFilter,
		Image:       key,
	}
	if p.Category == "" {
		p.Category = Categories[0]
	}
	if p.ImageFilter == "" {
		p.ImageFilter = "normal"
	}
	if err := s.repo.Create(p); err != nil {
		return nil, err
	}
	s.events.Publish(context.Background(), "post.created", map[string]any{
		"post_id": p.ID, "owner_id": p.OwnerID, "title": p.Title,
	})
	return s.Get(p.ID, owner)
}

func (s *service) Get(id, requester uint) (*View, error) {
	row, err := s.repo.GetRow(id, requester)
	if err != nil {
		return nil, err
	}
	v := NewView(*row, requester)
	return &v, nil
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

func (s *service) Update(id, requester uint, in WriteReq, img *Image) (*View, error) {
	p, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := authz.Authorize(http.MethodPut, requester, p.OwnerID); err != nil {
		return nil, err
	}
	key, err := s.storeImage(img)
	if err != nil {
		return nil, err
	}
	p.Title = in.Title
	p.Content = in.Content
	if in.Category != "" {
		p.Category = in.Category
	}
	if in.ImageFilter != "" {
		p.ImageFilter = in.ImageFilter
	}
	if key != "" {
		p.Image = key
	}
	if err := s.repo.Update(p); err != nil {
		return nil, err
	}
	return s.Get(id, requester)
}

// Delete removes the post; the store's FK constraints cascade to its likes
// and comments.
func (s *service) Delete(id, requester uint) error {
	p, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if err := authz.Authorize(http.MethodDelete, requester, p.OwnerID); err != nil {
		return err
	}
	return s.repo.Delete(id)
}
